package main

import (
	"os"

	"github.com/fieldops/fieldops/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
