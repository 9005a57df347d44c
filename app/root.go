// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"

	"github.com/fieldops/fieldops/internal/config"
)

var (
	cfg        config.Config
	configPath string // Path to the configuration directory
)

var rootCmd = &cobra.Command{
	Use:   "fieldops",
	Short: "FieldOps is a multi-tenant field-service management API",
	Long: `FieldOps is a multi-tenant field-service management API
that serves companies, their vendors, technicians, clients and jobs
behind a role- and screen-based permission model.`,
	Args: cobra.OnlyValidArgs,
}

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the configuration directory")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
