package config

import (
	"github.com/fieldops/fieldops/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Auth      Auth
	Seed      Seed
	Webserver Webserver
}

// Auth holds token issuing settings.
type Auth struct {
	JWTSecret       string // HMAC secret for signing access tokens
	TokenTTLMinutes int    // access token lifetime in minutes
}

// Seed holds the bootstrap super admin credentials used by `fieldops seed`.
type Seed struct {
	SuperAdminEmail    string
	SuperAdminPassword string
}

// Webserver implement webserver settings.
type Webserver struct {
	CleanPath      bool   // use clean path middleware to allow multi slash requests
	DisableRecover bool   // disable recover middleware
	Domain         string // domain name for the webserver
	Port           int    // listening port for the webserver
	ShutDownTime   int    // wait time for shutdown
	URL            string // base url for the webserver
}
