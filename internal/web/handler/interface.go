// Package handler defines the shared contract for web handler services.
package handler

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/fieldops/fieldops/internal/auth"
	"github.com/fieldops/fieldops/internal/config"
)

// Service is the interface for a web handler service. Each handler package
// registers its own routes on the router group it is given.
type Service interface {
	Init(router fiber.Router, cfg *config.Config, db *gorm.DB, guard *auth.Guard) error
}
