// Package admin registers the organization administration resources:
// companies, vendors, users and clients.
package admin

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/fieldops/fieldops/internal/auth"
	"github.com/fieldops/fieldops/internal/config"
	"github.com/fieldops/fieldops/internal/crud"
	"github.com/fieldops/fieldops/internal/db/models"
)

// Screen names guarding the admin resources.
const (
	ScreenCompany = "Company"
	ScreenVendor  = "Vendor / Contractor"
	ScreenUser    = "Technician"
	ScreenClient  = "Clients/Customer"
)

// Service is the admin resources handler service.
type Service struct{}

// Handler is the admin resources handler.
var Handler = Service{}

// Init registers the admin resource routes.
func (s *Service) Init(router fiber.Router, cfg *config.Config, db *gorm.DB, guard *auth.Guard) error {
	if router == nil || cfg == nil || db == nil || guard == nil {
		return errors.New("router, cfg, db or guard is nil")
	}

	if err := crud.Register(router.Group("/companies"), db, guard, crud.Resource[models.Company]{
		Screen:       ScreenCompany,
		SearchFields: []string{"name", "email", "phone", "gst", "city"},
		ExactFields:  []string{"country_id", "state_id", "subscription_id", "status"},
		Policy:       companyPolicy{},
	}); err != nil {
		return err
	}

	if err := crud.Register(router.Group("/vendors"), db, guard, crud.Resource[models.Vendor]{
		Screen:       ScreenVendor,
		SearchFields: []string{"vendor_name", "email", "phone"},
		ExactFields:  []string{"company_id", "country_id", "state_id", "region_id"},
		TenantScoped: true,
		Policy:       vendorPolicy{},
	}); err != nil {
		return err
	}

	if err := crud.Register(router.Group("/users"), db, guard, crud.Resource[models.User]{
		Screen:       ScreenUser,
		SearchFields: []string{"name", "email", "phone", "city"},
		ExactFields: []string{
			"company_id", "role_id", "vendor_id",
			"shift_id", "region_id", "supervisor_id",
		},
		TenantScoped: true,
		Policy:       userPolicy{},
	}); err != nil {
		return err
	}

	return crud.Register(router.Group("/clients"), db, guard, crud.Resource[models.Client]{
		Screen:       ScreenClient,
		SearchFields: []string{"first_name", "last_name", "email", "phone", "city"},
		ExactFields: []string{
			"company_id", "business_type_id",
			"country_id", "state_id", "available_status",
		},
		StatusField:  "available_status",
		TenantScoped: true,
		Policy:       clientPolicy{},
	})
}
