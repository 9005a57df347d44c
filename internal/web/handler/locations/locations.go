// Package locations registers the geographic reference resources:
// countries, states, districts and pincodes. Everyone with the Settings
// screen can read them; only the super-tenant role may create entries.
package locations

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/fieldops/fieldops/internal/auth"
	"github.com/fieldops/fieldops/internal/config"
	"github.com/fieldops/fieldops/internal/crud"
	"github.com/fieldops/fieldops/internal/db/models"
)

// ScreenSettings guards all geographic reference resources.
const ScreenSettings = "Settings"

// Service is the location resources handler service.
type Service struct{}

// Handler is the location resources handler.
var Handler = Service{}

// Init registers the location resource routes.
func (s *Service) Init(router fiber.Router, cfg *config.Config, db *gorm.DB, guard *auth.Guard) error {
	if router == nil || cfg == nil || db == nil || guard == nil {
		return errors.New("router, cfg, db or guard is nil")
	}

	if err := crud.Register(router.Group("/countries"), db, guard, crud.Resource[models.Country]{
		Screen:       ScreenSettings,
		SearchFields: []string{"country_name", "country_code"},
		ExactFields:  []string{"country_id", "country_code", "country_status"},
		StatusField:  "country_status",
		Policy:       superAdminCreatePolicy{},
	}); err != nil {
		return err
	}

	if err := crud.Register(router.Group("/states"), db, guard, crud.Resource[models.State]{
		Screen:       ScreenSettings,
		SearchFields: []string{"state_name"},
		ExactFields:  []string{"country_id", "state_id", "state_status"},
		StatusField:  "state_status",
		Policy:       superAdminCreatePolicy{},
	}); err != nil {
		return err
	}

	if err := crud.Register(router.Group("/districts"), db, guard, crud.Resource[models.District]{
		Screen:       ScreenSettings,
		SearchFields: []string{"district_name"},
		ExactFields:  []string{"country_id", "state_id", "district_id", "district_status"},
		StatusField:  "district_status",
		Policy:       superAdminCreatePolicy{},
	}); err != nil {
		return err
	}

	return crud.Register(router.Group("/pincodes"), db, guard, crud.Resource[models.Pincode]{
		Screen:       ScreenSettings,
		SearchFields: []string{"pincode"},
		ExactFields:  []string{"country_id", "state_id", "district_id", "pincode"},
		Policy:       pincodePolicy{},
	})
}

// superAdminCreatePolicy restricts creation to the super-tenant role.
// Reading stays open to every caller holding the screen.
type superAdminCreatePolicy struct {
	crud.BasePolicy
}

func (superAdminCreatePolicy) PreCreate(ctx *crud.Context, _ map[string]any) error {
	if !ctx.Principal.IsSuperAdmin() {
		return crud.Forbiddenf("Only super_admin can create locations")
	}

	return nil
}

// pincodePolicy compacts the PIN format and makes re-posted creates
// idempotent on (country, pincode).
type pincodePolicy struct {
	superAdminCreatePolicy
}

func (pincodePolicy) Normalize(body map[string]any, _ crud.Operation) {
	crud.Compact(body, "pincode")
}

func (pincodePolicy) DuplicateWhere(_ *crud.Context, body map[string]any) map[string]any {
	return map[string]any{
		"country_id": body["country_id"],
		"pincode":    crud.BodyString(body, "pincode"),
	}
}
