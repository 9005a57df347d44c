// Package masters registers the master-data resources: roles, settings
// vocabularies and the per-company work classification tables, plus the
// screen listing and role-screen permission endpoints.
package masters

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/fieldops/fieldops/internal/auth"
	"github.com/fieldops/fieldops/internal/config"
	"github.com/fieldops/fieldops/internal/crud"
	"github.com/fieldops/fieldops/internal/db/models"
)

// Screen names guarding the master resources.
const (
	ScreenSettings  = "Settings"
	ScreenManageJob = "Manage Job"
	ScreenWorkType  = "Work Type"
	ScreenJobType   = "Job Type"
	ScreenRegion    = "Region"
	ScreenShift     = "Shift"
	ScreenRoles     = "Roles"
)

// Service is the master resources handler service.
type Service struct {
	db        *gorm.DB
	guard     *auth.Guard
	validator *validator.Validate
}

// Handler is the master resources handler.
var Handler = Service{}

// Init registers the master resource routes.
func (s *Service) Init(router fiber.Router, cfg *config.Config, db *gorm.DB, guard *auth.Guard) error { //nolint:funlen
	if router == nil || cfg == nil || db == nil || guard == nil {
		return errors.New("router, cfg, db or guard is nil")
	}

	s.db = db
	s.guard = guard
	s.validator = validator.New()

	if err := crud.Register(router.Group("/nature-of-work"), db, guard, crud.Resource[models.NatureOfWork]{
		Screen:       ScreenSettings,
		SearchFields: []string{"now_name"},
		ExactFields:  []string{"now_status"},
		StatusField:  "now_status",
		Policy:       natureOfWorkPolicy{},
	}); err != nil {
		return err
	}

	if err := crud.Register(router.Group("/job-statuses"), db, guard, crud.Resource[models.JobStatus]{
		Screen:       ScreenManageJob,
		SearchFields: []string{"job_status_title"},
		ExactFields:  []string{"status"},
		Policy:       jobStatusPolicy{},
	}); err != nil {
		return err
	}

	if err := crud.Register(router.Group("/subscription-types"), db, guard, crud.Resource[models.SubscriptionType]{
		Screen:       ScreenSettings,
		SearchFields: []string{"subscription_title"},
		ExactFields:  []string{"subscription_status"},
		StatusField:  "subscription_status",
		Policy:       subscriptionTypePolicy{},
	}); err != nil {
		return err
	}

	if err := crud.Register(router.Group("/business-types"), db, guard, crud.Resource[models.BusinessType]{
		Screen:       ScreenSettings,
		SearchFields: []string{"business_type_name"},
		ExactFields:  []string{"status"},
		Policy:       businessTypePolicy{},
	}); err != nil {
		return err
	}

	if err := crud.Register(router.Group("/work-types"), db, guard, crud.Resource[models.WorkType]{
		Screen:       ScreenWorkType,
		SearchFields: []string{"worktype_name", "worktype_description"},
		ExactFields:  []string{"status", "company_id"},
		TenantScoped: true,
		Policy:       workTypePolicy{},
	}); err != nil {
		return err
	}

	if err := crud.Register(router.Group("/job-types"), db, guard, crud.Resource[models.JobType]{
		Screen:       ScreenJobType,
		SearchFields: []string{"jobtype_name", "description"},
		ExactFields:  []string{"status", "company_id", "worktype_id"},
		TenantScoped: true,
		Policy:       jobTypePolicy{},
	}); err != nil {
		return err
	}

	if err := crud.Register(router.Group("/regions"), db, guard, crud.Resource[models.Region]{
		Screen:       ScreenRegion,
		SearchFields: []string{"region_name"},
		ExactFields:  []string{"status", "company_id", "country_id", "state_id", "district_id"},
		TenantScoped: true,
		Policy:       regionPolicy{},
	}); err != nil {
		return err
	}

	if err := crud.Register(router.Group("/shifts"), db, guard, crud.Resource[models.Shift]{
		Screen:       ScreenShift,
		SearchFields: []string{"shift_name", "description"},
		ExactFields:  []string{"status", "company_id"},
		TenantScoped: true,
		Policy:       shiftPolicy{},
	}); err != nil {
		return err
	}

	if err := crud.Register(router.Group("/roles"), db, guard, crud.Resource[models.Role]{
		Screen:       ScreenRoles,
		SearchFields: []string{"role_name", "role_slug"},
		ExactFields:  []string{"status"},
		Policy:       rolePolicy{},
	}); err != nil {
		return err
	}

	router.Get("/screens", guard.Require(ScreenRoles, auth.ActionView), s.listScreens)
	router.Put("/roles/:role_id/screens/:screen_id", guard.Require(ScreenRoles, auth.ActionEdit), s.upsertPermission)

	return nil
}
