// Package jobs registers the job records resource. Only storage and listing
// of jobs live here; the status workflow is a separate business layer.
package jobs

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/fieldops/fieldops/internal/auth"
	"github.com/fieldops/fieldops/internal/config"
	"github.com/fieldops/fieldops/internal/crud"
	"github.com/fieldops/fieldops/internal/db/models"
	"github.com/fieldops/fieldops/internal/uniuri"
)

// ScreenManageJob guards the jobs resource.
const ScreenManageJob = "Manage Job"

// referenceSuffixLen is the random tail length of a generated job reference.
const referenceSuffixLen = 6

// Service is the jobs handler service.
type Service struct{}

// Handler is the jobs handler.
var Handler = Service{}

// Init registers the jobs resource routes.
func (s *Service) Init(router fiber.Router, cfg *config.Config, db *gorm.DB, guard *auth.Guard) error {
	if router == nil || cfg == nil || db == nil || guard == nil {
		return errors.New("router, cfg, db or guard is nil")
	}

	return crud.Register(router, db, guard, crud.Resource[models.Job]{
		Screen:       ScreenManageJob,
		SearchFields: []string{"reference_number"},
		ExactFields: []string{
			"client_id", "worktype_id", "jobtype_id",
			"supervisor_id", "technician_id", "now_id", "job_status_id",
		},
		TenantScoped: true,
		Policy:       jobPolicy{},
	})
}

// jobPolicy generates the job reference and ties the job to a client of the
// same company.
type jobPolicy struct {
	crud.BasePolicy
}

func (jobPolicy) Normalize(body map[string]any, op crud.Operation) {
	crud.Trim(body, "reference_number", "job_description")

	if op != crud.OpCreate {
		return
	}

	if crud.BodyString(body, "reference_number") == "" {
		body["reference_number"] = NewReference()
	}
}

func (jobPolicy) PreCreate(ctx *crud.Context, body map[string]any) error {
	clientID := crud.BodyString(body, "client_id")
	if clientID == "" {
		return crud.BadRequestf("client_id is required")
	}

	var client models.Client

	err := ctx.DB.
		Where(map[string]any{"client_id": clientID, "company_id": crud.BodyString(body, "company_id")}).
		First(&client).Error
	if err != nil {
		return crud.BadRequestf("client_id must belong to the same company")
	}

	return nil
}

func (jobPolicy) DuplicateWhere(_ *crud.Context, body map[string]any) map[string]any {
	return map[string]any{"reference_number": crud.BodyString(body, "reference_number")}
}

// NewReference builds a caller-facing job reference: a JOB prefix, a UTC
// timestamp and a random uppercase tail.
func NewReference() string {
	suffix := strings.ToUpper(uniuri.NewLenChars(referenceSuffixLen, uniuri.StdChars))

	return "JOB-" + time.Now().UTC().Format("20060102150405") + "-" + suffix
}
