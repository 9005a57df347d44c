package jobs

import (
	"context"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/fieldops/fieldops/internal/auth"
	"github.com/fieldops/fieldops/internal/crud"
	"github.com/fieldops/fieldops/internal/db/models"
)

var referenceRe = regexp.MustCompile(`^JOB-\d{14}-[A-Z0-9]{6}$`)

func TestNewReference(t *testing.T) {
	first := NewReference()
	second := NewReference()

	assert.Regexp(t, referenceRe, first)
	assert.Regexp(t, referenceRe, second)
	assert.NotEqual(t, first, second)
}

func TestJobNormalize(t *testing.T) {
	t.Run("generates a reference on create", func(t *testing.T) {
		body := map[string]any{"job_description": "  fix the meter  "}

		jobPolicy{}.Normalize(body, crud.OpCreate)

		assert.Equal(t, "fix the meter", body["job_description"])
		assert.Regexp(t, referenceRe, body["reference_number"])
	})

	t.Run("keeps a caller-supplied reference", func(t *testing.T) {
		body := map[string]any{"reference_number": " JOB-20240101000000-ABCDEF "}

		jobPolicy{}.Normalize(body, crud.OpCreate)

		assert.Equal(t, "JOB-20240101000000-ABCDEF", body["reference_number"])
	})

	t.Run("never generates on update", func(t *testing.T) {
		body := map[string]any{"job_description": "reschedule"}

		jobPolicy{}.Normalize(body, crud.OpUpdate)

		assert.NotContains(t, body, "reference_number")
	})
}

func TestJobPreCreate(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=1"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)

	// one connection so every statement sees the same in-memory database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Client{}))

	companyID := uuid.New()
	cid := companyID
	client := models.Client{CompanyID: &cid, FirstName: "Asha", AvailableStatus: true}
	require.NoError(t, db.Create(&client).Error)

	ctx := &crud.Context{
		Ctx: context.Background(),
		DB:  db,
		Principal: &auth.Principal{
			ID:        uuid.New(),
			RoleSlug:  models.RoleCompanyAdmin,
			CompanyID: &companyID,
		},
	}

	t.Run("client is required", func(t *testing.T) {
		err := jobPolicy{}.PreCreate(ctx, map[string]any{
			"company_id": companyID.String(),
		})
		require.Error(t, err)
		assert.Equal(t, "client_id is required", err.Error())
	})

	t.Run("client of another company is rejected", func(t *testing.T) {
		err := jobPolicy{}.PreCreate(ctx, map[string]any{
			"client_id":  client.ID.String(),
			"company_id": uuid.NewString(),
		})
		require.Error(t, err)
		assert.Equal(t, "client_id must belong to the same company", err.Error())
	})

	t.Run("own-company client passes", func(t *testing.T) {
		err := jobPolicy{}.PreCreate(ctx, map[string]any{
			"client_id":  client.ID.String(),
			"company_id": companyID.String(),
		})
		assert.NoError(t, err)
	})
}
