package admin

import (
	"context"
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

type adminFixtures struct {
	db         *gorm.DB
	companyID  uuid.UUID
	vendor     models.Vendor
	technician models.Role
	supervisor models.Role
	admin      models.Role
}

func setupAdminFixtures(t *testing.T) adminFixtures {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=1"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)

	// one connection so every statement sees the same in-memory database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Role{}, &models.Vendor{}, &models.User{}))

	f := adminFixtures{db: db, companyID: uuid.New()}

	f.technician = models.Role{Name: "Technician", Slug: models.RoleTechnician, Status: true}
	f.supervisor = models.Role{Name: "Supervisor", Slug: models.RoleSupervisor, Status: true}
	f.admin = models.Role{Name: "Company Admin", Slug: models.RoleCompanyAdmin, Status: true}

	for _, role := range []*models.Role{&f.technician, &f.supervisor, &f.admin} {
		require.NoError(t, db.Create(role).Error)
	}

	cid := f.companyID
	f.vendor = models.Vendor{CompanyID: &cid, Name: "Acme Field Services", Status: true}
	require.NoError(t, db.Create(&f.vendor).Error)

	return f
}

func (f adminFixtures) ctx() *crud.Context {
	cid := f.companyID

	return &crud.Context{
		Ctx: context.Background(),
		DB:  f.db,
		Principal: &auth.Principal{
			ID:        uuid.New(),
			RoleID:    f.admin.ID,
			RoleSlug:  models.RoleCompanyAdmin,
			CompanyID: &cid,
		},
	}
}

func TestUserPolicyNormalizeHashesPassword(t *testing.T) {
	body := map[string]any{
		"name":     "  Ravi Kumar ",
		"email":    " Ravi@Example.COM ",
		"phone":    "+91 98765-43210",
		"password": "s3cret",
	}

	userPolicy{}.Normalize(body, crud.OpCreate)

	assert.Equal(t, "Ravi Kumar", body["name"])
	assert.Equal(t, "ravi@example.com", body["email"])
	assert.Equal(t, "919876543210", body["phone"])

	hashed, _ := body["password"].(string)
	require.NotEqual(t, "s3cret", hashed)

	user := models.User{Password: hashed}
	assert.True(t, user.VerifyPassword("s3cret"))
}

func TestUserPolicyNormalizeKeepsEmptyPassword(t *testing.T) {
	body := map[string]any{"password": ""}

	userPolicy{}.Normalize(body, crud.OpUpdate)

	assert.Equal(t, "", body["password"])
}

func TestUserPreCreate(t *testing.T) {
	f := setupAdminFixtures(t)

	t.Run("role is required", func(t *testing.T) {
		err := userPolicy{}.PreCreate(f.ctx(), map[string]any{})
		require.Error(t, err)
		assert.Equal(t, "role_id is required", err.Error())
	})

	t.Run("unknown role is rejected", func(t *testing.T) {
		err := userPolicy{}.PreCreate(f.ctx(), map[string]any{"role_id": uuid.NewString()})
		require.Error(t, err)
		assert.Equal(t, "Invalid role_id", err.Error())
	})

	t.Run("admin needs no vendor", func(t *testing.T) {
		err := userPolicy{}.PreCreate(f.ctx(), map[string]any{"role_id": f.admin.ID.String()})
		assert.NoError(t, err)
	})

	t.Run("technician needs a vendor", func(t *testing.T) {
		err := userPolicy{}.PreCreate(f.ctx(), map[string]any{"role_id": f.technician.ID.String()})
		require.Error(t, err)
		assert.Equal(t, "vendor_id is required for technician/supervisor", err.Error())
	})

	t.Run("vendor must belong to the company", func(t *testing.T) {
		err := userPolicy{}.PreCreate(f.ctx(), map[string]any{
			"role_id":    f.supervisor.ID.String(),
			"vendor_id":  f.vendor.ID.String(),
			"company_id": uuid.NewString(),
		})
		require.Error(t, err)
		assert.Equal(t, "vendor_id must belong to the same company", err.Error())
	})

	t.Run("technician with own-company vendor passes", func(t *testing.T) {
		err := userPolicy{}.PreCreate(f.ctx(), map[string]any{
			"role_id":    f.technician.ID.String(),
			"vendor_id":  f.vendor.ID.String(),
			"company_id": f.companyID.String(),
		})
		assert.NoError(t, err)
	})
}

func TestUserPreUpdate(t *testing.T) {
	f := setupAdminFixtures(t)

	cid := f.companyID
	vid := f.vendor.ID
	existing := &models.User{
		ID:        uuid.New(),
		CompanyID: &cid,
		Name:      "Ravi Kumar",
		RoleID:    f.technician.ID,
		VendorID:  &vid,
	}

	t.Run("untouched assignment needs no validation", func(t *testing.T) {
		err := userPolicy{}.PreUpdate(f.ctx(), map[string]any{"name": "Ravi K"}, existing)
		assert.NoError(t, err)
	})

	t.Run("role change keeps the existing vendor", func(t *testing.T) {
		err := userPolicy{}.PreUpdate(f.ctx(), map[string]any{
			"role_id": f.supervisor.ID.String(),
		}, existing)
		assert.NoError(t, err)
	})

	t.Run("promotion away from field roles drops the vendor requirement", func(t *testing.T) {
		err := userPolicy{}.PreUpdate(f.ctx(), map[string]any{
			"role_id": f.admin.ID.String(),
		}, existing)
		assert.NoError(t, err)
	})

	t.Run("vendor change is validated against the user's company", func(t *testing.T) {
		otherCompany := uuid.New()
		foreign := models.Vendor{CompanyID: &otherCompany, Name: "Other Co Vendor", Status: true}
		require.NoError(t, f.db.Create(&foreign).Error)

		err := userPolicy{}.PreUpdate(f.ctx(), map[string]any{
			"vendor_id": foreign.ID.String(),
		}, existing)
		require.Error(t, err)
		assert.Equal(t, "vendor_id must belong to the same company", err.Error())
	})

	t.Run("demotion to technician without any vendor is rejected", func(t *testing.T) {
		adminUser := &models.User{
			ID:        uuid.New(),
			CompanyID: &cid,
			Name:      "Desk Admin",
			RoleID:    f.admin.ID,
		}

		err := userPolicy{}.PreUpdate(f.ctx(), map[string]any{
			"role_id": f.technician.ID.String(),
		}, adminUser)
		require.Error(t, err)
		assert.Equal(t, "vendor_id is required for technician/supervisor", err.Error())
	})
}

func TestUserListScopeRestrictsToFieldRoles(t *testing.T) {
	f := setupAdminFixtures(t)

	cid := f.companyID
	vid := f.vendor.ID

	users := []models.User{
		{CompanyID: &cid, Name: "Tech One", Email: "tech1@fieldops.io", RoleID: f.technician.ID, VendorID: &vid},
		{CompanyID: &cid, Name: "Super One", Email: "super1@fieldops.io", RoleID: f.supervisor.ID, VendorID: &vid},
		{CompanyID: &cid, Name: "Admin One", Email: "admin1@fieldops.io", RoleID: f.admin.ID},
	}

	for i := range users {
		require.NoError(t, f.db.Create(&users[i]).Error)
	}

	scope, err := userPolicy{}.ListScope(f.ctx())
	require.NoError(t, err)
	require.NotNil(t, scope)

	var names []string

	err = f.db.Model(&models.User{}).Scopes(scope).Order("name ASC").Pluck("name", &names).Error
	require.NoError(t, err)
	assert.Equal(t, []string{"Super One", "Tech One"}, names)
}

func TestCompanyPolicyNormalize(t *testing.T) {
	body := map[string]any{
		"name":        " FieldOps Ltd ",
		"email":       " Info@FieldOps.IO ",
		"gst":         " 22aaaaa0000a1z5 ",
		"phone":       "(040) 2765-4321",
		"theme_color": " #1A2B3C ",
	}

	companyPolicy{}.Normalize(body, crud.OpCreate)

	assert.Equal(t, "FieldOps Ltd", body["name"])
	assert.Equal(t, "info@fieldops.io", body["email"])
	assert.Equal(t, "22AAAAA0000A1Z5", body["gst"])
	assert.Equal(t, "04027654321", body["phone"])
	assert.Equal(t, "#1a2b3c", body["theme_color"])
}
