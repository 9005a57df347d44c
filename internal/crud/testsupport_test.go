package crud

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/fieldops/fieldops/internal/auth"
	"github.com/fieldops/fieldops/internal/db/models"
)

// gadget is the tenant-scoped entity the router tests register.
type gadget struct {
	ID        uuid.UUID  `gorm:"column:gadget_id;primaryKey;size:36" json:"gadget_id"`
	CompanyID *uuid.UUID `gorm:"column:company_id;size:36;uniqueIndex:idx_company_gadget" json:"company_id"`
	Name      string     `gorm:"column:name;size:255;not null;uniqueIndex:idx_company_gadget" json:"name" validate:"required"`
	Kind      string     `gorm:"column:kind;size:64" json:"kind"`
	Status    bool       `gorm:"column:status;default:true" json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (gadget) TableName() string { return "gadgets" }

func (g *gadget) BeforeCreate(_ *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}

	return nil
}

// sprocket references a gadget, for delete-restriction tests.
type sprocket struct {
	ID       uuid.UUID `gorm:"column:sprocket_id;primaryKey;size:36" json:"sprocket_id"`
	GadgetID uuid.UUID `gorm:"column:gadget_id;size:36;not null" json:"gadget_id"`
	Gadget   gadget    `gorm:"foreignKey:GadgetID;references:ID;constraint:OnDelete:RESTRICT" json:"-"`
}

func (sprocket) TableName() string { return "sprockets" }

func (s *sprocket) BeforeCreate(_ *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}

	return nil
}

// setupTestDB creates an in-memory SQLite database for testing, with
// foreign keys enforced and driver errors translated to gorm sentinels.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=1"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err, "failed to create test database")

	// one connection so every statement sees the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.Role{}, &models.Screen{}, &models.RoleScreenPermission{},
		&gadget{}, &sprocket{},
	)
	require.NoError(t, err, "failed to migrate test database")

	return db
}

// permFlags is a view/add/edit/delete flag set.
type permFlags struct {
	view, add, edit, del bool
}

var allPerms = permFlags{view: true, add: true, edit: true, del: true}

// seedPrincipal creates a role with the given flags on the "Gadget" screen
// and returns a principal holding that role for the given company.
func seedPrincipal(t *testing.T, db *gorm.DB, companyID *uuid.UUID, flags permFlags) *auth.Principal {
	t.Helper()

	screen := models.Screen{Name: "Gadget"}
	require.NoError(t, db.Where(models.Screen{Name: "Gadget"}).FirstOrCreate(&screen).Error)

	role := models.Role{Name: "Operator", Slug: "operator-" + uuid.NewString()[:8], Status: true}
	require.NoError(t, db.Create(&role).Error)

	perm := models.RoleScreenPermission{
		RoleID:    role.ID,
		ScreenID:  screen.ID,
		CanView:   flags.view,
		CanAdd:    flags.add,
		CanEdit:   flags.edit,
		CanDelete: flags.del,
	}
	require.NoError(t, db.Create(&perm).Error)

	return &auth.Principal{
		ID:        uuid.New(),
		RoleID:    role.ID,
		RoleSlug:  role.Slug,
		CompanyID: companyID,
	}
}

// superAdmin returns a principal holding the super-tenant role.
func superAdmin() *auth.Principal {
	return &auth.Principal{
		ID:       uuid.New(),
		RoleID:   uuid.New(),
		RoleSlug: models.RoleSuperAdmin,
	}
}

// newGadgetApp registers the gadget resource for a fixed principal.
func newGadgetApp(t *testing.T, db *gorm.DB, p *auth.Principal, res Resource[gadget]) *fiber.App {
	t.Helper()

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		auth.SetPrincipal(c, p)
		return c.Next()
	})

	err := Register(app.Group("/gadgets"), db, auth.NewGuard(db), res)
	require.NoError(t, err)

	return app
}

// doJSON performs a request and decodes the JSON response into out.
func doJSON(t *testing.T, app *fiber.App, method, target string, body any, out any) int {
	t.Helper()

	var reader io.Reader

	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	defer func() {
		_ = resp.Body.Close()
	}()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}

	return resp.StatusCode
}
