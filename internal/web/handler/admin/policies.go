package admin

import (
	"github.com/google/uuid"

	"github.com/fieldops/fieldops/internal/crud"
	"github.com/fieldops/fieldops/internal/db/models"
)

// companyPolicy normalizes company contact fields. Companies are global
// records; only the super-tenant screen grants access to them.
type companyPolicy struct {
	crud.BasePolicy
}

func (companyPolicy) Normalize(body map[string]any, _ crud.Operation) {
	crud.Trim(body, "name", "city", "address_1", "postal_code")
	crud.LowerTrim(body, "email", "theme_color")
	crud.UpperTrim(body, "gst")
	crud.Digits(body, "phone")
}

// vendorPolicy normalizes vendor contact fields. Tenant ownership is
// enforced by the router for scoped resources.
type vendorPolicy struct {
	crud.BasePolicy
}

func (vendorPolicy) Normalize(body map[string]any, _ crud.Operation) {
	crud.Trim(body, "vendor_name", "address_1", "postal_code")
	crud.LowerTrim(body, "email")
	crud.Digits(body, "phone")
}

// clientPolicy normalizes client contact fields.
type clientPolicy struct {
	crud.BasePolicy
}

func (clientPolicy) Normalize(body map[string]any, _ crud.Operation) {
	crud.Trim(body, "first_name", "last_name", "city", "address_1", "postal_code")
	crud.LowerTrim(body, "email")
	crud.Digits(body, "phone")
}

// userPolicy validates the role and vendor assignment of a user and hashes
// the plaintext password before it reaches storage. Listing is always
// restricted to supervisor and technician accounts.
type userPolicy struct {
	crud.BasePolicy
}

func (userPolicy) Normalize(body map[string]any, _ crud.Operation) {
	crud.Trim(body, "name", "city", "address_1", "postal_code")
	crud.LowerTrim(body, "email")
	crud.Digits(body, "phone")

	if pw, ok := body["password"].(string); ok && pw != "" {
		body["password"] = models.HashPassword(pw)
	}
}

func (userPolicy) PreCreate(ctx *crud.Context, body map[string]any) error {
	roleID := crud.BodyString(body, "role_id")
	if roleID == "" {
		return crud.BadRequestf("role_id is required")
	}

	role, err := findRole(ctx, roleID)
	if err != nil {
		return err
	}

	if !requiresVendor(role.Slug) {
		return nil
	}

	vendorID := crud.BodyString(body, "vendor_id")
	if vendorID == "" {
		return crud.BadRequestf("vendor_id is required for technician/supervisor")
	}

	return vendorBelongsToCompany(ctx, vendorID, crud.BodyString(body, "company_id"))
}

func (userPolicy) PreUpdate(ctx *crud.Context, body map[string]any, existing any) error {
	row, ok := existing.(*models.User)
	if !ok {
		return crud.BadRequestf("Invalid user record")
	}

	_, roleChanged := body["role_id"]
	_, vendorChanged := body["vendor_id"]

	if !roleChanged && !vendorChanged {
		return nil
	}

	roleID := crud.BodyString(body, "role_id")
	if roleID == "" {
		roleID = row.RoleID.String()
	}

	role, err := findRole(ctx, roleID)
	if err != nil {
		return err
	}

	if !requiresVendor(role.Slug) {
		return nil
	}

	vendorID := crud.BodyString(body, "vendor_id")
	if vendorID == "" && row.VendorID != nil {
		vendorID = row.VendorID.String()
	}

	if vendorID == "" {
		return crud.BadRequestf("vendor_id is required for technician/supervisor")
	}

	companyID := ""
	if row.CompanyID != nil {
		companyID = row.CompanyID.String()
	}

	return vendorBelongsToCompany(ctx, vendorID, companyID)
}

// ListScope restricts user listings to the supervisor and technician roles.
// If either role is missing from the database the listing is empty rather
// than unfiltered.
func (userPolicy) ListScope(ctx *crud.Context) (crud.Scope, error) {
	var roleIDs []uuid.UUID

	err := ctx.DB.Model(&models.Role{}).
		Where("role_slug IN ?", []string{models.RoleSupervisor, models.RoleTechnician}).
		Pluck("role_id", &roleIDs).Error
	if err != nil {
		return nil, err
	}

	if len(roleIDs) == 0 {
		roleIDs = []uuid.UUID{uuid.Nil}
	}

	return crud.WhereIn("role_id", roleIDs), nil
}

func requiresVendor(slug string) bool {
	return slug == models.RoleTechnician || slug == models.RoleSupervisor
}

func findRole(ctx *crud.Context, roleID string) (*models.Role, error) {
	var role models.Role

	err := ctx.DB.Where(map[string]any{"role_id": roleID}).First(&role).Error
	if err != nil {
		return nil, crud.BadRequestf("Invalid role_id")
	}

	return &role, nil
}

func vendorBelongsToCompany(ctx *crud.Context, vendorID, companyID string) error {
	var vendor models.Vendor

	err := ctx.DB.
		Where(map[string]any{"vendor_id": vendorID, "company_id": companyID}).
		First(&vendor).Error
	if err != nil {
		return crud.BadRequestf("vendor_id must belong to the same company")
	}

	return nil
}
