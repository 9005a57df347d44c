package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoleSuperAdmin is the distinguished super-tenant role slug. Principals
// carrying it bypass screen permission checks and tenant scoping.
const RoleSuperAdmin = "super_admin"

// Well-known role slugs seeded at install time.
const (
	RoleCompanyAdmin = "company_admin"
	RoleVendor       = "vendor"
	RoleSupervisor   = "supervisor"
	RoleTechnician   = "technician"
)

// Role represents a role in the role-based access control (RBAC) system.
// Screen permissions are granted per role via RoleScreenPermission.
type Role struct {
	// ID is the unique identifier for the role.
	ID uuid.UUID `gorm:"column:role_id;primaryKey;size:36" json:"role_id"`
	// Name is the display name of the role (e.g., "Company Admin").
	Name string `gorm:"column:role_name;size:100;not null" json:"role_name"`
	// Slug is the unique machine tag of the role (e.g., "company_admin").
	Slug string `gorm:"column:role_slug;unique;size:100;not null" json:"role_slug"`
	// Status indicates whether the role is active.
	Status bool `gorm:"column:status;default:true" json:"status"`
	// CreatedAt is the timestamp when the role was created (managed by GORM).
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is the timestamp when the role was last updated (managed by GORM).
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the database table name for the Role model.
func (Role) TableName() string {
	return "roles"
}

// BeforeCreate assigns a UUID primary key when none was supplied.
func (r *Role) BeforeCreate(_ *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}

	return nil
}
