package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoleScreenPermission grants a role its view/add/edit/delete flags on one
// screen. At most one record exists per (role, screen) pair.
type RoleScreenPermission struct {
	// ID is the unique identifier for the permission record.
	ID uuid.UUID `gorm:"column:permission_id;primaryKey;size:36" json:"permission_id"`
	// RoleID is the role this permission set belongs to.
	RoleID uuid.UUID `gorm:"column:role_id;size:36;not null;uniqueIndex:idx_role_screen" json:"role_id"`
	// ScreenID is the screen this permission set applies to.
	ScreenID uuid.UUID `gorm:"column:screen_id;size:36;not null;uniqueIndex:idx_role_screen" json:"screen_id"`
	// CanView allows listing and reading records under the screen.
	CanView bool `gorm:"column:can_view;default:false" json:"can_view"`
	// CanAdd allows creating records under the screen.
	CanAdd bool `gorm:"column:can_add;default:false" json:"can_add"`
	// CanEdit allows updating records under the screen.
	CanEdit bool `gorm:"column:can_edit;default:false" json:"can_edit"`
	// CanDelete allows deleting records under the screen.
	CanDelete bool `gorm:"column:can_delete;default:false" json:"can_delete"`
	// Role is the associated role (loaded via foreign key).
	Role Role `gorm:"foreignKey:RoleID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	// Screen is the associated screen (loaded via foreign key).
	Screen Screen `gorm:"foreignKey:ScreenID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	// CreatedAt is the timestamp when the record was created (managed by GORM).
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is the timestamp when the record was last updated (managed by GORM).
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the database table name for the RoleScreenPermission model.
func (RoleScreenPermission) TableName() string {
	return "role_screen_permissions"
}

// BeforeCreate assigns a UUID primary key when none was supplied.
func (p *RoleScreenPermission) BeforeCreate(_ *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	return nil
}
