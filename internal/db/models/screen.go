package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Screen represents a logical permission namespace, roughly one UI page.
// View/add/edit/delete flags are granted per role against a screen via
// RoleScreenPermission.
type Screen struct {
	// ID is the unique identifier for the screen.
	ID uuid.UUID `gorm:"column:screen_id;primaryKey;size:36" json:"screen_id"`
	// Name is the unique screen name (e.g., "Manage Job", "Work Type").
	Name string `gorm:"column:name;unique;size:100;not null" json:"name"`
	// CreatedAt is the timestamp when the screen was created (managed by GORM).
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is the timestamp when the screen was last updated (managed by GORM).
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the database table name for the Screen model.
func (Screen) TableName() string {
	return "screens"
}

// BeforeCreate assigns a UUID primary key when none was supplied.
func (s *Screen) BeforeCreate(_ *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}

	return nil
}
