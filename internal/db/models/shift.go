package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Shift is a per-company working window assigned to technicians.
type Shift struct {
	ID          uuid.UUID  `gorm:"column:shift_id;primaryKey;size:36" json:"shift_id"`
	CompanyID   *uuid.UUID `gorm:"column:company_id;size:36;not null;uniqueIndex:idx_company_shift" json:"company_id"`
	Name        string     `gorm:"column:shift_name;size:255;not null;uniqueIndex:idx_company_shift" json:"shift_name"`
	Description string     `gorm:"column:description;size:255" json:"description"`
	StartTime   string     `gorm:"column:shift_start_time;size:16;uniqueIndex:idx_company_shift" json:"shift_start_time"`
	EndTime     string     `gorm:"column:shift_end_time;size:16;uniqueIndex:idx_company_shift" json:"shift_end_time"`
	Status      bool       `gorm:"column:status;default:true" json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TableName specifies the database table name for the Shift model.
func (Shift) TableName() string {
	return "shifts"
}

// BeforeCreate assigns a UUID primary key when none was supplied.
func (s *Shift) BeforeCreate(_ *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}

	return nil
}
