package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkType is a per-company master describing a category of field work
// (e.g., "AC Repair"). Names are unique within a company.
type WorkType struct {
	ID          uuid.UUID  `gorm:"column:worktype_id;primaryKey;size:36" json:"worktype_id"`
	CompanyID   *uuid.UUID `gorm:"column:company_id;size:36;not null;uniqueIndex:idx_company_worktype" json:"company_id"`
	Name        string     `gorm:"column:worktype_name;size:255;not null;uniqueIndex:idx_company_worktype" json:"worktype_name"`
	Description string     `gorm:"column:worktype_description;size:255" json:"worktype_description"`
	Status      bool       `gorm:"column:status;default:true" json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TableName specifies the database table name for the WorkType model.
func (WorkType) TableName() string {
	return "work_types"
}

// BeforeCreate assigns a UUID primary key when none was supplied.
func (w *WorkType) BeforeCreate(_ *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}

	return nil
}
