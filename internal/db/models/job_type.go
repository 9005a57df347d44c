package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JobType is a per-company master refining a WorkType (e.g., "Installation"
// under "AC Repair"). Names are unique within a company and work type.
type JobType struct {
	ID          uuid.UUID  `gorm:"column:jobtype_id;primaryKey;size:36" json:"jobtype_id"`
	CompanyID   *uuid.UUID `gorm:"column:company_id;size:36;not null;uniqueIndex:idx_company_jobtype" json:"company_id"`
	WorkTypeID  *uuid.UUID `gorm:"column:worktype_id;size:36;uniqueIndex:idx_company_jobtype" json:"worktype_id"`
	Name        string     `gorm:"column:jobtype_name;size:255;not null;uniqueIndex:idx_company_jobtype" json:"jobtype_name"`
	Description string     `gorm:"column:description;size:255" json:"description"`
	Status      bool       `gorm:"column:status;default:true" json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TableName specifies the database table name for the JobType model.
func (JobType) TableName() string {
	return "job_types"
}

// BeforeCreate assigns a UUID primary key when none was supplied.
func (j *JobType) BeforeCreate(_ *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}

	return nil
}
