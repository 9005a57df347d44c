package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Job is a unit of field work scheduled for a client. The status workflow
// (transition rules, history, summary counts) is handled by a separate
// business layer; this service only stores and lists job records.
type Job struct {
	ID        uuid.UUID  `gorm:"column:job_id;primaryKey;size:36" json:"job_id"`
	JobNo     int64      `gorm:"column:job_no;unique;autoIncrement" json:"job_no"`
	CompanyID *uuid.UUID `gorm:"column:company_id;size:36;index;not null" json:"company_id"`
	ClientID  uuid.UUID  `gorm:"column:client_id;size:36;not null" json:"client_id"`
	// ReferenceNumber is the caller-facing job identifier. Generated when the
	// create body does not carry one.
	ReferenceNumber  string     `gorm:"column:reference_number;unique;size:64;not null" json:"reference_number"`
	WorkTypeID       *uuid.UUID `gorm:"column:worktype_id;size:36" json:"worktype_id"`
	JobTypeID        *uuid.UUID `gorm:"column:jobtype_id;size:36" json:"jobtype_id"`
	Description      string     `gorm:"column:job_description;type:text" json:"job_description"`
	EstimatedMinutes int        `gorm:"column:estimated_duration;default:0" json:"estimated_duration"`
	ScheduledAt      *time.Time `gorm:"column:scheduled_at" json:"scheduled_at"`
	SupervisorID     *uuid.UUID `gorm:"column:supervisor_id;size:36" json:"supervisor_id"`
	TechnicianID     *uuid.UUID `gorm:"column:technician_id;size:36" json:"technician_id"`
	NatureOfWorkID   *uuid.UUID `gorm:"column:now_id;size:36" json:"now_id"`
	JobStatusID      *uuid.UUID `gorm:"column:job_status_id;size:36" json:"job_status_id"`
	JobAssigned      bool       `gorm:"column:job_assigned;default:false" json:"job_assigned"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// TableName specifies the database table name for the Job model.
func (Job) TableName() string {
	return "jobs"
}

// BeforeCreate assigns a UUID primary key when none was supplied.
func (j *Job) BeforeCreate(_ *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}

	return nil
}

// All returns one instance of every model for schema migration.
func All() []any {
	return []any{
		&Role{}, &Screen{}, &RoleScreenPermission{},
		&Company{}, &User{}, &Vendor{}, &Client{},
		&WorkType{}, &JobType{}, &Region{}, &Shift{},
		&NatureOfWork{}, &JobStatus{}, &SubscriptionType{}, &BusinessType{},
		&Country{}, &State{}, &District{}, &Pincode{},
		&Job{},
	}
}
