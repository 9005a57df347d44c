package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Global (non tenant-scoped) master data shared by all companies.

// NatureOfWork classifies a job site visit (e.g., "Preventive Maintenance").
type NatureOfWork struct {
	ID        uuid.UUID `gorm:"column:now_id;primaryKey;size:36" json:"now_id"`
	Name      string    `gorm:"column:now_name;unique;size:255;not null" json:"now_name"`
	Status    bool      `gorm:"column:now_status;default:true" json:"now_status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (NatureOfWork) TableName() string { return "nature_of_works" }

// BeforeCreate assigns a UUID primary key when none was supplied.
func (n *NatureOfWork) BeforeCreate(_ *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}

	return nil
}

// JobStatus is one entry of the job workflow vocabulary. The workflow itself
// (transitions, history) lives outside this service; here they are plain
// master records.
type JobStatus struct {
	ID        uuid.UUID `gorm:"column:job_status_id;primaryKey;size:36" json:"job_status_id"`
	Title     string    `gorm:"column:job_status_title;unique;size:255;not null" json:"job_status_title"`
	ColorCode string    `gorm:"column:job_status_color_code;size:16" json:"job_status_color_code"`
	Order     int       `gorm:"column:job_status_order;default:0" json:"job_status_order"`
	Status    bool      `gorm:"column:status;default:true" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (JobStatus) TableName() string { return "job_statuses" }

// BeforeCreate assigns a UUID primary key when none was supplied.
func (j *JobStatus) BeforeCreate(_ *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}

	return nil
}

// SubscriptionType is a billing plan a company can subscribe to.
type SubscriptionType struct {
	ID        uuid.UUID `gorm:"column:subscription_id;primaryKey;size:36" json:"subscription_id"`
	Title     string    `gorm:"column:subscription_title;unique;size:255;not null" json:"subscription_title"`
	Status    bool      `gorm:"column:subscription_status;default:true" json:"subscription_status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (SubscriptionType) TableName() string { return "subscription_types" }

// BeforeCreate assigns a UUID primary key when none was supplied.
func (s *SubscriptionType) BeforeCreate(_ *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}

	return nil
}

// BusinessType classifies a client (e.g., "Retail", "Industrial").
type BusinessType struct {
	ID        uuid.UUID `gorm:"column:business_type_id;primaryKey;size:36" json:"business_type_id"`
	Name      string    `gorm:"column:business_type_name;unique;size:255;not null" json:"business_type_name"`
	Status    bool      `gorm:"column:status;default:true" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (BusinessType) TableName() string { return "business_types" }

// BeforeCreate assigns a UUID primary key when none was supplied.
func (b *BusinessType) BeforeCreate(_ *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}

	return nil
}
