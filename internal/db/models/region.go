package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Region is a per-company service area described by a set of pincodes.
// A pincode may belong to at most one region; the regions policy enforces
// that before create and update.
type Region struct {
	ID         uuid.UUID  `gorm:"column:region_id;primaryKey;size:36" json:"region_id"`
	CompanyID  *uuid.UUID `gorm:"column:company_id;size:36;not null;uniqueIndex:idx_company_region" json:"company_id"`
	Name       string     `gorm:"column:region_name;size:255;not null;uniqueIndex:idx_company_region" json:"region_name"`
	CountryID  *int       `gorm:"column:country_id" json:"country_id"`
	StateID    *uuid.UUID `gorm:"column:state_id;size:36" json:"state_id"`
	DistrictID *uuid.UUID `gorm:"column:district_id;size:36" json:"district_id"`
	Pincodes   []string   `gorm:"column:pincodes;serializer:json;type:text" json:"pincodes"`
	Status     bool       `gorm:"column:status;default:true" json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// TableName specifies the database table name for the Region model.
func (Region) TableName() string {
	return "regions"
}

// BeforeCreate assigns a UUID primary key when none was supplied.
func (r *Region) BeforeCreate(_ *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}

	return nil
}
