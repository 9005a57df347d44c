package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Geographic reference data. Global, writable only by the super-tenant role.

// Country uses the international dialing code as its stable primary key
// (e.g., 91 for India), so it is never auto-generated.
type Country struct {
	ID        int       `gorm:"column:country_id;primaryKey;autoIncrement:false" json:"country_id"`
	Name      string    `gorm:"column:country_name;size:100;not null" json:"country_name"`
	Code      string    `gorm:"column:country_code;size:8" json:"country_code"`
	Status    bool      `gorm:"column:country_status;default:true" json:"country_status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Country) TableName() string { return "countries" }

// State is a first-level administrative division of a country.
type State struct {
	ID        uuid.UUID `gorm:"column:state_id;primaryKey;size:36" json:"state_id"`
	CountryID int       `gorm:"column:country_id;not null" json:"country_id"`
	Name      string    `gorm:"column:state_name;size:100;not null" json:"state_name"`
	Status    bool      `gorm:"column:state_status;default:true" json:"state_status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (State) TableName() string { return "states" }

// BeforeCreate assigns a UUID primary key when none was supplied.
func (s *State) BeforeCreate(_ *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}

	return nil
}

// District is a second-level administrative division of a state.
type District struct {
	ID        uuid.UUID  `gorm:"column:district_id;primaryKey;size:36" json:"district_id"`
	CountryID int        `gorm:"column:country_id;not null" json:"country_id"`
	StateID   *uuid.UUID `gorm:"column:state_id;size:36" json:"state_id"`
	Name      string     `gorm:"column:district_name;size:100;not null" json:"district_name"`
	Status    bool       `gorm:"column:district_status;default:true" json:"district_status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (District) TableName() string { return "districts" }

// BeforeCreate assigns a UUID primary key when none was supplied.
func (d *District) BeforeCreate(_ *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}

	return nil
}

// Pincode is a postal code mapped to its country/state/district.
type Pincode struct {
	ID         uuid.UUID  `gorm:"column:pincode_id;primaryKey;size:36" json:"pincode_id"`
	CountryID  int        `gorm:"column:country_id;not null;uniqueIndex:idx_country_pincode" json:"country_id"`
	StateID    *uuid.UUID `gorm:"column:state_id;size:36" json:"state_id"`
	DistrictID *uuid.UUID `gorm:"column:district_id;size:36" json:"district_id"`
	Pincode    string     `gorm:"column:pincode;size:16;not null;uniqueIndex:idx_country_pincode" json:"pincode"`
	Lat        *float64   `gorm:"column:lat" json:"lat"`
	Lng        *float64   `gorm:"column:lng" json:"lng"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (Pincode) TableName() string { return "pincodes" }

// BeforeCreate assigns a UUID primary key when none was supplied.
func (p *Pincode) BeforeCreate(_ *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	return nil
}
