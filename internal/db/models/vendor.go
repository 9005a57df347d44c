package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Vendor is a contractor organization working for a company. Supervisors and
// technicians are attached to a vendor of the same company.
type Vendor struct {
	ID         uuid.UUID  `gorm:"column:vendor_id;primaryKey;size:36" json:"vendor_id"`
	CompanyID  *uuid.UUID `gorm:"column:company_id;size:36;index;not null" json:"company_id"`
	Name       string     `gorm:"column:vendor_name;size:255;not null" json:"vendor_name"`
	Email      string     `gorm:"column:email;size:255" json:"email" validate:"omitempty,email"`
	Phone      string     `gorm:"column:phone;size:32" json:"phone"`
	Address1   string     `gorm:"column:address_1;size:255" json:"address_1"`
	City       string     `gorm:"column:city;size:100" json:"city"`
	PostalCode string     `gorm:"column:postal_code;size:16" json:"postal_code"`
	CountryID  *int       `gorm:"column:country_id" json:"country_id"`
	StateID    *uuid.UUID `gorm:"column:state_id;size:36" json:"state_id"`
	RegionID   *uuid.UUID `gorm:"column:region_id;size:36" json:"region_id"`
	Status     bool       `gorm:"column:status;default:true" json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// TableName specifies the database table name for the Vendor model.
func (Vendor) TableName() string {
	return "vendors"
}

// BeforeCreate assigns a UUID primary key when none was supplied.
func (v *Vendor) BeforeCreate(_ *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}

	return nil
}
