package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Company is a tenant: the organizational owner of vendors, users, clients,
// jobs and the per-company master data. Companies themselves are global
// records managed only by the super-tenant role.
type Company struct {
	ID         uuid.UUID  `gorm:"column:company_id;primaryKey;size:36" json:"company_id"`
	Logo       string     `gorm:"column:logo;size:255" json:"logo"`
	Name       string     `gorm:"column:name;size:255;not null" json:"name"`
	GST        string     `gorm:"column:gst;size:32" json:"gst"`
	Email      string     `gorm:"column:email;unique;size:255;not null" json:"email" validate:"omitempty,email"`
	Phone      string     `gorm:"column:phone;unique;size:32;not null" json:"phone"`
	Address1   string     `gorm:"column:address_1;size:255" json:"address_1"`
	CountryID  *int       `gorm:"column:country_id" json:"country_id"`
	StateID    *uuid.UUID `gorm:"column:state_id;size:36" json:"state_id"`
	City       string     `gorm:"column:city;size:100" json:"city"`
	PostalCode string     `gorm:"column:postal_code;size:16" json:"postal_code"`
	Lat        *float64   `gorm:"column:lat" json:"lat"`
	Lng        *float64   `gorm:"column:lng" json:"lng"`

	// Subscription bookkeeping, maintained by the super-tenant.
	SubscriptionID      *uuid.UUID `gorm:"column:subscription_id;size:36" json:"subscription_id"`
	NoOfUsers           int        `gorm:"column:no_of_users;default:0" json:"no_of_users"`
	SubscriptionStart   *time.Time `gorm:"column:subscription_start_date" json:"subscription_start_date"`
	SubscriptionEnd     *time.Time `gorm:"column:subscription_end_date" json:"subscription_end_date"`
	AmountPerUser       *float64   `gorm:"column:subscription_amount_per_user" json:"subscription_amount_per_user"`
	Remarks             string     `gorm:"column:remarks;type:text" json:"remarks"`
	ThemeColor          string     `gorm:"column:theme_color;size:32" json:"theme_color"`
	Status              bool       `gorm:"column:status;default:true" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the database table name for the Company model.
func (Company) TableName() string {
	return "companies"
}

// BeforeCreate assigns a UUID primary key when none was supplied.
func (c *Company) BeforeCreate(_ *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	return nil
}
