package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Client is an end customer of a company, the party a job is performed for.
type Client struct {
	ID              uuid.UUID  `gorm:"column:client_id;primaryKey;size:36" json:"client_id"`
	CompanyID       *uuid.UUID `gorm:"column:company_id;size:36;index;not null" json:"company_id"`
	FirstName       string     `gorm:"column:first_name;size:100;not null" json:"first_name"`
	LastName        string     `gorm:"column:last_name;size:100" json:"last_name"`
	Email           string     `gorm:"column:email;size:255" json:"email" validate:"omitempty,email"`
	Phone           string     `gorm:"column:phone;size:32" json:"phone"`
	Address1        string     `gorm:"column:address_1;size:255" json:"address_1"`
	City            string     `gorm:"column:city;size:100" json:"city"`
	PostalCode      string     `gorm:"column:postal_code;size:16" json:"postal_code"`
	CountryID       *int       `gorm:"column:country_id" json:"country_id"`
	StateID         *uuid.UUID `gorm:"column:state_id;size:36" json:"state_id"`
	BusinessTypeID  *uuid.UUID `gorm:"column:business_type_id;size:36" json:"business_type_id"`
	AvailableStatus bool       `gorm:"column:available_status;default:true" json:"available_status"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// TableName specifies the database table name for the Client model.
func (Client) TableName() string {
	return "clients"
}

// BeforeCreate assigns a UUID primary key when none was supplied.
func (c *Client) BeforeCreate(_ *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	return nil
}
