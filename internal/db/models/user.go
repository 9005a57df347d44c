package models

import (
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// User represents a person working under a company: an admin, a vendor
// contact, a supervisor or a technician. The RoleID decides which screens
// the user may touch; CompanyID is nil only for super-tenant accounts.
type User struct {
	ID        uuid.UUID  `gorm:"column:user_id;primaryKey;size:36" json:"user_id"`
	CompanyID *uuid.UUID `gorm:"column:company_id;size:36;index" json:"company_id"`
	Name      string     `gorm:"column:name;size:255;not null" json:"name"`
	Email     string     `gorm:"column:email;unique;size:255;not null" json:"email" validate:"omitempty,email"`
	Phone     string     `gorm:"column:phone;size:32" json:"phone"`
	// Password holds the Argon2id hash. It is accepted in plaintext on
	// create/update bodies and hashed before persisting.
	Password     string     `gorm:"column:password;size:255" json:"password,omitempty"`
	RoleID       uuid.UUID  `gorm:"column:role_id;size:36;not null" json:"role_id"`
	VendorID     *uuid.UUID `gorm:"column:vendor_id;size:36" json:"vendor_id"`
	ShiftID      *uuid.UUID `gorm:"column:shift_id;size:36" json:"shift_id"`
	RegionID     *uuid.UUID `gorm:"column:region_id;size:36" json:"region_id"`
	SupervisorID *uuid.UUID `gorm:"column:supervisor_id;size:36" json:"supervisor_id"`
	City         string     `gorm:"column:city;size:100" json:"city"`
	Address1     string     `gorm:"column:address_1;size:255" json:"address_1"`
	PostalCode   string     `gorm:"column:postal_code;size:16" json:"postal_code"`
	Status       bool       `gorm:"column:status;default:true" json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// TableName specifies the database table name for the User model.
func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns a UUID primary key when none was supplied.
func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}

	return nil
}

// HashPassword hashes a plaintext password using the Argon2id algorithm.
func HashPassword(password string) string {
	hashedPassword, err := argon2id.CreateHash(password, argon2id.DefaultParams)
	if err != nil {
		log.Fatal().Msgf("failed to hash password: %v", err)
	}

	return hashedPassword
}

// VerifyPassword verifies a plaintext password against the user's stored
// hashed password using constant-time comparison.
func (u *User) VerifyPassword(password string) bool {
	match, err := argon2id.ComparePasswordAndHash(password, u.Password)
	if err != nil {
		log.Error().Msgf("failed to verify password: %v", err)
		return false
	}

	return match
}
