// Package auth implements bearer-token principal resolution and the screen
// permission guard used by every resource route.
package auth

import (
	"github.com/google/uuid"

	"github.com/fieldops/fieldops/internal/db/models"
)

// Principal is the authenticated caller, constructed once per request from a
// verified token and immutable for the request's duration.
type Principal struct {
	// ID is the user id carried in the token subject.
	ID uuid.UUID `json:"id"`
	// RoleID is the id of the caller's role.
	RoleID uuid.UUID `json:"role_id"`
	// RoleSlug is the machine tag of the caller's role.
	RoleSlug string `json:"role_slug"`
	// CompanyID is the owning tenant. Nil only for the super-tenant role.
	CompanyID *uuid.UUID `json:"company_id"`
}

// IsSuperAdmin reports whether the principal holds the super-tenant role.
func (p *Principal) IsSuperAdmin() bool {
	return p != nil && p.RoleSlug == models.RoleSuperAdmin
}
