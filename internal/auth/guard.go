package auth

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/fieldops/fieldops/internal/db/models"
)

// Action is one of the four permission flags grantable on a screen.
type Action string

const (
	// ActionView guards list and get-one.
	ActionView Action = "view"
	// ActionAdd guards create.
	ActionAdd Action = "add"
	// ActionEdit guards update.
	ActionEdit Action = "edit"
	// ActionDelete guards delete.
	ActionDelete Action = "delete"
)

// DeniedError carries the caller-facing reason for a refused authorization.
type DeniedError struct {
	Reason string
}

func (e *DeniedError) Error() string {
	return e.Reason
}

// Guard resolves screen permissions for principals. It is a read-only lookup
// service; the super-tenant role always passes.
type Guard struct {
	db *gorm.DB
}

// NewGuard creates a permission guard backed by the given database.
func NewGuard(db *gorm.DB) *Guard {
	return &Guard{db: db}
}

// Authorize decides whether the principal may perform action on the named
// screen. It fails closed: any lookup failure is a denial, never a pass.
func (g *Guard) Authorize(p *Principal, screenName string, action Action) error {
	if p.IsSuperAdmin() {
		return nil
	}

	var screen models.Screen
	if err := g.db.Where("name = ?", screenName).First(&screen).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Error().Err(err).Str("screen", screenName).Msg("screen lookup failed, denying")
		}

		return &DeniedError{Reason: fmt.Sprintf("Forbidden: screen '%s' not found", screenName)}
	}

	var perm models.RoleScreenPermission

	err := g.db.Where("role_id = ? AND screen_id = ?", p.RoleID, screen.ID).First(&perm).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Error().Err(err).Str("screen", screenName).Msg("permission lookup failed, denying")
		}

		return &DeniedError{Reason: fmt.Sprintf("Forbidden: no permission for '%s'", screenName)}
	}

	allowed := false

	switch action {
	case ActionView:
		allowed = perm.CanView
	case ActionAdd:
		allowed = perm.CanAdd
	case ActionEdit:
		allowed = perm.CanEdit
	case ActionDelete:
		allowed = perm.CanDelete
	}

	if !allowed {
		return &DeniedError{Reason: fmt.Sprintf("Forbidden: lacks %s on '%s'", action, screenName)}
	}

	return nil
}

// Require creates a Fiber middleware enforcing the given screen action. It
// must run before any data access or mutation of the guarded handler.
func (g *Guard) Require(screenName string, action Action) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal := FromContext(c)
		if principal == nil {
			return Unauthenticated(c)
		}

		if err := g.Authorize(principal, screenName, action); err != nil {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": err.Error()})
		}

		return c.Next()
	}
}
