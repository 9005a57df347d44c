// Package login serves token issuance: the one unauthenticated API route.
package login

import (
	stderrors "errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/fieldops/fieldops/internal/auth"
	"github.com/fieldops/fieldops/internal/config"
	"github.com/fieldops/fieldops/internal/db/models"
)

// Service is the login handler service.
type Service struct {
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the login handler.
var Handler = Service{}

// Init registers the login route.
func (s *Service) Init(router fiber.Router, cfg *config.Config, db *gorm.DB, guard *auth.Guard) error {
	if router == nil || cfg == nil || db == nil || guard == nil {
		return errors.New("router, cfg, db or guard is nil")
	}

	s.cfg = cfg
	s.db = db

	router.Post("/login", s.login)

	return nil
}

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// permissionView is one entry of the per-screen permission list returned
// with the token.
type permissionView struct {
	Screen string `json:"screen"`
	View   bool   `json:"view"`
	Add    bool   `json:"add"`
	Edit   bool   `json:"edit"`
	Delete bool   `json:"delete"`
}

// login verifies email and password and responds with a signed access token,
// the account profile and the role's screen permissions.
func (s *Service) login(c *fiber.Ctx) error {
	var body loginBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid JSON body"})
	}

	email := strings.ToLower(strings.TrimSpace(body.Email))
	if email == "" || body.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "email & password required"})
	}

	db := s.db.WithContext(c.UserContext())

	var user models.User

	err := db.Where("LOWER(email) = ?", email).First(&user).Error
	if err != nil {
		if !stderrors.Is(err, gorm.ErrRecordNotFound) {
			log.Error().Err(err).Msg("failed to look up login account")
		}

		return invalidCredentials(c)
	}

	if !user.Status || !user.VerifyPassword(body.Password) {
		return invalidCredentials(c)
	}

	var role models.Role

	if err = db.Where(map[string]any{"role_id": user.RoleID}).First(&role).Error; err != nil {
		log.Error().Err(err).Str("role_id", user.RoleID.String()).Msg("login account has no role")

		return invalidCredentials(c)
	}

	ttl := time.Duration(s.cfg.Auth.TokenTTLMinutes) * time.Minute

	token, err := auth.IssueToken(s.cfg.Auth.JWTSecret, ttl, &user, &role)
	if err != nil {
		log.Error().Err(err).Msg("failed to issue access token")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal Server Error"})
	}

	permissions, err := s.screenPermissions(c, role.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to load screen permissions")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal Server Error"})
	}

	user.Password = "" // never echo the hash

	return c.JSON(fiber.Map{
		"token": token,
		"user": fiber.Map{
			"role": fiber.Map{
				"id":   role.ID,
				"name": role.Name,
				"slug": role.Slug,
			},
			"company_id": user.CompanyID,
			"profile":    user,
		},
		"permissions": permissions,
	})
}

// screenPermissions resolves the role's permission rows into the flat
// per-screen list the UI consumes.
func (s *Service) screenPermissions(c *fiber.Ctx, roleID any) ([]permissionView, error) {
	db := s.db.WithContext(c.UserContext())

	var perms []models.RoleScreenPermission

	err := db.Preload("Screen").Where(map[string]any{"role_id": roleID}).Find(&perms).Error
	if err != nil {
		return nil, err
	}

	views := make([]permissionView, 0, len(perms))

	for _, p := range perms {
		views = append(views, permissionView{
			Screen: p.Screen.Name,
			View:   p.CanView,
			Add:    p.CanAdd,
			Edit:   p.CanEdit,
			Delete: p.CanDelete,
		})
	}

	return views, nil
}

func invalidCredentials(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid credentials"})
}
