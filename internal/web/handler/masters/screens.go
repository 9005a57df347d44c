package masters

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/fieldops/fieldops/internal/db/models"
)

// permissionBody is the payload of the role-screen permission upsert.
// Absent flags default to false so a PUT always states the full set.
type permissionBody struct {
	CanView   bool `json:"can_view"`
	CanAdd    bool `json:"can_add"`
	CanEdit   bool `json:"can_edit"`
	CanDelete bool `json:"can_delete"`
}

// listScreens returns every permission screen, name ascending.
func (s *Service) listScreens(c *fiber.Ctx) error {
	var screens []models.Screen

	err := s.db.WithContext(c.UserContext()).Order("name ASC").Find(&screens).Error
	if err != nil {
		log.Error().Err(err).Msg("failed to list screens")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal Server Error"})
	}

	return c.JSON(screens)
}

// upsertPermission sets the full permission flag set of one role on one
// screen, creating the row when it does not exist yet.
func (s *Service) upsertPermission(c *fiber.Ctx) error {
	roleID, err := uuid.Parse(c.Params("role_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid role_id"})
	}

	screenID, err := uuid.Parse(c.Params("screen_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid screen_id"})
	}

	var body permissionBody
	if err = c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid JSON body"})
	}

	db := s.db.WithContext(c.UserContext())

	var perm models.RoleScreenPermission

	err = db.Where(map[string]any{"role_id": roleID, "screen_id": screenID}).First(&perm).Error

	switch {
	case err == nil:
	case errors.Is(err, gorm.ErrRecordNotFound):
		perm = models.RoleScreenPermission{RoleID: roleID, ScreenID: screenID}
	default:
		log.Error().Err(err).Msg("failed to load role screen permission")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal Server Error"})
	}

	perm.CanView = body.CanView
	perm.CanAdd = body.CanAdd
	perm.CanEdit = body.CanEdit
	perm.CanDelete = body.CanDelete

	if err = db.Save(&perm).Error; err != nil {
		log.Error().Err(err).Msg("failed to save role screen permission")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal Server Error"})
	}

	return c.JSON(perm)
}
