// Package crud implements the generic resource router: five uniform,
// permission-guarded, tenant-scoped endpoints per registered entity type,
// with per-resource policies as the only extension point.
package crud

import (
	"encoding/json"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/fieldops/fieldops/internal/auth"
	"github.com/fieldops/fieldops/internal/db/dberr"
)

// ListResponse is the envelope returned by every list endpoint.
type ListResponse[T any] struct {
	Data  []T   `json:"data"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// scoped returns a request-scoped query restricted to the caller's tenant.
func (h *handler[T]) scoped(c *fiber.Ctx, p *auth.Principal) *gorm.DB {
	return h.db.WithContext(c.UserContext()).
		Scopes(TenantScope(p, h.res.TenantScoped))
}

func (h *handler[T]) list(c *fiber.Ctx) error {
	principal := auth.FromContext(c)
	lq := ParseListQuery(c)

	filter := BuildFilter(c, h.res.SearchFields, h.res.ExactFields, h.res.StatusField)

	extra, err := h.policy.ListScope(h.policyContext(c, principal))
	if err != nil {
		return h.fail(c, err)
	}

	base := h.db.WithContext(c.UserContext()).
		Model(new(T)).
		Scopes(filter, TenantScope(principal, h.res.TenantScoped))
	if extra != nil {
		base = base.Scopes(extra)
	}

	base = base.Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return h.fail(c, err)
	}

	rows := make([]T, 0, lq.Limit)

	err = base.
		Order(h.sortColumn(lq.SortBy) + " " + lq.Order).
		Limit(lq.Limit).
		Offset(lq.Offset).
		Find(&rows).Error
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(ListResponse[T]{Data: rows, Page: lq.Page, Limit: lq.Limit, Total: total})
}

// getOne responds 404 both for truly absent rows and for rows owned by
// another tenant, so tenant existence cannot be probed.
func (h *handler[T]) getOne(c *fiber.Ctx) error {
	principal := auth.FromContext(c)

	row := new(T)
	if err := h.scoped(c, principal).Where(h.pk+" = ?", c.Params("id")).First(row).Error; err != nil {
		return h.fail(c, err)
	}

	return c.JSON(row)
}

func (h *handler[T]) create(c *fiber.Ctx) error {
	principal := auth.FromContext(c)

	body, err := parseBody(c)
	if err != nil {
		return h.fail(c, err)
	}

	if err := EnforceOwnership(principal, h.res.TenantScoped, body, OpCreate); err != nil {
		return h.fail(c, err)
	}

	h.policy.Normalize(body, OpCreate)

	pctx := h.policyContext(c, principal)
	if err := h.policy.PreCreate(pctx, body); err != nil {
		return h.hookFail(c, err)
	}

	entity, err := h.decode(body)
	if err != nil {
		return h.fail(c, err)
	}

	if err := h.validateEntity(entity); err != nil {
		return h.fail(c, err)
	}

	if err := h.db.WithContext(c.UserContext()).Create(entity).Error; err != nil {
		if dberr.IsDuplicate(err) {
			// Idempotent POST: recover the row the conflict points at when
			// the resource declares a duplicate lookup.
			if where := h.policy.DuplicateWhere(pctx, body); where != nil {
				existing := new(T)
				if ferr := h.db.WithContext(c.UserContext()).Where(where).First(existing).Error; ferr == nil {
					return c.JSON(existing)
				}
			}

			return respond(c, fiber.StatusConflict, h.name+" already exists")
		}

		return h.fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(entity)
}

func (h *handler[T]) update(c *fiber.Ctx) error {
	principal := auth.FromContext(c)

	row := new(T)
	if err := h.scoped(c, principal).Where(h.pk+" = ?", c.Params("id")).First(row).Error; err != nil {
		return h.fail(c, err)
	}

	body, err := parseBody(c)
	if err != nil {
		return h.fail(c, err)
	}

	if err := EnforceOwnership(principal, h.res.TenantScoped, body, OpUpdate); err != nil {
		return h.fail(c, err)
	}

	h.policy.Normalize(body, OpUpdate)

	if err := h.policy.PreUpdate(h.policyContext(c, principal), body, row); err != nil {
		return h.hookFail(c, err)
	}

	columns := h.updatableColumns(body)
	if len(columns) > 0 {
		values, err := h.decode(body)
		if err != nil {
			return h.fail(c, err)
		}

		err = h.db.WithContext(c.UserContext()).
			Model(row).
			Select(columns).
			Updates(values).Error
		if err != nil {
			if dberr.IsDuplicate(err) {
				return respond(c, fiber.StatusConflict, h.name+" already exists")
			}

			return h.fail(c, err)
		}

		// Re-read so the response reflects exactly what was persisted.
		if err := h.scoped(c, principal).Where(h.pk+" = ?", c.Params("id")).First(row).Error; err != nil {
			return h.fail(c, err)
		}
	}

	return c.JSON(row)
}

func (h *handler[T]) delete(c *fiber.Ctx) error {
	principal := auth.FromContext(c)

	row := new(T)
	if err := h.scoped(c, principal).Where(h.pk+" = ?", c.Params("id")).First(row).Error; err != nil {
		return h.fail(c, err)
	}

	if err := h.db.WithContext(c.UserContext()).Delete(row).Error; err != nil {
		if dberr.IsForeignKey(err) {
			return respond(c, fiber.StatusConflict, "Cannot delete: record is referenced by other data")
		}

		return h.fail(c, err)
	}

	return respond(c, fiber.StatusOK, "Deleted")
}

// parseBody reads the JSON request body into a mutable map. An empty body is
// an empty map; required-field enforcement is left to validation and the
// storage constraints.
func parseBody(c *fiber.Ctx) (map[string]any, error) {
	body := make(map[string]any)

	raw := c.Body()
	if len(raw) == 0 {
		return body, nil
	}

	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, BadRequestf("Invalid JSON body")
	}

	return body, nil
}

// updatableColumns filters the body down to real model columns, minus the
// primary key and the tenant key, which are immutable.
func (h *handler[T]) updatableColumns(body map[string]any) []string {
	columns := make([]string, 0, len(body))

	for name := range body {
		if name == h.pk || name == TenantColumn {
			continue
		}

		if h.columns[name] {
			columns = append(columns, name)
		}
	}

	return columns
}

// decode materializes the hook-normalized body into the typed model. Going
// through JSON keeps the coercion rules identical to a direct bind.
func (h *handler[T]) decode(body map[string]any) (*T, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, BadRequestf("Invalid JSON body")
	}

	entity := new(T)
	if err := json.Unmarshal(raw, entity); err != nil {
		return nil, BadRequestf("Invalid value for field type")
	}

	return entity, nil
}

// validateEntity runs struct-tag validation, mapping failures to per-field
// messages.
func (h *handler[T]) validateEntity(entity *T) error {
	err := h.validate.Struct(entity)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return BadRequestf("Validation error")
	}

	fields := make(map[string]string, len(verrs))
	for _, ve := range verrs {
		fields[ve.Field()] = fieldMessage(ve.Field(), ve.Tag())
	}

	return &Error{
		Status:  fiber.StatusBadRequest,
		Message: "Validation error",
		Fields:  fields,
	}
}

// hookFail maps a policy hook error to a response: a *Error keeps its
// status, anything else is a business-rule rejection defaulting to 400.
func (h *handler[T]) hookFail(c *fiber.Ctx, err error) error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return h.fail(c, appErr)
	}

	if kind, _ := dberr.Classify(err); kind != dberr.KindOther {
		return h.fail(c, err)
	}

	return respond(c, fiber.StatusBadRequest, err.Error())
}

// fail translates any pipeline error into the stable error envelope. Storage
// errors go through the dberr translator exactly once, here.
func (h *handler[T]) fail(c *fiber.Ctx, err error) error {
	var appErr *Error
	if errors.As(err, &appErr) {
		resp := fiber.Map{"message": appErr.Message}
		if len(appErr.Fields) > 0 {
			resp["errors"] = appErr.Fields
		}

		return c.Status(appErr.Status).JSON(resp)
	}

	kind, field := dberr.Classify(err)

	switch kind {
	case dberr.KindNotFound:
		return respond(c, fiber.StatusNotFound, "Not found")
	case dberr.KindDuplicate:
		return respond(c, fiber.StatusConflict, h.name+" already exists")
	case dberr.KindForeignKey:
		return respond(c, fiber.StatusConflict, "Operation violates a foreign key constraint")
	case dberr.KindNotNull:
		if field == "" {
			field = "field"
		}

		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": titleCase(field) + " is required",
			"field":   field,
		})
	case dberr.KindInvalidValue:
		return respond(c, fiber.StatusBadRequest, "Invalid value for field type")
	case dberr.KindOutOfRange:
		return respond(c, fiber.StatusBadRequest, "Numeric value out of range")
	}

	log.Error().Err(err).Str("resource", h.name).Msg("unhandled storage error")

	return respond(c, fiber.StatusInternalServerError, "Internal Server Error")
}

func respond(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"message": message})
}
