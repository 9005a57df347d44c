package crud

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"github.com/fieldops/fieldops/internal/auth"
)

// Resource is the static per-entity configuration driving the generic
// router. One Resource is built per entity type at startup and shared,
// immutable, across all requests.
type Resource[T any] struct {
	// Screen is the permission namespace guarding all five operations.
	Screen string
	// SearchFields are the columns eligible for fuzzy ?searchParam matching.
	SearchFields []string
	// ExactFields are the columns eligible for exact-match query filtering.
	ExactFields []string
	// StatusField is the boolean status column, "status" when empty.
	StatusField string
	// TenantScoped enables company scoping and write ownership enforcement.
	TenantScoped bool
	// Policy holds the resource's business hooks, nil for none.
	Policy Policy
}

// handler serves the five uniform endpoints for one registered resource.
type handler[T any] struct {
	db       *gorm.DB
	res      Resource[T]
	policy   Policy
	validate *validator.Validate

	// derived once from the model schema at registration
	name    string
	pk      string
	columns map[string]bool
}

// Register wires the five CRUD endpoints for the resource onto the router
// group, each guarded by the screen action it implements. The model schema
// is parsed once here; sortable and updatable columns are validated against
// it at request time.
func Register[T any](router fiber.Router, db *gorm.DB, guard *auth.Guard, res Resource[T]) error {
	if res.Screen == "" {
		return errors.New("crud: screen is required")
	}

	sch, err := schema.Parse(new(T), &sync.Map{}, db.NamingStrategy)
	if err != nil {
		return errors.Wrap(err, "crud: failed to parse model schema")
	}

	if sch.PrioritizedPrimaryField == nil {
		return errors.Errorf("crud: model %s has no primary key", sch.Name)
	}

	if res.StatusField == "" {
		res.StatusField = "status"
	}

	policy := res.Policy
	if policy == nil {
		policy = BasePolicy{}
	}

	columns := make(map[string]bool, len(sch.DBNames))
	for _, name := range sch.DBNames {
		columns[name] = true
	}

	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}

		return name
	})

	h := &handler[T]{
		db:       db,
		res:      res,
		policy:   policy,
		validate: v,
		name:     sch.Name,
		pk:       sch.PrioritizedPrimaryField.DBName,
		columns:  columns,
	}

	router.Get("/", guard.Require(res.Screen, auth.ActionView), h.list)
	router.Get("/:id", guard.Require(res.Screen, auth.ActionView), h.getOne)
	router.Post("/", guard.Require(res.Screen, auth.ActionAdd), h.create)
	router.Put("/:id", guard.Require(res.Screen, auth.ActionEdit), h.update)
	router.Delete("/:id", guard.Require(res.Screen, auth.ActionDelete), h.delete)

	return nil
}

// sortColumn validates the requested sort field against the model schema,
// falling back to the primary key so an unknown field can never reach
// storage.
func (h *handler[T]) sortColumn(requested string) string {
	if requested != "" && h.columns[requested] {
		return requested
	}

	return h.pk
}

// policyContext builds the per-request context handed to policy hooks.
func (h *handler[T]) policyContext(c *fiber.Ctx, p *auth.Principal) *Context {
	return &Context{
		Ctx:       c.UserContext(),
		DB:        h.db.WithContext(c.UserContext()),
		Principal: p,
	}
}
