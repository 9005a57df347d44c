package crud

import (
	"context"

	"gorm.io/gorm"

	"github.com/fieldops/fieldops/internal/auth"
)

// Operation tells a policy which write path is running.
type Operation string

const (
	// OpCreate is the create write path.
	OpCreate Operation = "create"
	// OpUpdate is the update write path.
	OpUpdate Operation = "update"
)

// Context carries the per-request state a policy may need: the request
// context, a request-scoped database handle, and the caller.
type Context struct {
	Ctx       context.Context
	DB        *gorm.DB
	Principal *auth.Principal
}

// Policy is the per-resource extension point of the router. Implementations
// embed BasePolicy and override only what the resource needs; every method
// has a neutral default.
//
// Policies run inside the request pipeline after the permission guard and
// tenant enforcement, in the order documented on each method.
type Policy interface {
	// Normalize mutates the write body in place before validation: trimming,
	// case folding, type coercion. It must not perform I/O.
	Normalize(body map[string]any, op Operation)

	// PreCreate runs business-rule validation before a create persists. It
	// may read storage through ctx.DB. Returning a *Error surfaces its
	// status; any other error surfaces as a 400.
	PreCreate(ctx *Context, body map[string]any) error

	// PreUpdate is PreCreate's counterpart for updates. existing is the
	// current row (a *T for the registered model), enabling validation that
	// depends on prior state.
	PreUpdate(ctx *Context, body map[string]any, existing any) error

	// DuplicateWhere returns the lookup predicate used to recover the
	// existing row after a unique-constraint conflict on create, making
	// retried creates idempotent. Returning nil disables recovery and the
	// conflict surfaces as a 409.
	DuplicateWhere(ctx *Context, body map[string]any) map[string]any

	// ListScope returns an extra list predicate ANDed with the compiled
	// filters and the tenant scope, e.g. a role-based row restriction.
	// Returning nil adds nothing.
	ListScope(ctx *Context) (Scope, error)
}

// BasePolicy is the neutral Policy every resource policy embeds.
type BasePolicy struct{}

// Normalize does nothing.
func (BasePolicy) Normalize(map[string]any, Operation) {}

// PreCreate accepts everything.
func (BasePolicy) PreCreate(*Context, map[string]any) error { return nil }

// PreUpdate accepts everything.
func (BasePolicy) PreUpdate(*Context, map[string]any, any) error { return nil }

// DuplicateWhere disables idempotent-create recovery.
func (BasePolicy) DuplicateWhere(*Context, map[string]any) map[string]any { return nil }

// ListScope adds nothing.
func (BasePolicy) ListScope(*Context) (Scope, error) { return nil, nil }
