package crud

import (
	"gorm.io/gorm"

	"github.com/fieldops/fieldops/internal/auth"
)

// TenantColumn is the owning-tenant foreign key on every scoped entity.
const TenantColumn = "company_id"

// TenantScope returns the read predicate restricting a query to the caller's
// tenant. It is neutral for unscoped resources and for the super-tenant role,
// which sees every tenant.
func TenantScope(p *auth.Principal, tenantScoped bool) Scope {
	if !tenantScoped || p.IsSuperAdmin() || p.CompanyID == nil {
		return func(tx *gorm.DB) *gorm.DB { return tx }
	}

	companyID := p.CompanyID.String()

	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where(map[string]any{TenantColumn: companyID})
	}
}

// EnforceOwnership validates and forces the tenant key on a write body.
//
// Regular principals may not write another tenant's key; their own is forced
// in whether the body carries it or not. Super-tenant principals must name a
// tenant explicitly when creating a scoped record. On update the tenant key
// is stripped unconditionally: it is immutable after creation.
func EnforceOwnership(p *auth.Principal, tenantScoped bool, body map[string]any, op Operation) error {
	if !tenantScoped {
		return nil
	}

	if op == OpUpdate {
		delete(body, TenantColumn)
		return nil
	}

	if p.IsSuperAdmin() {
		if v, ok := body[TenantColumn]; !ok || v == nil || v == "" {
			return BadRequestf("company_id is required for super_admin")
		}

		return nil
	}

	if p.CompanyID == nil {
		return Forbiddenf("Cross-tenant write forbidden")
	}

	if v, ok := body[TenantColumn]; ok && v != nil && v != "" {
		if s, _ := v.(string); s != p.CompanyID.String() {
			return Forbiddenf("Cross-tenant write forbidden")
		}
	}

	body[TenantColumn] = p.CompanyID.String()

	return nil
}
