package masters

import (
	"strings"

	"github.com/fieldops/fieldops/internal/crud"
	"github.com/fieldops/fieldops/internal/db/models"
)

// natureOfWorkPolicy trims the name and makes re-posted creates idempotent.
type natureOfWorkPolicy struct {
	crud.BasePolicy
}

func (natureOfWorkPolicy) Normalize(body map[string]any, _ crud.Operation) {
	crud.Trim(body, "now_name")
}

func (natureOfWorkPolicy) DuplicateWhere(_ *crud.Context, body map[string]any) map[string]any {
	return map[string]any{"now_name": crud.BodyString(body, "now_name")}
}

type jobStatusPolicy struct {
	crud.BasePolicy
}

func (jobStatusPolicy) Normalize(body map[string]any, _ crud.Operation) {
	crud.Trim(body, "job_status_title")
}

func (jobStatusPolicy) DuplicateWhere(_ *crud.Context, body map[string]any) map[string]any {
	return map[string]any{"job_status_title": crud.BodyString(body, "job_status_title")}
}

type subscriptionTypePolicy struct {
	crud.BasePolicy
}

func (subscriptionTypePolicy) Normalize(body map[string]any, _ crud.Operation) {
	crud.Trim(body, "subscription_title")
}

func (subscriptionTypePolicy) DuplicateWhere(_ *crud.Context, body map[string]any) map[string]any {
	return map[string]any{"subscription_title": crud.BodyString(body, "subscription_title")}
}

type businessTypePolicy struct {
	crud.BasePolicy
}

func (businessTypePolicy) Normalize(body map[string]any, _ crud.Operation) {
	crud.Trim(body, "business_type_name")
}

func (businessTypePolicy) DuplicateWhere(_ *crud.Context, body map[string]any) map[string]any {
	return map[string]any{"business_type_name": crud.BodyString(body, "business_type_name")}
}

// workTypePolicy keeps work type names unique per company.
type workTypePolicy struct {
	crud.BasePolicy
}

func (workTypePolicy) Normalize(body map[string]any, _ crud.Operation) {
	crud.Trim(body, "worktype_name")
}

func (workTypePolicy) DuplicateWhere(_ *crud.Context, body map[string]any) map[string]any {
	return map[string]any{
		"company_id":    crud.BodyString(body, "company_id"),
		"worktype_name": crud.BodyString(body, "worktype_name"),
	}
}

type jobTypePolicy struct {
	crud.BasePolicy
}

func (jobTypePolicy) Normalize(body map[string]any, _ crud.Operation) {
	crud.Trim(body, "jobtype_name")
}

func (jobTypePolicy) DuplicateWhere(_ *crud.Context, body map[string]any) map[string]any {
	return map[string]any{
		"company_id":   crud.BodyString(body, "company_id"),
		"worktype_id":  crud.BodyString(body, "worktype_id"),
		"jobtype_name": crud.BodyString(body, "jobtype_name"),
	}
}

type shiftPolicy struct {
	crud.BasePolicy
}

func (shiftPolicy) Normalize(body map[string]any, _ crud.Operation) {
	crud.Trim(body, "shift_name", "shift_start_time", "shift_end_time")
}

func (shiftPolicy) DuplicateWhere(_ *crud.Context, body map[string]any) map[string]any {
	return map[string]any{
		"company_id":       crud.BodyString(body, "company_id"),
		"shift_name":       crud.BodyString(body, "shift_name"),
		"shift_start_time": crud.BodyString(body, "shift_start_time"),
		"shift_end_time":   crud.BodyString(body, "shift_end_time"),
	}
}

// rolePolicy lowercases slugs and limits which roles a caller can see. The
// visibility chain runs downward only: each role sees the roles it is
// allowed to assign, and an unknown role sees none.
type rolePolicy struct {
	crud.BasePolicy
}

// roleVisibility maps a caller's role slug to the slugs it may list. A nil
// entry means no restriction.
var roleVisibility = map[string][]string{
	models.RoleSuperAdmin:   nil,
	models.RoleCompanyAdmin: {models.RoleVendor, models.RoleSupervisor, models.RoleTechnician},
	models.RoleVendor:       {models.RoleSupervisor, models.RoleTechnician},
	models.RoleSupervisor:   {models.RoleTechnician},
	models.RoleTechnician:   {},
}

func (rolePolicy) Normalize(body map[string]any, _ crud.Operation) {
	crud.Trim(body, "role_name")
	crud.LowerTrim(body, "role_slug")
}

func (rolePolicy) DuplicateWhere(_ *crud.Context, body map[string]any) map[string]any {
	return map[string]any{"role_slug": strings.ToLower(crud.BodyString(body, "role_slug"))}
}

func (rolePolicy) ListScope(ctx *crud.Context) (crud.Scope, error) {
	slugs, known := roleVisibility[ctx.Principal.RoleSlug]
	if known && slugs == nil {
		return nil, nil
	}

	if !known || len(slugs) == 0 {
		// no visible roles: impossible predicate yields an empty list
		slugs = []string{"__none__"}
	}

	return crud.WhereIn("role_slug", slugs), nil
}

// regionPolicy normalizes the pincode list and guarantees a pincode is
// mapped to at most one region.
type regionPolicy struct {
	crud.BasePolicy
}

func (regionPolicy) Normalize(body map[string]any, _ crud.Operation) {
	crud.Trim(body, "region_name")

	raw, ok := body["pincodes"].([]any)
	if !ok {
		return
	}

	cleaned := make([]any, 0, len(raw))

	for _, v := range raw {
		s, _ := v.(string)

		s = strings.ToUpper(strings.Join(strings.Fields(s), ""))
		if s != "" {
			cleaned = append(cleaned, s)
		}
	}

	body["pincodes"] = cleaned
}

func (regionPolicy) DuplicateWhere(_ *crud.Context, body map[string]any) map[string]any {
	return map[string]any{
		"company_id":  crud.BodyString(body, "company_id"),
		"region_name": crud.BodyString(body, "region_name"),
	}
}

func (regionPolicy) PreCreate(ctx *crud.Context, body map[string]any) error {
	return checkPincodesUnclaimed(ctx, body, "")
}

func (regionPolicy) PreUpdate(ctx *crud.Context, body map[string]any, existing any) error {
	row, ok := existing.(*models.Region)
	if !ok {
		return crud.BadRequestf("Invalid region record")
	}

	return checkPincodesUnclaimed(ctx, body, row.ID.String())
}

// checkPincodesUnclaimed rejects the write when any requested pincode is
// already mapped to another region. selfID excludes the row being updated.
func checkPincodesUnclaimed(ctx *crud.Context, body map[string]any, selfID string) error {
	raw, ok := body["pincodes"].([]any)
	if !ok || len(raw) == 0 {
		return nil
	}

	var regions []models.Region

	err := ctx.DB.Select("region_id", "region_name", "pincodes").Find(&regions).Error
	if err != nil {
		return err
	}

	used := make(map[string]bool)

	for _, r := range regions {
		if selfID != "" && r.ID.String() == selfID {
			continue
		}

		for _, p := range r.Pincodes {
			p = strings.ToUpper(strings.Join(strings.Fields(p), ""))
			if p != "" {
				used[p] = true
			}
		}
	}

	var conflicts []string

	for _, v := range raw {
		if s, _ := v.(string); s != "" && used[s] {
			conflicts = append(conflicts, s)
		}
	}

	if len(conflicts) > 0 {
		return crud.BadRequestf("Pincodes already mapped to a region: %s", strings.Join(conflicts, ", "))
	}

	return nil
}
