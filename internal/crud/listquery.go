package crud

import (
	"strconv"
	"strings"
)

// Pagination bounds. Limits above MaxLimit are clamped to the default, like
// any other invalid value.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 200
)

// ListQuery is the normalized pagination and sorting descriptor for a list
// request. Parse never fails; every field is defaulted to a safe value.
type ListQuery struct {
	Page   int
	Limit  int
	Offset int
	// SortBy is passed through verbatim; the router validates it against the
	// entity's column set before use. The parser cannot know valid column
	// names and must not try.
	SortBy string
	// Order is "ASC" or "DESC", nothing else.
	Order string
}

// queryValues is the subset of the raw query string the parser reads.
type queryValues interface {
	Query(key string, defaultValue ...string) string
}

// ParseListQuery normalizes page/limit/sortBy/order from the raw query.
// Non-numeric or non-positive page and limit values reset to their defaults,
// so the derived offset is never negative.
func ParseListQuery(q queryValues) ListQuery {
	lq := ListQuery{
		Page:   DefaultPage,
		Limit:  DefaultLimit,
		SortBy: q.Query("sortBy"),
		Order:  "ASC",
	}

	if page, err := strconv.Atoi(q.Query("page")); err == nil && page > 0 {
		lq.Page = page
	}

	if limit, err := strconv.Atoi(q.Query("limit")); err == nil && limit > 0 && limit <= MaxLimit {
		lq.Limit = limit
	}

	if strings.EqualFold(q.Query("order"), "desc") {
		lq.Order = "DESC"
	}

	lq.Offset = (lq.Page - 1) * lq.Limit

	return lq
}
