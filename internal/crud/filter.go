package crud

import (
	"strings"

	"gorm.io/gorm"
)

// SearchParam is the query key carrying the shared fuzzy search term.
const SearchParam = "searchParam"

// Scope is a composable predicate fragment applied to a gorm query.
type Scope func(*gorm.DB) *gorm.DB

// WhereIn returns a scope constraining the column to the given values.
func WhereIn[V any](column string, values []V) Scope {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where(column+" IN ?", values)
	}
}

// BuildFilter compiles the raw query into a predicate: one OR-group of
// case-insensitive substring matches over the declared search fields, plus an
// equality condition per declared exact field present in the query. Fields
// not declared are never matched, whatever the query carries. The returned
// scope is neutral when no filter applies.
//
// LOWER(col) LIKE is used instead of a dialect-specific ILIKE so the same
// predicate behaves identically on postgres, mysql and sqlite.
func BuildFilter(q queryValues, searchFields, exactFields []string, statusField string) Scope {
	term := strings.TrimSpace(q.Query(SearchParam))

	exact := make(map[string]any)

	for _, field := range exactFields {
		value := q.Query(field)
		if value == "" {
			continue
		}

		if field == statusField {
			switch strings.ToLower(value) {
			case "true":
				exact[field] = true
			case "false":
				exact[field] = false
			}

			continue
		}

		exact[field] = value
	}

	return func(tx *gorm.DB) *gorm.DB {
		if term != "" && len(searchFields) > 0 {
			pattern := "%" + strings.ToLower(term) + "%"

			group := tx.Session(&gorm.Session{NewDB: true})
			for i, field := range searchFields {
				cond := "LOWER(" + field + ") LIKE ?"
				if i == 0 {
					group = group.Where(cond, pattern)
				} else {
					group = group.Or(cond, pattern)
				}
			}

			tx = tx.Where(group)
		}

		if len(exact) > 0 {
			tx = tx.Where(exact)
		}

		return tx
	}
}
