// Package dberr translates storage-layer failures into a closed taxonomy.
// All driver error-code matching lives here; handlers upstream only ever see
// a Kind and never a raw driver code.
package dberr

import (
	"errors"
	"regexp"

	gomysql "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Kind classifies a storage failure.
type Kind int

const (
	// KindOther is anything unrecognized; callers treat it as internal.
	KindOther Kind = iota
	// KindNotFound is a missing record.
	KindNotFound
	// KindDuplicate is a unique-constraint violation.
	KindDuplicate
	// KindForeignKey is a foreign-key violation (bad reference on write, or
	// delete blocked by dependents).
	KindForeignKey
	// KindNotNull is a null value in a required column.
	KindNotNull
	// KindInvalidValue is a malformed value for the column type, e.g. a bad
	// UUID literal.
	KindInvalidValue
	// KindOutOfRange is a numeric value outside the column's range.
	KindOutOfRange
)

// Postgres SQLSTATE codes recognized by the translator.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgInvalidText         = "22P02"
	pgNumericOutOfRange   = "22003"
)

// MySQL error numbers recognized by the translator.
const (
	myDuplicateEntry     = 1062
	myRowIsReferenced    = 1451
	myNoReferencedRow    = 1452
	myColumnCannotBeNull = 1048
	myOutOfRange         = 1264
	myIncorrectValue     = 1366
)

var pgNullColumnRe = regexp.MustCompile(`null value in column "([^"]+)"`)
var myNullColumnRe = regexp.MustCompile(`Column '([^']+)' cannot be null`)

// Classify maps err to its Kind. Field names the offending column for
// not-null violations when the driver reports one, otherwise it is empty.
func Classify(err error) (kind Kind, field string) {
	if err == nil {
		return KindOther, ""
	}

	// GORM sentinels cover every dialect with TranslateError enabled,
	// including the sqlite driver used by tests.
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return KindNotFound, ""
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return KindDuplicate, ""
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return KindForeignKey, ""
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return KindDuplicate, ""
		case pgForeignKeyViolation:
			return KindForeignKey, ""
		case pgNotNullViolation:
			if m := pgNullColumnRe.FindStringSubmatch(pgErr.Message); m != nil {
				return KindNotNull, m[1]
			}

			return KindNotNull, pgErr.ColumnName
		case pgInvalidText:
			return KindInvalidValue, ""
		case pgNumericOutOfRange:
			return KindOutOfRange, ""
		}

		return KindOther, ""
	}

	var myErr *gomysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case myDuplicateEntry:
			return KindDuplicate, ""
		case myRowIsReferenced, myNoReferencedRow:
			return KindForeignKey, ""
		case myColumnCannotBeNull:
			if m := myNullColumnRe.FindStringSubmatch(myErr.Message); m != nil {
				return KindNotNull, m[1]
			}

			return KindNotNull, ""
		case myOutOfRange:
			return KindOutOfRange, ""
		case myIncorrectValue:
			return KindInvalidValue, ""
		}
	}

	return KindOther, ""
}

// IsDuplicate reports whether err is a unique-constraint violation.
func IsDuplicate(err error) bool {
	kind, _ := Classify(err)
	return kind == KindDuplicate
}

// IsForeignKey reports whether err is a foreign-key violation.
func IsForeignKey(err error) bool {
	kind, _ := Classify(err)
	return kind == KindForeignKey
}

// IsNotFound reports whether err is a missing-record failure.
func IsNotFound(err error) bool {
	kind, _ := Classify(err)
	return kind == KindNotFound
}
