package dberr

import (
	"testing"

	gomysql "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantKind  Kind
		wantField string
	}{
		{
			name: "nil error",
			err:  nil, wantKind: KindOther,
		},
		{
			name: "gorm record not found",
			err:  gorm.ErrRecordNotFound, wantKind: KindNotFound,
		},
		{
			name: "gorm duplicated key",
			err:  gorm.ErrDuplicatedKey, wantKind: KindDuplicate,
		},
		{
			name: "gorm foreign key violated",
			err:  gorm.ErrForeignKeyViolated, wantKind: KindForeignKey,
		},
		{
			name: "wrapped gorm sentinel",
			err:  errors.Wrap(gorm.ErrRecordNotFound, "loading job"), wantKind: KindNotFound,
		},
		{
			name: "postgres unique violation",
			err:  &pgconn.PgError{Code: "23505"}, wantKind: KindDuplicate,
		},
		{
			name: "postgres foreign key violation",
			err:  &pgconn.PgError{Code: "23503"}, wantKind: KindForeignKey,
		},
		{
			name: "postgres not null with column in message",
			err: &pgconn.PgError{
				Code:    "23502",
				Message: `null value in column "worktype_name" violates not-null constraint`,
			},
			wantKind:  KindNotNull,
			wantField: "worktype_name",
		},
		{
			name: "postgres not null with column name field",
			err: &pgconn.PgError{
				Code:       "23502",
				Message:    "not-null constraint violated",
				ColumnName: "region_name",
			},
			wantKind:  KindNotNull,
			wantField: "region_name",
		},
		{
			name: "postgres invalid text representation",
			err:  &pgconn.PgError{Code: "22P02"}, wantKind: KindInvalidValue,
		},
		{
			name: "postgres numeric out of range",
			err:  &pgconn.PgError{Code: "22003"}, wantKind: KindOutOfRange,
		},
		{
			name: "postgres unrecognized code",
			err:  &pgconn.PgError{Code: "40001"}, wantKind: KindOther,
		},
		{
			name: "mysql duplicate entry",
			err:  &gomysql.MySQLError{Number: 1062}, wantKind: KindDuplicate,
		},
		{
			name: "mysql row is referenced",
			err:  &gomysql.MySQLError{Number: 1451}, wantKind: KindForeignKey,
		},
		{
			name: "mysql no referenced row",
			err:  &gomysql.MySQLError{Number: 1452}, wantKind: KindForeignKey,
		},
		{
			name: "mysql column cannot be null",
			err: &gomysql.MySQLError{
				Number:  1048,
				Message: "Column 'shift_name' cannot be null",
			},
			wantKind:  KindNotNull,
			wantField: "shift_name",
		},
		{
			name: "mysql out of range",
			err:  &gomysql.MySQLError{Number: 1264}, wantKind: KindOutOfRange,
		},
		{
			name: "mysql incorrect value",
			err:  &gomysql.MySQLError{Number: 1366}, wantKind: KindInvalidValue,
		},
		{
			name: "plain error",
			err:  errors.New("connection reset"), wantKind: KindOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, field := Classify(tt.err)
			assert.Equal(t, tt.wantKind, kind)
			assert.Equal(t, tt.wantField, field)
		})
	}
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsDuplicate(gorm.ErrDuplicatedKey))
	assert.False(t, IsDuplicate(gorm.ErrRecordNotFound))

	assert.True(t, IsForeignKey(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsForeignKey(nil))

	assert.True(t, IsNotFound(errors.Wrap(gorm.ErrRecordNotFound, "lookup")))
	assert.False(t, IsNotFound(errors.New("boom")))
}
