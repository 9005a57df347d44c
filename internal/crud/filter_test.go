package crud

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func filterNames(t *testing.T, db *gorm.DB, scope Scope) []string {
	t.Helper()

	var names []string

	err := db.Model(&gadget{}).Scopes(scope).Order("name ASC").Pluck("name", &names).Error
	require.NoError(t, err)

	return names
}

func seedFilterFixtures(t *testing.T, db *gorm.DB) {
	t.Helper()

	cid := uuid.New()

	rows := []gadget{
		{CompanyID: &cid, Name: "Cordless Drill", Kind: "power", Status: true},
		{CompanyID: &cid, Name: "Hand Saw", Kind: "manual", Status: true},
		{CompanyID: &cid, Name: "drill press", Kind: "power", Status: true},
	}

	for i := range rows {
		require.NoError(t, db.Create(&rows[i]).Error)
	}

	// an Update writes the false explicitly, which Create would drop for
	// the column default
	require.NoError(t, db.Model(&rows[2]).Update("status", false).Error)
}

func TestBuildFilterFuzzyIsCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)
	seedFilterFixtures(t, db)

	scope := BuildFilter(queryMap{SearchParam: "DRILL"}, []string{"name"}, nil, "status")

	names := filterNames(t, db, scope)
	assert.Equal(t, []string{"Cordless Drill", "drill press"}, names)
}

func TestBuildFilterFuzzySpansSearchFieldsAsOrGroup(t *testing.T) {
	db := setupTestDB(t)
	seedFilterFixtures(t, db)

	// "man" matches kind on one row and nothing on the others
	scope := BuildFilter(queryMap{SearchParam: "man"}, []string{"name", "kind"}, nil, "status")

	names := filterNames(t, db, scope)
	assert.Equal(t, []string{"Hand Saw"}, names)
}

func TestBuildFilterExactFields(t *testing.T) {
	db := setupTestDB(t)
	seedFilterFixtures(t, db)

	scope := BuildFilter(queryMap{"kind": "power"}, nil, []string{"kind"}, "status")

	names := filterNames(t, db, scope)
	assert.Equal(t, []string{"Cordless Drill", "drill press"}, names)
}

func TestBuildFilterStatusCoercion(t *testing.T) {
	db := setupTestDB(t)
	seedFilterFixtures(t, db)

	scope := BuildFilter(queryMap{"status": "false"}, nil, []string{"status"}, "status")

	names := filterNames(t, db, scope)
	assert.Equal(t, []string{"drill press"}, names)

	// a non-boolean literal for the status field filters nothing
	scope = BuildFilter(queryMap{"status": "banana"}, nil, []string{"status"}, "status")

	names = filterNames(t, db, scope)
	assert.Len(t, names, 3)
}

func TestBuildFilterUndeclaredFieldsIgnored(t *testing.T) {
	db := setupTestDB(t)
	seedFilterFixtures(t, db)

	// kind appears in the query but is not a declared exact field
	scope := BuildFilter(queryMap{"kind": "power"}, []string{"name"}, nil, "status")

	names := filterNames(t, db, scope)
	assert.Len(t, names, 3)
}

func TestBuildFilterCombinesFuzzyAndExact(t *testing.T) {
	db := setupTestDB(t)
	seedFilterFixtures(t, db)

	scope := BuildFilter(
		queryMap{SearchParam: "drill", "status": "true"},
		[]string{"name"},
		[]string{"status"},
		"status",
	)

	names := filterNames(t, db, scope)
	assert.Equal(t, []string{"Cordless Drill"}, names)
}

func TestBuildFilterNeutralWhenEmpty(t *testing.T) {
	db := setupTestDB(t)
	seedFilterFixtures(t, db)

	scope := BuildFilter(queryMap{}, []string{"name"}, []string{"kind"}, "status")

	names := filterNames(t, db, scope)
	assert.Len(t, names, 3)
}

func TestWhereIn(t *testing.T) {
	db := setupTestDB(t)
	seedFilterFixtures(t, db)

	names := filterNames(t, db, WhereIn("kind", []string{"manual"}))
	assert.Equal(t, []string{"Hand Saw"}, names)
}
