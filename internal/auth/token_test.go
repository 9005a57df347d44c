package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldops/fieldops/internal/db/models"
)

const testSecret = "unit-test-secret"

func testUserAndRole(companyID *uuid.UUID) (*models.User, *models.Role) {
	role := &models.Role{ID: uuid.New(), Name: "Company Admin", Slug: "company_admin", Status: true}
	user := &models.User{ID: uuid.New(), CompanyID: companyID, Name: "Test User", RoleID: role.ID}

	return user, role
}

func TestIssueAndParseToken(t *testing.T) {
	companyID := uuid.New()
	user, role := testUserAndRole(&companyID)

	token, err := IssueToken(testSecret, time.Hour, user, role)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	principal, err := ParseToken(testSecret, token)
	require.NoError(t, err)

	assert.Equal(t, user.ID, principal.ID)
	assert.Equal(t, role.ID, principal.RoleID)
	assert.Equal(t, "company_admin", principal.RoleSlug)
	require.NotNil(t, principal.CompanyID)
	assert.Equal(t, companyID, *principal.CompanyID)
}

func TestIssueTokenWithoutCompany(t *testing.T) {
	user, role := testUserAndRole(nil)
	role.Slug = models.RoleSuperAdmin

	token, err := IssueToken(testSecret, time.Hour, user, role)
	require.NoError(t, err)

	principal, err := ParseToken(testSecret, token)
	require.NoError(t, err)

	assert.Nil(t, principal.CompanyID)
	assert.True(t, principal.IsSuperAdmin())
}

func TestParseTokenWrongSecret(t *testing.T) {
	user, role := testUserAndRole(nil)

	token, err := IssueToken(testSecret, time.Hour, user, role)
	require.NoError(t, err)

	_, err = ParseToken("some-other-secret", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenExpired(t *testing.T) {
	user, role := testUserAndRole(nil)

	token, err := IssueToken(testSecret, -time.Minute, user, role)
	require.NoError(t, err)

	_, err = ParseToken(testSecret, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenRejectsUnexpectedMethod(t *testing.T) {
	claims := Claims{
		RoleID:   uuid.NewString(),
		RoleSlug: "technician",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	// alg=none must never verify, whatever the claims say
	raw, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ParseToken(testSecret, raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenMalformedClaims(t *testing.T) {
	claims := Claims{
		RoleID:   "not-a-uuid",
		RoleSlug: "technician",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = ParseToken(testSecret, raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenSecretRequired(t *testing.T) {
	user, role := testUserAndRole(nil)

	_, err := IssueToken("", time.Hour, user, role)
	assert.ErrorIs(t, err, ErrSecretEmpty)

	_, err = ParseToken("", "whatever")
	assert.ErrorIs(t, err, ErrSecretEmpty)
}
