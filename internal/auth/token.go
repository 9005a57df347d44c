package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/fieldops/fieldops/internal/db/models"
)

// Claims is the JWT payload carried by fieldops access tokens.
type Claims struct {
	RoleID    string `json:"role_id"`
	RoleSlug  string `json:"role_slug"`
	CompanyID string `json:"company_id,omitempty"`
	jwt.RegisteredClaims
}

// IssueToken signs an HS256 access token for the given user and role.
func IssueToken(secret string, ttl time.Duration, user *models.User, role *models.Role) (string, error) {
	if secret == "" {
		return "", ErrSecretEmpty
	}

	now := time.Now()
	claims := Claims{
		RoleID:   role.ID.String(),
		RoleSlug: role.Slug,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	if user.CompanyID != nil {
		claims.CompanyID = user.CompanyID.String()
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return token, nil
}

// ParseToken verifies a bearer token and reconstructs the request principal.
// Any verification or claim-shape failure maps to ErrInvalidToken.
func ParseToken(secret, raw string) (*Principal, error) {
	if secret == "" {
		return nil, ErrSecretEmpty
	}

	var claims Claims

	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %q", t.Method.Alg())
		}

		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, ErrInvalidToken
	}

	roleID, err := uuid.Parse(claims.RoleID)
	if err != nil {
		return nil, ErrInvalidToken
	}

	principal := &Principal{
		ID:       userID,
		RoleID:   roleID,
		RoleSlug: claims.RoleSlug,
	}

	if claims.CompanyID != "" {
		companyID, err := uuid.Parse(claims.CompanyID)
		if err != nil {
			return nil, ErrInvalidToken
		}

		principal.CompanyID = &companyID
	}

	return principal, nil
}
