package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// principalKey is the fiber.Locals key the resolved principal is stored under.
const principalKey = "principal"

// Middleware creates a Fiber middleware that resolves the request principal
// from the Authorization header. Requests without a valid token get 401.
func Middleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return Unauthenticated(c)
		}

		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found {
			return Unauthenticated(c)
		}

		principal, err := ParseToken(secret, strings.TrimSpace(raw))
		if err != nil {
			return Unauthenticated(c)
		}

		c.Locals(principalKey, principal)

		return c.Next()
	}
}

// FromContext returns the principal attached to the request, or nil when the
// request was not authenticated.
func FromContext(c *fiber.Ctx) *Principal {
	principal, _ := c.Locals(principalKey).(*Principal)
	return principal
}

// SetPrincipal attaches a principal to the request. Used by tests to bypass
// token verification.
func SetPrincipal(c *fiber.Ctx, p *Principal) {
	c.Locals(principalKey, p)
}

// Unauthenticated writes the standard 401 envelope.
func Unauthenticated(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthenticated"})
}
