package middleware

import (
	"github.com/gofiber/fiber/v2"

	"bloodlink/internal/auth"
)

// IdentityLocalKey is the key used to store the caller's *auth.Identity in Fiber's context locals.
const IdentityLocalKey = "identity"

// TokenVerifier turns a raw bearer token into an identity.
type TokenVerifier interface {
	Verify(raw string) (*auth.Identity, error)
}

// RequireAuth rejects requests without a valid bearer token with 401.
func RequireAuth(v TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := identify(c, v)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}
		c.Locals(IdentityLocalKey, id)
		return c.Next()
	}
}

// OptionalAuth stores the identity when a valid token is present and continues either way.
func OptionalAuth(v TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if id, err := identify(c, v); err == nil {
			c.Locals(IdentityLocalKey, id)
		}
		return c.Next()
	}
}

// IdentityFromCtx returns the identity stored by RequireAuth or OptionalAuth, if any.
func IdentityFromCtx(c *fiber.Ctx) (*auth.Identity, bool) {
	id, ok := c.Locals(IdentityLocalKey).(*auth.Identity)
	return id, ok && id != nil
}

func identify(c *fiber.Ctx, v TokenVerifier) (*auth.Identity, error) {
	raw, err := auth.BearerToken(c.Get(fiber.HeaderAuthorization))
	if err != nil {
		return nil, err
	}
	return v.Verify(raw)
}
