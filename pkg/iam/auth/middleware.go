package auth

import (
	"slices"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jobdeck/jobdeck/pkg/kernel"
)

const authContextKey = "auth_context"

// AuthContext is the authenticated caller attached to a request
type AuthContext struct {
	UserID kernel.UserID
	Email  kernel.Email
	Scopes []string
}

// HasAnyScope reports whether the caller holds at least one of the scopes
func (a *AuthContext) HasAnyScope(scopes ...string) bool {
	for _, s := range scopes {
		if slices.Contains(a.Scopes, s) {
			return true
		}
	}
	return false
}

// GetAuthContext extracts the authenticated caller from the request context
func GetAuthContext(c *fiber.Ctx) (*AuthContext, bool) {
	authCtx, ok := c.Locals(authContextKey).(*AuthContext)
	return authCtx, ok
}

// TokenMiddleware validates bearer tokens on protected routes
type TokenMiddleware struct {
	tokenService TokenService
}

// NewTokenMiddleware creates the auth middleware
func NewTokenMiddleware(tokenService TokenService) *TokenMiddleware {
	return &TokenMiddleware{tokenService: tokenService}
}

// Authenticate validates the Authorization header and attaches the caller
func (m *TokenMiddleware) Authenticate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Missing authorization header")
		}

		// Format: "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid authorization format")
		}

		claims, err := m.tokenService.ValidateToken(parts[1])
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired token")
		}

		c.Locals(authContextKey, &AuthContext{
			UserID: claims.UserID,
			Email:  claims.Email,
			Scopes: claims.Scopes,
		})

		return c.Next()
	}
}

// RequireScope rejects callers without any of the given scopes.
// Must run after Authenticate.
func (m *TokenMiddleware) RequireScope(scopes ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authCtx, ok := GetAuthContext(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Not authenticated")
		}

		required := append([]string{ScopeAll}, scopes...)
		if !authCtx.HasAnyScope(required...) {
			return fiber.NewError(fiber.StatusForbidden, "Insufficient permissions")
		}

		return c.Next()
	}
}
