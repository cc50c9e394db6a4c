package middleware

import (
	"errors"
	"strings"

	"jobhub-backend/internal/adapters/persistence/models"
	"jobhub-backend/internal/core/domain"
	"jobhub-backend/internal/core/services"
	"jobhub-backend/internal/pkg/jwt"
	"jobhub-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by the session middleware.
const (
	LocalPrincipal = "principal"
	LocalUserID    = "userID"
)

// Session validates the token pair on every request and resolves the
// authenticated principal. The refresh token (cookie) is decoded first,
// then the access token (bearer header); a subject mismatch between the
// two is its own failure mode, distinct from a plain 401.
func Session(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		refreshToken := c.Cookies("refresh_token")
		if refreshToken == "" {
			return response.Unauthorized(c, "refresh token required; please sign back in")
		}

		refresh, err := authService.ValidateToken(refreshToken)
		if err != nil || refresh.TokenType != jwt.TypeRefresh {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return response.Unauthorized(c, "refresh token expired; please sign back in")
			}
			return response.Unauthorized(c, "invalid refresh token; please sign back in")
		}

		authHeader := c.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return response.Unauthorized(c, "access token required")
		}
		accessToken := strings.TrimPrefix(authHeader, "Bearer ")

		access, err := authService.ValidateToken(accessToken)
		if err != nil || access.TokenType != jwt.TypeAccess {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return response.Unauthorized(c, "access token expired")
			}
			return response.Unauthorized(c, "invalid access token")
		}

		if access.UserID != refresh.UserID {
			return response.Conflict(c, domain.ErrTokenMismatch.Error())
		}

		user, err := authService.GetUserByID(c.Context(), access.UserID)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				return response.Unauthorized(c, "account is not active")
			}
			return response.InternalServerError(c, "failed to resolve session user")
		}
		if !user.IsActive() {
			return response.Unauthorized(c, "account is not active")
		}

		c.Locals(LocalPrincipal, user)
		c.Locals(LocalUserID, user.ID)

		return c.Next()
	}
}

// Principal returns the authenticated user resolved by Session.
func Principal(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(LocalPrincipal).(*models.User)
	return user
}

// RequireRole gates a route group on the principal's role.
func RequireRole(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := Principal(c)
		if user == nil {
			return response.Unauthorized(c, "unauthorized")
		}
		for _, role := range allowedRoles {
			if user.HasRole(role) {
				return c.Next()
			}
		}
		return response.Forbidden(c, "you don't have permission to access this resource")
	}
}

// AdminOnly allows only ADMIN principals.
func AdminOnly() fiber.Handler {
	return RequireRole(models.RoleAdmin)
}
