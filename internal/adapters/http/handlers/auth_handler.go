package handlers

import (
	"errors"
	"strings"
	"time"

	"jobhub-backend/internal/adapters/http/middleware"
	"jobhub-backend/internal/config"
	"jobhub-backend/internal/core/domain"
	"jobhub-backend/internal/core/services"
	"jobhub-backend/internal/pkg/jwt"
	"jobhub-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles the registration, login and token endpoints.
type AuthHandler struct {
	authService *services.AuthService
	userService *services.UserService
	cfg         *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, userService *services.UserService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		userService: userService,
		cfg:         cfg,
	}
}

// LoginRequest represents login request body
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req services.RegisterInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Role = strings.ToUpper(strings.TrimSpace(req.Role))

	if err := validateStruct(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	user, err := h.authService.Register(c.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateEmail):
			return response.BadRequest(c, "email already exists")
		case errors.Is(err, domain.ErrWeakPassword):
			return response.BadRequest(c, "password must be at least 8 characters with a letter, a digit and a special character")
		case errors.Is(err, domain.ErrInvalidRole):
			return response.BadRequest(c, "invalid role")
		default:
			return response.InternalServerError(c, "failed to register user")
		}
	}

	return response.Created(c, user.ToProfile())
}

// Login handles POST /auth/login. The access token travels back in the
// Authorization response header, the refresh token in an http-only
// cookie. Bad credentials and inactive accounts are indistinguishable.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}
	if err := validateStruct(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	user, pair, err := h.authService.Login(c.Context(), strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrAuthFailure) {
			return response.NotFound(c, "user not found")
		}
		return response.InternalServerError(c, "failed to login")
	}

	h.setTokenPair(c, pair)

	return response.Success(c, fiber.Map{
		"user": user.ToProfile(),
	})
}

// RefreshToken handles GET /auth/token: a valid refresh cookie rotates
// both tokens.
func (h *AuthHandler) RefreshToken(c *fiber.Ctx) error {
	refreshToken := c.Cookies("refresh_token")
	if refreshToken == "" {
		return response.Unauthorized(c, "refresh token not found")
	}

	user, pair, err := h.authService.Refresh(c.Context(), refreshToken)
	if err != nil {
		h.clearRefreshCookie(c)
		switch {
		case errors.Is(err, domain.ErrTokenExpired):
			return response.Unauthorized(c, "refresh token expired; please sign back in")
		case errors.Is(err, domain.ErrTokenInvalid):
			return response.Unauthorized(c, "invalid refresh token")
		case errors.Is(err, domain.ErrAuthFailure):
			return response.Unauthorized(c, "account is not active")
		default:
			return response.InternalServerError(c, "failed to refresh token")
		}
	}

	h.setTokenPair(c, pair)

	return response.Success(c, fiber.Map{
		"user": user.ToProfile(),
	})
}

// Me handles GET /auth/retrieve_user: the caller's own profile minus
// password and id.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	principal := middleware.Principal(c)
	if principal == nil {
		return response.Unauthorized(c, "unauthorized")
	}
	return response.Success(c, principal.ToProfile())
}

// UpdateUser handles PUT /auth/update_user: sparse self-update.
func (h *AuthHandler) UpdateUser(c *fiber.Ctx) error {
	principal := middleware.Principal(c)
	if principal == nil {
		return response.Unauthorized(c, "unauthorized")
	}

	var req services.UpdateProfileInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}
	if err := validateStruct(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	profile, err := h.userService.UpdateProfile(c.Context(), principal.ID, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateEmail):
			return response.BadRequest(c, "email already exists")
		case errors.Is(err, domain.ErrWeakPassword):
			return response.BadRequest(c, "password must be at least 8 characters with a letter, a digit and a special character")
		case errors.Is(err, domain.ErrUserNotFound):
			return response.NotFound(c, "user not found")
		default:
			return response.InternalServerError(c, "failed to update user")
		}
	}

	return response.Success(c, profile)
}

// RemoveSelf handles DELETE /auth/retrieve_user/remove. Deliberately
// unimplemented; it must fail loudly rather than silently succeed.
func (h *AuthHandler) RemoveSelf(c *fiber.Ctx) error {
	return response.NotImplemented(c, "user deletion is not implemented")
}

// setTokenPair writes the access token to the Authorization response
// header and the refresh token to the http-only cookie.
func (h *AuthHandler) setTokenPair(c *fiber.Ctx, pair *services.TokenPair) {
	c.Set("Authorization", "Bearer "+pair.AccessToken)

	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    pair.RefreshToken,
		Path:     "/",
		MaxAge:   int(jwt.RefreshTokenTTL.Seconds()),
		Secure:   h.cfg.Cookie.Secure,
		HTTPOnly: true,
		SameSite: h.cfg.Cookie.SameSite,
		Domain:   h.cfg.Cookie.Domain,
	})
}

func (h *AuthHandler) clearRefreshCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Now().Add(-1 * time.Hour),
		Secure:   h.cfg.Cookie.Secure,
		HTTPOnly: true,
		SameSite: h.cfg.Cookie.SameSite,
		Domain:   h.cfg.Cookie.Domain,
	})
}
