package handlers

import (
	"context"
	"errors"
	"strings"

	"jobhub-backend/internal/adapters/http/middleware"
	"jobhub-backend/internal/adapters/persistence/models"
	"jobhub-backend/internal/core/domain"
	"jobhub-backend/internal/core/services"
	"jobhub-backend/internal/pkg/pagination"
	"jobhub-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles cross-user views, listing and account lifecycle
// transitions.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetUser handles GET /auth/retrieve_user/:id. Admin callers get the
// full record; everyone else gets the redacted form; admin targets are
// invisible to non-admins.
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	targetID, err := c.ParamsInt("id")
	if err != nil || targetID < 1 {
		return response.BadRequest(c, "user id must be a positive integer")
	}

	principal := middleware.Principal(c)
	view, err := h.userService.ViewUser(c.Context(), principal, uint(targetID))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return response.NotFound(c, "user not found")
		}
		return response.InternalServerError(c, "failed to retrieve user")
	}

	return response.Success(c, view)
}

// ListUsers handles GET /auth/retrieve_users and
// GET /auth/retrieve_users/:group. Admin only; group filters by role.
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	group := strings.ToUpper(strings.TrimSpace(c.Params("group")))
	params := pagination.FromRequest(c)

	principal := middleware.Principal(c)
	out, err := h.userService.ListUsers(c.Context(), principal, group, params.Offset, params.Limit)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrForbidden):
			return response.Forbidden(c, "admin access required")
		case errors.Is(err, domain.ErrInvalidRole):
			return response.BadRequest(c, "invalid role group")
		default:
			return response.InternalServerError(c, "failed to list users")
		}
	}

	return response.Success(c, fiber.Map{
		"users": out.Users,
		"meta":  params.MetaFor(out.Total),
	})
}

// Archive handles PUT /auth/archive_user/:id (ACTIVE -> INACTIVE).
func (h *UserHandler) Archive(c *fiber.Ctx) error {
	return h.transition(c, h.userService.Archive)
}

// Remove handles PUT /auth/remove_user/:id (-> REMOVED).
func (h *UserHandler) Remove(c *fiber.Ctx) error {
	return h.transition(c, h.userService.Remove)
}

// Restore handles PUT /auth/restore_user/:id (-> ACTIVE).
func (h *UserHandler) Restore(c *fiber.Ctx) error {
	return h.transition(c, h.userService.Restore)
}

func (h *UserHandler) transition(c *fiber.Ctx, op func(ctx context.Context, principal *models.User, targetID uint) error) error {
	targetID, err := c.ParamsInt("id")
	if err != nil || targetID < 1 {
		return response.BadRequest(c, "user id must be a positive integer")
	}

	principal := middleware.Principal(c)
	if err := op(c.Context(), principal, uint(targetID)); err != nil {
		switch {
		case errors.Is(err, domain.ErrForbidden):
			return response.Forbidden(c, "admin access required")
		case errors.Is(err, domain.ErrUserNotFound):
			return response.NotFound(c, "user not found")
		default:
			return response.InternalServerError(c, "failed to change account status")
		}
	}

	return response.Success(c, fiber.Map{"user_id": targetID})
}
