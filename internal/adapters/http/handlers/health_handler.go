package handlers

import (
	"jobhub-backend/internal/config"
	"jobhub-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// HealthHandler handles liveness endpoints.
type HealthHandler struct {
	db  *gorm.DB
	cfg *config.Config
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *gorm.DB, cfg *config.Config) *HealthHandler {
	return &HealthHandler{db: db, cfg: cfg}
}

// Root handles GET /.
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return response.Success(c, fiber.Map{
		"success": "restful-backend connection reached and established",
		"project": h.cfg.ProjectName,
		"mode":    h.cfg.AppMode,
	})
}

// HealthCheck handles GET /health: reports API and database health.
func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	dbStatus := "ok"
	if err := config.HealthCheck(h.db); err != nil {
		dbStatus = "unreachable"
	}

	return response.Success(c, fiber.Map{
		"api":      "ok",
		"database": dbStatus,
	})
}
