package health

import (
	"asset-tracker/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for health checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the health routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/health", h.HandleHealthCheck)
}

// HandleHealthCheck reports whether the document store is reachable.
// @Summary Health Check
// @Description Pings the document database.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string "Healthy"
// @Failure 503 {object} map[string]string "Database unreachable"
// @Router /health [get]
func (h *Handler) HandleHealthCheck(c *fiber.Ctx) error {
	if err := h.service.CheckDatabase(c.Context()); err != nil {
		logger.WithRayID(h.service.logger, c).Warn("Health check failed", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status":   "unavailable",
			"database": "error",
			"error":    err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"status":   "ok",
		"database": "ok",
	})
}
