package asset

import (
	"errors"

	"asset-tracker/core/logger"
	"asset-tracker/feature/asset/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for assets.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the asset routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/assets")
	group.Post("/", h.HandleCreateAsset)
	group.Get("/:id", h.HandleGetAsset)
	group.Put("/:id", h.HandleUpdateAsset)
	group.Delete("/:id", h.HandleDeleteAsset)

	app.Get("/employees/:employee_id/assets", h.HandleListEmployeeAssets)
}

// HandleCreateAsset creates a new asset record.
// @Summary Create Asset
// @Description Stores a new asset record and returns it with its generated id.
// @Tags assets
// @Accept json
// @Produce json
// @Param asset body models.Fields true "Asset"
// @Success 201 {object} models.Asset "Created Asset"
// @Failure 400 {object} map[string]interface{} "Validation Error"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /assets/ [post]
func (h *Handler) HandleCreateAsset(c *fiber.Ctx) error {
	in, err := models.ParseFields(c.Body())
	if err != nil {
		return h.respondError(c, err)
	}

	created, err := h.service.Create(c.Context(), in)
	if err != nil {
		return h.respondError(c, err)
	}

	logger.WithRayID(h.service.logger, c).Info("Asset created",
		zap.String("id", created.ID.Hex()),
		zap.String("employee_id", created.EmployeeID))

	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleGetAsset returns a single asset.
// @Summary Get Asset
// @Description Get an asset record by its id.
// @Tags assets
// @Produce json
// @Param id path string true "Asset ID (24 hex characters)"
// @Success 200 {object} models.Asset "Asset"
// @Failure 400 {object} map[string]string "Invalid asset ID"
// @Failure 404 {object} map[string]string "Asset not found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /assets/{id} [get]
func (h *Handler) HandleGetAsset(c *fiber.Ctx) error {
	a, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(a)
}

// HandleListEmployeeAssets returns every asset assigned to an employee.
// @Summary List Employee Assets
// @Description Get all asset records whose employee_id matches exactly. An employee without assets yields an empty list.
// @Tags assets
// @Produce json
// @Param employee_id path string true "Employee ID"
// @Success 200 {array} models.Asset "Assets"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /employees/{employee_id}/assets/ [get]
func (h *Handler) HandleListEmployeeAssets(c *fiber.Ctx) error {
	assets, err := h.service.ListByEmployee(c.Context(), c.Params("employee_id"))
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(assets)
}

// HandleUpdateAsset overwrites the supplied fields of an asset.
// @Summary Update Asset
// @Description Partially update an asset. Only the supplied fields change; null values are ignored.
// @Tags assets
// @Accept json
// @Produce json
// @Param id path string true "Asset ID (24 hex characters)"
// @Param fields body models.Fields true "Fields to overwrite (any subset)"
// @Success 200 {object} models.Asset "Updated Asset"
// @Failure 400 {object} map[string]interface{} "Invalid asset ID, empty or invalid update"
// @Failure 404 {object} map[string]string "Asset not found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /assets/{id} [put]
func (h *Handler) HandleUpdateAsset(c *fiber.Ctx) error {
	id := c.Params("id")

	u, err := models.ParseUpdate(c.Body())
	if err != nil {
		return h.respondError(c, err)
	}

	updated, err := h.service.Update(c.Context(), id, u)
	if err != nil {
		return h.respondError(c, err)
	}

	logger.WithRayID(h.service.logger, c).Info("Asset updated",
		zap.String("id", id),
		zap.Strings("fields", u.Names()))

	return c.JSON(updated)
}

// HandleDeleteAsset removes an asset.
// @Summary Delete Asset
// @Description Permanently delete an asset record.
// @Tags assets
// @Produce json
// @Param id path string true "Asset ID (24 hex characters)"
// @Success 200 {object} map[string]string "Confirmation"
// @Failure 400 {object} map[string]string "Invalid asset ID"
// @Failure 404 {object} map[string]string "Asset not found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /assets/{id} [delete]
func (h *Handler) HandleDeleteAsset(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.Delete(c.Context(), id); err != nil {
		return h.respondError(c, err)
	}

	logger.WithRayID(h.service.logger, c).Info("Asset deleted", zap.String("id", id))

	return c.JSON(fiber.Map{"message": "Asset deleted successfully"})
}

// respondError maps service errors to status codes.
func (h *Handler) respondError(c *fiber.Ctx, err error) error {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		body := fiber.Map{"error": verr.Error()}
		if len(verr.Fields) > 0 {
			body["fields"] = verr.Fields
		}
		return c.Status(fiber.StatusBadRequest).JSON(body)
	case errors.Is(err, ErrInvalidID):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid asset ID"})
	case errors.Is(err, ErrEmptyUpdate):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No fields to update"})
	case errors.Is(err, ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Asset not found"})
	}

	logger.WithRayID(h.service.logger, c).Error("Asset store operation failed",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database operation failed"})
}
