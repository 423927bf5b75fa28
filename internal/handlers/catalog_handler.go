package handlers

import (
	"log/slog"

	"github.com/dinerate/dinerate-backend/internal/dto"
	"github.com/dinerate/dinerate-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	catalogService *services.CatalogService
}

func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

func (h *CatalogHandler) List(c *fiber.Ctx) error {
	restaurants, err := h.catalogService.ListAll(c.Context())
	if err != nil {
		slog.Error("restaurant listing failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "Server error",
		})
	}
	return c.JSON(fiber.Map{"items": restaurants})
}
