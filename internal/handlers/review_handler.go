package handlers

import (
	"errors"
	"log/slog"

	"github.com/dinerate/dinerate-backend/internal/dto"
	"github.com/dinerate/dinerate-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ReviewHandler struct {
	reviewService *services.ReviewService
}

func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// List returns a restaurant's reviews newest first.
func (h *ReviewHandler) List(c *fiber.Ctx) error {
	restaurantID := c.Query("restaurantId")

	reviews, err := h.reviewService.ListForRestaurant(c.Context(), restaurantID)
	if err != nil {
		if errors.Is(err, services.ErrRestaurantIDRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: err.Error(),
			})
		}
		slog.Error("review listing failed", "error", err, "restaurant_id", restaurantID)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "Server error",
		})
	}
	return c.JSON(fiber.Map{"items": reviews})
}

// Create persists a review and echoes the written record as a flat object.
func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid request body",
		})
	}

	review, err := h.reviewService.Create(c.Context(), services.CreateReviewInput{
		RestaurantID: req.RestaurantID,
		UserID:       req.UserID,
		UserName:     req.UserName,
		Rating:       req.Rating,
		Comment:      req.Comment,
	})
	if err != nil {
		if errors.Is(err, services.ErrReviewFieldsRequired) || errors.Is(err, services.ErrRatingOutOfRange) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: err.Error(),
			})
		}
		slog.Error("review creation failed", "error", err, "restaurant_id", req.RestaurantID)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "Server error",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(review)
}
