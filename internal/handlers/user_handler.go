package handlers

import (
	"errors"
	"log/slog"

	"github.com/dinerate/dinerate-backend/internal/dto"
	"github.com/dinerate/dinerate-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

// SessionTokenHeader carries the signed session token on login responses.
const SessionTokenHeader = "X-Session-Token"

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Login resolves the email to a user, creating one on first sight.
// 200 for an existing user, 201 for a newly created one.
func (h *UserHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid request body",
		})
	}

	user, created, err := h.userService.LoginOrCreate(c.Context(), req.Email, req.Name)
	if err != nil {
		if errors.Is(err, services.ErrEmailRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: err.Error(),
			})
		}
		slog.Error("login failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "Server error",
		})
	}

	if token, err := h.userService.IssueSessionToken(user); err != nil {
		slog.Error("session token signing failed", "error", err, "user_id", user.UserID)
	} else if token != "" {
		c.Set(SessionTokenHeader, token)
	}

	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(dto.UserResponse{
		UserID: user.UserID,
		Email:  user.Email,
		Name:   user.Name,
	})
}
