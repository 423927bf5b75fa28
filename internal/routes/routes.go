package routes

import (
	"github.com/dinerate/dinerate-backend/internal/config"
	"github.com/dinerate/dinerate-backend/internal/handlers"
	"github.com/dinerate/dinerate-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	userHandler *handlers.UserHandler,
	catalogHandler *handlers.CatalogHandler,
	reviewHandler *handlers.ReviewHandler,
	healthHandler *handlers.HealthHandler,
) {
	app.Get("/health", healthHandler.Check)

	app.Post("/login", userHandler.Login)
	app.Get("/restaurants", catalogHandler.List)
	app.Get("/reviews", reviewHandler.List)

	if cfg.RequireSession {
		app.Post("/reviews", middleware.SessionProtected(cfg), reviewHandler.Create)
	} else {
		app.Post("/reviews", reviewHandler.Create)
	}
}
