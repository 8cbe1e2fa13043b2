package routes

import (
	"github.com/gofiber/fiber/v2"

	"proofroom/interfaces/api/handlers"
	"proofroom/pkg/config"
)

func SetupRoutes(app *fiber.App, h *handlers.Handlers, cfg *config.Config) {
	// Setup health and root routes
	SetupHealthRoutes(app, h.Health)

	// API version group
	api := app.Group("/api/v1")

	// Setup all route groups
	SetupAuthRoutes(api, h, &cfg.RateLimit)
	SetupSourceRoutes(api, h)
	SetupGalleryRoutes(api, h)
	SetupClientRoutes(api, h)

	// Setup WebSocket routes (needs app, not api group)
	SetupWebSocketRoutes(app)
}
