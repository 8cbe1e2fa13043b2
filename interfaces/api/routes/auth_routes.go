package routes

import (
	"github.com/gofiber/fiber/v2"

	"proofroom/interfaces/api/handlers"
	"proofroom/interfaces/api/middleware"
	"proofroom/pkg/config"
)

func SetupAuthRoutes(api fiber.Router, h *handlers.Handlers, rateCfg *config.RateLimitConfig) {
	auth := api.Group("/auth")

	// Credential endpoints get the stricter limiter
	auth.Post("/register", middleware.AuthRateLimiter(rateCfg), h.Auth.Register)
	auth.Post("/login", middleware.AuthRateLimiter(rateCfg), h.Auth.Login)

	auth.Get("/me", middleware.Protected(), h.Auth.Me)
}
