package routes

import (
	"github.com/gofiber/fiber/v2"

	"proofroom/interfaces/api/handlers"
	"proofroom/interfaces/api/middleware"
)

func SetupSourceRoutes(api fiber.Router, h *handlers.Handlers) {
	sources := api.Group("/sources", middleware.Protected())

	sources.Post("/", h.Source.Create)
	sources.Get("/", h.Source.List)
	sources.Put("/reorder", h.Source.Reorder)
	sources.Put("/:id", h.Source.Update)
	sources.Delete("/:id", h.Source.Delete)
}
