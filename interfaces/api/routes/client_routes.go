package routes

import (
	"github.com/gofiber/fiber/v2"

	"proofroom/interfaces/api/handlers"
)

// Client routes are anonymous; the share token in the path is the only key.
func SetupClientRoutes(api fiber.Router, h *handlers.Handlers) {
	client := api.Group("/client/:token")

	client.Get("/", h.Client.GetGallery)
	client.Get("/photos", h.Client.ListPhotos)
	client.Get("/counts", h.Client.Counts)
	client.Post("/photos/:photoId/like", h.Client.ToggleLike)
	client.Post("/submit", h.Client.Submit)
	client.Post("/reopen", h.Client.Reopen)
}
