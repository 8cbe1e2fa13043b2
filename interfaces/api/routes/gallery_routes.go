package routes

import (
	"github.com/gofiber/fiber/v2"

	"proofroom/interfaces/api/handlers"
	"proofroom/interfaces/api/middleware"
)

func SetupGalleryRoutes(api fiber.Router, h *handlers.Handlers) {
	galleries := api.Group("/galleries", middleware.Protected())

	galleries.Post("/", h.Gallery.Create)
	galleries.Get("/", h.Gallery.List)
	galleries.Put("/reorder", h.Gallery.Reorder)
	galleries.Get("/:id", h.Gallery.Get)
	galleries.Put("/:id", h.Gallery.Update)
	galleries.Delete("/:id", h.Gallery.Delete)

	galleries.Get("/:id/photos", h.Gallery.ListPhotos)
	galleries.Post("/:id/photos/:photoId/like", h.Gallery.ToggleLike)
	galleries.Get("/:id/counts", h.Gallery.Counts)
	galleries.Get("/:id/export", h.Gallery.Export)
	galleries.Post("/:id/reopen", h.Gallery.Reopen)

	galleries.Post("/:id/sync", h.Gallery.Sync)
	galleries.Get("/:id/sync/status", h.Gallery.SyncStatus)
}
