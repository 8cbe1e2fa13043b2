package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"proofroom/domain/dto"
	"proofroom/domain/models"
	"proofroom/domain/services"
	"proofroom/pkg/utils"
)

// ClientHandler serves the anonymous share-link surface. Every route is
// keyed by the gallery's share token; no login is involved.
type ClientHandler struct {
	galleryService   services.GalleryService
	selectionService services.SelectionService
}

func NewClientHandler(galleryService services.GalleryService, selectionService services.SelectionService) *ClientHandler {
	return &ClientHandler{
		galleryService:   galleryService,
		selectionService: selectionService,
	}
}

// GetGallery returns the gallery behind a share token
func (h *ClientHandler) GetGallery(c *fiber.Ctx) error {
	gallery, err := h.resolveGallery(c)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, "Gallery retrieved", dto.GalleryToClientResponse(gallery))
}

// ListPhotos returns the gallery's photos, optionally ?filter=liked|unliked
func (h *ClientHandler) ListPhotos(c *fiber.Ctx) error {
	gallery, err := h.resolveGallery(c)
	if err != nil {
		return respondError(c, err)
	}

	filter := services.PhotoFilter(c.Query("filter", string(services.FilterAll)))
	photos, err := h.selectionService.ListPhotos(c.Context(), gallery.ID, filter)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, "Photos retrieved", dto.PhotosToResponse(photos))
}

// ToggleLike flips the like mark on one photo
func (h *ClientHandler) ToggleLike(c *fiber.Ctx) error {
	gallery, err := h.resolveGallery(c)
	if err != nil {
		return respondError(c, err)
	}

	photoID, err := uuid.Parse(c.Params("photoId"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid photo ID", err)
	}

	result, err := h.selectionService.ToggleLike(c.Context(), gallery.ID, photoID)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, "Like toggled", dto.ToggleLikeResponse{
		PhotoID:  photoID,
		IsLiked:  result.NewValue,
		Previous: result.PriorValue,
	})
}

// Counts returns total/liked/unliked counters
func (h *ClientHandler) Counts(c *fiber.Ctx) error {
	gallery, err := h.resolveGallery(c)
	if err != nil {
		return respondError(c, err)
	}

	counts, err := h.selectionService.Counts(c.Context(), gallery.ID)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, "Counts retrieved", counts)
}

// Submit locks the selection so the photographer can export it
func (h *ClientHandler) Submit(c *fiber.Ctx) error {
	gallery, err := h.resolveGallery(c)
	if err != nil {
		return respondError(c, err)
	}

	if err := h.selectionService.Submit(c.Context(), gallery.ID); err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, "Selection submitted", nil)
}

// Reopen unlocks a submitted selection so the client can keep editing
func (h *ClientHandler) Reopen(c *fiber.Ctx) error {
	gallery, err := h.resolveGallery(c)
	if err != nil {
		return respondError(c, err)
	}

	if err := h.selectionService.Reopen(c.Context(), gallery.ID); err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, "Selection reopened", nil)
}

func (h *ClientHandler) resolveGallery(c *fiber.Ctx) (*models.Gallery, error) {
	return h.galleryService.GetByShareToken(c.Context(), c.Params("token"))
}
