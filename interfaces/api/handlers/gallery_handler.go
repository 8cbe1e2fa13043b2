package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"proofroom/domain/dto"
	"proofroom/domain/services"
	"proofroom/pkg/utils"
)

type GalleryHandler struct {
	galleryService   services.GalleryService
	selectionService services.SelectionService
}

func NewGalleryHandler(galleryService services.GalleryService, selectionService services.SelectionService) *GalleryHandler {
	return &GalleryHandler{
		galleryService:   galleryService,
		selectionService: selectionService,
	}
}

// Create makes a gallery and runs the initial sync from its source folder
func (h *GalleryHandler) Create(c *fiber.Ctx) error {
	adminCtx, err := utils.GetAdminFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Not authenticated")
	}

	var req dto.CreateGalleryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := validate.Struct(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	gallery, photoCount, err := h.galleryService.Create(c.Context(), adminCtx.ID, services.CreateGalleryInput{
		Title:    req.Title,
		SourceID: req.SourceID,
	})
	if err != nil {
		return respondError(c, err)
	}

	return utils.CreatedResponse(c, "Gallery created", fiber.Map{
		"gallery":    dto.GalleryToResponse(gallery),
		"photoCount": photoCount,
	})
}

// List returns the admin's galleries with photo counters
func (h *GalleryHandler) List(c *fiber.Ctx) error {
	adminCtx, err := utils.GetAdminFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Not authenticated")
	}

	stats, err := h.galleryService.List(c.Context(), adminCtx.ID)
	if err != nil {
		return respondError(c, err)
	}

	out := make([]dto.GalleryStatsResponse, 0, len(stats))
	for i := range stats {
		out = append(out, dto.GalleryStatsResponse{
			GalleryResponse: dto.GalleryToResponse(&stats[i].Gallery),
			PhotoCount:      stats[i].PhotoCount,
			LikedCount:      stats[i].LikedCount,
		})
	}

	return utils.SuccessResponse(c, "Galleries retrieved", dto.GalleryListResponse{Galleries: out})
}

// Get returns one gallery
func (h *GalleryHandler) Get(c *fiber.Ctx) error {
	adminCtx, galleryID, err := h.adminAndGalleryID(c)
	if err != nil {
		return err
	}

	gallery, err := h.galleryService.Get(c.Context(), adminCtx.ID, galleryID)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, "Gallery retrieved", dto.GalleryToResponse(gallery))
}

// Update changes a gallery's title or source
func (h *GalleryHandler) Update(c *fiber.Ctx) error {
	adminCtx, galleryID, err := h.adminAndGalleryID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateGalleryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := validate.Struct(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	gallery, err := h.galleryService.Update(c.Context(), adminCtx.ID, galleryID, services.UpdateGalleryInput{
		Title:    req.Title,
		SourceID: req.SourceID,
	})
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, "Gallery updated", dto.GalleryToResponse(gallery))
}

// Delete removes a gallery with all its photos
func (h *GalleryHandler) Delete(c *fiber.Ctx) error {
	adminCtx, galleryID, err := h.adminAndGalleryID(c)
	if err != nil {
		return err
	}

	if err := h.galleryService.Delete(c.Context(), adminCtx.ID, galleryID); err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, "Gallery deleted", nil)
}

// Reorder applies a new display order across all galleries
func (h *GalleryHandler) Reorder(c *fiber.Ctx) error {
	adminCtx, err := utils.GetAdminFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Not authenticated")
	}

	var req dto.ReorderRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := validate.Struct(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	if err := h.galleryService.Reorder(c.Context(), adminCtx.ID, req.OrderedIDs); err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, "Galleries reordered", nil)
}

// ListPhotos returns gallery photos, optionally filtered with ?filter=liked|unliked
func (h *GalleryHandler) ListPhotos(c *fiber.Ctx) error {
	adminCtx, galleryID, err := h.adminAndGalleryID(c)
	if err != nil {
		return err
	}

	// Ownership check before touching photos
	if _, err := h.galleryService.Get(c.Context(), adminCtx.ID, galleryID); err != nil {
		return respondError(c, err)
	}

	filter := services.PhotoFilter(c.Query("filter", string(services.FilterAll)))
	photos, err := h.selectionService.ListPhotos(c.Context(), galleryID, filter)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, "Photos retrieved", dto.PhotosToResponse(photos))
}

// Counts returns total/liked/unliked counters
func (h *GalleryHandler) Counts(c *fiber.Ctx) error {
	adminCtx, galleryID, err := h.adminAndGalleryID(c)
	if err != nil {
		return err
	}

	if _, err := h.galleryService.Get(c.Context(), adminCtx.ID, galleryID); err != nil {
		return respondError(c, err)
	}

	counts, err := h.selectionService.Counts(c.Context(), galleryID)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, "Counts retrieved", counts)
}

// Export downloads the liked filenames as ?format=json|csv
func (h *GalleryHandler) Export(c *fiber.Ctx) error {
	adminCtx, galleryID, err := h.adminAndGalleryID(c)
	if err != nil {
		return err
	}

	if _, err := h.galleryService.Get(c.Context(), adminCtx.ID, galleryID); err != nil {
		return respondError(c, err)
	}

	format := services.ExportFormat(c.Query("format", string(services.ExportJSON)))
	payload, err := h.selectionService.ExportLiked(c.Context(), galleryID, format)
	if err != nil {
		return respondError(c, err)
	}

	c.Set(fiber.HeaderContentType, payload.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", payload.Filename))
	return c.Send(payload.Content)
}

// ToggleLike lets the admin curate likes directly
func (h *GalleryHandler) ToggleLike(c *fiber.Ctx) error {
	adminCtx, galleryID, err := h.adminAndGalleryID(c)
	if err != nil {
		return err
	}

	if _, err := h.galleryService.Get(c.Context(), adminCtx.ID, galleryID); err != nil {
		return respondError(c, err)
	}

	photoID, err := uuid.Parse(c.Params("photoId"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid photo ID", err)
	}

	result, err := h.selectionService.ToggleLike(c.Context(), galleryID, photoID)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, "Like toggled", dto.ToggleLikeResponse{
		PhotoID:  photoID,
		IsLiked:  result.NewValue,
		Previous: result.PriorValue,
	})
}

// Reopen unlocks a submitted selection for further changes
func (h *GalleryHandler) Reopen(c *fiber.Ctx) error {
	adminCtx, galleryID, err := h.adminAndGalleryID(c)
	if err != nil {
		return err
	}

	if _, err := h.galleryService.Get(c.Context(), adminCtx.ID, galleryID); err != nil {
		return respondError(c, err)
	}

	if err := h.selectionService.Reopen(c.Context(), galleryID); err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, "Selection reopened", nil)
}

// Sync queues a background re-sync from the source folder
func (h *GalleryHandler) Sync(c *fiber.Ctx) error {
	adminCtx, galleryID, err := h.adminAndGalleryID(c)
	if err != nil {
		return err
	}

	job, err := h.galleryService.EnqueueSync(c.Context(), adminCtx.ID, galleryID)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, "Sync queued", dto.SyncJobToResponse(job))
}

// SyncStatus returns the latest sync job for the gallery
func (h *GalleryHandler) SyncStatus(c *fiber.Ctx) error {
	adminCtx, galleryID, err := h.adminAndGalleryID(c)
	if err != nil {
		return err
	}

	job, err := h.galleryService.GetSyncStatus(c.Context(), adminCtx.ID, galleryID)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, "Sync status retrieved", dto.SyncJobToResponse(job))
}

func (h *GalleryHandler) adminAndGalleryID(c *fiber.Ctx) (*utils.AdminContext, uuid.UUID, error) {
	adminCtx, err := utils.GetAdminFromContext(c)
	if err != nil {
		return nil, uuid.Nil, utils.UnauthorizedResponse(c, "Not authenticated")
	}

	galleryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, uuid.Nil, utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid gallery ID", err)
	}

	return adminCtx, galleryID, nil
}
