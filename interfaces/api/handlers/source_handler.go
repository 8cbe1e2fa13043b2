package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"proofroom/domain/dto"
	"proofroom/domain/services"
	"proofroom/pkg/utils"
)

type SourceHandler struct {
	sourceService services.SourceService
}

func NewSourceHandler(sourceService services.SourceService) *SourceHandler {
	return &SourceHandler{
		sourceService: sourceService,
	}
}

// Create registers a Drive folder as a source
func (h *SourceHandler) Create(c *fiber.Ctx) error {
	adminCtx, err := utils.GetAdminFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Not authenticated")
	}

	var req dto.CreateSourceRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := validate.Struct(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	source, err := h.sourceService.Create(c.Context(), adminCtx.ID, services.CreateSourceInput{
		Name:      req.Name,
		FolderRef: req.FolderRef,
	})
	if err != nil {
		return respondError(c, err)
	}

	return utils.CreatedResponse(c, "Source created", dto.SourceToResponse(source))
}

// List returns the admin's sources in display order
func (h *SourceHandler) List(c *fiber.Ctx) error {
	adminCtx, err := utils.GetAdminFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Not authenticated")
	}

	sources, err := h.sourceService.List(c.Context(), adminCtx.ID)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, "Sources retrieved", dto.SourcesToResponse(sources))
}

// Update changes a source's name or folder reference
func (h *SourceHandler) Update(c *fiber.Ctx) error {
	adminCtx, err := utils.GetAdminFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Not authenticated")
	}

	sourceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid source ID", err)
	}

	var req dto.UpdateSourceRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := validate.Struct(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	source, err := h.sourceService.Update(c.Context(), adminCtx.ID, sourceID, services.UpdateSourceInput{
		Name:      req.Name,
		FolderRef: req.FolderRef,
	})
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, "Source updated", dto.SourceToResponse(source))
}

// Delete removes a source; its galleries survive detached
func (h *SourceHandler) Delete(c *fiber.Ctx) error {
	adminCtx, err := utils.GetAdminFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Not authenticated")
	}

	sourceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid source ID", err)
	}

	if err := h.sourceService.Delete(c.Context(), adminCtx.ID, sourceID); err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, "Source deleted", nil)
}

// Reorder applies a new display order across all sources
func (h *SourceHandler) Reorder(c *fiber.Ctx) error {
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

	if err := h.sourceService.Reorder(c.Context(), adminCtx.ID, req.OrderedIDs); err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, "Sources reordered", nil)
}
