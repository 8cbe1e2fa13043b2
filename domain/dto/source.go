package dto

import (
	"time"

	"github.com/google/uuid"

	"proofroom/domain/models"
)

type CreateSourceRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=200"`
	FolderRef string `json:"folder_ref" validate:"required"`
}

type UpdateSourceRequest struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	FolderRef *string `json:"folder_ref,omitempty"`
}

type ReorderRequest struct {
	OrderedIDs []uuid.UUID `json:"ordered_ids" validate:"required,min=1"`
}

type SourceResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	FolderID     string    `json:"folder_id"`
	FolderURL    string    `json:"folder_url"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type SourceListResponse struct {
	Sources []SourceResponse `json:"sources"`
}

func SourceToResponse(source *models.Source) SourceResponse {
	return SourceResponse{
		ID:           source.ID,
		Name:         source.Name,
		FolderID:     source.FolderID,
		FolderURL:    source.FolderURL,
		DisplayOrder: source.DisplayOrder,
		CreatedAt:    source.CreatedAt,
		UpdatedAt:    source.UpdatedAt,
	}
}

func SourcesToResponse(sources []models.Source) SourceListResponse {
	out := make([]SourceResponse, 0, len(sources))
	for i := range sources {
		out = append(out, SourceToResponse(&sources[i]))
	}
	return SourceListResponse{Sources: out}
}
