package dto

import (
	"time"

	"github.com/google/uuid"

	"proofroom/domain/models"
)

type CreateGalleryRequest struct {
	Title    string    `json:"title" validate:"required,min=1,max=200"`
	SourceID uuid.UUID `json:"source_id" validate:"required"`
}

type UpdateGalleryRequest struct {
	Title    *string    `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	SourceID *uuid.UUID `json:"source_id,omitempty"`
}

type GalleryResponse struct {
	ID                  uuid.UUID  `json:"id"`
	SourceID            *uuid.UUID `json:"source_id,omitempty"`
	Title               string     `json:"title"`
	ShareToken          string     `json:"share_token"`
	SelectionsSubmitted bool       `json:"selections_submitted"`
	DisplayOrder        int        `json:"display_order"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// GalleryStatsResponse adds photo counters to the gallery payload for
// the admin list view.
type GalleryStatsResponse struct {
	GalleryResponse
	PhotoCount int64 `json:"photo_count"`
	LikedCount int64 `json:"liked_count"`
}

type GalleryListResponse struct {
	Galleries []GalleryStatsResponse `json:"galleries"`
}

// ClientGalleryResponse is the payload clients see through a share
// link. It omits the share token and internal ordering.
type ClientGalleryResponse struct {
	ID                  uuid.UUID `json:"id"`
	Title               string    `json:"title"`
	SelectionsSubmitted bool      `json:"selections_submitted"`
}

func GalleryToResponse(gallery *models.Gallery) GalleryResponse {
	return GalleryResponse{
		ID:                  gallery.ID,
		SourceID:            gallery.SourceID,
		Title:               gallery.Title,
		ShareToken:          gallery.ShareToken,
		SelectionsSubmitted: gallery.SelectionsSubmitted,
		DisplayOrder:        gallery.DisplayOrder,
		CreatedAt:           gallery.CreatedAt,
		UpdatedAt:           gallery.UpdatedAt,
	}
}

func GalleryToClientResponse(gallery *models.Gallery) ClientGalleryResponse {
	return ClientGalleryResponse{
		ID:                  gallery.ID,
		Title:               gallery.Title,
		SelectionsSubmitted: gallery.SelectionsSubmitted,
	}
}
