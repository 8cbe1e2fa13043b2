package dto

import (
	"time"

	"github.com/google/uuid"

	"proofroom/domain/models"
)

type PhotoResponse struct {
	ID         uuid.UUID `json:"id"`
	GalleryID  uuid.UUID `json:"gallery_id"`
	Filename   string    `json:"filename"`
	MimeType   string    `json:"mime_type"`
	PreviewURL string    `json:"preview_url"`
	IsLiked    bool      `json:"is_liked"`
	Position   int       `json:"position"`
	CreatedAt  time.Time `json:"created_at"`
}

type PhotoListResponse struct {
	Photos []PhotoResponse `json:"photos"`
	Total  int             `json:"total"`
}

type ToggleLikeResponse struct {
	PhotoID  uuid.UUID `json:"photo_id"`
	IsLiked  bool      `json:"is_liked"`
	Previous bool      `json:"previous"`
}

func PhotoToResponse(photo *models.Photo) PhotoResponse {
	return PhotoResponse{
		ID:         photo.ID,
		GalleryID:  photo.GalleryID,
		Filename:   photo.Filename,
		MimeType:   photo.MimeType,
		PreviewURL: photo.PreviewURL,
		IsLiked:    photo.IsLiked,
		Position:   photo.Position,
		CreatedAt:  photo.CreatedAt,
	}
}

func PhotosToResponse(photos []models.Photo) PhotoListResponse {
	out := make([]PhotoResponse, 0, len(photos))
	for i := range photos {
		out = append(out, PhotoToResponse(&photos[i]))
	}
	return PhotoListResponse{Photos: out, Total: len(out)}
}
