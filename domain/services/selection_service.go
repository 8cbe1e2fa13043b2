package services

import (
	"context"

	"github.com/google/uuid"

	"proofroom/domain/models"
)

type PhotoFilter string

const (
	FilterAll     PhotoFilter = "all"
	FilterLiked   PhotoFilter = "liked"
	FilterUnliked PhotoFilter = "unliked"
)

type ExportFormat string

const (
	ExportJSON ExportFormat = "json"
	ExportCSV  ExportFormat = "csv"
)

// ToggleResult reports a like flip. PriorValue lets callers roll back an
// optimistic UI update without re-reading the photo; when Committed is false
// the persisted value is still PriorValue.
type ToggleResult struct {
	Committed  bool
	PriorValue bool
	NewValue   bool
}

type SelectionCounts struct {
	Total   int64 `json:"total"`
	Liked   int64 `json:"liked"`
	Unliked int64 `json:"unliked"`
}

// ExportPayload is the rendered export document.
type ExportPayload struct {
	Content     []byte
	ContentType string
	Filename    string
}

type SelectionService interface {
	// ToggleLike flips is_liked on a photo. Rejected with InvalidState
	// while the gallery's selections are submitted.
	ToggleLike(ctx context.Context, galleryID, photoID uuid.UUID) (*ToggleResult, error)

	// ListPhotos returns gallery photos in position order, optionally
	// narrowed to liked or unliked.
	ListPhotos(ctx context.Context, galleryID uuid.UUID, filter PhotoFilter) ([]models.Photo, error)

	Counts(ctx context.Context, galleryID uuid.UUID) (*SelectionCounts, error)

	// Submit locks the selection. InvalidState when nothing is liked.
	Submit(ctx context.Context, galleryID uuid.UUID) error

	// Reopen unlocks the selection; always allowed.
	Reopen(ctx context.Context, galleryID uuid.UUID) error

	// ExportLiked renders the liked filenames as JSON or CSV, in gallery
	// photo order.
	ExportLiked(ctx context.Context, galleryID uuid.UUID, format ExportFormat) (*ExportPayload, error)
}
