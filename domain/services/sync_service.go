package services

import (
	"context"

	"github.com/google/uuid"
)

type SyncResult struct {
	PhotoCount int `json:"photoCount"`
}

type SyncService interface {
	// ResolveFolderReference extracts a Drive folder ID from a URL, an
	// id= link, or a bare ID. Returns ValidationError when nothing
	// ID-shaped is found.
	ResolveFolderReference(ref string) (string, error)

	// SyncToGallery lists the folder, filters eligible images, and batch
	// inserts the new ones into the gallery. All-or-nothing: a listing
	// error commits no rows, and already-synced files are skipped so
	// re-running is idempotent.
	SyncToGallery(ctx context.Context, folderID string, galleryID uuid.UUID) (*SyncResult, error)
}
