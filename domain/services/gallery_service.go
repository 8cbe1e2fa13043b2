package services

import (
	"context"

	"github.com/google/uuid"

	"proofroom/domain/models"
)

type CreateGalleryInput struct {
	Title    string
	SourceID uuid.UUID
}

type UpdateGalleryInput struct {
	Title    *string
	SourceID *uuid.UUID
}

// GalleryStats bundles a gallery with its photo counters for list views.
type GalleryStats struct {
	Gallery    models.Gallery
	PhotoCount int64
	LikedCount int64
}

type GalleryService interface {
	// Create inserts the gallery and runs an initial sync from its
	// source folder. If the sync fails the gallery row is deleted again
	// and the sync error propagates; no empty gallery is left behind.
	Create(ctx context.Context, adminID uuid.UUID, input CreateGalleryInput) (*models.Gallery, int, error)

	Get(ctx context.Context, adminID, galleryID uuid.UUID) (*models.Gallery, error)
	GetByShareToken(ctx context.Context, token string) (*models.Gallery, error)
	List(ctx context.Context, adminID uuid.UUID) ([]GalleryStats, error)
	Update(ctx context.Context, adminID, galleryID uuid.UUID, input UpdateGalleryInput) (*models.Gallery, error)

	// Delete removes the gallery and all its photos.
	Delete(ctx context.Context, adminID, galleryID uuid.UUID) error

	// Reorder assigns display_order 0..n-1 following the given id order.
	Reorder(ctx context.Context, adminID uuid.UUID, orderedIDs []uuid.UUID) error

	// EnqueueSync queues a background re-sync of the gallery from its
	// source folder.
	EnqueueSync(ctx context.Context, adminID, galleryID uuid.UUID) (*models.SyncJob, error)

	GetSyncStatus(ctx context.Context, adminID, galleryID uuid.UUID) (*models.SyncJob, error)
}
