package repositories

import (
	"context"

	"github.com/google/uuid"

	"proofroom/domain/models"
)

type PhotoRepository interface {
	// CreateBatch inserts all photos in one batched write. Photos are never
	// created one at a time; only the sync reconciler writes rows.
	CreateBatch(ctx context.Context, photos []*models.Photo) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.Photo, error)

	// ListByGallery returns photos ordered by position. liked=nil returns
	// all photos, otherwise filters on the is_liked flag.
	ListByGallery(ctx context.Context, galleryID uuid.UUID, liked *bool) ([]models.Photo, error)

	// ListRemoteFileIDs returns the Drive file IDs already present in a
	// gallery, for idempotent re-sync.
	ListRemoteFileIDs(ctx context.Context, galleryID uuid.UUID) ([]string, error)

	CountByGallery(ctx context.Context, galleryID uuid.UUID) (total int64, liked int64, err error)

	SetLiked(ctx context.Context, id uuid.UUID, liked bool) error

	DeleteByGallery(ctx context.Context, galleryID uuid.UUID) (int64, error)
}
