package repositories

import (
	"context"

	"github.com/google/uuid"

	"proofroom/domain/models"
)

type GalleryRepository interface {
	Create(ctx context.Context, gallery *models.Gallery) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Gallery, error)
	GetByShareToken(ctx context.Context, token string) (*models.Gallery, error)
	GetByAdmin(ctx context.Context, adminID uuid.UUID) ([]models.Gallery, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	UpdateDisplayOrder(ctx context.Context, id uuid.UUID, order int) error
	SetSubmitted(ctx context.Context, id uuid.UUID, submitted bool) error

	// Delete removes the gallery and cascades to its photos.
	Delete(ctx context.Context, id uuid.UUID) error

	// DetachSource clears source_id on all galleries of a deleted source.
	DetachSource(ctx context.Context, sourceID uuid.UUID) (int64, error)

	CountByAdmin(ctx context.Context, adminID uuid.UUID) (int64, error)
}
