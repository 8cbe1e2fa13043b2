package repositories

import (
	"context"

	"github.com/google/uuid"

	"proofroom/domain/models"
)

type SourceRepository interface {
	Create(ctx context.Context, source *models.Source) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Source, error)
	GetByAdmin(ctx context.Context, adminID uuid.UUID) ([]models.Source, error)
	Update(ctx context.Context, id uuid.UUID, source *models.Source) error
	UpdateDisplayOrder(ctx context.Context, id uuid.UUID, order int) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByAdmin(ctx context.Context, adminID uuid.UUID) (int64, error)
}
