package repositories

import (
	"context"

	"github.com/google/uuid"

	"proofroom/domain/models"
)

type AdminRepository interface {
	Create(ctx context.Context, admin *models.Admin) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Admin, error)
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
	Update(ctx context.Context, id uuid.UUID, admin *models.Admin) error
}
