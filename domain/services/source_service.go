package services

import (
	"context"

	"github.com/google/uuid"

	"proofroom/domain/models"
)

// CreateSourceInput carries a validated folder reference. FolderRef accepts a
// full Drive URL, an id= link, or a bare folder ID.
type CreateSourceInput struct {
	Name      string
	FolderRef string
}

type UpdateSourceInput struct {
	Name      *string
	FolderRef *string
}

type SourceService interface {
	Create(ctx context.Context, adminID uuid.UUID, input CreateSourceInput) (*models.Source, error)
	List(ctx context.Context, adminID uuid.UUID) ([]models.Source, error)
	Update(ctx context.Context, adminID, sourceID uuid.UUID, input UpdateSourceInput) (*models.Source, error)

	// Delete removes the source and decouples its galleries (source_id
	// set to NULL). Galleries and their photos survive.
	Delete(ctx context.Context, adminID, sourceID uuid.UUID) error

	// Reorder assigns display_order 0..n-1 following the given id order.
	Reorder(ctx context.Context, adminID uuid.UUID, orderedIDs []uuid.UUID) error
}
