package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"proofroom/domain/models"
)

type SyncJobRepository interface {
	Create(ctx context.Context, job *models.SyncJob) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.SyncJob, error)
	GetLatestByGallery(ctx context.Context, galleryID uuid.UUID) (*models.SyncJob, error)
	GetPendingJobs(ctx context.Context, limit int) ([]models.SyncJob, error)
	HasPendingOrRunningJobForGallery(ctx context.Context, galleryID uuid.UUID) (bool, error)
	Update(ctx context.Context, id uuid.UUID, job *models.SyncJob) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.SyncJobStatus) error
	UpdateProgress(ctx context.Context, id uuid.UUID, processed int) error

	// ResetStuck marks running jobs older than the threshold as failed so
	// a crashed worker cannot wedge a gallery forever.
	ResetStuck(ctx context.Context, olderThan time.Duration) (int64, error)

	DeleteByGallery(ctx context.Context, galleryID uuid.UUID) error
}
