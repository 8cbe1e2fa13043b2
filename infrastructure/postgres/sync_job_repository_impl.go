package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"proofroom/domain/models"
	"proofroom/domain/repositories"
)

type SyncJobRepositoryImpl struct {
	db *gorm.DB
}

func NewSyncJobRepository(db *gorm.DB) repositories.SyncJobRepository {
	return &SyncJobRepositoryImpl{db: db}
}

func (r *SyncJobRepositoryImpl) Create(ctx context.Context, job *models.SyncJob) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *SyncJobRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.SyncJob, error) {
	var job models.SyncJob
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&job).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *SyncJobRepositoryImpl) GetLatestByGallery(ctx context.Context, galleryID uuid.UUID) (*models.SyncJob, error) {
	var job models.SyncJob
	err := r.db.WithContext(ctx).
		Where("gallery_id = ?", galleryID).
		Order("created_at DESC").
		First(&job).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *SyncJobRepositoryImpl) GetPendingJobs(ctx context.Context, limit int) ([]models.SyncJob, error) {
	var jobs []models.SyncJob
	query := r.db.WithContext(ctx).
		Where("status = ?", models.SyncJobStatusPending).
		Order("created_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	err := query.Find(&jobs).Error
	return jobs, err
}

func (r *SyncJobRepositoryImpl) HasPendingOrRunningJobForGallery(ctx context.Context, galleryID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.SyncJob{}).
		Where("gallery_id = ? AND status IN ?", galleryID,
			[]models.SyncJobStatus{models.SyncJobStatusPending, models.SyncJobStatusRunning}).
		Count(&count).Error
	return count > 0, err
}

func (r *SyncJobRepositoryImpl) Update(ctx context.Context, id uuid.UUID, job *models.SyncJob) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Updates(job).Error
}

func (r *SyncJobRepositoryImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status models.SyncJobStatus) error {
	updates := map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	}

	if status == models.SyncJobStatusRunning {
		now := time.Now()
		updates["started_at"] = &now
	} else if status == models.SyncJobStatusCompleted || status == models.SyncJobStatusFailed {
		now := time.Now()
		updates["completed_at"] = &now
	}

	return r.db.WithContext(ctx).Model(&models.SyncJob{}).Where("id = ?", id).Updates(updates).Error
}

func (r *SyncJobRepositoryImpl) UpdateProgress(ctx context.Context, id uuid.UUID, processed int) error {
	updates := map[string]interface{}{
		"processed_items": processed,
		"updated_at":      time.Now(),
	}
	return r.db.WithContext(ctx).Model(&models.SyncJob{}).Where("id = ?", id).Updates(updates).Error
}

func (r *SyncJobRepositoryImpl) ResetStuck(ctx context.Context, olderThan time.Duration) (int64, error) {
	threshold := time.Now().Add(-olderThan)
	now := time.Now()

	result := r.db.WithContext(ctx).Model(&models.SyncJob{}).
		Where("status = ?", models.SyncJobStatusRunning).
		Where("updated_at < ?", threshold).
		Updates(map[string]interface{}{
			"status":       models.SyncJobStatusFailed,
			"last_error":   "sync worker did not report back, job reset",
			"completed_at": &now,
			"updated_at":   now,
		})

	return result.RowsAffected, result.Error
}

func (r *SyncJobRepositoryImpl) DeleteByGallery(ctx context.Context, galleryID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("gallery_id = ?", galleryID).Delete(&models.SyncJob{}).Error
}
