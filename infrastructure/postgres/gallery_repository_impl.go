package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"proofroom/domain/models"
	"proofroom/domain/repositories"
)

type GalleryRepositoryImpl struct {
	db *gorm.DB
}

func NewGalleryRepository(db *gorm.DB) repositories.GalleryRepository {
	return &GalleryRepositoryImpl{db: db}
}

func (r *GalleryRepositoryImpl) Create(ctx context.Context, gallery *models.Gallery) error {
	return r.db.WithContext(ctx).Create(gallery).Error
}

func (r *GalleryRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Gallery, error) {
	var gallery models.Gallery
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&gallery).Error
	if err != nil {
		return nil, err
	}
	return &gallery, nil
}

func (r *GalleryRepositoryImpl) GetByShareToken(ctx context.Context, token string) (*models.Gallery, error) {
	var gallery models.Gallery
	err := r.db.WithContext(ctx).Where("share_token = ?", token).First(&gallery).Error
	if err != nil {
		return nil, err
	}
	return &gallery, nil
}

func (r *GalleryRepositoryImpl) GetByAdmin(ctx context.Context, adminID uuid.UUID) ([]models.Gallery, error) {
	var galleries []models.Gallery
	err := r.db.WithContext(ctx).
		Where("admin_id = ?", adminID).
		Order("display_order ASC, created_at DESC").
		Find(&galleries).Error
	return galleries, err
}

func (r *GalleryRepositoryImpl) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()
	return r.db.WithContext(ctx).Model(&models.Gallery{}).Where("id = ?", id).Updates(updates).Error
}

func (r *GalleryRepositoryImpl) UpdateDisplayOrder(ctx context.Context, id uuid.UUID, order int) error {
	return r.db.WithContext(ctx).Model(&models.Gallery{}).Where("id = ?", id).Updates(map[string]interface{}{
		"display_order": order,
		"updated_at":    time.Now(),
	}).Error
}

func (r *GalleryRepositoryImpl) SetSubmitted(ctx context.Context, id uuid.UUID, submitted bool) error {
	return r.db.WithContext(ctx).Model(&models.Gallery{}).Where("id = ?", id).Updates(map[string]interface{}{
		"selections_submitted": submitted,
		"updated_at":           time.Now(),
	}).Error
}

func (r *GalleryRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	// Photos cascade via FK constraint
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Gallery{}).Error
}

func (r *GalleryRepositoryImpl) DetachSource(ctx context.Context, sourceID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.Gallery{}).
		Where("source_id = ?", sourceID).
		Updates(map[string]interface{}{
			"source_id":  nil,
			"updated_at": time.Now(),
		})
	return result.RowsAffected, result.Error
}

func (r *GalleryRepositoryImpl) CountByAdmin(ctx context.Context, adminID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Gallery{}).Where("admin_id = ?", adminID).Count(&count).Error
	return count, err
}
