package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"proofroom/domain/models"
	"proofroom/domain/repositories"
)

type PhotoRepositoryImpl struct {
	db *gorm.DB
}

func NewPhotoRepository(db *gorm.DB) repositories.PhotoRepository {
	return &PhotoRepositoryImpl{db: db}
}

func (r *PhotoRepositoryImpl) CreateBatch(ctx context.Context, photos []*models.Photo) error {
	if len(photos) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(photos, 100).Error
}

func (r *PhotoRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Photo, error) {
	var photo models.Photo
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&photo).Error
	if err != nil {
		return nil, err
	}
	return &photo, nil
}

func (r *PhotoRepositoryImpl) ListByGallery(ctx context.Context, galleryID uuid.UUID, liked *bool) ([]models.Photo, error) {
	var photos []models.Photo

	query := r.db.WithContext(ctx).Where("gallery_id = ?", galleryID)
	if liked != nil {
		query = query.Where("is_liked = ?", *liked)
	}

	err := query.Order("position ASC").Find(&photos).Error
	return photos, err
}

func (r *PhotoRepositoryImpl) ListRemoteFileIDs(ctx context.Context, galleryID uuid.UUID) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&models.Photo{}).
		Where("gallery_id = ?", galleryID).
		Pluck("remote_file_id", &ids).Error
	return ids, err
}

func (r *PhotoRepositoryImpl) CountByGallery(ctx context.Context, galleryID uuid.UUID) (int64, int64, error) {
	var total, liked int64

	if err := r.db.WithContext(ctx).Model(&models.Photo{}).
		Where("gallery_id = ?", galleryID).
		Count(&total).Error; err != nil {
		return 0, 0, err
	}

	if err := r.db.WithContext(ctx).Model(&models.Photo{}).
		Where("gallery_id = ? AND is_liked = ?", galleryID, true).
		Count(&liked).Error; err != nil {
		return 0, 0, err
	}

	return total, liked, nil
}

func (r *PhotoRepositoryImpl) SetLiked(ctx context.Context, id uuid.UUID, liked bool) error {
	return r.db.WithContext(ctx).Model(&models.Photo{}).Where("id = ?", id).Updates(map[string]interface{}{
		"is_liked":   liked,
		"updated_at": time.Now(),
	}).Error
}

func (r *PhotoRepositoryImpl) DeleteByGallery(ctx context.Context, galleryID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("gallery_id = ?", galleryID).Delete(&models.Photo{})
	return result.RowsAffected, result.Error
}
