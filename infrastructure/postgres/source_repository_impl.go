package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"proofroom/domain/models"
	"proofroom/domain/repositories"
)

type SourceRepositoryImpl struct {
	db *gorm.DB
}

func NewSourceRepository(db *gorm.DB) repositories.SourceRepository {
	return &SourceRepositoryImpl{db: db}
}

func (r *SourceRepositoryImpl) Create(ctx context.Context, source *models.Source) error {
	return r.db.WithContext(ctx).Create(source).Error
}

func (r *SourceRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Source, error) {
	var source models.Source
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&source).Error
	if err != nil {
		return nil, err
	}
	return &source, nil
}

func (r *SourceRepositoryImpl) GetByAdmin(ctx context.Context, adminID uuid.UUID) ([]models.Source, error) {
	var sources []models.Source
	err := r.db.WithContext(ctx).
		Where("admin_id = ?", adminID).
		Order("display_order ASC, created_at ASC").
		Find(&sources).Error
	return sources, err
}

func (r *SourceRepositoryImpl) Update(ctx context.Context, id uuid.UUID, source *models.Source) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Updates(source).Error
}

func (r *SourceRepositoryImpl) UpdateDisplayOrder(ctx context.Context, id uuid.UUID, order int) error {
	return r.db.WithContext(ctx).Model(&models.Source{}).Where("id = ?", id).Updates(map[string]interface{}{
		"display_order": order,
		"updated_at":    time.Now(),
	}).Error
}

func (r *SourceRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Source{}).Error
}

func (r *SourceRepositoryImpl) CountByAdmin(ctx context.Context, adminID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Source{}).Where("admin_id = ?", adminID).Count(&count).Error
	return count, err
}
