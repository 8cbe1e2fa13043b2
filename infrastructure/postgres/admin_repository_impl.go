package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"proofroom/domain/models"
	"proofroom/domain/repositories"
)

type AdminRepositoryImpl struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) repositories.AdminRepository {
	return &AdminRepositoryImpl{db: db}
}

func (r *AdminRepositoryImpl) Create(ctx context.Context, admin *models.Admin) error {
	return r.db.WithContext(ctx).Create(admin).Error
}

func (r *AdminRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&admin).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *AdminRepositoryImpl) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&admin).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *AdminRepositoryImpl) Update(ctx context.Context, id uuid.UUID, admin *models.Admin) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Updates(admin).Error
}
