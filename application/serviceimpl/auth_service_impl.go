package serviceimpl

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"proofroom/domain/apperrors"
	"proofroom/domain/models"
	"proofroom/domain/repositories"
	"proofroom/domain/services"
	"proofroom/pkg/logger"
	"proofroom/pkg/utils"
)

type AuthServiceImpl struct {
	adminRepo repositories.AdminRepository
	jwtSecret string
}

func NewAuthService(adminRepo repositories.AdminRepository, jwtSecret string) services.AuthService {
	return &AuthServiceImpl{
		adminRepo: adminRepo,
		jwtSecret: jwtSecret,
	}
}

func (s *AuthServiceImpl) Register(ctx context.Context, email, password, name string) (string, *models.Admin, error) {
	existing, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, apperrors.NewPersistence("lookup admin by email", err)
	}
	if existing != nil {
		return "", nil, apperrors.NewValidation("email %s is already registered", email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, apperrors.NewValidation("password cannot be hashed")
	}

	admin := &models.Admin{
		Email:    email,
		Password: string(hash),
		Name:     name,
	}

	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return "", nil, apperrors.NewPersistence("create admin", err)
	}

	token, err := utils.GenerateToken(admin.ID, admin.Email, admin.Name, s.jwtSecret)
	if err != nil {
		return "", nil, err
	}

	logger.Auth("register", "admin account created", map[string]interface{}{
		"admin_id": admin.ID.String(),
		"email":    admin.Email,
	})

	return token, admin, nil
}

func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (string, *models.Admin, error) {
	admin, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Same error as a wrong password so login probes cannot
			// distinguish unknown emails.
			return "", nil, apperrors.NewValidation("invalid credentials")
		}
		return "", nil, apperrors.NewPersistence("lookup admin by email", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		logger.AuthError("login", "password mismatch", nil, map[string]interface{}{
			"email": email,
		})
		return "", nil, apperrors.NewValidation("invalid credentials")
	}

	now := time.Now()
	admin.LastLogin = &now
	if err := s.adminRepo.Update(ctx, admin.ID, admin); err != nil {
		logger.AuthError("login", "failed to record last login", err, map[string]interface{}{
			"admin_id": admin.ID.String(),
		})
	}

	token, err := utils.GenerateToken(admin.ID, admin.Email, admin.Name, s.jwtSecret)
	if err != nil {
		return "", nil, err
	}

	logger.Auth("login", "admin logged in", map[string]interface{}{
		"admin_id": admin.ID.String(),
	})

	return token, admin, nil
}

func (s *AuthServiceImpl) GetCurrentAdmin(ctx context.Context, adminID uuid.UUID) (*models.Admin, error) {
	admin, err := s.adminRepo.GetByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("admin")
		}
		return nil, apperrors.NewPersistence("lookup admin", err)
	}
	return admin, nil
}
