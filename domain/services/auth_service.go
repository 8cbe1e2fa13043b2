package services

import (
	"context"

	"github.com/google/uuid"

	"proofroom/domain/models"
)

type AuthService interface {
	// Register creates an admin account and returns a session token.
	Register(ctx context.Context, email, password, name string) (string, *models.Admin, error)

	// Login verifies credentials and returns a session token.
	Login(ctx context.Context, email, password string) (string, *models.Admin, error)

	GetCurrentAdmin(ctx context.Context, adminID uuid.UUID) (*models.Admin, error)
}
