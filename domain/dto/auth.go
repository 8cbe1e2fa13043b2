package dto

import (
	"time"

	"github.com/google/uuid"

	"proofroom/domain/models"
)

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required,min=1,max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AdminResponse never carries the password hash.
type AdminResponse struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type AuthResponse struct {
	Token string        `json:"token"`
	Admin AdminResponse `json:"admin"`
}

func AdminToResponse(admin *models.Admin) AdminResponse {
	return AdminResponse{
		ID:        admin.ID,
		Email:     admin.Email,
		Name:      admin.Name,
		LastLogin: admin.LastLogin,
		CreatedAt: admin.CreatedAt,
	}
}
