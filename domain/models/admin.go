package models

import (
	"time"

	"github.com/google/uuid"
)

// Admin is a photographer account. Owns sources and galleries.
type Admin struct {
	ID       uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Email    string    `gorm:"uniqueIndex;not null"`
	Password string    `gorm:"not null"` // bcrypt hash
	Name     string

	LastLogin *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// Relations
	Sources   []Source  `gorm:"foreignKey:AdminID"`
	Galleries []Gallery `gorm:"foreignKey:AdminID"`
}

func (Admin) TableName() string {
	return "admins"
}
