package models

import (
	"time"

	"github.com/google/uuid"
)

// Source is a registered Google Drive folder that galleries sync from.
// Deleting a source does not delete its galleries; they are decoupled.
type Source struct {
	ID      uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	AdminID uuid.UUID `gorm:"type:uuid;not null;index"`

	Name      string `gorm:"not null"`
	FolderID  string `gorm:"not null"` // Google Drive folder ID
	FolderURL string // Folder reference as entered by the admin

	DisplayOrder int `gorm:"default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time

	// Relations
	Admin     Admin     `gorm:"foreignKey:AdminID"`
	Galleries []Gallery `gorm:"foreignKey:SourceID"`
}

func (Source) TableName() string {
	return "sources"
}
