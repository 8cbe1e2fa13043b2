package models

import (
	"time"

	"github.com/google/uuid"
)

// Gallery is a synced set of photos shared with one client via ShareToken.
// The token is immutable for the gallery's lifetime.
type Gallery struct {
	ID       uuid.UUID  `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	AdminID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	SourceID *uuid.UUID `gorm:"type:uuid;index"` // NULL after the source is deleted

	Title      string `gorm:"not null"`
	ShareToken string `gorm:"uniqueIndex;not null"`

	SelectionsSubmitted bool `gorm:"default:false"`
	DisplayOrder        int  `gorm:"default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time

	// Relations
	Admin  Admin   `gorm:"foreignKey:AdminID"`
	Source *Source `gorm:"foreignKey:SourceID"`
	Photos []Photo `gorm:"foreignKey:GalleryID;constraint:OnDelete:CASCADE"`
}

func (Gallery) TableName() string {
	return "galleries"
}
