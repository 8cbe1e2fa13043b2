package models

import (
	"time"

	"github.com/google/uuid"
)

// Photo is one synced image in a gallery. Rows are created only by the sync
// reconciler, in a single batch per sync run. Filename is kept verbatim from
// Drive; it is the sole identity used in exports.
type Photo struct {
	ID        uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	GalleryID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_photos_gallery_remote_file"`

	// Google Drive metadata
	RemoteFileID string `gorm:"not null;uniqueIndex:idx_photos_gallery_remote_file"`
	Filename     string `gorm:"not null"`
	MimeType     string
	PreviewURL   string

	// Selection state
	IsLiked bool `gorm:"default:false"`

	// Position in the upstream listing; drives display and export order
	Position int `gorm:"not null;default:0"`

	// Optional camera/exposure JSON, written once at ingestion
	Metadata string `gorm:"type:jsonb"`

	CreatedAt time.Time
	UpdatedAt time.Time

	// Relations
	Gallery Gallery `gorm:"foreignKey:GalleryID"`
}

func (Photo) TableName() string {
	return "photos"
}
