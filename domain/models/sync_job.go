package models

import (
	"time"

	"github.com/google/uuid"
)

type SyncJobStatus string

const (
	SyncJobStatusPending   SyncJobStatus = "pending"
	SyncJobStatusRunning   SyncJobStatus = "running"
	SyncJobStatusCompleted SyncJobStatus = "completed"
	SyncJobStatusFailed    SyncJobStatus = "failed"
)

// SyncJob is one queued re-sync of a gallery from its source folder.
type SyncJob struct {
	ID        uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	GalleryID uuid.UUID `gorm:"type:uuid;not null;index" json:"gallery_id"`

	Status SyncJobStatus `gorm:"default:'pending';index" json:"status"`

	// Progress tracking
	TotalItems     int `gorm:"default:0" json:"total_items"`
	ProcessedItems int `gorm:"default:0" json:"processed_items"`

	// Timing
	StartedAt   *time.Time `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at"`

	// Error info
	LastError string `gorm:"type:text" json:"last_error,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Gallery Gallery `gorm:"foreignKey:GalleryID" json:"-"`
}

func (SyncJob) TableName() string {
	return "sync_jobs"
}
