package dto

import (
	"time"

	"github.com/google/uuid"

	"proofroom/domain/models"
)

type SyncJobResponse struct {
	ID             uuid.UUID  `json:"id"`
	GalleryID      uuid.UUID  `json:"gallery_id"`
	Status         string     `json:"status"`
	TotalItems     int        `json:"total_items"`
	ProcessedItems int        `json:"processed_items"`
	StartedAt      *time.Time `json:"started_at,omitempty"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	LastError      string     `json:"last_error,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func SyncJobToResponse(job *models.SyncJob) *SyncJobResponse {
	if job == nil {
		return nil
	}
	return &SyncJobResponse{
		ID:             job.ID,
		GalleryID:      job.GalleryID,
		Status:         string(job.Status),
		TotalItems:     job.TotalItems,
		ProcessedItems: job.ProcessedItems,
		StartedAt:      job.StartedAt,
		CompletedAt:    job.CompletedAt,
		LastError:      job.LastError,
		CreatedAt:      job.CreatedAt,
	}
}
