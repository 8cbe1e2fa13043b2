package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"proofroom/domain/apperrors"
	"proofroom/domain/models"
	"proofroom/domain/repositories"
	"proofroom/domain/services"
	"proofroom/infrastructure/redis"
	"proofroom/infrastructure/websocket"
	"proofroom/pkg/logger"
)

// SyncWorker drains pending sync jobs in the background. Each job re-syncs
// one gallery from its source folder via the sync service, which does the
// listing, filtering and batch insert.
type SyncWorker struct {
	syncService syncRunner
	galleryRepo repositories.GalleryRepository
	sourceRepo  repositories.SourceRepository
	syncJobRepo repositories.SyncJobRepository
	cache       *redis.RedisClient // nil disables cache invalidation

	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	isRunning bool
	mu        sync.Mutex
	triggerCh chan struct{}

	maxConcurrent int
	fetchLimit    int
}

// syncRunner is the slice of the sync service the worker drives.
type syncRunner interface {
	SyncToGallery(ctx context.Context, folderID string, galleryID uuid.UUID) (*services.SyncResult, error)
}

func NewSyncWorker(
	syncService services.SyncService,
	galleryRepo repositories.GalleryRepository,
	sourceRepo repositories.SourceRepository,
	syncJobRepo repositories.SyncJobRepository,
	cache *redis.RedisClient,
) *SyncWorker {
	return &SyncWorker{
		syncService:   syncService,
		galleryRepo:   galleryRepo,
		sourceRepo:    sourceRepo,
		syncJobRepo:   syncJobRepo,
		cache:         cache,
		triggerCh:     make(chan struct{}, 10),
		maxConcurrent: 2,
		fetchLimit:    10,
	}
}

// TriggerSync wakes the worker to drain pending jobs. Non-blocking; a full
// trigger channel means a drain is already queued.
func (w *SyncWorker) TriggerSync() {
	select {
	case w.triggerCh <- struct{}{}:
	default:
	}
}

func (w *SyncWorker) Start() {
	w.mu.Lock()
	if w.isRunning {
		w.mu.Unlock()
		return
	}
	w.isRunning = true
	w.ctx, w.cancel = context.WithCancel(context.Background())
	w.mu.Unlock()

	w.wg.Add(1)
	go w.run()

	logger.Sync("worker_started", "sync worker started", nil)
}

func (w *SyncWorker) Stop() {
	w.mu.Lock()
	if !w.isRunning {
		w.mu.Unlock()
		return
	}
	w.isRunning = false
	w.mu.Unlock()

	w.cancel()
	w.wg.Wait()
	logger.Sync("worker_stopped", "sync worker stopped", nil)
}

func (w *SyncWorker) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.isRunning
}

func (w *SyncWorker) run() {
	defer w.wg.Done()

	// Drain jobs left over from a previous run
	w.processPendingJobs()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-w.triggerCh:
			w.processPendingJobs()
		}
	}
}

func (w *SyncWorker) processPendingJobs() {
	jobs, err := w.syncJobRepo.GetPendingJobs(w.ctx, w.fetchLimit)
	if err != nil {
		logger.SyncError("fetch_pending_jobs_failed", "error fetching pending jobs", err, nil)
		return
	}

	if len(jobs) == 0 {
		return
	}

	logger.Sync("processing_jobs", "processing sync jobs", map[string]interface{}{
		"job_count": len(jobs),
	})

	var jobWg sync.WaitGroup
	sem := make(chan struct{}, w.maxConcurrent)

	for _, job := range jobs {
		sem <- struct{}{}
		jobWg.Add(1)

		go func(j models.SyncJob) {
			defer jobWg.Done()
			defer func() { <-sem }()

			w.processJob(j)
		}(job)
	}

	jobWg.Wait()
}

func (w *SyncWorker) processJob(job models.SyncJob) {
	ctx := w.ctx
	jobID := job.ID

	logger.Sync("job_started", "sync job started", map[string]interface{}{
		"job_id":     jobID.String(),
		"gallery_id": job.GalleryID.String(),
	})

	if err := w.syncJobRepo.UpdateStatus(ctx, jobID, models.SyncJobStatusRunning); err != nil {
		logger.SyncError("update_status_failed", "failed to mark job running", err, map[string]interface{}{
			"job_id": jobID.String(),
		})
		return
	}

	gallery, err := w.galleryRepo.GetByID(ctx, job.GalleryID)
	if err != nil {
		w.failJob(ctx, jobID, nil, fmt.Sprintf("failed to load gallery: %v", err))
		return
	}

	if gallery.SourceID == nil {
		w.failJob(ctx, jobID, gallery, "gallery has no source folder to sync from")
		return
	}

	source, err := w.sourceRepo.GetByID(ctx, *gallery.SourceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			w.failJob(ctx, jobID, gallery, "source folder no longer exists")
			return
		}
		w.failJob(ctx, jobID, gallery, fmt.Sprintf("failed to load source: %v", err))
		return
	}

	websocket.Manager.BroadcastToAdmin(gallery.AdminID, "sync:started", map[string]interface{}{
		"jobId":     jobID.String(),
		"galleryId": gallery.ID.String(),
		"status":    "running",
	})

	result, err := w.syncService.SyncToGallery(ctx, source.FolderID, gallery.ID)
	if err != nil {
		// An empty folder is a valid terminal state for a job, not a retryable
		// failure, but the admin should still see why nothing changed.
		var emptyErr *apperrors.EmptyResultError
		if errors.As(err, &emptyErr) {
			w.failJob(ctx, jobID, gallery, emptyErr.Error())
			return
		}
		w.failJob(ctx, jobID, gallery, fmt.Sprintf("sync failed: %v", err))
		return
	}

	if err := w.syncJobRepo.UpdateProgress(ctx, jobID, result.PhotoCount); err != nil {
		logger.SyncError("update_progress_failed", "failed to record job progress", err, map[string]interface{}{
			"job_id": jobID.String(),
		})
	}
	websocket.Manager.BroadcastToAdmin(gallery.AdminID, "sync:progress", map[string]interface{}{
		"jobId":     jobID.String(),
		"galleryId": gallery.ID.String(),
		"processed": result.PhotoCount,
	})

	now := time.Now()
	if err := w.syncJobRepo.Update(ctx, jobID, &models.SyncJob{
		Status:         models.SyncJobStatusCompleted,
		TotalItems:     result.PhotoCount,
		ProcessedItems: result.PhotoCount,
		CompletedAt:    &now,
		UpdatedAt:      now,
	}); err != nil {
		logger.SyncError("complete_job_failed", "failed to mark job completed", err, map[string]interface{}{
			"job_id": jobID.String(),
		})
	}

	w.invalidateStatsCache(ctx, gallery.ID)

	websocket.Manager.BroadcastToAdmin(gallery.AdminID, "sync:completed", map[string]interface{}{
		"jobId":      jobID.String(),
		"galleryId":  gallery.ID.String(),
		"status":     "completed",
		"photoCount": result.PhotoCount,
	})

	logger.Sync("job_completed", "sync job completed", map[string]interface{}{
		"job_id":      jobID.String(),
		"gallery_id":  gallery.ID.String(),
		"photo_count": result.PhotoCount,
	})
}

func (w *SyncWorker) failJob(ctx context.Context, jobID uuid.UUID, gallery *models.Gallery, errMsg string) {
	logData := map[string]interface{}{
		"job_id": jobID.String(),
		"error":  errMsg,
	}
	if gallery != nil {
		logData["gallery_id"] = gallery.ID.String()
	}
	logger.SyncError("job_failed", "sync job failed", nil, logData)

	now := time.Now()
	w.syncJobRepo.Update(ctx, jobID, &models.SyncJob{
		Status:      models.SyncJobStatusFailed,
		LastError:   errMsg,
		CompletedAt: &now,
		UpdatedAt:   now,
	})

	if gallery != nil {
		websocket.Manager.BroadcastToAdmin(gallery.AdminID, "sync:failed", map[string]interface{}{
			"jobId":     jobID.String(),
			"galleryId": gallery.ID.String(),
			"status":    "failed",
			"message":   errMsg,
		})
	}
}

func (w *SyncWorker) invalidateStatsCache(ctx context.Context, galleryID uuid.UUID) {
	if w.cache == nil {
		return
	}
	if err := w.cache.Delete(ctx, fmt.Sprintf("gallery:stats:%s", galleryID)); err != nil {
		logger.SyncError("cache_invalidate_failed", "failed to drop stats cache", err, map[string]interface{}{
			"gallery_id": galleryID.String(),
		})
	}
}
