package serviceimpl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"proofroom/domain/apperrors"
	"proofroom/domain/models"
	"proofroom/domain/repositories"
	"proofroom/domain/services"
	"proofroom/infrastructure/redis"
	"proofroom/infrastructure/worker"
	"proofroom/pkg/logger"
	"proofroom/pkg/utils"
)

const statsCacheTTL = 60 * time.Second

type galleryStatsCache struct {
	PhotoCount int64 `json:"photo_count"`
	LikedCount int64 `json:"liked_count"`
}

type GalleryServiceImpl struct {
	galleryRepo repositories.GalleryRepository
	photoRepo   repositories.PhotoRepository
	sourceRepo  repositories.SourceRepository
	syncJobRepo repositories.SyncJobRepository
	syncService services.SyncService
	syncWorker  *worker.SyncWorker // nil means jobs wait for the next drain
	cache       *redis.RedisClient // nil disables stats caching
}

func NewGalleryService(
	galleryRepo repositories.GalleryRepository,
	photoRepo repositories.PhotoRepository,
	sourceRepo repositories.SourceRepository,
	syncJobRepo repositories.SyncJobRepository,
	syncService services.SyncService,
	syncWorker *worker.SyncWorker,
	cache *redis.RedisClient,
) services.GalleryService {
	return &GalleryServiceImpl{
		galleryRepo: galleryRepo,
		photoRepo:   photoRepo,
		sourceRepo:  sourceRepo,
		syncJobRepo: syncJobRepo,
		syncService: syncService,
		syncWorker:  syncWorker,
		cache:       cache,
	}
}

func (s *GalleryServiceImpl) Create(ctx context.Context, adminID uuid.UUID, input services.CreateGalleryInput) (*models.Gallery, int, error) {
	source, err := s.getOwnedSource(ctx, adminID, input.SourceID)
	if err != nil {
		return nil, 0, err
	}

	token, err := utils.NewShareToken()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to generate share token: %w", err)
	}

	count, err := s.galleryRepo.CountByAdmin(ctx, adminID)
	if err != nil {
		return nil, 0, apperrors.NewPersistence("count galleries", err)
	}

	sourceID := source.ID
	gallery := &models.Gallery{
		AdminID:      adminID,
		SourceID:     &sourceID,
		Title:        input.Title,
		ShareToken:   token,
		DisplayOrder: int(count),
	}

	if err := s.galleryRepo.Create(ctx, gallery); err != nil {
		return nil, 0, apperrors.NewPersistence("create gallery", err)
	}

	result, err := s.syncService.SyncToGallery(ctx, source.FolderID, gallery.ID)
	if err != nil {
		// No empty gallery is left behind when the initial sync fails.
		if delErr := s.galleryRepo.Delete(ctx, gallery.ID); delErr != nil {
			logger.GalleryError("create", "failed to roll back gallery after sync failure", delErr, map[string]interface{}{
				"gallery_id": gallery.ID.String(),
			})
		}
		return nil, 0, err
	}

	logger.Gallery("create", "gallery created and synced", map[string]interface{}{
		"gallery_id":  gallery.ID.String(),
		"admin_id":    adminID.String(),
		"source_id":   source.ID.String(),
		"photo_count": result.PhotoCount,
	})

	return gallery, result.PhotoCount, nil
}

func (s *GalleryServiceImpl) Get(ctx context.Context, adminID, galleryID uuid.UUID) (*models.Gallery, error) {
	return s.getOwnedGallery(ctx, adminID, galleryID)
}

func (s *GalleryServiceImpl) GetByShareToken(ctx context.Context, token string) (*models.Gallery, error) {
	gallery, err := s.galleryRepo.GetByShareToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("gallery")
		}
		return nil, apperrors.NewPersistence("lookup gallery by token", err)
	}
	return gallery, nil
}

func (s *GalleryServiceImpl) List(ctx context.Context, adminID uuid.UUID) ([]services.GalleryStats, error) {
	galleries, err := s.galleryRepo.GetByAdmin(ctx, adminID)
	if err != nil {
		return nil, apperrors.NewPersistence("list galleries", err)
	}

	stats := make([]services.GalleryStats, 0, len(galleries))
	for _, g := range galleries {
		photoCount, likedCount, err := s.countsFor(ctx, g.ID)
		if err != nil {
			return nil, err
		}
		stats = append(stats, services.GalleryStats{
			Gallery:    g,
			PhotoCount: photoCount,
			LikedCount: likedCount,
		})
	}
	return stats, nil
}

func (s *GalleryServiceImpl) Update(ctx context.Context, adminID, galleryID uuid.UUID, input services.UpdateGalleryInput) (*models.Gallery, error) {
	if _, err := s.getOwnedGallery(ctx, adminID, galleryID); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.SourceID != nil {
		if _, err := s.getOwnedSource(ctx, adminID, *input.SourceID); err != nil {
			return nil, err
		}
		updates["source_id"] = *input.SourceID
	}

	if len(updates) > 0 {
		if err := s.galleryRepo.Update(ctx, galleryID, updates); err != nil {
			return nil, apperrors.NewPersistence("update gallery", err)
		}
	}

	return s.getOwnedGallery(ctx, adminID, galleryID)
}

func (s *GalleryServiceImpl) Delete(ctx context.Context, adminID, galleryID uuid.UUID) error {
	if _, err := s.getOwnedGallery(ctx, adminID, galleryID); err != nil {
		return err
	}

	if err := s.galleryRepo.Delete(ctx, galleryID); err != nil {
		return apperrors.NewPersistence("delete gallery", err)
	}

	s.dropStatsCache(ctx, galleryID)

	logger.Gallery("delete", "gallery removed with its photos", map[string]interface{}{
		"gallery_id": galleryID.String(),
	})
	return nil
}

func (s *GalleryServiceImpl) Reorder(ctx context.Context, adminID uuid.UUID, orderedIDs []uuid.UUID) error {
	galleries, err := s.galleryRepo.GetByAdmin(ctx, adminID)
	if err != nil {
		return apperrors.NewPersistence("list galleries", err)
	}

	existing := make([]uuid.UUID, 0, len(galleries))
	for _, g := range galleries {
		existing = append(existing, g.ID)
	}
	if err := validatePermutation(orderedIDs, existing); err != nil {
		return err
	}

	for i, id := range orderedIDs {
		if err := s.galleryRepo.UpdateDisplayOrder(ctx, id, i); err != nil {
			return apperrors.NewPersistence("reorder galleries", err)
		}
	}
	return nil
}

func (s *GalleryServiceImpl) EnqueueSync(ctx context.Context, adminID, galleryID uuid.UUID) (*models.SyncJob, error) {
	gallery, err := s.getOwnedGallery(ctx, adminID, galleryID)
	if err != nil {
		return nil, err
	}
	if gallery.SourceID == nil {
		return nil, apperrors.NewInvalidState("gallery has no source folder to sync from")
	}

	// One queued job per gallery is enough; the sync is idempotent anyway.
	busy, err := s.syncJobRepo.HasPendingOrRunningJobForGallery(ctx, galleryID)
	if err != nil {
		return nil, apperrors.NewPersistence("check sync jobs", err)
	}
	if busy {
		job, err := s.syncJobRepo.GetLatestByGallery(ctx, galleryID)
		if err != nil {
			return nil, apperrors.NewPersistence("load sync job", err)
		}
		return job, nil
	}

	job := &models.SyncJob{
		GalleryID: galleryID,
		Status:    models.SyncJobStatusPending,
	}
	if err := s.syncJobRepo.Create(ctx, job); err != nil {
		return nil, apperrors.NewPersistence("create sync job", err)
	}

	if s.syncWorker != nil {
		s.syncWorker.TriggerSync()
	}

	logger.Sync("enqueue", "sync job queued", map[string]interface{}{
		"job_id":     job.ID.String(),
		"gallery_id": galleryID.String(),
	})

	return job, nil
}

func (s *GalleryServiceImpl) GetSyncStatus(ctx context.Context, adminID, galleryID uuid.UUID) (*models.SyncJob, error) {
	if _, err := s.getOwnedGallery(ctx, adminID, galleryID); err != nil {
		return nil, err
	}

	job, err := s.syncJobRepo.GetLatestByGallery(ctx, galleryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("sync job")
		}
		return nil, apperrors.NewPersistence("load sync job", err)
	}
	return job, nil
}

// countsFor reads the photo counters through the stats cache.
func (s *GalleryServiceImpl) countsFor(ctx context.Context, galleryID uuid.UUID) (int64, int64, error) {
	key := fmt.Sprintf("gallery:stats:%s", galleryID)

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key); err == nil {
			var stats galleryStatsCache
			if err := json.Unmarshal([]byte(cached), &stats); err == nil {
				return stats.PhotoCount, stats.LikedCount, nil
			}
		}
	}

	total, liked, err := s.photoRepo.CountByGallery(ctx, galleryID)
	if err != nil {
		return 0, 0, apperrors.NewPersistence("count photos", err)
	}

	if s.cache != nil {
		if payload, err := json.Marshal(galleryStatsCache{PhotoCount: total, LikedCount: liked}); err == nil {
			if err := s.cache.Set(ctx, key, string(payload), statsCacheTTL); err != nil {
				logger.GalleryError("stats_cache", "failed to write stats cache", err, map[string]interface{}{
					"gallery_id": galleryID.String(),
				})
			}
		}
	}

	return total, liked, nil
}

func (s *GalleryServiceImpl) dropStatsCache(ctx context.Context, galleryID uuid.UUID) {
	if s.cache == nil {
		return
	}
	key := fmt.Sprintf("gallery:stats:%s", galleryID)
	if err := s.cache.Delete(ctx, key); err != nil {
		logger.GalleryError("stats_cache", "failed to drop stats cache", err, map[string]interface{}{
			"gallery_id": galleryID.String(),
		})
	}
}

func (s *GalleryServiceImpl) getOwnedGallery(ctx context.Context, adminID, galleryID uuid.UUID) (*models.Gallery, error) {
	gallery, err := s.galleryRepo.GetByID(ctx, galleryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("gallery")
		}
		return nil, apperrors.NewPersistence("lookup gallery", err)
	}
	if gallery.AdminID != adminID {
		return nil, apperrors.NewNotFound("gallery")
	}
	return gallery, nil
}

func (s *GalleryServiceImpl) getOwnedSource(ctx context.Context, adminID, sourceID uuid.UUID) (*models.Source, error) {
	source, err := s.sourceRepo.GetByID(ctx, sourceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("source")
		}
		return nil, apperrors.NewPersistence("lookup source", err)
	}
	if source.AdminID != adminID {
		return nil, apperrors.NewNotFound("source")
	}
	return source, nil
}
