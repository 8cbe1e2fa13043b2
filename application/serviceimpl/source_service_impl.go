package serviceimpl

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"proofroom/domain/apperrors"
	"proofroom/domain/models"
	"proofroom/domain/repositories"
	"proofroom/domain/services"
	"proofroom/pkg/logger"
)

type SourceServiceImpl struct {
	sourceRepo  repositories.SourceRepository
	galleryRepo repositories.GalleryRepository
	syncService services.SyncService
}

func NewSourceService(
	sourceRepo repositories.SourceRepository,
	galleryRepo repositories.GalleryRepository,
	syncService services.SyncService,
) services.SourceService {
	return &SourceServiceImpl{
		sourceRepo:  sourceRepo,
		galleryRepo: galleryRepo,
		syncService: syncService,
	}
}

func (s *SourceServiceImpl) Create(ctx context.Context, adminID uuid.UUID, input services.CreateSourceInput) (*models.Source, error) {
	folderID, err := s.syncService.ResolveFolderReference(input.FolderRef)
	if err != nil {
		return nil, err
	}

	count, err := s.sourceRepo.CountByAdmin(ctx, adminID)
	if err != nil {
		return nil, apperrors.NewPersistence("count sources", err)
	}

	source := &models.Source{
		AdminID:      adminID,
		Name:         input.Name,
		FolderID:     folderID,
		FolderURL:    input.FolderRef,
		DisplayOrder: int(count),
	}

	if err := s.sourceRepo.Create(ctx, source); err != nil {
		return nil, apperrors.NewPersistence("create source", err)
	}

	logger.Gallery("create_source", "drive folder registered", map[string]interface{}{
		"source_id": source.ID.String(),
		"admin_id":  adminID.String(),
		"folder_id": folderID,
	})

	return source, nil
}

func (s *SourceServiceImpl) List(ctx context.Context, adminID uuid.UUID) ([]models.Source, error) {
	sources, err := s.sourceRepo.GetByAdmin(ctx, adminID)
	if err != nil {
		return nil, apperrors.NewPersistence("list sources", err)
	}
	return sources, nil
}

func (s *SourceServiceImpl) Update(ctx context.Context, adminID, sourceID uuid.UUID, input services.UpdateSourceInput) (*models.Source, error) {
	source, err := s.getOwnedSource(ctx, adminID, sourceID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		source.Name = *input.Name
	}
	if input.FolderRef != nil {
		folderID, err := s.syncService.ResolveFolderReference(*input.FolderRef)
		if err != nil {
			return nil, err
		}
		source.FolderID = folderID
		source.FolderURL = *input.FolderRef
	}

	if err := s.sourceRepo.Update(ctx, sourceID, source); err != nil {
		return nil, apperrors.NewPersistence("update source", err)
	}

	return source, nil
}

func (s *SourceServiceImpl) Delete(ctx context.Context, adminID, sourceID uuid.UUID) error {
	if _, err := s.getOwnedSource(ctx, adminID, sourceID); err != nil {
		return err
	}

	// Galleries keep their photos; they only lose the link back to the
	// folder they were synced from.
	detached, err := s.galleryRepo.DetachSource(ctx, sourceID)
	if err != nil {
		return apperrors.NewPersistence("detach galleries", err)
	}

	if err := s.sourceRepo.Delete(ctx, sourceID); err != nil {
		return apperrors.NewPersistence("delete source", err)
	}

	logger.Gallery("delete_source", "source removed", map[string]interface{}{
		"source_id":          sourceID.String(),
		"detached_galleries": detached,
	})

	return nil
}

func (s *SourceServiceImpl) Reorder(ctx context.Context, adminID uuid.UUID, orderedIDs []uuid.UUID) error {
	sources, err := s.sourceRepo.GetByAdmin(ctx, adminID)
	if err != nil {
		return apperrors.NewPersistence("list sources", err)
	}

	if err := validatePermutation(orderedIDs, sourceIDs(sources)); err != nil {
		return err
	}

	for i, id := range orderedIDs {
		if err := s.sourceRepo.UpdateDisplayOrder(ctx, id, i); err != nil {
			return apperrors.NewPersistence("reorder sources", err)
		}
	}
	return nil
}

func (s *SourceServiceImpl) getOwnedSource(ctx context.Context, adminID, sourceID uuid.UUID) (*models.Source, error) {
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

func sourceIDs(sources []models.Source) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(sources))
	for _, s := range sources {
		ids = append(ids, s.ID)
	}
	return ids
}

// validatePermutation rejects a reorder that is not exactly the caller's
// current set of IDs.
func validatePermutation(ordered, existing []uuid.UUID) error {
	if len(ordered) != len(existing) {
		return apperrors.NewValidation("reorder must list all %d items, got %d", len(existing), len(ordered))
	}

	want := make(map[uuid.UUID]bool, len(existing))
	for _, id := range existing {
		want[id] = true
	}

	seen := make(map[uuid.UUID]bool, len(ordered))
	for _, id := range ordered {
		if !want[id] {
			return apperrors.NewValidation("unknown id %s in reorder", id)
		}
		if seen[id] {
			return apperrors.NewValidation("duplicate id %s in reorder", id)
		}
		seen[id] = true
	}
	return nil
}
