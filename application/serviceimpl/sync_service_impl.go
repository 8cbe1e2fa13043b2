package serviceimpl

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"proofroom/domain/apperrors"
	"proofroom/domain/models"
	"proofroom/domain/repositories"
	"proofroom/domain/services"
	"proofroom/infrastructure/googledrive"
	"proofroom/pkg/logger"
)

// FolderLister is the slice of the Drive client the sync reconciler needs.
type FolderLister interface {
	ListFolderFiles(ctx context.Context, folderID string) ([]googledrive.RemoteFile, error)
	PreviewURL(fileID string) string
}

// eligibleExtensions are the image formats a gallery will ingest,
// including the common RAW containers.
var eligibleExtensions = map[string]bool{
	".arw":  true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".cr2":  true,
	".nef":  true,
	".raf":  true,
	".dng":  true,
}

type SyncServiceImpl struct {
	lister    FolderLister
	photoRepo repositories.PhotoRepository
}

func NewSyncService(lister FolderLister, photoRepo repositories.PhotoRepository) services.SyncService {
	return &SyncServiceImpl{
		lister:    lister,
		photoRepo: photoRepo,
	}
}

func (s *SyncServiceImpl) ResolveFolderReference(ref string) (string, error) {
	folderID := googledrive.ExtractFolderID(ref)
	if folderID == "" {
		return "", apperrors.NewValidation("no Drive folder ID found in %q", ref)
	}
	return folderID, nil
}

func (s *SyncServiceImpl) SyncToGallery(ctx context.Context, folderID string, galleryID uuid.UUID) (*services.SyncResult, error) {
	files, err := s.lister.ListFolderFiles(ctx, folderID)
	if err != nil {
		logger.SyncError("list_folder", "folder listing failed, no rows written", err, map[string]interface{}{
			"folder_id":  folderID,
			"gallery_id": galleryID.String(),
		})
		return nil, err
	}

	eligible := filterEligible(files)
	if len(eligible) == 0 {
		return nil, apperrors.NewEmptyResult("folder %s contains no eligible images", folderID)
	}

	existingIDs, err := s.photoRepo.ListRemoteFileIDs(ctx, galleryID)
	if err != nil {
		return nil, apperrors.NewPersistence("list synced file ids", err)
	}
	existing := make(map[string]bool, len(existingIDs))
	for _, id := range existingIDs {
		existing[id] = true
	}

	// New photos are appended after the already-synced ones, keeping the
	// upstream listing order among themselves.
	position := len(existingIDs)
	photos := make([]*models.Photo, 0, len(eligible))
	for _, f := range eligible {
		if existing[f.ID] {
			continue
		}
		photos = append(photos, &models.Photo{
			GalleryID:    galleryID,
			RemoteFileID: f.ID,
			Filename:     f.Name,
			MimeType:     f.MimeType,
			PreviewURL:   s.lister.PreviewURL(f.ID),
			Position:     position,
		})
		position++
	}

	if len(photos) == 0 {
		logger.Sync("sync_gallery", "all eligible files already synced", map[string]interface{}{
			"gallery_id": galleryID.String(),
			"eligible":   len(eligible),
		})
		return &services.SyncResult{PhotoCount: 0}, nil
	}

	if err := s.photoRepo.CreateBatch(ctx, photos); err != nil {
		return nil, apperrors.NewPersistence("insert photos", err)
	}

	logger.Sync("sync_gallery", "gallery synced", map[string]interface{}{
		"gallery_id": galleryID.String(),
		"eligible":   len(eligible),
		"inserted":   len(photos),
	})

	return &services.SyncResult{PhotoCount: len(photos)}, nil
}

func filterEligible(files []googledrive.RemoteFile) []googledrive.RemoteFile {
	out := make([]googledrive.RemoteFile, 0, len(files))
	for _, f := range files {
		ext := strings.ToLower(filepath.Ext(f.Name))
		if eligibleExtensions[ext] {
			out = append(out, f)
		}
	}
	return out
}
