package serviceimpl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"proofroom/domain/apperrors"
	"proofroom/domain/models"
	"proofroom/domain/repositories"
	"proofroom/domain/services"
	"proofroom/pkg/logger"
)

type SelectionServiceImpl struct {
	galleryRepo repositories.GalleryRepository
	photoRepo   repositories.PhotoRepository
}

func NewSelectionService(
	galleryRepo repositories.GalleryRepository,
	photoRepo repositories.PhotoRepository,
) services.SelectionService {
	return &SelectionServiceImpl{
		galleryRepo: galleryRepo,
		photoRepo:   photoRepo,
	}
}

func (s *SelectionServiceImpl) ToggleLike(ctx context.Context, galleryID, photoID uuid.UUID) (*services.ToggleResult, error) {
	gallery, err := s.getGallery(ctx, galleryID)
	if err != nil {
		return nil, err
	}
	if gallery.SelectionsSubmitted {
		return nil, apperrors.NewInvalidState("selections are submitted, reopen the gallery to change likes")
	}

	photo, err := s.photoRepo.GetByID(ctx, photoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("photo")
		}
		return nil, apperrors.NewPersistence("lookup photo", err)
	}
	if photo.GalleryID != galleryID {
		return nil, apperrors.NewNotFound("photo")
	}

	prior := photo.IsLiked
	if err := s.photoRepo.SetLiked(ctx, photoID, !prior); err != nil {
		// The flip did not land; the stored value is still prior.
		result := &services.ToggleResult{Committed: false, PriorValue: prior, NewValue: prior}
		return result, apperrors.NewPersistence("toggle like", err)
	}

	return &services.ToggleResult{Committed: true, PriorValue: prior, NewValue: !prior}, nil
}

func (s *SelectionServiceImpl) ListPhotos(ctx context.Context, galleryID uuid.UUID, filter services.PhotoFilter) ([]models.Photo, error) {
	if _, err := s.getGallery(ctx, galleryID); err != nil {
		return nil, err
	}

	var liked *bool
	switch filter {
	case services.FilterAll, "":
	case services.FilterLiked:
		v := true
		liked = &v
	case services.FilterUnliked:
		v := false
		liked = &v
	default:
		return nil, apperrors.NewValidation("unknown photo filter %q", filter)
	}

	photos, err := s.photoRepo.ListByGallery(ctx, galleryID, liked)
	if err != nil {
		return nil, apperrors.NewPersistence("list photos", err)
	}
	return photos, nil
}

func (s *SelectionServiceImpl) Counts(ctx context.Context, galleryID uuid.UUID) (*services.SelectionCounts, error) {
	if _, err := s.getGallery(ctx, galleryID); err != nil {
		return nil, err
	}

	total, liked, err := s.photoRepo.CountByGallery(ctx, galleryID)
	if err != nil {
		return nil, apperrors.NewPersistence("count photos", err)
	}

	return &services.SelectionCounts{
		Total:   total,
		Liked:   liked,
		Unliked: total - liked,
	}, nil
}

func (s *SelectionServiceImpl) Submit(ctx context.Context, galleryID uuid.UUID) error {
	gallery, err := s.getGallery(ctx, galleryID)
	if err != nil {
		return err
	}

	_, liked, err := s.photoRepo.CountByGallery(ctx, galleryID)
	if err != nil {
		return apperrors.NewPersistence("count photos", err)
	}
	if liked == 0 {
		return apperrors.NewInvalidState("cannot submit a selection with no liked photos")
	}

	if err := s.galleryRepo.SetSubmitted(ctx, galleryID, true); err != nil {
		return apperrors.NewPersistence("submit selection", err)
	}

	logger.Gallery("submit", "selection submitted", map[string]interface{}{
		"gallery_id": gallery.ID.String(),
		"liked":      liked,
	})
	return nil
}

func (s *SelectionServiceImpl) Reopen(ctx context.Context, galleryID uuid.UUID) error {
	if _, err := s.getGallery(ctx, galleryID); err != nil {
		return err
	}

	if err := s.galleryRepo.SetSubmitted(ctx, galleryID, false); err != nil {
		return apperrors.NewPersistence("reopen selection", err)
	}

	logger.Gallery("reopen", "selection reopened", map[string]interface{}{
		"gallery_id": galleryID.String(),
	})
	return nil
}

func (s *SelectionServiceImpl) ExportLiked(ctx context.Context, galleryID uuid.UUID, format services.ExportFormat) (*services.ExportPayload, error) {
	if _, err := s.getGallery(ctx, galleryID); err != nil {
		return nil, err
	}

	likedOnly := true
	photos, err := s.photoRepo.ListByGallery(ctx, galleryID, &likedOnly)
	if err != nil {
		return nil, apperrors.NewPersistence("list liked photos", err)
	}
	if len(photos) == 0 {
		return nil, apperrors.NewEmptyResult("gallery %s has no liked photos", galleryID)
	}

	filenames := make([]string, 0, len(photos))
	for _, p := range photos {
		filenames = append(filenames, p.Filename)
	}

	var payload *services.ExportPayload
	switch format {
	case services.ExportCSV:
		payload = renderCSVExport(galleryID, filenames)
	case services.ExportJSON, "":
		payload, err = renderJSONExport(galleryID, filenames)
		if err != nil {
			return nil, err
		}
	default:
		return nil, apperrors.NewValidation("unknown export format %q", format)
	}

	logger.Export("export_liked", "selection exported", map[string]interface{}{
		"gallery_id": galleryID.String(),
		"format":     string(format),
		"count":      len(filenames),
	})
	return payload, nil
}

// renderCSVExport writes a "filename" header then one bare name per line.
// Drive filenames never contain newlines, so no quoting is applied.
func renderCSVExport(galleryID uuid.UUID, filenames []string) *services.ExportPayload {
	var b strings.Builder
	b.WriteString("filename\n")
	for _, name := range filenames {
		b.WriteString(name)
		b.WriteString("\n")
	}
	return &services.ExportPayload{
		Content:     []byte(b.String()),
		ContentType: "text/csv",
		Filename:    fmt.Sprintf("selections-%s.csv", galleryID),
	}
}

func renderJSONExport(galleryID uuid.UUID, filenames []string) (*services.ExportPayload, error) {
	doc := struct {
		ExportedAt    string   `json:"exportedAt"`
		TotalSelected int      `json:"totalSelected"`
		Filenames     []string `json:"filenames"`
	}{
		ExportedAt:    time.Now().UTC().Format(time.RFC3339),
		TotalSelected: len(filenames),
		Filenames:     filenames,
	}

	content, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to render export: %w", err)
	}

	return &services.ExportPayload{
		Content:     content,
		ContentType: "application/json",
		Filename:    fmt.Sprintf("selections-%s.json", galleryID),
	}, nil
}

func (s *SelectionServiceImpl) getGallery(ctx context.Context, galleryID uuid.UUID) (*models.Gallery, error) {
	gallery, err := s.galleryRepo.GetByID(ctx, galleryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("gallery")
		}
		return nil, apperrors.NewPersistence("lookup gallery", err)
	}
	return gallery, nil
}
