package serviceimpl

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"proofroom/domain/apperrors"
	"proofroom/domain/models"
	"proofroom/domain/services"
)

func seedGalleryWithPhotos(t *testing.T, galleryRepo *fakeGalleryRepo, photoRepo *fakePhotoRepo, liked ...bool) (uuid.UUID, []uuid.UUID) {
	t.Helper()

	gallery := &models.Gallery{
		AdminID:    uuid.New(),
		Title:      "Wedding",
		ShareToken: "abcd1234",
	}
	if err := galleryRepo.Create(context.Background(), gallery); err != nil {
		t.Fatalf("seed gallery: %v", err)
	}

	photos := make([]*models.Photo, 0, len(liked))
	for i, l := range liked {
		photos = append(photos, &models.Photo{
			GalleryID:    gallery.ID,
			RemoteFileID: uuid.NewString(),
			Filename:     filenameFor(i),
			IsLiked:      l,
			Position:     i,
		})
	}
	if err := photoRepo.CreateBatch(context.Background(), photos); err != nil {
		t.Fatalf("seed photos: %v", err)
	}

	ids := make([]uuid.UUID, 0, len(photos))
	for _, p := range photos {
		ids = append(ids, p.ID)
	}
	return gallery.ID, ids
}

func filenameFor(i int) string {
	return "IMG_" + string(rune('A'+i)) + ".jpg"
}

func TestToggleLikeFlips(t *testing.T) {
	galleryRepo := newFakeGalleryRepo()
	photoRepo := newFakePhotoRepo()
	svc := NewSelectionService(galleryRepo, photoRepo)

	galleryID, photoIDs := seedGalleryWithPhotos(t, galleryRepo, photoRepo, false)

	result, err := svc.ToggleLike(context.Background(), galleryID, photoIDs[0])
	if err != nil {
		t.Fatalf("ToggleLike() error = %v", err)
	}
	if !result.Committed || result.PriorValue || !result.NewValue {
		t.Errorf("first toggle = %+v, want committed false->true", result)
	}

	result, err = svc.ToggleLike(context.Background(), galleryID, photoIDs[0])
	if err != nil {
		t.Fatalf("ToggleLike() second error = %v", err)
	}
	if !result.Committed || !result.PriorValue || result.NewValue {
		t.Errorf("second toggle = %+v, want committed true->false", result)
	}
}

func TestToggleLikeSubmittedGallery(t *testing.T) {
	galleryRepo := newFakeGalleryRepo()
	photoRepo := newFakePhotoRepo()
	svc := NewSelectionService(galleryRepo, photoRepo)

	galleryID, photoIDs := seedGalleryWithPhotos(t, galleryRepo, photoRepo, true)
	if err := galleryRepo.SetSubmitted(context.Background(), galleryID, true); err != nil {
		t.Fatalf("SetSubmitted: %v", err)
	}

	_, err := svc.ToggleLike(context.Background(), galleryID, photoIDs[0])
	var stateErr *apperrors.InvalidStateError
	if !errors.As(err, &stateErr) {
		t.Fatalf("ToggleLike() on submitted gallery error = %v, want InvalidStateError", err)
	}
}

func TestToggleLikePhotoFromAnotherGallery(t *testing.T) {
	galleryRepo := newFakeGalleryRepo()
	photoRepo := newFakePhotoRepo()
	svc := NewSelectionService(galleryRepo, photoRepo)

	galleryID, _ := seedGalleryWithPhotos(t, galleryRepo, photoRepo, false)
	_, otherPhotoIDs := seedGalleryWithPhotos(t, galleryRepo, photoRepo, false)

	_, err := svc.ToggleLike(context.Background(), galleryID, otherPhotoIDs[0])
	var notFound *apperrors.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("ToggleLike() across galleries error = %v, want NotFoundError", err)
	}
}

func TestToggleLikeWriteFailureKeepsPriorValue(t *testing.T) {
	galleryRepo := newFakeGalleryRepo()
	photoRepo := newFakePhotoRepo()
	svc := NewSelectionService(galleryRepo, photoRepo)

	galleryID, photoIDs := seedGalleryWithPhotos(t, galleryRepo, photoRepo, false)
	photoRepo.failSetLiked = true

	result, err := svc.ToggleLike(context.Background(), galleryID, photoIDs[0])
	var persistErr *apperrors.PersistenceError
	if !errors.As(err, &persistErr) {
		t.Fatalf("ToggleLike() with failing store error = %v, want PersistenceError", err)
	}
	if result == nil || result.Committed {
		t.Fatalf("result = %+v, want uncommitted", result)
	}
	if result.NewValue != result.PriorValue {
		t.Errorf("uncommitted result NewValue = %v, want prior %v", result.NewValue, result.PriorValue)
	}

	photoRepo.failSetLiked = false
	photo, err := photoRepo.GetByID(context.Background(), photoIDs[0])
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if photo.IsLiked {
		t.Error("photo is liked after failed toggle, want unchanged")
	}
}

func TestCountsSumInvariant(t *testing.T) {
	galleryRepo := newFakeGalleryRepo()
	photoRepo := newFakePhotoRepo()
	svc := NewSelectionService(galleryRepo, photoRepo)

	galleryID, _ := seedGalleryWithPhotos(t, galleryRepo, photoRepo, true, false, true, false, false)

	counts, err := svc.Counts(context.Background(), galleryID)
	if err != nil {
		t.Fatalf("Counts() error = %v", err)
	}
	if counts.Total != 5 || counts.Liked != 2 || counts.Unliked != 3 {
		t.Errorf("Counts() = %+v, want total 5, liked 2, unliked 3", counts)
	}
	if counts.Liked+counts.Unliked != counts.Total {
		t.Errorf("liked %d + unliked %d != total %d", counts.Liked, counts.Unliked, counts.Total)
	}
}

func TestSubmitRequiresLikedPhotos(t *testing.T) {
	galleryRepo := newFakeGalleryRepo()
	photoRepo := newFakePhotoRepo()
	svc := NewSelectionService(galleryRepo, photoRepo)

	galleryID, _ := seedGalleryWithPhotos(t, galleryRepo, photoRepo, false, false)

	err := svc.Submit(context.Background(), galleryID)
	var stateErr *apperrors.InvalidStateError
	if !errors.As(err, &stateErr) {
		t.Fatalf("Submit() with no likes error = %v, want InvalidStateError", err)
	}

	gallery, _ := galleryRepo.GetByID(context.Background(), galleryID)
	if gallery.SelectionsSubmitted {
		t.Error("gallery submitted after rejected Submit")
	}
}

func TestSubmitAndReopen(t *testing.T) {
	galleryRepo := newFakeGalleryRepo()
	photoRepo := newFakePhotoRepo()
	svc := NewSelectionService(galleryRepo, photoRepo)

	galleryID, _ := seedGalleryWithPhotos(t, galleryRepo, photoRepo, true, false)

	if err := svc.Submit(context.Background(), galleryID); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	gallery, _ := galleryRepo.GetByID(context.Background(), galleryID)
	if !gallery.SelectionsSubmitted {
		t.Fatal("gallery not submitted after Submit")
	}

	if err := svc.Reopen(context.Background(), galleryID); err != nil {
		t.Fatalf("Reopen() error = %v", err)
	}
	gallery, _ = galleryRepo.GetByID(context.Background(), galleryID)
	if gallery.SelectionsSubmitted {
		t.Fatal("gallery still submitted after Reopen")
	}
}

func TestListPhotosFilter(t *testing.T) {
	galleryRepo := newFakeGalleryRepo()
	photoRepo := newFakePhotoRepo()
	svc := NewSelectionService(galleryRepo, photoRepo)

	galleryID, _ := seedGalleryWithPhotos(t, galleryRepo, photoRepo, true, false, true)

	tests := []struct {
		name   string
		filter services.PhotoFilter
		want   int
	}{
		{"all", services.FilterAll, 3},
		{"liked", services.FilterLiked, 2},
		{"unliked", services.FilterUnliked, 1},
		{"default", "", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			photos, err := svc.ListPhotos(context.Background(), galleryID, tt.filter)
			if err != nil {
				t.Fatalf("ListPhotos(%q) error = %v", tt.filter, err)
			}
			if len(photos) != tt.want {
				t.Errorf("ListPhotos(%q) returned %d photos, want %d", tt.filter, len(photos), tt.want)
			}
			for i := 1; i < len(photos); i++ {
				if photos[i-1].Position > photos[i].Position {
					t.Errorf("photos out of position order at %d", i)
				}
			}
		})
	}

	_, err := svc.ListPhotos(context.Background(), galleryID, "bogus")
	var valErr *apperrors.ValidationError
	if !errors.As(err, &valErr) {
		t.Errorf("ListPhotos(bogus) error = %v, want ValidationError", err)
	}
}

func TestExportLikedCSV(t *testing.T) {
	galleryRepo := newFakeGalleryRepo()
	photoRepo := newFakePhotoRepo()
	svc := NewSelectionService(galleryRepo, photoRepo)

	galleryID, _ := seedGalleryWithPhotos(t, galleryRepo, photoRepo, true, false, true)

	payload, err := svc.ExportLiked(context.Background(), galleryID, services.ExportCSV)
	if err != nil {
		t.Fatalf("ExportLiked(csv) error = %v", err)
	}
	if payload.ContentType != "text/csv" {
		t.Errorf("ContentType = %q, want text/csv", payload.ContentType)
	}

	lines := strings.Split(strings.TrimRight(string(payload.Content), "\n"), "\n")
	if lines[0] != "filename" {
		t.Errorf("csv header = %q, want filename", lines[0])
	}
	want := []string{filenameFor(0), filenameFor(2)}
	if len(lines)-1 != len(want) {
		t.Fatalf("csv has %d rows, want %d", len(lines)-1, len(want))
	}
	for i, name := range want {
		if lines[i+1] != name {
			t.Errorf("csv row %d = %q, want %q", i, lines[i+1], name)
		}
	}
}

func TestExportLikedJSON(t *testing.T) {
	galleryRepo := newFakeGalleryRepo()
	photoRepo := newFakePhotoRepo()
	svc := NewSelectionService(galleryRepo, photoRepo)

	galleryID, _ := seedGalleryWithPhotos(t, galleryRepo, photoRepo, true, true, false)

	payload, err := svc.ExportLiked(context.Background(), galleryID, services.ExportJSON)
	if err != nil {
		t.Fatalf("ExportLiked(json) error = %v", err)
	}
	if payload.ContentType != "application/json" {
		t.Errorf("ContentType = %q, want application/json", payload.ContentType)
	}

	var doc struct {
		ExportedAt    string   `json:"exportedAt"`
		TotalSelected int      `json:"totalSelected"`
		Filenames     []string `json:"filenames"`
	}
	if err := json.Unmarshal(payload.Content, &doc); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if doc.TotalSelected != 2 {
		t.Errorf("totalSelected = %d, want 2", doc.TotalSelected)
	}
	if len(doc.Filenames) != 2 || doc.Filenames[0] != filenameFor(0) || doc.Filenames[1] != filenameFor(1) {
		t.Errorf("filenames = %v, want position order", doc.Filenames)
	}
	if _, err := time.Parse(time.RFC3339, doc.ExportedAt); err != nil {
		t.Errorf("exportedAt %q is not RFC3339: %v", doc.ExportedAt, err)
	}
}

func TestExportLikedEmptySelection(t *testing.T) {
	galleryRepo := newFakeGalleryRepo()
	photoRepo := newFakePhotoRepo()
	svc := NewSelectionService(galleryRepo, photoRepo)

	galleryID, _ := seedGalleryWithPhotos(t, galleryRepo, photoRepo, false, false)

	_, err := svc.ExportLiked(context.Background(), galleryID, services.ExportJSON)
	var emptyErr *apperrors.EmptyResultError
	if !errors.As(err, &emptyErr) {
		t.Fatalf("ExportLiked() with no likes error = %v, want EmptyResultError", err)
	}
}

func TestExportLikedUnknownFormat(t *testing.T) {
	galleryRepo := newFakeGalleryRepo()
	photoRepo := newFakePhotoRepo()
	svc := NewSelectionService(galleryRepo, photoRepo)

	galleryID, _ := seedGalleryWithPhotos(t, galleryRepo, photoRepo, true)

	_, err := svc.ExportLiked(context.Background(), galleryID, "xml")
	var valErr *apperrors.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("ExportLiked(xml) error = %v, want ValidationError", err)
	}
}
