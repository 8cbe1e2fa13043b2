package serviceimpl

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"proofroom/domain/apperrors"
	"proofroom/infrastructure/googledrive"
)

func TestResolveFolderReference(t *testing.T) {
	svc := NewSyncService(&fakeLister{}, newFakePhotoRepo())

	folderID, err := svc.ResolveFolderReference("https://drive.google.com/drive/folders/1AbC_def-42?usp=sharing")
	if err != nil {
		t.Fatalf("ResolveFolderReference() error = %v", err)
	}
	if folderID != "1AbC_def-42" {
		t.Errorf("folderID = %q, want 1AbC_def-42", folderID)
	}

	_, err = svc.ResolveFolderReference("not a folder reference")
	var valErr *apperrors.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("ResolveFolderReference(invalid) error = %v, want ValidationError", err)
	}
}

func TestSyncToGalleryFiltersEligibleFiles(t *testing.T) {
	lister := &fakeLister{files: map[string][]googledrive.RemoteFile{
		"folder1": {
			{ID: "f1", Name: "IMG_001.ARW", MimeType: "image/x-sony-arw"},
			{ID: "f2", Name: "notes.txt", MimeType: "text/plain"},
			{ID: "f3", Name: "IMG_002.jpg", MimeType: "image/jpeg"},
			{ID: "f4", Name: "clip.mp4", MimeType: "video/mp4"},
			{ID: "f5", Name: "IMG_003.Cr2", MimeType: "image/x-canon-cr2"},
			{ID: "f6", Name: "subfolder", MimeType: "application/vnd.google-apps.folder"},
		},
	}}
	photoRepo := newFakePhotoRepo()
	svc := NewSyncService(lister, photoRepo)

	galleryID := uuid.New()
	result, err := svc.SyncToGallery(context.Background(), "folder1", galleryID)
	if err != nil {
		t.Fatalf("SyncToGallery() error = %v", err)
	}
	if result.PhotoCount != 3 {
		t.Fatalf("PhotoCount = %d, want 3", result.PhotoCount)
	}

	photos, _ := photoRepo.ListByGallery(context.Background(), galleryID, nil)
	if len(photos) != 3 {
		t.Fatalf("stored %d photos, want 3", len(photos))
	}

	wantNames := []string{"IMG_001.ARW", "IMG_002.jpg", "IMG_003.Cr2"}
	for i, p := range photos {
		if p.Filename != wantNames[i] {
			t.Errorf("photo %d filename = %q, want %q (listing order)", i, p.Filename, wantNames[i])
		}
		if p.Position != i {
			t.Errorf("photo %d position = %d, want %d", i, p.Position, i)
		}
		if p.PreviewURL == "" {
			t.Errorf("photo %d has empty preview URL", i)
		}
		if p.IsLiked {
			t.Errorf("photo %d ingested as liked", i)
		}
	}
}

func TestSyncToGalleryIdempotent(t *testing.T) {
	files := []googledrive.RemoteFile{
		{ID: "f1", Name: "a.jpg", MimeType: "image/jpeg"},
		{ID: "f2", Name: "b.png", MimeType: "image/png"},
	}
	lister := &fakeLister{files: map[string][]googledrive.RemoteFile{"folder1": files}}
	photoRepo := newFakePhotoRepo()
	svc := NewSyncService(lister, photoRepo)

	galleryID := uuid.New()
	if _, err := svc.SyncToGallery(context.Background(), "folder1", galleryID); err != nil {
		t.Fatalf("first sync error = %v", err)
	}

	result, err := svc.SyncToGallery(context.Background(), "folder1", galleryID)
	if err != nil {
		t.Fatalf("second sync error = %v", err)
	}
	if result.PhotoCount != 0 {
		t.Errorf("second sync PhotoCount = %d, want 0", result.PhotoCount)
	}

	// A new upstream file lands after the existing photos.
	lister.files["folder1"] = append(files, googledrive.RemoteFile{ID: "f3", Name: "c.dng", MimeType: "image/x-adobe-dng"})
	result, err = svc.SyncToGallery(context.Background(), "folder1", galleryID)
	if err != nil {
		t.Fatalf("third sync error = %v", err)
	}
	if result.PhotoCount != 1 {
		t.Fatalf("third sync PhotoCount = %d, want 1", result.PhotoCount)
	}

	photos, _ := photoRepo.ListByGallery(context.Background(), galleryID, nil)
	if len(photos) != 3 {
		t.Fatalf("stored %d photos, want 3", len(photos))
	}
	if photos[2].Filename != "c.dng" || photos[2].Position != 2 {
		t.Errorf("new photo = %q at %d, want c.dng at 2", photos[2].Filename, photos[2].Position)
	}
}

func TestSyncToGalleryEmptyFolder(t *testing.T) {
	lister := &fakeLister{files: map[string][]googledrive.RemoteFile{
		"folder1": {
			{ID: "f1", Name: "readme.md", MimeType: "text/markdown"},
		},
	}}
	photoRepo := newFakePhotoRepo()
	svc := NewSyncService(lister, photoRepo)

	_, err := svc.SyncToGallery(context.Background(), "folder1", uuid.New())
	var emptyErr *apperrors.EmptyResultError
	if !errors.As(err, &emptyErr) {
		t.Fatalf("SyncToGallery(no images) error = %v, want EmptyResultError", err)
	}
}

func TestSyncToGalleryUpstreamFailureWritesNothing(t *testing.T) {
	lister := &fakeLister{err: apperrors.NewUpstream("drive listing failed", errors.New("503"))}
	photoRepo := newFakePhotoRepo()
	svc := NewSyncService(lister, photoRepo)

	galleryID := uuid.New()
	_, err := svc.SyncToGallery(context.Background(), "folder1", galleryID)
	var upErr *apperrors.UpstreamError
	if !errors.As(err, &upErr) {
		t.Fatalf("SyncToGallery() error = %v, want UpstreamError", err)
	}

	photos, _ := photoRepo.ListByGallery(context.Background(), galleryID, nil)
	if len(photos) != 0 {
		t.Errorf("stored %d photos after failed listing, want 0", len(photos))
	}
}

func TestSyncToGalleryInsertFailurePropagates(t *testing.T) {
	lister := &fakeLister{files: map[string][]googledrive.RemoteFile{
		"folder1": {{ID: "f1", Name: "a.jpg", MimeType: "image/jpeg"}},
	}}
	photoRepo := newFakePhotoRepo()
	photoRepo.failCreateBatch = true
	svc := NewSyncService(lister, photoRepo)

	_, err := svc.SyncToGallery(context.Background(), "folder1", uuid.New())
	var persistErr *apperrors.PersistenceError
	if !errors.As(err, &persistErr) {
		t.Fatalf("SyncToGallery() with failing insert error = %v, want PersistenceError", err)
	}
}

func TestFilterEligible(t *testing.T) {
	files := []googledrive.RemoteFile{
		{ID: "1", Name: "a.JPG"},
		{ID: "2", Name: "b.jpeg"},
		{ID: "3", Name: "c.NEF"},
		{ID: "4", Name: "d.raf"},
		{ID: "5", Name: "e.gif"},
		{ID: "6", Name: "f.heic"},
		{ID: "7", Name: "noextension"},
		{ID: "8", Name: "g.png"},
	}

	got := filterEligible(files)
	want := []string{"1", "2", "3", "4", "8"}
	if len(got) != len(want) {
		t.Fatalf("filterEligible kept %d files, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("filterEligible[%d].ID = %q, want %q", i, got[i].ID, id)
		}
	}
}
