package serviceimpl

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"proofroom/domain/models"
	"proofroom/infrastructure/googledrive"
)

// In-memory repository fakes backing the service tests. They mimic the
// store contract the services rely on, including gorm.ErrRecordNotFound
// for missing rows.

type fakeAdminRepo struct {
	admins map[uuid.UUID]*models.Admin
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: make(map[uuid.UUID]*models.Admin)}
}

func (r *fakeAdminRepo) Create(ctx context.Context, admin *models.Admin) error {
	if admin.ID == uuid.Nil {
		admin.ID = uuid.New()
	}
	admin.CreatedAt = time.Now()
	copied := *admin
	r.admins[admin.ID] = &copied
	return nil
}

func (r *fakeAdminRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Admin, error) {
	a, ok := r.admins[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *a
	return &copied, nil
}

func (r *fakeAdminRepo) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	for _, a := range r.admins {
		if a.Email == email {
			copied := *a
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeAdminRepo) Update(ctx context.Context, id uuid.UUID, admin *models.Admin) error {
	if _, ok := r.admins[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *admin
	copied.ID = id
	r.admins[id] = &copied
	return nil
}

type fakeGalleryRepo struct {
	galleries map[uuid.UUID]*models.Gallery
}

func newFakeGalleryRepo() *fakeGalleryRepo {
	return &fakeGalleryRepo{galleries: make(map[uuid.UUID]*models.Gallery)}
}

func (r *fakeGalleryRepo) Create(ctx context.Context, gallery *models.Gallery) error {
	if gallery.ID == uuid.Nil {
		gallery.ID = uuid.New()
	}
	gallery.CreatedAt = time.Now()
	copied := *gallery
	r.galleries[gallery.ID] = &copied
	return nil
}

func (r *fakeGalleryRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Gallery, error) {
	g, ok := r.galleries[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *g
	return &copied, nil
}

func (r *fakeGalleryRepo) GetByShareToken(ctx context.Context, token string) (*models.Gallery, error) {
	for _, g := range r.galleries {
		if g.ShareToken == token {
			copied := *g
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeGalleryRepo) GetByAdmin(ctx context.Context, adminID uuid.UUID) ([]models.Gallery, error) {
	var out []models.Gallery
	for _, g := range r.galleries {
		if g.AdminID == adminID {
			out = append(out, *g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DisplayOrder < out[j].DisplayOrder })
	return out, nil
}

func (r *fakeGalleryRepo) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	g, ok := r.galleries[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if title, ok := updates["title"].(string); ok {
		g.Title = title
	}
	if sourceID, ok := updates["source_id"].(uuid.UUID); ok {
		g.SourceID = &sourceID
	}
	return nil
}

func (r *fakeGalleryRepo) UpdateDisplayOrder(ctx context.Context, id uuid.UUID, order int) error {
	g, ok := r.galleries[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	g.DisplayOrder = order
	return nil
}

func (r *fakeGalleryRepo) SetSubmitted(ctx context.Context, id uuid.UUID, submitted bool) error {
	g, ok := r.galleries[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	g.SelectionsSubmitted = submitted
	return nil
}

func (r *fakeGalleryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.galleries, id)
	return nil
}

func (r *fakeGalleryRepo) DetachSource(ctx context.Context, sourceID uuid.UUID) (int64, error) {
	var n int64
	for _, g := range r.galleries {
		if g.SourceID != nil && *g.SourceID == sourceID {
			g.SourceID = nil
			n++
		}
	}
	return n, nil
}

func (r *fakeGalleryRepo) CountByAdmin(ctx context.Context, adminID uuid.UUID) (int64, error) {
	var n int64
	for _, g := range r.galleries {
		if g.AdminID == adminID {
			n++
		}
	}
	return n, nil
}

type fakePhotoRepo struct {
	photos []*models.Photo

	failSetLiked    bool
	failCreateBatch bool
}

func newFakePhotoRepo() *fakePhotoRepo {
	return &fakePhotoRepo{}
}

func (r *fakePhotoRepo) CreateBatch(ctx context.Context, photos []*models.Photo) error {
	if r.failCreateBatch {
		return errors.New("insert rejected")
	}
	for _, p := range photos {
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		copied := *p
		r.photos = append(r.photos, &copied)
	}
	return nil
}

func (r *fakePhotoRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Photo, error) {
	for _, p := range r.photos {
		if p.ID == id {
			copied := *p
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakePhotoRepo) ListByGallery(ctx context.Context, galleryID uuid.UUID, liked *bool) ([]models.Photo, error) {
	var out []models.Photo
	for _, p := range r.photos {
		if p.GalleryID != galleryID {
			continue
		}
		if liked != nil && p.IsLiked != *liked {
			continue
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (r *fakePhotoRepo) ListRemoteFileIDs(ctx context.Context, galleryID uuid.UUID) ([]string, error) {
	var ids []string
	for _, p := range r.photos {
		if p.GalleryID == galleryID {
			ids = append(ids, p.RemoteFileID)
		}
	}
	return ids, nil
}

func (r *fakePhotoRepo) CountByGallery(ctx context.Context, galleryID uuid.UUID) (int64, int64, error) {
	var total, liked int64
	for _, p := range r.photos {
		if p.GalleryID != galleryID {
			continue
		}
		total++
		if p.IsLiked {
			liked++
		}
	}
	return total, liked, nil
}

func (r *fakePhotoRepo) SetLiked(ctx context.Context, id uuid.UUID, liked bool) error {
	if r.failSetLiked {
		return errors.New("write rejected")
	}
	for _, p := range r.photos {
		if p.ID == id {
			p.IsLiked = liked
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakePhotoRepo) DeleteByGallery(ctx context.Context, galleryID uuid.UUID) (int64, error) {
	kept := r.photos[:0]
	var n int64
	for _, p := range r.photos {
		if p.GalleryID == galleryID {
			n++
			continue
		}
		kept = append(kept, p)
	}
	r.photos = kept
	return n, nil
}

type fakeSourceRepo struct {
	sources map[uuid.UUID]*models.Source
}

func newFakeSourceRepo() *fakeSourceRepo {
	return &fakeSourceRepo{sources: make(map[uuid.UUID]*models.Source)}
}

func (r *fakeSourceRepo) Create(ctx context.Context, source *models.Source) error {
	if source.ID == uuid.Nil {
		source.ID = uuid.New()
	}
	copied := *source
	r.sources[source.ID] = &copied
	return nil
}

func (r *fakeSourceRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Source, error) {
	s, ok := r.sources[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *s
	return &copied, nil
}

func (r *fakeSourceRepo) GetByAdmin(ctx context.Context, adminID uuid.UUID) ([]models.Source, error) {
	var out []models.Source
	for _, s := range r.sources {
		if s.AdminID == adminID {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DisplayOrder < out[j].DisplayOrder })
	return out, nil
}

func (r *fakeSourceRepo) Update(ctx context.Context, id uuid.UUID, source *models.Source) error {
	if _, ok := r.sources[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *source
	copied.ID = id
	r.sources[id] = &copied
	return nil
}

func (r *fakeSourceRepo) UpdateDisplayOrder(ctx context.Context, id uuid.UUID, order int) error {
	s, ok := r.sources[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	s.DisplayOrder = order
	return nil
}

func (r *fakeSourceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.sources, id)
	return nil
}

func (r *fakeSourceRepo) CountByAdmin(ctx context.Context, adminID uuid.UUID) (int64, error) {
	var n int64
	for _, s := range r.sources {
		if s.AdminID == adminID {
			n++
		}
	}
	return n, nil
}

type fakeSyncJobRepo struct {
	jobs []*models.SyncJob
}

func newFakeSyncJobRepo() *fakeSyncJobRepo {
	return &fakeSyncJobRepo{}
}

func (r *fakeSyncJobRepo) Create(ctx context.Context, job *models.SyncJob) error {
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	if job.Status == "" {
		job.Status = models.SyncJobStatusPending
	}
	job.CreatedAt = time.Now()
	copied := *job
	r.jobs = append(r.jobs, &copied)
	return nil
}

func (r *fakeSyncJobRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.SyncJob, error) {
	for _, j := range r.jobs {
		if j.ID == id {
			copied := *j
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeSyncJobRepo) GetLatestByGallery(ctx context.Context, galleryID uuid.UUID) (*models.SyncJob, error) {
	for i := len(r.jobs) - 1; i >= 0; i-- {
		if r.jobs[i].GalleryID == galleryID {
			copied := *r.jobs[i]
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeSyncJobRepo) GetPendingJobs(ctx context.Context, limit int) ([]models.SyncJob, error) {
	var out []models.SyncJob
	for _, j := range r.jobs {
		if j.Status == models.SyncJobStatusPending {
			out = append(out, *j)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *fakeSyncJobRepo) HasPendingOrRunningJobForGallery(ctx context.Context, galleryID uuid.UUID) (bool, error) {
	for _, j := range r.jobs {
		if j.GalleryID == galleryID &&
			(j.Status == models.SyncJobStatusPending || j.Status == models.SyncJobStatusRunning) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeSyncJobRepo) Update(ctx context.Context, id uuid.UUID, job *models.SyncJob) error {
	for _, j := range r.jobs {
		if j.ID == id {
			if job.Status != "" {
				j.Status = job.Status
			}
			if job.TotalItems != 0 {
				j.TotalItems = job.TotalItems
			}
			if job.ProcessedItems != 0 {
				j.ProcessedItems = job.ProcessedItems
			}
			if job.LastError != "" {
				j.LastError = job.LastError
			}
			if job.CompletedAt != nil {
				j.CompletedAt = job.CompletedAt
			}
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeSyncJobRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.SyncJobStatus) error {
	for _, j := range r.jobs {
		if j.ID == id {
			j.Status = status
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeSyncJobRepo) UpdateProgress(ctx context.Context, id uuid.UUID, processed int) error {
	for _, j := range r.jobs {
		if j.ID == id {
			j.ProcessedItems = processed
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeSyncJobRepo) ResetStuck(ctx context.Context, olderThan time.Duration) (int64, error) {
	return 0, nil
}

func (r *fakeSyncJobRepo) DeleteByGallery(ctx context.Context, galleryID uuid.UUID) error {
	kept := r.jobs[:0]
	for _, j := range r.jobs {
		if j.GalleryID != galleryID {
			kept = append(kept, j)
		}
	}
	r.jobs = kept
	return nil
}

// fakeLister serves a fixed folder listing.
type fakeLister struct {
	files map[string][]googledrive.RemoteFile
	err   error
}

func (l *fakeLister) ListFolderFiles(ctx context.Context, folderID string) ([]googledrive.RemoteFile, error) {
	if l.err != nil {
		return nil, l.err
	}
	return l.files[folderID], nil
}

func (l *fakeLister) PreviewURL(fileID string) string {
	return fmt.Sprintf("https://drive.google.com/thumbnail?id=%s&sz=w1000", fileID)
}
