package googledrive

import (
	"context"
	"fmt"
	"regexp"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"proofroom/domain/apperrors"
	"proofroom/pkg/config"
	"proofroom/pkg/logger"
)

// DriveClient lists publicly shared Google Drive folders with an API key.
// Folders shared "anyone with the link" need no OAuth consent, which is the
// whole point: the photographer shares a folder once and the server reads it.
type DriveClient struct {
	apiKey       string
	previewWidth int
}

// RemoteFile is one file from a Drive folder listing.
type RemoteFile struct {
	ID           string
	Name         string
	MimeType     string
	ThumbnailURL string
}

var (
	folderPathPattern = regexp.MustCompile(`/folders/([a-zA-Z0-9_-]+)`)
	idParamPattern    = regexp.MustCompile(`[?&]id=([a-zA-Z0-9_-]+)`)
	bareIDPattern     = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
)

// ExtractFolderID pulls a folder ID out of a Drive URL, an id= link, or a
// bare ID token. Priority: /folders/ path segment, id= query parameter, bare
// ID. Returns "" when nothing matches; callers decide whether that is an
// error.
func ExtractFolderID(ref string) string {
	if m := folderPathPattern.FindStringSubmatch(ref); m != nil {
		return m[1]
	}
	if m := idParamPattern.FindStringSubmatch(ref); m != nil {
		return m[1]
	}
	if bareIDPattern.MatchString(ref) {
		return ref
	}
	return ""
}

func NewDriveClient(cfg config.GoogleDriveConfig) *DriveClient {
	width := cfg.PreviewWidth
	if width <= 0 {
		width = 1000
	}
	return &DriveClient{
		apiKey:       cfg.APIKey,
		previewWidth: width,
	}
}

// ValidateConfig checks if the configuration is valid
func (c *DriveClient) ValidateConfig() error {
	if c.apiKey == "" {
		return fmt.Errorf("GOOGLE_DRIVE_API_KEY is not configured")
	}
	return nil
}

// PreviewURL builds the width-templated thumbnail URL for a Drive file.
func (c *DriveClient) PreviewURL(fileID string) string {
	return fmt.Sprintf("https://drive.google.com/thumbnail?id=%s&sz=w%d", fileID, c.previewWidth)
}

// ListFolderFiles pages through the folder's non-trashed files. The listing
// is all-or-nothing: an error on any page discards everything collected so
// far and surfaces as an UpstreamError, so a partial listing never reaches
// the reconciler.
func (c *DriveClient) ListFolderFiles(ctx context.Context, folderID string) ([]RemoteFile, error) {
	srv, err := drive.NewService(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return nil, apperrors.NewUpstream("failed to create drive service", err)
	}

	query := fmt.Sprintf("'%s' in parents and trashed=false", folderID)

	var files []RemoteFile
	pageToken := ""
	pageCount := 0

	for {
		call := srv.Files.List().
			Q(query).
			Fields("nextPageToken, files(id, name, mimeType, thumbnailLink)").
			PageSize(100)

		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		result, err := call.Context(ctx).Do()
		if err != nil {
			logger.DriveError("list_folder_failed", "Drive listing failed", err, map[string]interface{}{
				"folder_id": folderID,
				"page":      pageCount,
			})
			return nil, apperrors.NewUpstream("failed to list folder "+folderID, err)
		}
		pageCount++

		for _, f := range result.Files {
			files = append(files, RemoteFile{
				ID:           f.Id,
				Name:         f.Name,
				MimeType:     f.MimeType,
				ThumbnailURL: f.ThumbnailLink,
			})
		}

		pageToken = result.NextPageToken
		if pageToken == "" {
			break
		}
	}

	logger.Drive("folder_listed", "Listed folder files", map[string]interface{}{
		"folder_id":  folderID,
		"file_count": len(files),
		"pages":      pageCount,
	})

	return files, nil
}
