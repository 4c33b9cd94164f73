// ABOUTME: Google Drive v3 file lister for public image folders.
// ABOUTME: Authenticates with an API key and paces requests with a rate limiter.
package gdrive

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const (
	driveRequestInterval = 100 * time.Millisecond
	driveFileFields      = googleapi.Field("nextPageToken,files(id,name,mimeType)")
)

// File is the subset of Drive file metadata used for thumbnails.
type File struct {
	ID       string
	Name     string
	MimeType string
}

// FileLister lists the image files in a Drive folder.
type FileLister interface {
	ListImages(ctx context.Context, folderID string) ([]File, error)
}

// DriveLister implements FileLister with the Drive v3 API.
type DriveLister struct {
	svc     *drive.Service
	limiter *rate.Limiter
}

// NewDriveLister creates a DriveLister authenticated with apiKey. Extra
// client options (such as option.WithEndpoint in tests) are appended.
func NewDriveLister(ctx context.Context, apiKey string, opts ...option.ClientOption) (*DriveLister, error) {
	if apiKey == "" {
		return nil, errors.New("google drive api key not configured")
	}
	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	svc, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create drive service: %w", err)
	}
	return &DriveLister{
		svc:     svc,
		limiter: rate.NewLimiter(rate.Every(driveRequestInterval), 1),
	}, nil
}

// ListImages returns every non-trashed image directly inside folderID.
func (l *DriveLister) ListImages(ctx context.Context, folderID string) ([]File, error) {
	q := fmt.Sprintf("'%s' in parents and mimeType contains 'image/' and trashed=false", folderID)
	call := l.svc.Files.List().Q(q).Fields(driveFileFields)

	var files []File
	err := call.Pages(ctx, func(page *drive.FileList) error {
		for _, f := range page.Files {
			if f == nil || f.Id == "" {
				continue
			}
			files = append(files, File{ID: f.Id, Name: f.Name, MimeType: f.MimeType})
		}
		return l.limiter.Wait(ctx)
	})
	if err != nil {
		return nil, describeDriveError(folderID, err)
	}
	return files, nil
}

func describeDriveError(folderID string, err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return fmt.Errorf("list drive folder %s: status %d: %s: %w", folderID, apiErr.Code, apiErr.Message, err)
	}
	return fmt.Errorf("list drive folder %s: %w", folderID, err)
}
