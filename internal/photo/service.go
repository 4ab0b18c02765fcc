package photo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/bartdorsey/image-upload-demo/internal/storage"
)

// PresignExpiry is how long the URLs handed to clients stay valid.
const PresignExpiry = 7 * 24 * time.Hour

// ErrStoreFailed is returned when the object store rejected an upload.
var ErrStoreFailed = errors.New("object store upload failed")

// MetadataRepo persists and retrieves photo records.
type MetadataRepo interface {
	Create(ctx context.Context, storageKey string, title, description *string) (*Photo, error)
	ListAll(ctx context.Context) ([]Photo, error)
}

// Service contains business logic for photo ingestion and listing.
type Service struct {
	store  storage.Storage
	repo   MetadataRepo
	logger *log.Logger
}

// NewService creates a new photo Service.
func NewService(store storage.Storage, repo MetadataRepo, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{store: store, repo: repo, logger: logger}
}

// Ingest validates the upload, assigns a unique storage key, and uploads the
// bytes to the object store, returning the key. Each step short-circuits:
// a rejected or failed upload leaves nothing behind.
func (s *Service) Ingest(ctx context.Context, up Upload) (string, error) {
	size, err := ValidateImage(up.ContentType, up.File)
	if err != nil {
		return "", err
	}

	key := NewStorageKey(up.Filename)

	if err := s.store.Upload(ctx, key, up.File, size, up.ContentType); err != nil {
		return "", fmt.Errorf("%w: %v", ErrStoreFailed, err)
	}
	return key, nil
}

// UploadPhoto runs the full upload flow: ingest the bytes, then — only after
// the store confirmed the upload — persist the metadata record.
func (s *Service) UploadPhoto(ctx context.Context, up Upload, title, description *string) (*PresentedPhoto, error) {
	key, err := s.Ingest(ctx, up)
	if err != nil {
		return nil, err
	}

	p, err := s.repo.Create(ctx, key, title, description)
	if err != nil {
		return nil, err
	}

	presented := s.resolve(ctx, p)
	return &presented, nil
}

// ListPhotos returns every photo with a presigned display URL. A presign
// failure downgrades that one record to a null URL; it never fails the listing.
func (s *Service) ListPhotos(ctx context.Context) ([]PresentedPhoto, error) {
	photos, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	presented := make([]PresentedPhoto, 0, len(photos))
	for i := range photos {
		presented = append(presented, s.resolve(ctx, &photos[i]))
	}
	return presented, nil
}

// resolve swaps a record's storage key for a presigned URL. On store errors
// the URL is left null so one bad record cannot break a whole listing.
func (s *Service) resolve(ctx context.Context, p *Photo) PresentedPhoto {
	presented := PresentedPhoto{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
	}

	url, err := s.store.PresignedGetURL(ctx, p.StorageKey, PresignExpiry)
	if err != nil {
		s.logger.Printf("presign failed for photo %d (%s): %v", p.ID, p.StorageKey, err)
		return presented
	}
	presented.PhotoURL = &url
	return presented
}

// IsRejected reports whether an error means the upload itself was refused
// (bad type, too large, or the store turned it away) rather than an internal
// failure.
func (s *Service) IsRejected(err error) bool {
	return errors.Is(err, ErrUnsupportedType) || errors.Is(err, ErrTooLarge) || errors.Is(err, ErrStoreFailed)
}
