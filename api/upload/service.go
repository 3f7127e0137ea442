package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxFileSize is the largest accepted upload. Exactly MaxFileSize
// passes; one byte more is rejected before any network call.
const MaxFileSize = 4 << 20

var (
	ErrEmptyFile    = errors.New("no file selected")
	ErrFileTooLarge = errors.New("file exceeds the 4 MiB limit")
)

// BlobStore accepts a named binary upload. Put must fail on key
// collision rather than overwrite.
type BlobStore interface {
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) error
}

// Service validates image uploads and stores them under a
// collision-resistant key.
type Service struct {
	blobs         BlobStore
	publicBaseURL string
	now           func() time.Time
}

func NewService(blobs BlobStore, publicBaseURL string) *Service {
	return &Service{
		blobs:         blobs,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		now:           time.Now,
	}
}

// Upload validates the file, stores it and returns its public URL.
// Validation errors are returned before any store call.
func (s *Service) Upload(ctx context.Context, filename, contentType string, size int64, body io.Reader) (string, error) {
	if size <= 0 {
		return "", ErrEmptyFile
	}
	if size > MaxFileSize {
		return "", ErrFileTooLarge
	}

	if contentType == "" {
		contentType = "image/png"
	}

	key := s.objectKey(filename)
	if err := s.blobs.Put(ctx, key, contentType, body, size); err != nil {
		return "", err
	}

	return s.publicBaseURL + "/" + key, nil
}

// objectKey builds a timestamp-plus-random key preserving the original
// extension, defaulting to png.
func (s *Service) objectKey(filename string) string {
	ext := strings.TrimPrefix(strings.ToLower(path.Ext(filename)), ".")
	if ext == "" {
		ext = "png"
	}
	return fmt.Sprintf("%d-%s.%s", s.now().UnixMilli(), uuid.NewString(), ext)
}
