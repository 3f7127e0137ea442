package upload

import (
	"bytes"
	"context"
	"errors"
	"io"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBlobStore struct {
	putErr error

	key         string
	contentType string
	size        int64
	calls       int
}

func (s *stubBlobStore) Put(ctx context.Context, key, contentType string, body io.Reader, size int64) error {
	s.calls++
	if s.putErr != nil {
		return s.putErr
	}
	s.key = key
	s.contentType = contentType
	s.size = size
	return nil
}

func newTestService(blobs *stubBlobStore) *Service {
	return NewService(blobs, "https://cdn.example.org/images/")
}

func TestUpload_SizeBoundary(t *testing.T) {
	blobs := &stubBlobStore{}
	svc := newTestService(blobs)
	body := bytes.NewReader(nil)

	// Exactly 4 MiB passes.
	url, err := svc.Upload(context.Background(), "photo.jpg", "image/jpeg", MaxFileSize, body)
	require.NoError(t, err)
	assert.NotEmpty(t, url)

	// One byte more is rejected before the store is reached.
	calls := blobs.calls
	_, err = svc.Upload(context.Background(), "photo.jpg", "image/jpeg", MaxFileSize+1, body)
	assert.ErrorIs(t, err, ErrFileTooLarge)
	assert.Equal(t, calls, blobs.calls)
}

func TestUpload_EmptyFileRejected(t *testing.T) {
	blobs := &stubBlobStore{}
	svc := newTestService(blobs)

	_, err := svc.Upload(context.Background(), "photo.png", "image/png", 0, bytes.NewReader(nil))
	assert.ErrorIs(t, err, ErrEmptyFile)
	assert.Zero(t, blobs.calls)
}

func TestUpload_KeyPreservesExtension(t *testing.T) {
	blobs := &stubBlobStore{}
	svc := newTestService(blobs)
	svc.now = func() time.Time { return time.UnixMilli(1700000000000) }

	_, err := svc.Upload(context.Background(), "diagram.final.JPEG", "image/jpeg", 10, strings.NewReader("0123456789"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(blobs.key, "1700000000000-"))
	assert.True(t, strings.HasSuffix(blobs.key, ".jpeg"))
}

func TestUpload_DefaultsExtensionAndContentType(t *testing.T) {
	blobs := &stubBlobStore{}
	svc := newTestService(blobs)

	_, err := svc.Upload(context.Background(), "pasted-image", "", 10, strings.NewReader("0123456789"))
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(blobs.key, ".png"))
	assert.Equal(t, "image/png", blobs.contentType)
}

func TestUpload_KeysAreCollisionResistant(t *testing.T) {
	blobs := &stubBlobStore{}
	svc := newTestService(blobs)
	fixed := time.UnixMilli(1700000000000)
	svc.now = func() time.Time { return fixed }

	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		_, err := svc.Upload(context.Background(), "a.png", "image/png", 1, strings.NewReader("x"))
		require.NoError(t, err)
		assert.False(t, seen[blobs.key], "duplicate key %s", blobs.key)
		seen[blobs.key] = true
	}
}

func TestUpload_PublicURL(t *testing.T) {
	blobs := &stubBlobStore{}
	svc := newTestService(blobs)

	url, err := svc.Upload(context.Background(), "a.png", "image/png", 1, strings.NewReader("x"))
	require.NoError(t, err)

	// Base URL trailing slash must not double up.
	assert.Regexp(t, regexp.MustCompile(`^https://cdn\.example\.org/images/\d+-[0-9a-f-]+\.png$`), url)
}

func TestUpload_StoreErrorPropagates(t *testing.T) {
	storeErr := errors.New("bucket not found")
	svc := newTestService(&stubBlobStore{putErr: storeErr})

	_, err := svc.Upload(context.Background(), "a.png", "image/png", 1, strings.NewReader("x"))
	assert.Equal(t, storeErr, err)
}
