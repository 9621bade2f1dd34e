package storage

import (
	"context"
	"io"
	"time"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/storage_mocks.go -package=mocks

// BlobStorage stores upload payloads. Upload must stream the reader
// through without buffering the whole payload, and must publish the
// object atomically: a failed upload leaves no readable object under key.
type BlobStorage interface {
	Upload(ctx context.Context, key string, reader io.Reader, contentType string) error
	GetURL(key string) string
	GetSignedURL(key string, expiry time.Duration) (string, error)
	Delete(ctx context.Context, key string) error
}
