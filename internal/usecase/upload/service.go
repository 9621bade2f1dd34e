package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/edsan89/jellyfin/internal/adapter/repository"
	"github.com/edsan89/jellyfin/internal/adapter/storage"
	"github.com/edsan89/jellyfin/internal/domain"
	"github.com/edsan89/jellyfin/internal/domain/entity"
)

// SourceKind tags where the upload payload comes from. The two request
// shapes are resolved once at the HTTP entry point; everything below
// treats the payload as an opaque stream.
type SourceKind int

const (
	SourceFormFile SourceKind = iota + 1
	SourceRawBody
)

// Source is the resolved upload payload: either the first file part of
// a multipart form or the raw request body.
type Source struct {
	Kind        SourceKind
	Reader      io.Reader
	ContentType string
}

type Input struct {
	DeviceID string
	UploadID string
	Name     string
	Album    string
	Source   Source
}

type Result struct {
	Record    *entity.UploadRecord
	URL       string
	SignedURL string
}

// Service ingests camera uploads: it streams the payload to blob
// storage under a key derived from (deviceId, uploadId) and keeps the
// upload history deduplicated on that same key.
type Service struct {
	deviceRepo repository.DeviceRepository
	uploadRepo repository.UploadRecordRepository
	storage    storage.BlobStorage
	locks      keyedMutex
}

func NewService(
	deviceRepo repository.DeviceRepository,
	uploadRepo repository.UploadRecordRepository,
	blobStorage storage.BlobStorage,
) *Service {
	return &Service{
		deviceRepo: deviceRepo,
		uploadRepo: uploadRepo,
		storage:    blobStorage,
	}
}

// Accept validates the device, streams the payload to storage and
// publishes the upload record. Re-submitting an upload id overwrites
// the stored content and updates the record in place; the history never
// gains a second entry for the same id. A storage failure leaves no
// record claiming success.
func (s *Service) Accept(ctx context.Context, input Input) (*Result, error) {
	if _, err := s.deviceRepo.GetByID(ctx, input.DeviceID); err != nil {
		return nil, err
	}

	contentType := input.Source.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := fmt.Sprintf("uploads/%s/%s", input.DeviceID, input.UploadID)

	// Last-writer-wins per key: concurrent retries of the same upload
	// are serialized so their streams cannot interleave.
	unlock := s.locks.Lock(key)
	defer unlock()

	existing, err := s.uploadRepo.GetByKey(ctx, input.DeviceID, input.UploadID)
	if err != nil && !errors.Is(err, domain.ErrUploadNotFound) {
		return nil, fmt.Errorf("checking upload record: %w", err)
	}

	counting := &countingReader{reader: input.Source.Reader}
	if err := s.storage.Upload(ctx, key, counting, contentType); err != nil {
		return nil, fmt.Errorf("storing upload: %w", err)
	}

	record := entity.NewUploadRecord(
		input.DeviceID, input.UploadID, input.Name, input.Album,
		contentType, key, counting.n,
	)
	if existing != nil {
		// Keep the original history position on re-upload.
		record.CreatedAt = existing.CreatedAt
	}

	if err := s.uploadRepo.Upsert(ctx, record); err != nil {
		if existing == nil {
			// Nothing referenced the blob before this upload.
			_ = s.storage.Delete(ctx, key)
		}
		return nil, fmt.Errorf("recording upload: %w", err)
	}

	url := s.storage.GetURL(key)
	signedURL, _ := s.storage.GetSignedURL(key, 24*time.Hour)

	return &Result{
		Record:    record,
		URL:       url,
		SignedURL: signedURL,
	}, nil
}

type countingReader struct {
	reader io.Reader
	n      int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.reader.Read(p)
	c.n += int64(n)
	return n, err
}
