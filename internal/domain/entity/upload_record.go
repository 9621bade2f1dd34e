package entity

import "time"

// UploadRecord is one accepted camera upload, keyed by (DeviceID, UploadID).
// UploadID is supplied by the client so that retries of the same upload
// overwrite rather than duplicate.
type UploadRecord struct {
	DeviceID   string
	UploadID   string
	Name       string
	Album      string
	MimeType   string
	StorageKey string
	Size       int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func NewUploadRecord(deviceID, uploadID, name, album, mimeType, storageKey string, size int64) *UploadRecord {
	now := time.Now().UTC()
	return &UploadRecord{
		DeviceID:   deviceID,
		UploadID:   uploadID,
		Name:       name,
		Album:      album,
		MimeType:   mimeType,
		StorageKey: storageKey,
		Size:       size,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
