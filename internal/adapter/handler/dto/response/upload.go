package response

import (
	"time"

	"github.com/edsan89/jellyfin/internal/domain/entity"
	"github.com/edsan89/jellyfin/internal/usecase/upload"
)

type UploadRecordResponse struct {
	DeviceID    string    `json:"deviceId"`
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Album       string    `json:"album"`
	MimeType    string    `json:"mimeType"`
	Size        int64     `json:"size"`
	DateCreated time.Time `json:"dateCreated"`
}

type UploadHistoryResponse struct {
	DeviceID      string                 `json:"deviceId"`
	FilesUploaded []UploadRecordResponse `json:"filesUploaded"`
}

func UploadRecordFromEntity(r *entity.UploadRecord) UploadRecordResponse {
	return UploadRecordResponse{
		DeviceID:    r.DeviceID,
		ID:          r.UploadID,
		Name:        r.Name,
		Album:       r.Album,
		MimeType:    r.MimeType,
		Size:        r.Size,
		DateCreated: r.CreatedAt,
	}
}

func UploadHistoryFromEntities(deviceID string, records []entity.UploadRecord) UploadHistoryResponse {
	files := make([]UploadRecordResponse, 0, len(records))
	for i := range records {
		files = append(files, UploadRecordFromEntity(&records[i]))
	}
	return UploadHistoryResponse{DeviceID: deviceID, FilesUploaded: files}
}

type UploadResultResponse struct {
	Record    UploadRecordResponse `json:"record"`
	URL       string               `json:"url"`
	SignedURL string               `json:"signedUrl,omitempty"`
}

func UploadResultToResponse(result *upload.Result) UploadResultResponse {
	return UploadResultResponse{
		Record:    UploadRecordFromEntity(result.Record),
		URL:       result.URL,
		SignedURL: result.SignedURL,
	}
}
