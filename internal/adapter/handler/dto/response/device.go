package response

import (
	"time"

	"github.com/edsan89/jellyfin/internal/domain/entity"
	"github.com/edsan89/jellyfin/internal/usecase/session"
)

type DeviceResponse struct {
	ID               string                 `json:"id"`
	Name             string                 `json:"name"`
	AppName          string                 `json:"appName"`
	AppVersion       string                 `json:"appVersion"`
	SupportsSync     bool                   `json:"supportsSync"`
	SupportsUploads  bool                   `json:"supportsContentUploading"`
	LastUserID       string                 `json:"lastUserId"`
	LastUserName     string                 `json:"lastUserName"`
	DateLastActivity time.Time              `json:"dateLastActivity"`
	Options          *DeviceOptionsResponse `json:"options,omitempty"`
}

type DeviceOptionsResponse struct {
	DeviceID          string `json:"deviceId"`
	CustomName        string `json:"customName"`
	Disabled          bool   `json:"disabled"`
	CameraUploadPath  string `json:"cameraUploadPath"`
	CameraUploadAlbum string `json:"cameraUploadAlbum"`
}

type DevicesListResponse struct {
	Items            []DeviceResponse `json:"items"`
	TotalRecordCount int              `json:"totalRecordCount"`
}

func DeviceFromEntity(d *entity.Device) DeviceResponse {
	return DeviceResponse{
		ID:               d.ID,
		Name:             d.Name,
		AppName:          d.AppName,
		AppVersion:       d.AppVersion,
		SupportsSync:     d.SupportsSync,
		SupportsUploads:  d.SupportsUploads,
		LastUserID:       d.LastUserID,
		LastUserName:     d.LastUserName,
		DateLastActivity: d.DateLastActivity,
	}
}

func OptionsFromEntity(o *entity.DeviceOptions) *DeviceOptionsResponse {
	if o == nil {
		return nil
	}
	return &DeviceOptionsResponse{
		DeviceID:          o.DeviceID,
		CustomName:        o.CustomName,
		Disabled:          o.Disabled,
		CameraUploadPath:  o.CameraUploadPath,
		CameraUploadAlbum: o.CameraUploadAlbum,
	}
}

func DevicesFromEntities(infos []entity.DeviceInfo) DevicesListResponse {
	items := make([]DeviceResponse, 0, len(infos))
	for i := range infos {
		item := DeviceFromEntity(&infos[i].Device)
		item.Name = infos[i].DisplayName()
		item.Options = OptionsFromEntity(infos[i].Options)
		items = append(items, item)
	}
	return DevicesListResponse{Items: items, TotalRecordCount: len(items)}
}

type RevocationFailureResponse struct {
	TokenID string `json:"tokenId"`
	Error   string `json:"error"`
}

type RevocationResponse struct {
	DeviceID          string                      `json:"deviceId"`
	SessionsAttempted int                         `json:"sessionsAttempted"`
	SessionsRevoked   int                         `json:"sessionsRevoked"`
	Failures          []RevocationFailureResponse `json:"failures,omitempty"`
}

func RevocationFromResult(r *session.RevocationResult) RevocationResponse {
	resp := RevocationResponse{
		DeviceID:          r.DeviceID,
		SessionsAttempted: r.Attempted,
		SessionsRevoked:   r.Revoked,
	}
	for _, f := range r.Failures {
		resp.Failures = append(resp.Failures, RevocationFailureResponse{
			TokenID: f.TokenID.String(),
			Error:   f.Err.Error(),
		})
	}
	return resp
}
