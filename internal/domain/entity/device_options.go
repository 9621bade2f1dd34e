package entity

import "time"

// DeviceOptions is an optional 1:1 overlay on a Device. A device with no
// prior option update has no row, which is a distinct state from the
// device itself being absent.
type DeviceOptions struct {
	DeviceID          string
	CustomName        string
	Disabled          bool
	CameraUploadPath  string
	CameraUploadAlbum string
	UpdatedAt         time.Time
}

func NewDeviceOptions(deviceID string) *DeviceOptions {
	return &DeviceOptions{
		DeviceID:  deviceID,
		UpdatedAt: time.Now().UTC(),
	}
}
