package entity

import "time"

// Device is a distinct client installation. The ID is assigned by the
// client on first authentication and is stable across sessions.
type Device struct {
	ID               string
	Name             string
	AppName          string
	AppVersion       string
	SupportsSync     bool
	SupportsUploads  bool
	LastUserID       string
	LastUserName     string
	DateLastActivity time.Time
	DateCreated      time.Time
}

func NewDevice(id, name, appName, appVersion string) *Device {
	now := time.Now().UTC()
	return &Device{
		ID:               id,
		Name:             name,
		AppName:          appName,
		AppVersion:       appVersion,
		DateLastActivity: now,
		DateCreated:      now,
	}
}

// Touch records that the device was just seen acting on behalf of a user.
func (d *Device) Touch(userID, userName string) {
	d.LastUserID = userID
	d.LastUserName = userName
	d.DateLastActivity = time.Now().UTC()
}

// DeviceInfo is a device joined with its options overlay. Options is nil
// when no option update has ever been applied to the device.
type DeviceInfo struct {
	Device
	Options *DeviceOptions
}

// DisplayName resolves the custom name override if one is set.
func (d *DeviceInfo) DisplayName() string {
	if d.Options != nil && d.Options.CustomName != "" {
		return d.Options.CustomName
	}
	return d.Name
}
