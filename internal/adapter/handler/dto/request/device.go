package request

type ListDevicesRequest struct {
	SupportsSync *bool  `form:"supportsSync"`
	UserID       string `form:"userId" binding:"omitempty,uuid"`
}

type UpdateDeviceOptionsRequest struct {
	CustomName        string `json:"customName" binding:"omitempty,max=255"`
	Disabled          bool   `json:"disabled"`
	CameraUploadPath  string `json:"cameraUploadPath" binding:"omitempty,max=1024"`
	CameraUploadAlbum string `json:"cameraUploadAlbum" binding:"omitempty,max=255"`
}
