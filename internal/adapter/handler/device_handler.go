package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edsan89/jellyfin/internal/adapter/handler/dto/request"
	"github.com/edsan89/jellyfin/internal/adapter/handler/dto/response"
	"github.com/edsan89/jellyfin/internal/domain"
	"github.com/edsan89/jellyfin/internal/pkg/httputil"
	"github.com/edsan89/jellyfin/internal/usecase/device"
)

type DeviceHandler struct {
	deviceSvc  DeviceService
	sessionSvc SessionService
}

func NewDeviceHandler(deviceSvc DeviceService, sessionSvc SessionService) *DeviceHandler {
	return &DeviceHandler{deviceSvc: deviceSvc, sessionSvc: sessionSvc}
}

func (h *DeviceHandler) List(c *gin.Context) {
	var req request.ListDevicesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	devices, err := h.deviceSvc.List(c.Request.Context(), device.ListFilter{
		SupportsSync: req.SupportsSync,
		UserID:       req.UserID,
	})
	if err != nil {
		httputil.InternalError(c)
		return
	}

	httputil.OK(c, response.DevicesFromEntities(devices))
}

func (h *DeviceHandler) GetInfo(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "MISSING_ID", "device id is required")
		return
	}

	d, err := h.deviceSvc.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDeviceNotFound):
			httputil.ErrorWithCode(c, http.StatusNotFound, "NOT_FOUND", "device not found")
		default:
			httputil.InternalError(c)
		}
		return
	}

	httputil.OK(c, response.DeviceFromEntity(d))
}

func (h *DeviceHandler) GetOptions(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "MISSING_ID", "device id is required")
		return
	}

	options, err := h.deviceSvc.GetOptions(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOptionsNotFound):
			httputil.ErrorWithCode(c, http.StatusNotFound, "NOT_FOUND", "device options not found")
		default:
			httputil.InternalError(c)
		}
		return
	}

	httputil.OK(c, response.OptionsFromEntity(options))
}

func (h *DeviceHandler) UpdateOptions(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "MISSING_ID", "device id is required")
		return
	}

	var req request.UpdateDeviceOptionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	err := h.deviceSvc.UpdateOptions(c.Request.Context(), id, device.OptionsInput{
		CustomName:        req.CustomName,
		Disabled:          req.Disabled,
		CameraUploadPath:  req.CameraUploadPath,
		CameraUploadAlbum: req.CameraUploadAlbum,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDeviceNotFound):
			httputil.ErrorWithCode(c, http.StatusNotFound, "NOT_FOUND", "device not found")
		default:
			httputil.InternalError(c)
		}
		return
	}

	c.Status(http.StatusOK)
}

// Delete revokes every session bound to the device. The device record
// itself is kept, so repeating the call is harmless and always succeeds
// with 200, even for a device with no outstanding sessions.
func (h *DeviceHandler) Delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "MISSING_ID", "device id is required")
		return
	}

	result, err := h.sessionSvc.RevokeDeviceSessions(c.Request.Context(), id)
	if err != nil {
		httputil.InternalError(c)
		return
	}

	httputil.OK(c, response.RevocationFromResult(result))
}
