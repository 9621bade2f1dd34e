package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/edsan89/jellyfin/internal/domain/entity"
	"github.com/edsan89/jellyfin/internal/usecase/device"
	"github.com/edsan89/jellyfin/internal/usecase/session"
	"github.com/edsan89/jellyfin/internal/usecase/upload"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/handler_mocks.go -package=mocks

type DeviceService interface {
	List(ctx context.Context, filter device.ListFilter) ([]entity.DeviceInfo, error)
	Get(ctx context.Context, id string) (*entity.Device, error)
	GetOptions(ctx context.Context, id string) (*entity.DeviceOptions, error)
	UpdateOptions(ctx context.Context, id string, input device.OptionsInput) error
	GetUploadHistory(ctx context.Context, id string) ([]entity.UploadRecord, error)
}

type SessionService interface {
	RevokeDeviceSessions(ctx context.Context, deviceID string) (*session.RevocationResult, error)
	TrackStream(tokenID uuid.UUID) (<-chan struct{}, func())
}

type UploadService interface {
	Accept(ctx context.Context, input upload.Input) (*upload.Result, error)
}
