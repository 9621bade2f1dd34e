package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/edsan89/jellyfin/internal/domain/entity"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/repository_mocks.go -package=mocks

// DeviceFilter narrows List results. Fields combine with AND; a zero
// value means the field does not filter.
type DeviceFilter struct {
	SupportsSync *bool
	UserID       string
}

type DeviceRepository interface {
	Upsert(ctx context.Context, device *entity.Device) error
	GetByID(ctx context.Context, id string) (*entity.Device, error)
	List(ctx context.Context, filter DeviceFilter) ([]entity.DeviceInfo, error)
}

type DeviceOptionsRepository interface {
	GetByDeviceID(ctx context.Context, deviceID string) (*entity.DeviceOptions, error)
	Upsert(ctx context.Context, options *entity.DeviceOptions) error
}

// TokenFilter narrows Query results, AND semantics as DeviceFilter.
type TokenFilter struct {
	DeviceID string
	UserID   string
}

type AuthTokenRepository interface {
	Create(ctx context.Context, info *entity.AuthenticationInfo) error
	GetByTokenID(ctx context.Context, tokenID uuid.UUID) (*entity.AuthenticationInfo, error)
	Query(ctx context.Context, filter TokenFilter) ([]entity.AuthenticationInfo, error)
	Revoke(ctx context.Context, tokenID uuid.UUID) error
	TouchActivity(ctx context.Context, tokenID uuid.UUID) error
	DeleteExpired(ctx context.Context) error
}

type UploadRecordRepository interface {
	Upsert(ctx context.Context, record *entity.UploadRecord) error
	GetByKey(ctx context.Context, deviceID, uploadID string) (*entity.UploadRecord, error)
	ListByDeviceID(ctx context.Context, deviceID string) ([]entity.UploadRecord, error)
}
