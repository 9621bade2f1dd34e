package device

import (
	"context"
	"errors"
	"fmt"

	"github.com/edsan89/jellyfin/internal/adapter/repository"
	"github.com/edsan89/jellyfin/internal/domain"
	"github.com/edsan89/jellyfin/internal/domain/entity"
)

// Service is the system of record for device metadata, per-device
// options and upload history.
type Service struct {
	deviceRepo  repository.DeviceRepository
	optionsRepo repository.DeviceOptionsRepository
	uploadRepo  repository.UploadRecordRepository
}

func NewService(
	deviceRepo repository.DeviceRepository,
	optionsRepo repository.DeviceOptionsRepository,
	uploadRepo repository.UploadRecordRepository,
) *Service {
	return &Service{
		deviceRepo:  deviceRepo,
		optionsRepo: optionsRepo,
		uploadRepo:  uploadRepo,
	}
}

type ListFilter struct {
	SupportsSync *bool
	UserID       string
}

// List returns devices joined with their options overlay. Filter fields
// combine with AND; omitting a field widens the result set.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]entity.DeviceInfo, error) {
	devices, err := s.deviceRepo.List(ctx, repository.DeviceFilter{
		SupportsSync: filter.SupportsSync,
		UserID:       filter.UserID,
	})
	if err != nil {
		return nil, fmt.Errorf("listing devices: %w", err)
	}
	return devices, nil
}

func (s *Service) Get(ctx context.Context, id string) (*entity.Device, error) {
	return s.deviceRepo.GetByID(ctx, id)
}

// GetOptions returns ErrOptionsNotFound when the device has never had an
// option update, which is distinct from the device itself being absent.
func (s *Service) GetOptions(ctx context.Context, id string) (*entity.DeviceOptions, error) {
	return s.optionsRepo.GetByDeviceID(ctx, id)
}

type OptionsInput struct {
	CustomName        string
	Disabled          bool
	CameraUploadPath  string
	CameraUploadAlbum string
}

// UpdateOptions upserts the options overlay. The device itself must
// exist; options without a device are meaningless.
func (s *Service) UpdateOptions(ctx context.Context, id string, input OptionsInput) error {
	if _, err := s.deviceRepo.GetByID(ctx, id); err != nil {
		return err
	}

	options := entity.NewDeviceOptions(id)
	options.CustomName = input.CustomName
	options.Disabled = input.Disabled
	options.CameraUploadPath = input.CameraUploadPath
	options.CameraUploadAlbum = input.CameraUploadAlbum

	if err := s.optionsRepo.Upsert(ctx, options); err != nil {
		return fmt.Errorf("updating device options: %w", err)
	}
	return nil
}

// GetUploadHistory returns the device's uploads ordered by creation
// time. A device with no uploads yields an empty history, not an error.
func (s *Service) GetUploadHistory(ctx context.Context, id string) ([]entity.UploadRecord, error) {
	records, err := s.uploadRepo.ListByDeviceID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("listing upload history: %w", err)
	}
	return records, nil
}

type ActivityInput struct {
	DeviceID   string
	DeviceName string
	AppName    string
	AppVersion string
	UserID     string
	UserName   string
}

// RecordActivity upserts the device on every authenticated request:
// an unseen device id creates the record, a known one refreshes its
// last-seen fields.
func (s *Service) RecordActivity(ctx context.Context, input ActivityInput) error {
	device, err := s.deviceRepo.GetByID(ctx, input.DeviceID)
	switch {
	case err == nil:
		if input.DeviceName != "" {
			device.Name = input.DeviceName
		}
		if input.AppName != "" {
			device.AppName = input.AppName
		}
		if input.AppVersion != "" {
			device.AppVersion = input.AppVersion
		}
	case errors.Is(err, domain.ErrDeviceNotFound):
		device = entity.NewDevice(input.DeviceID, input.DeviceName, input.AppName, input.AppVersion)
	default:
		return err
	}

	device.Touch(input.UserID, input.UserName)

	if err := s.deviceRepo.Upsert(ctx, device); err != nil {
		return fmt.Errorf("recording device activity: %w", err)
	}
	return nil
}
