package device_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/edsan89/jellyfin/internal/adapter/repository"
	"github.com/edsan89/jellyfin/internal/domain"
	"github.com/edsan89/jellyfin/internal/domain/entity"
	"github.com/edsan89/jellyfin/internal/mocks"
	"github.com/edsan89/jellyfin/internal/usecase/device"
)

func newService(ctrl *gomock.Controller) (*device.Service, *mocks.MockDeviceRepository, *mocks.MockDeviceOptionsRepository, *mocks.MockUploadRecordRepository) {
	deviceRepo := mocks.NewMockDeviceRepository(ctrl)
	optionsRepo := mocks.NewMockDeviceOptionsRepository(ctrl)
	uploadRepo := mocks.NewMockUploadRecordRepository(ctrl)
	return device.NewService(deviceRepo, optionsRepo, uploadRepo), deviceRepo, optionsRepo, uploadRepo
}

func TestService_List(t *testing.T) {
	t.Run("lists all devices without filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, deviceRepo, _, _ := newService(ctrl)
		ctx := context.Background()

		infos := []entity.DeviceInfo{
			{Device: entity.Device{ID: "device-1", Name: "Living Room TV"}},
			{Device: entity.Device{ID: "device-2", Name: "Phone"}},
		}

		deviceRepo.EXPECT().List(ctx, repository.DeviceFilter{}).Return(infos, nil)

		result, err := svc.List(ctx, device.ListFilter{})

		require.NoError(t, err)
		assert.Len(t, result, 2)
		assert.Equal(t, "device-1", result[0].ID)
	})

	t.Run("passes filter fields through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, deviceRepo, _, _ := newService(ctrl)
		ctx := context.Background()

		supportsSync := true
		deviceRepo.EXPECT().
			List(ctx, repository.DeviceFilter{SupportsSync: &supportsSync, UserID: "user-1"}).
			Return([]entity.DeviceInfo{}, nil)

		result, err := svc.List(ctx, device.ListFilter{SupportsSync: &supportsSync, UserID: "user-1"})

		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("returns repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, deviceRepo, _, _ := newService(ctrl)
		ctx := context.Background()

		deviceRepo.EXPECT().List(ctx, gomock.Any()).Return(nil, errors.New("connection refused"))

		result, err := svc.List(ctx, device.ListFilter{})

		assert.Nil(t, result)
		assert.Error(t, err)
	})
}

func TestService_Get(t *testing.T) {
	t.Run("returns device", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, deviceRepo, _, _ := newService(ctrl)
		ctx := context.Background()

		d := &entity.Device{ID: "device-1", Name: "Phone"}
		deviceRepo.EXPECT().GetByID(ctx, "device-1").Return(d, nil)

		result, err := svc.Get(ctx, "device-1")

		require.NoError(t, err)
		assert.Equal(t, "device-1", result.ID)
	})

	t.Run("returns not found for unknown device", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, deviceRepo, _, _ := newService(ctrl)
		ctx := context.Background()

		deviceRepo.EXPECT().GetByID(ctx, "missing").Return(nil, domain.ErrDeviceNotFound)

		result, err := svc.Get(ctx, "missing")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, domain.ErrDeviceNotFound)
	})
}

func TestService_GetOptions(t *testing.T) {
	t.Run("returns options", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _, optionsRepo, _ := newService(ctrl)
		ctx := context.Background()

		options := &entity.DeviceOptions{DeviceID: "device-1", CustomName: "Bedroom"}
		optionsRepo.EXPECT().GetByDeviceID(ctx, "device-1").Return(options, nil)

		result, err := svc.GetOptions(ctx, "device-1")

		require.NoError(t, err)
		assert.Equal(t, "Bedroom", result.CustomName)
	})

	t.Run("returns not found when device never had options", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _, optionsRepo, _ := newService(ctrl)
		ctx := context.Background()

		optionsRepo.EXPECT().GetByDeviceID(ctx, "device-1").Return(nil, domain.ErrOptionsNotFound)

		result, err := svc.GetOptions(ctx, "device-1")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, domain.ErrOptionsNotFound)
	})
}

func TestService_UpdateOptions(t *testing.T) {
	t.Run("upserts options for existing device", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, deviceRepo, optionsRepo, _ := newService(ctrl)
		ctx := context.Background()

		deviceRepo.EXPECT().GetByID(ctx, "device-1").Return(&entity.Device{ID: "device-1"}, nil)
		optionsRepo.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, options *entity.DeviceOptions) error {
				assert.Equal(t, "device-1", options.DeviceID)
				assert.Equal(t, "Bedroom", options.CustomName)
				assert.True(t, options.Disabled)
				assert.Equal(t, "Camera Roll", options.CameraUploadAlbum)
				return nil
			})

		err := svc.UpdateOptions(ctx, "device-1", device.OptionsInput{
			CustomName:        "Bedroom",
			Disabled:          true,
			CameraUploadAlbum: "Camera Roll",
		})

		require.NoError(t, err)
	})

	t.Run("returns not found for unknown device", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, deviceRepo, _, _ := newService(ctrl)
		ctx := context.Background()

		deviceRepo.EXPECT().GetByID(ctx, "missing").Return(nil, domain.ErrDeviceNotFound)

		err := svc.UpdateOptions(ctx, "missing", device.OptionsInput{CustomName: "Bedroom"})

		assert.ErrorIs(t, err, domain.ErrDeviceNotFound)
	})
}

func TestService_GetUploadHistory(t *testing.T) {
	t.Run("returns records in creation order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _, _, uploadRepo := newService(ctrl)
		ctx := context.Background()

		records := []entity.UploadRecord{
			{DeviceID: "device-1", UploadID: "a"},
			{DeviceID: "device-1", UploadID: "b"},
		}
		uploadRepo.EXPECT().ListByDeviceID(ctx, "device-1").Return(records, nil)

		result, err := svc.GetUploadHistory(ctx, "device-1")

		require.NoError(t, err)
		assert.Len(t, result, 2)
	})

	t.Run("empty history is not an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _, _, uploadRepo := newService(ctrl)
		ctx := context.Background()

		uploadRepo.EXPECT().ListByDeviceID(ctx, "device-1").Return([]entity.UploadRecord{}, nil)

		result, err := svc.GetUploadHistory(ctx, "device-1")

		require.NoError(t, err)
		assert.Empty(t, result)
	})
}

func TestService_RecordActivity(t *testing.T) {
	t.Run("creates record for unseen device", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, deviceRepo, _, _ := newService(ctrl)
		ctx := context.Background()

		deviceRepo.EXPECT().GetByID(ctx, "new-device").Return(nil, domain.ErrDeviceNotFound)
		deviceRepo.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, d *entity.Device) error {
				assert.Equal(t, "new-device", d.ID)
				assert.Equal(t, "Pixel 9", d.Name)
				assert.Equal(t, "user-1", d.LastUserID)
				assert.False(t, d.DateCreated.IsZero())
				return nil
			})

		err := svc.RecordActivity(ctx, device.ActivityInput{
			DeviceID:   "new-device",
			DeviceName: "Pixel 9",
			AppName:    "Jellyfin Android",
			AppVersion: "2.6.0",
			UserID:     "user-1",
			UserName:   "alice",
		})

		require.NoError(t, err)
	})

	t.Run("refreshes last-seen fields of a known device", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, deviceRepo, _, _ := newService(ctrl)
		ctx := context.Background()

		created := time.Now().UTC().Add(-24 * time.Hour)
		existing := &entity.Device{
			ID:               "device-1",
			Name:             "Old Name",
			AppName:          "Jellyfin Android",
			DateCreated:      created,
			DateLastActivity: created,
		}

		deviceRepo.EXPECT().GetByID(ctx, "device-1").Return(existing, nil)
		deviceRepo.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, d *entity.Device) error {
				assert.Equal(t, "New Name", d.Name)
				assert.Equal(t, "user-2", d.LastUserID)
				assert.Equal(t, created, d.DateCreated)
				assert.True(t, d.DateLastActivity.After(created))
				return nil
			})

		err := svc.RecordActivity(ctx, device.ActivityInput{
			DeviceID:   "device-1",
			DeviceName: "New Name",
			UserID:     "user-2",
			UserName:   "bob",
		})

		require.NoError(t, err)
	})

	t.Run("empty header fields do not blank out known values", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, deviceRepo, _, _ := newService(ctrl)
		ctx := context.Background()

		existing := &entity.Device{ID: "device-1", Name: "Phone", AppName: "Jellyfin iOS", AppVersion: "1.2.3"}

		deviceRepo.EXPECT().GetByID(ctx, "device-1").Return(existing, nil)
		deviceRepo.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, d *entity.Device) error {
				assert.Equal(t, "Phone", d.Name)
				assert.Equal(t, "Jellyfin iOS", d.AppName)
				assert.Equal(t, "1.2.3", d.AppVersion)
				return nil
			})

		err := svc.RecordActivity(ctx, device.ActivityInput{DeviceID: "device-1", UserID: "user-1"})

		require.NoError(t, err)
	})

	t.Run("returns lookup error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, deviceRepo, _, _ := newService(ctrl)
		ctx := context.Background()

		deviceRepo.EXPECT().GetByID(ctx, "device-1").Return(nil, errors.New("connection refused"))

		err := svc.RecordActivity(ctx, device.ActivityInput{DeviceID: "device-1"})

		assert.Error(t, err)
	})
}
