package upload_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/edsan89/jellyfin/internal/domain"
	"github.com/edsan89/jellyfin/internal/domain/entity"
	"github.com/edsan89/jellyfin/internal/mocks"
	"github.com/edsan89/jellyfin/internal/usecase/upload"
)

func TestService_Accept(t *testing.T) {
	t.Run("streams payload and publishes record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		deviceRepo := mocks.NewMockDeviceRepository(ctrl)
		uploadRepo := mocks.NewMockUploadRecordRepository(ctrl)
		storage := mocks.NewMockBlobStorage(ctrl)
		svc := upload.NewService(deviceRepo, uploadRepo, storage)

		ctx := context.Background()
		payload := "jpeg bytes here"

		deviceRepo.EXPECT().GetByID(ctx, "device-1").Return(&entity.Device{ID: "device-1"}, nil)
		uploadRepo.EXPECT().GetByKey(ctx, "device-1", "img-001").Return(nil, domain.ErrUploadNotFound)
		storage.EXPECT().
			Upload(ctx, "uploads/device-1/img-001", gomock.Any(), "image/jpeg").
			DoAndReturn(func(_ context.Context, _ string, reader io.Reader, _ string) error {
				data, err := io.ReadAll(reader)
				require.NoError(t, err)
				assert.Equal(t, payload, string(data))
				return nil
			})
		uploadRepo.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, record *entity.UploadRecord) error {
				assert.Equal(t, "device-1", record.DeviceID)
				assert.Equal(t, "img-001", record.UploadID)
				assert.Equal(t, "uploads/device-1/img-001", record.StorageKey)
				assert.Equal(t, int64(len(payload)), record.Size)
				return nil
			})
		storage.EXPECT().GetURL("uploads/device-1/img-001").Return("https://cdn.example.com/uploads/device-1/img-001")
		storage.EXPECT().GetSignedURL("uploads/device-1/img-001", 24*time.Hour).Return("https://signed.example.com/x", nil)

		result, err := svc.Accept(ctx, upload.Input{
			DeviceID: "device-1",
			UploadID: "img-001",
			Name:     "IMG_0001.jpg",
			Album:    "Camera Roll",
			Source: upload.Source{
				Kind:        upload.SourceFormFile,
				Reader:      strings.NewReader(payload),
				ContentType: "image/jpeg",
			},
		})

		require.NoError(t, err)
		assert.Equal(t, int64(len(payload)), result.Record.Size)
		assert.Equal(t, "https://cdn.example.com/uploads/device-1/img-001", result.URL)
		assert.Equal(t, "https://signed.example.com/x", result.SignedURL)
	})

	t.Run("rejects unknown device before touching storage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		deviceRepo := mocks.NewMockDeviceRepository(ctrl)
		uploadRepo := mocks.NewMockUploadRecordRepository(ctrl)
		storage := mocks.NewMockBlobStorage(ctrl)
		svc := upload.NewService(deviceRepo, uploadRepo, storage)

		ctx := context.Background()
		deviceRepo.EXPECT().GetByID(ctx, "missing").Return(nil, domain.ErrDeviceNotFound)

		result, err := svc.Accept(ctx, upload.Input{
			DeviceID: "missing",
			UploadID: "img-001",
			Source:   upload.Source{Kind: upload.SourceRawBody, Reader: strings.NewReader("x")},
		})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, domain.ErrDeviceNotFound)
	})

	t.Run("defaults missing content type to octet-stream", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		deviceRepo := mocks.NewMockDeviceRepository(ctrl)
		uploadRepo := mocks.NewMockUploadRecordRepository(ctrl)
		storage := mocks.NewMockBlobStorage(ctrl)
		svc := upload.NewService(deviceRepo, uploadRepo, storage)

		ctx := context.Background()

		deviceRepo.EXPECT().GetByID(ctx, "device-1").Return(&entity.Device{ID: "device-1"}, nil)
		uploadRepo.EXPECT().GetByKey(ctx, "device-1", "img-001").Return(nil, domain.ErrUploadNotFound)
		storage.EXPECT().Upload(ctx, gomock.Any(), gomock.Any(), "application/octet-stream").Return(nil)
		uploadRepo.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)
		storage.EXPECT().GetURL(gomock.Any()).Return("")
		storage.EXPECT().GetSignedURL(gomock.Any(), gomock.Any()).Return("", nil)

		result, err := svc.Accept(ctx, upload.Input{
			DeviceID: "device-1",
			UploadID: "img-001",
			Source:   upload.Source{Kind: upload.SourceRawBody, Reader: strings.NewReader("x")},
		})

		require.NoError(t, err)
		assert.Equal(t, "application/octet-stream", result.Record.MimeType)
	})

	t.Run("re-upload overwrites and keeps history position", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		deviceRepo := mocks.NewMockDeviceRepository(ctrl)
		uploadRepo := mocks.NewMockUploadRecordRepository(ctrl)
		storage := mocks.NewMockBlobStorage(ctrl)
		svc := upload.NewService(deviceRepo, uploadRepo, storage)

		ctx := context.Background()
		firstSeen := time.Now().UTC().Add(-48 * time.Hour)
		existing := &entity.UploadRecord{
			DeviceID:   "device-1",
			UploadID:   "img-001",
			StorageKey: "uploads/device-1/img-001",
			Size:       10,
			CreatedAt:  firstSeen,
			UpdatedAt:  firstSeen,
		}

		deviceRepo.EXPECT().GetByID(ctx, "device-1").Return(&entity.Device{ID: "device-1"}, nil)
		uploadRepo.EXPECT().GetByKey(ctx, "device-1", "img-001").Return(existing, nil)
		storage.EXPECT().Upload(ctx, "uploads/device-1/img-001", gomock.Any(), "image/jpeg").Return(nil)
		uploadRepo.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, record *entity.UploadRecord) error {
				assert.Equal(t, firstSeen, record.CreatedAt)
				assert.True(t, record.UpdatedAt.After(firstSeen))
				return nil
			})
		storage.EXPECT().GetURL(gomock.Any()).Return("")
		storage.EXPECT().GetSignedURL(gomock.Any(), gomock.Any()).Return("", nil)

		result, err := svc.Accept(ctx, upload.Input{
			DeviceID: "device-1",
			UploadID: "img-001",
			Source: upload.Source{
				Kind:        upload.SourceFormFile,
				Reader:      strings.NewReader("bigger payload"),
				ContentType: "image/jpeg",
			},
		})

		require.NoError(t, err)
		assert.Equal(t, firstSeen, result.Record.CreatedAt)
	})

	t.Run("storage failure leaves no record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		deviceRepo := mocks.NewMockDeviceRepository(ctrl)
		uploadRepo := mocks.NewMockUploadRecordRepository(ctrl)
		storage := mocks.NewMockBlobStorage(ctrl)
		svc := upload.NewService(deviceRepo, uploadRepo, storage)

		ctx := context.Background()

		deviceRepo.EXPECT().GetByID(ctx, "device-1").Return(&entity.Device{ID: "device-1"}, nil)
		uploadRepo.EXPECT().GetByKey(ctx, "device-1", "img-001").Return(nil, domain.ErrUploadNotFound)
		storage.EXPECT().Upload(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("service unavailable"))
		// No Upsert expectation: a failed stream must never publish a record.

		result, err := svc.Accept(ctx, upload.Input{
			DeviceID: "device-1",
			UploadID: "img-001",
			Source: upload.Source{
				Kind:        upload.SourceRawBody,
				Reader:      strings.NewReader("x"),
				ContentType: "image/jpeg",
			},
		})

		assert.Nil(t, result)
		assert.Error(t, err)
	})

	t.Run("record failure on first upload cleans up the blob", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		deviceRepo := mocks.NewMockDeviceRepository(ctrl)
		uploadRepo := mocks.NewMockUploadRecordRepository(ctrl)
		storage := mocks.NewMockBlobStorage(ctrl)
		svc := upload.NewService(deviceRepo, uploadRepo, storage)

		ctx := context.Background()

		deviceRepo.EXPECT().GetByID(ctx, "device-1").Return(&entity.Device{ID: "device-1"}, nil)
		uploadRepo.EXPECT().GetByKey(ctx, "device-1", "img-001").Return(nil, domain.ErrUploadNotFound)
		storage.EXPECT().Upload(ctx, "uploads/device-1/img-001", gomock.Any(), gomock.Any()).Return(nil)
		uploadRepo.EXPECT().Upsert(ctx, gomock.Any()).Return(errors.New("connection refused"))
		storage.EXPECT().Delete(ctx, "uploads/device-1/img-001").Return(nil)

		result, err := svc.Accept(ctx, upload.Input{
			DeviceID: "device-1",
			UploadID: "img-001",
			Source:   upload.Source{Kind: upload.SourceRawBody, Reader: strings.NewReader("x")},
		})

		assert.Nil(t, result)
		assert.Error(t, err)
	})

	t.Run("record failure on re-upload keeps the blob", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		deviceRepo := mocks.NewMockDeviceRepository(ctrl)
		uploadRepo := mocks.NewMockUploadRecordRepository(ctrl)
		storage := mocks.NewMockBlobStorage(ctrl)
		svc := upload.NewService(deviceRepo, uploadRepo, storage)

		ctx := context.Background()
		existing := &entity.UploadRecord{DeviceID: "device-1", UploadID: "img-001", CreatedAt: time.Now().UTC()}

		deviceRepo.EXPECT().GetByID(ctx, "device-1").Return(&entity.Device{ID: "device-1"}, nil)
		uploadRepo.EXPECT().GetByKey(ctx, "device-1", "img-001").Return(existing, nil)
		storage.EXPECT().Upload(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		uploadRepo.EXPECT().Upsert(ctx, gomock.Any()).Return(errors.New("connection refused"))
		// No Delete expectation: the old record still references the key.

		result, err := svc.Accept(ctx, upload.Input{
			DeviceID: "device-1",
			UploadID: "img-001",
			Source:   upload.Source{Kind: upload.SourceRawBody, Reader: strings.NewReader("x")},
		})

		assert.Nil(t, result)
		assert.Error(t, err)
	})
}
