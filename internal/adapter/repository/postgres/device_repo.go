package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edsan89/jellyfin/internal/adapter/repository"
	"github.com/edsan89/jellyfin/internal/domain"
	"github.com/edsan89/jellyfin/internal/domain/entity"
)

type DeviceRepo struct {
	pool *pgxpool.Pool
}

func NewDeviceRepo(pool *pgxpool.Pool) *DeviceRepo {
	return &DeviceRepo{pool: pool}
}

func (r *DeviceRepo) Upsert(ctx context.Context, device *entity.Device) error {
	query := `
		INSERT INTO devices (id, name, app_name, app_version, supports_sync, supports_uploads,
			last_user_id, last_user_name, date_last_activity, date_created)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id)
		DO UPDATE SET name = EXCLUDED.name, app_name = EXCLUDED.app_name,
			app_version = EXCLUDED.app_version, supports_sync = EXCLUDED.supports_sync,
			supports_uploads = EXCLUDED.supports_uploads, last_user_id = EXCLUDED.last_user_id,
			last_user_name = EXCLUDED.last_user_name, date_last_activity = EXCLUDED.date_last_activity
	`
	_, err := r.pool.Exec(ctx, query,
		device.ID, device.Name, device.AppName, device.AppVersion,
		device.SupportsSync, device.SupportsUploads,
		device.LastUserID, device.LastUserName, device.DateLastActivity, device.DateCreated,
	)
	if err != nil {
		return fmt.Errorf("upserting device: %w", err)
	}
	return nil
}

func (r *DeviceRepo) GetByID(ctx context.Context, id string) (*entity.Device, error) {
	query := `
		SELECT id, name, app_name, app_version, supports_sync, supports_uploads,
			last_user_id, last_user_name, date_last_activity, date_created
		FROM devices
		WHERE id = $1
	`
	var device entity.Device
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&device.ID, &device.Name, &device.AppName, &device.AppVersion,
		&device.SupportsSync, &device.SupportsUploads,
		&device.LastUserID, &device.LastUserName, &device.DateLastActivity, &device.DateCreated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDeviceNotFound
		}
		return nil, fmt.Errorf("querying device: %w", err)
	}
	return &device, nil
}

func (r *DeviceRepo) List(ctx context.Context, filter repository.DeviceFilter) ([]entity.DeviceInfo, error) {
	query := `
		SELECT d.id, d.name, d.app_name, d.app_version, d.supports_sync, d.supports_uploads,
			d.last_user_id, d.last_user_name, d.date_last_activity, d.date_created,
			o.device_id, o.custom_name, o.disabled, o.camera_upload_path, o.camera_upload_album, o.updated_at
		FROM devices d
		LEFT JOIN device_options o ON o.device_id = d.id
		WHERE ($1::boolean IS NULL OR d.supports_sync = $1)
		  AND ($2 = '' OR d.last_user_id = $2)
		ORDER BY d.date_last_activity DESC, d.id
	`
	rows, err := r.pool.Query(ctx, query, filter.SupportsSync, filter.UserID)
	if err != nil {
		return nil, fmt.Errorf("querying devices: %w", err)
	}
	defer rows.Close()

	devices := make([]entity.DeviceInfo, 0)
	for rows.Next() {
		var info entity.DeviceInfo
		var (
			optDeviceID *string
			customName  *string
			disabled    *bool
			uploadPath  *string
			uploadAlbum *string
			updatedAt   *time.Time
		)
		err := rows.Scan(
			&info.ID, &info.Name, &info.AppName, &info.AppVersion,
			&info.SupportsSync, &info.SupportsUploads,
			&info.LastUserID, &info.LastUserName, &info.DateLastActivity, &info.DateCreated,
			&optDeviceID, &customName, &disabled, &uploadPath, &uploadAlbum, &updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning device row: %w", err)
		}
		if optDeviceID != nil {
			info.Options = &entity.DeviceOptions{
				DeviceID:          *optDeviceID,
				CustomName:        *customName,
				Disabled:          *disabled,
				CameraUploadPath:  *uploadPath,
				CameraUploadAlbum: *uploadAlbum,
				UpdatedAt:         *updatedAt,
			}
		}
		devices = append(devices, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating device rows: %w", err)
	}
	return devices, nil
}
