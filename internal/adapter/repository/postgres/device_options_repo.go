package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edsan89/jellyfin/internal/domain"
	"github.com/edsan89/jellyfin/internal/domain/entity"
)

type DeviceOptionsRepo struct {
	pool *pgxpool.Pool
}

func NewDeviceOptionsRepo(pool *pgxpool.Pool) *DeviceOptionsRepo {
	return &DeviceOptionsRepo{pool: pool}
}

func (r *DeviceOptionsRepo) GetByDeviceID(ctx context.Context, deviceID string) (*entity.DeviceOptions, error) {
	query := `
		SELECT device_id, custom_name, disabled, camera_upload_path, camera_upload_album, updated_at
		FROM device_options
		WHERE device_id = $1
	`
	var options entity.DeviceOptions
	err := r.pool.QueryRow(ctx, query, deviceID).Scan(
		&options.DeviceID, &options.CustomName, &options.Disabled,
		&options.CameraUploadPath, &options.CameraUploadAlbum, &options.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOptionsNotFound
		}
		return nil, fmt.Errorf("querying device options: %w", err)
	}
	return &options, nil
}

func (r *DeviceOptionsRepo) Upsert(ctx context.Context, options *entity.DeviceOptions) error {
	query := `
		INSERT INTO device_options (device_id, custom_name, disabled, camera_upload_path, camera_upload_album, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (device_id)
		DO UPDATE SET custom_name = EXCLUDED.custom_name, disabled = EXCLUDED.disabled,
			camera_upload_path = EXCLUDED.camera_upload_path,
			camera_upload_album = EXCLUDED.camera_upload_album, updated_at = EXCLUDED.updated_at
	`
	_, err := r.pool.Exec(ctx, query,
		options.DeviceID, options.CustomName, options.Disabled,
		options.CameraUploadPath, options.CameraUploadAlbum, options.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upserting device options: %w", err)
	}
	return nil
}
