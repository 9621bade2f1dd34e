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

type UploadRecordRepo struct {
	pool *pgxpool.Pool
}

func NewUploadRecordRepo(pool *pgxpool.Pool) *UploadRecordRepo {
	return &UploadRecordRepo{pool: pool}
}

// Upsert keeps exactly one history row per (device_id, upload_id). A
// retry of the same upload updates the row in place; created_at keeps
// the original history position.
func (r *UploadRecordRepo) Upsert(ctx context.Context, record *entity.UploadRecord) error {
	query := `
		INSERT INTO upload_records (device_id, upload_id, name, album, mime_type, storage_key, size, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (device_id, upload_id)
		DO UPDATE SET name = EXCLUDED.name, album = EXCLUDED.album, mime_type = EXCLUDED.mime_type,
			storage_key = EXCLUDED.storage_key, size = EXCLUDED.size, updated_at = EXCLUDED.updated_at
	`
	_, err := r.pool.Exec(ctx, query,
		record.DeviceID, record.UploadID, record.Name, record.Album,
		record.MimeType, record.StorageKey, record.Size, record.CreatedAt, record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upserting upload record: %w", err)
	}
	return nil
}

func (r *UploadRecordRepo) GetByKey(ctx context.Context, deviceID, uploadID string) (*entity.UploadRecord, error) {
	query := `
		SELECT device_id, upload_id, name, album, mime_type, storage_key, size, created_at, updated_at
		FROM upload_records
		WHERE device_id = $1 AND upload_id = $2
	`
	var record entity.UploadRecord
	err := r.pool.QueryRow(ctx, query, deviceID, uploadID).Scan(
		&record.DeviceID, &record.UploadID, &record.Name, &record.Album,
		&record.MimeType, &record.StorageKey, &record.Size, &record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUploadNotFound
		}
		return nil, fmt.Errorf("querying upload record: %w", err)
	}
	return &record, nil
}

func (r *UploadRecordRepo) ListByDeviceID(ctx context.Context, deviceID string) ([]entity.UploadRecord, error) {
	query := `
		SELECT device_id, upload_id, name, album, mime_type, storage_key, size, created_at, updated_at
		FROM upload_records
		WHERE device_id = $1
		ORDER BY created_at, upload_id
	`
	rows, err := r.pool.Query(ctx, query, deviceID)
	if err != nil {
		return nil, fmt.Errorf("querying upload records: %w", err)
	}
	defer rows.Close()

	records := make([]entity.UploadRecord, 0)
	for rows.Next() {
		var record entity.UploadRecord
		err := rows.Scan(
			&record.DeviceID, &record.UploadID, &record.Name, &record.Album,
			&record.MimeType, &record.StorageKey, &record.Size, &record.CreatedAt, &record.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning upload record row: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating upload record rows: %w", err)
	}
	return records, nil
}
