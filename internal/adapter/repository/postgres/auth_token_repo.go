package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edsan89/jellyfin/internal/adapter/repository"
	"github.com/edsan89/jellyfin/internal/domain"
	"github.com/edsan89/jellyfin/internal/domain/entity"
)

type AuthTokenRepo struct {
	pool *pgxpool.Pool
}

func NewAuthTokenRepo(pool *pgxpool.Pool) *AuthTokenRepo {
	return &AuthTokenRepo{pool: pool}
}

func (r *AuthTokenRepo) Create(ctx context.Context, info *entity.AuthenticationInfo) error {
	query := `
		INSERT INTO auth_tokens (token_id, device_id, user_id, date_issued, date_last_activity, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.pool.Exec(ctx, query,
		info.TokenID, info.DeviceID, info.UserID,
		info.DateIssued, info.DateLastActivity, info.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("inserting auth token: %w", err)
	}
	return nil
}

func (r *AuthTokenRepo) GetByTokenID(ctx context.Context, tokenID uuid.UUID) (*entity.AuthenticationInfo, error) {
	query := `
		SELECT token_id, device_id, user_id, date_issued, date_last_activity, expires_at, revoked_at
		FROM auth_tokens
		WHERE token_id = $1
	`
	var info entity.AuthenticationInfo
	err := r.pool.QueryRow(ctx, query, tokenID).Scan(
		&info.TokenID, &info.DeviceID, &info.UserID,
		&info.DateIssued, &info.DateLastActivity, &info.ExpiresAt, &info.RevokedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTokenInvalid
		}
		return nil, fmt.Errorf("querying auth token: %w", err)
	}
	return &info, nil
}

// Query returns active sessions matching every supplied filter field.
// The result is a point-in-time snapshot ordered by issue date.
func (r *AuthTokenRepo) Query(ctx context.Context, filter repository.TokenFilter) ([]entity.AuthenticationInfo, error) {
	query := `
		SELECT token_id, device_id, user_id, date_issued, date_last_activity, expires_at, revoked_at
		FROM auth_tokens
		WHERE revoked_at IS NULL
		  AND ($1 = '' OR device_id = $1)
		  AND ($2 = '' OR user_id = $2)
		ORDER BY date_issued
	`
	rows, err := r.pool.Query(ctx, query, filter.DeviceID, filter.UserID)
	if err != nil {
		return nil, fmt.Errorf("querying auth tokens: %w", err)
	}
	defer rows.Close()

	infos := make([]entity.AuthenticationInfo, 0)
	for rows.Next() {
		var info entity.AuthenticationInfo
		err := rows.Scan(
			&info.TokenID, &info.DeviceID, &info.UserID,
			&info.DateIssued, &info.DateLastActivity, &info.ExpiresAt, &info.RevokedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning auth token row: %w", err)
		}
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating auth token rows: %w", err)
	}
	return infos, nil
}

// Revoke is idempotent: revoking a token that is already revoked or
// unknown affects zero rows and is not an error.
func (r *AuthTokenRepo) Revoke(ctx context.Context, tokenID uuid.UUID) error {
	query := `
		UPDATE auth_tokens
		SET revoked_at = NOW()
		WHERE token_id = $1 AND revoked_at IS NULL
	`
	_, err := r.pool.Exec(ctx, query, tokenID)
	if err != nil {
		return fmt.Errorf("revoking auth token: %w", err)
	}
	return nil
}

func (r *AuthTokenRepo) TouchActivity(ctx context.Context, tokenID uuid.UUID) error {
	query := `
		UPDATE auth_tokens
		SET date_last_activity = NOW()
		WHERE token_id = $1
	`
	_, err := r.pool.Exec(ctx, query, tokenID)
	if err != nil {
		return fmt.Errorf("touching auth token activity: %w", err)
	}
	return nil
}

func (r *AuthTokenRepo) DeleteExpired(ctx context.Context) error {
	query := `DELETE FROM auth_tokens WHERE expires_at < NOW() OR revoked_at IS NOT NULL`
	_, err := r.pool.Exec(ctx, query)
	if err != nil {
		return fmt.Errorf("deleting expired auth tokens: %w", err)
	}
	return nil
}
