package session

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/edsan89/jellyfin/internal/adapter/repository"
	"github.com/edsan89/jellyfin/internal/domain/entity"
)

// Service owns the set of active sessions and the logout operation.
type Service struct {
	tokenRepo repository.AuthTokenRepository
	hub       *Hub
	logger    *zap.Logger
}

func NewService(tokenRepo repository.AuthTokenRepository, hub *Hub, logger *zap.Logger) *Service {
	return &Service{
		tokenRepo: tokenRepo,
		hub:       hub,
		logger:    logger,
	}
}

// TrackStream registers a live server-held stream for the session. The
// returned channel closes when the session is interrupted; the cancel
// func deregisters the stream once it finishes on its own.
func (s *Service) TrackStream(tokenID uuid.UUID) (<-chan struct{}, func()) {
	return s.hub.Register(tokenID)
}

// Logout transitions a session to revoked. Logging out a session that
// is already revoked is a no-op success; a device-wide revocation may
// race with a client-initiated logout of the same token.
func (s *Service) Logout(ctx context.Context, info *entity.AuthenticationInfo) error {
	if !info.IsRevoked() {
		if err := s.tokenRepo.Revoke(ctx, info.TokenID); err != nil {
			return fmt.Errorf("revoking session: %w", err)
		}
		info.Revoke()
	}

	// Best effort: sever any live streams held for this session.
	s.hub.Interrupt(info.TokenID)
	return nil
}

type SessionFailure struct {
	TokenID uuid.UUID
	Err     error
}

type RevocationResult struct {
	DeviceID  string
	Attempted int
	Revoked   int
	Failures  []SessionFailure
}

// FullyRevoked reports whether every attempted logout succeeded. It is
// also true for a device that had no sessions.
func (r *RevocationResult) FullyRevoked() bool {
	return len(r.Failures) == 0
}

// RevokeDeviceSessions terminates every session bound to the device.
// The session list is a snapshot taken once; sessions issued after the
// snapshot are not covered. A failure on one session never stops the
// attempts on the rest: failures are collected and reported together.
// The device record itself is left untouched.
func (s *Service) RevokeDeviceSessions(ctx context.Context, deviceID string) (*RevocationResult, error) {
	infos, err := s.tokenRepo.Query(ctx, repository.TokenFilter{DeviceID: deviceID})
	if err != nil {
		return nil, fmt.Errorf("querying device sessions: %w", err)
	}

	result := &RevocationResult{
		DeviceID:  deviceID,
		Attempted: len(infos),
	}

	for i := range infos {
		info := &infos[i]
		if err := s.Logout(ctx, info); err != nil {
			s.logger.Warn("session logout failed",
				zap.String("device_id", deviceID),
				zap.String("token_id", info.TokenID.String()),
				zap.Error(err),
			)
			result.Failures = append(result.Failures, SessionFailure{TokenID: info.TokenID, Err: err})
			continue
		}
		result.Revoked++
	}

	s.logger.Info("device sessions revoked",
		zap.String("device_id", deviceID),
		zap.Int("attempted", result.Attempted),
		zap.Int("revoked", result.Revoked),
		zap.Int("failed", len(result.Failures)),
	)
	return result, nil
}
