package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuthenticationInfo is an issued credential binding a device to a user.
// The TokenID is the jti claim of the access token handed to the client;
// the signed token itself is never stored.
type AuthenticationInfo struct {
	TokenID          uuid.UUID
	DeviceID         string
	UserID           string
	DateIssued       time.Time
	DateLastActivity time.Time
	ExpiresAt        time.Time
	RevokedAt        *time.Time
}

func NewAuthenticationInfo(deviceID, userID string, expiresAt time.Time) *AuthenticationInfo {
	now := time.Now().UTC()
	return &AuthenticationInfo{
		TokenID:          uuid.New(),
		DeviceID:         deviceID,
		UserID:           userID,
		DateIssued:       now,
		DateLastActivity: now,
		ExpiresAt:        expiresAt,
	}
}

// Revoke transitions the session to its terminal state. Revoking an
// already revoked session is a no-op.
func (a *AuthenticationInfo) Revoke() {
	if a.RevokedAt != nil {
		return
	}
	now := time.Now().UTC()
	a.RevokedAt = &now
}

func (a *AuthenticationInfo) IsRevoked() bool {
	return a.RevokedAt != nil
}

func (a *AuthenticationInfo) IsExpired() bool {
	return a.ExpiresAt.Before(time.Now().UTC())
}

func (a *AuthenticationInfo) IsActive() bool {
	return !a.IsRevoked() && !a.IsExpired()
}
