package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/edsan89/jellyfin/internal/adapter/repository"
	"github.com/edsan89/jellyfin/internal/infrastructure/auth"
	"github.com/edsan89/jellyfin/internal/pkg/httputil"
	"github.com/edsan89/jellyfin/internal/usecase/device"
)

const BearerPrefix = "Bearer "

// AuthMiddleware resolves the caller identity before any operation
// runs. A token must both carry a valid signature and still be present
// and unrevoked in the token store; revocation wins over the signature.
type AuthMiddleware struct {
	jwtSvc   *auth.JWTService
	tokens   repository.AuthTokenRepository
	registry *device.Service
	logger   *zap.Logger
}

func NewAuthMiddleware(
	jwtSvc *auth.JWTService,
	tokens repository.AuthTokenRepository,
	registry *device.Service,
	logger *zap.Logger,
) *AuthMiddleware {
	return &AuthMiddleware{
		jwtSvc:   jwtSvc,
		tokens:   tokens,
		registry: registry,
		logger:   logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httputil.Error(c, http.StatusUnauthorized, "authorization header required")
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, BearerPrefix) {
			httputil.Error(c, http.StatusUnauthorized, "invalid authorization format")
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, BearerPrefix)
		identity, err := m.jwtSvc.ValidateAccessToken(token)
		if err != nil {
			httputil.Error(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		info, err := m.tokens.GetByTokenID(c.Request.Context(), identity.TokenID)
		if err != nil || !info.IsActive() {
			httputil.Error(c, http.StatusUnauthorized, "session revoked or expired")
			c.Abort()
			return
		}

		c.Set(httputil.IdentityKey, identity)

		m.recordActivity(c, identity)

		c.Next()
	}
}

func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := httputil.GetIdentity(c)
		if identity == nil || !identity.IsAdmin {
			httputil.Error(c, http.StatusForbidden, "administrator access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// recordActivity refreshes the device and session last-seen fields.
// Best effort: a bookkeeping failure must not fail the request.
func (m *AuthMiddleware) recordActivity(c *gin.Context, identity *auth.Identity) {
	ctx := c.Request.Context()

	err := m.registry.RecordActivity(ctx, device.ActivityInput{
		DeviceID:   identity.DeviceID,
		DeviceName: c.GetHeader("X-Device-Name"),
		AppName:    c.GetHeader("X-Application-Name"),
		AppVersion: c.GetHeader("X-Application-Version"),
		UserID:     identity.UserID,
		UserName:   identity.UserName,
	})
	if err != nil {
		m.logger.Warn("recording device activity failed",
			zap.String("device_id", identity.DeviceID),
			zap.Error(err),
		)
	}

	if err := m.tokens.TouchActivity(ctx, identity.TokenID); err != nil {
		m.logger.Warn("touching session activity failed",
			zap.String("token_id", identity.TokenID.String()),
			zap.Error(err),
		)
	}
}
