package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/edsan89/jellyfin/internal/domain"
	"github.com/edsan89/jellyfin/internal/domain/entity"
)

// JWTService signs and validates access tokens. The jti claim carries
// the AuthenticationInfo token id, so a signed token stays revocable
// through the token store even though the signature alone would verify.
type JWTService struct {
	secretKey []byte
}

type Claims struct {
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
	DeviceID string `json:"device_id"`
	IsAdmin  bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// Identity is the validated caller identity extracted from a token.
type Identity struct {
	TokenID  uuid.UUID
	UserID   string
	UserName string
	DeviceID string
	IsAdmin  bool
}

func NewJWTService(secretKey string) *JWTService {
	return &JWTService{secretKey: []byte(secretKey)}
}

func (s *JWTService) GenerateAccessToken(info *entity.AuthenticationInfo, userName string, isAdmin bool) (string, error) {
	claims := Claims{
		UserID:   info.UserID,
		UserName: userName,
		DeviceID: info.DeviceID,
		IsAdmin:  isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        info.TokenID.String(),
			ExpiresAt: jwt.NewNumericDate(info.ExpiresAt),
			IssuedAt:  jwt.NewNumericDate(info.DateIssued),
			NotBefore: jwt.NewNumericDate(info.DateIssued),
			Issuer:    "jellyfin",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenStr, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return tokenStr, nil
}

func (s *JWTService) ValidateAccessToken(tokenStr string) (*Identity, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil {
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	tokenID, err := uuid.Parse(claims.ID)
	if err != nil {
		return nil, domain.ErrTokenInvalid
	}

	return &Identity{
		TokenID:  tokenID,
		UserID:   claims.UserID,
		UserName: claims.UserName,
		DeviceID: claims.DeviceID,
		IsAdmin:  claims.IsAdmin,
	}, nil
}
