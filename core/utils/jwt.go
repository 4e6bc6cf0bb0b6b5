package utils

import (
	"errors"
	"time"

	"guest-order-api/core/config"
	apperrors "guest-order-api/core/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type TokenData struct {
	UserID   uuid.UUID
	TenantID uuid.UUID
	Role     string
}

type tokenClaims struct {
	TenantID string `json:"tenant_id"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken issues a signed JWT carrying the tenant-scoped identity.
func GenerateToken(userID uuid.UUID, tenantID uuid.UUID, role string) (string, error) {
	cfg := config.Get()

	expiry := time.Duration(cfg.JWT.ExpiryHours) * time.Hour
	claims := tokenClaims{
		TenantID: tenantID.String(),
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWT.Secret))
}

// ValidateAndParseToken validates a JWT and returns its identity claims.
func ValidateAndParseToken(tokenString string) (*TokenData, error) {
	cfg := config.Get()

	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.NewAppError(apperrors.ErrInvalidTokenFormat, "unexpected signing method", nil)
		}
		return []byte(cfg.JWT.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.NewAppError(apperrors.ErrTokenExpired, "token expired", nil)
		}
		return nil, apperrors.NewAppError(apperrors.ErrInvalidTokenFormat, "invalid token", nil)
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		return nil, apperrors.NewAppError(apperrors.ErrInvalidTokenFormat, "invalid token claims", nil)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrInvalidTokenFormat, "invalid subject", nil)
	}
	tenantID, err := uuid.Parse(claims.TenantID)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrInvalidTokenFormat, "invalid tenant id", nil)
	}

	return &TokenData{
		UserID:   userID,
		TenantID: tenantID,
		Role:     claims.Role,
	}, nil
}
