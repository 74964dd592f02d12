package utils

import (
	"errors"
	"time"

	"github.com/SscSPs/intl_pricing_service/internal/middleware"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWT generates a new HS256 token carrying roles that AuthMiddleware accepts.
func GenerateJWT(userID string, roles []string, secret string, expiryDuration time.Duration, issuer string) (string, error) {
	if userID == "" {
		return "", errors.New("user ID is required")
	}
	if secret == "" {
		return "", errors.New("signing secret is required")
	}
	now := time.Now()
	claims := middleware.Claims{
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiryDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
