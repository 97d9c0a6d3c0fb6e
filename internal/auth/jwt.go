package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// AccessTokenTTL is how long an access token stays valid.
	AccessTokenTTL = 60 * time.Minute
	// RefreshTokenTTL is how long a refresh token stays valid.
	RefreshTokenTTL = 30 * 24 * time.Hour
)

var ErrInvalidToken = errors.New("invalid token")

// Claims are the session claims embedded in access and refresh tokens.
type Claims struct {
	UserID  string `json:"userId"`
	IsAdmin bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

// GenerateAccessToken signs a short-lived access token.
func GenerateAccessToken(userID string, isAdmin bool, secret string) (string, error) {
	return generateToken(userID, isAdmin, secret, AccessTokenTTL)
}

// GenerateRefreshToken signs a long-lived refresh token.
func GenerateRefreshToken(userID string, isAdmin bool, secret string) (string, error) {
	return generateToken(userID, isAdmin, secret, RefreshTokenTTL)
}

func generateToken(userID string, isAdmin bool, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:  userID,
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken validates signature and expiry and returns the claims.
// Callers branch on the error uniformly; no panic, no partial claims.
func ParseToken(tokenStr, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
