package auth

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lithammer/shortuuid/v4"
)

const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"

	accessTTL  = 15 * time.Minute
	refreshTTL = 30 * 24 * time.Hour
)

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	jwt.RegisteredClaims
	UserID    uint   `json:"uid"`
	TokenType string `json:"typ"`
}

// GenerateTokens issues the access/refresh pair for a user. Both carry the
// user id; typ keeps them from standing in for each other.
func GenerateTokens(userID uint) (accessToken string, refreshToken string, err error) {
	accessToken, err = sign(userID, TypeAccess, accessTTL)
	if err != nil {
		return "", "", fmt.Errorf("failed to sign access token: %w", err)
	}

	refreshToken, err = sign(userID, TypeRefresh, refreshTTL)
	if err != nil {
		return "", "", fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return accessToken, refreshToken, nil
}

func sign(userID uint, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        shortuuid.New(),
		},
		UserID:    userID,
		TokenType: tokenType,
	})
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// ValidateToken parses tokenStr and returns the user id, rejecting tokens of
// the wrong type (a refresh token cannot authenticate a request).
func ValidateToken(tokenStr string, wantType string) (uint, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid || claims.TokenType != wantType || claims.UserID == 0 {
		return 0, ErrInvalidToken
	}
	return claims.UserID, nil
}

// RefreshAccessToken exchanges a valid refresh token for a new access token.
func RefreshAccessToken(refreshToken string) (string, error) {
	userID, err := ValidateToken(refreshToken, TypeRefresh)
	if err != nil {
		return "", err
	}
	access, err := sign(userID, TypeAccess, accessTTL)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return access, nil
}
