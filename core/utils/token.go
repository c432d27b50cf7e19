package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrInvalidToken = errors.New("invalid token")
)

// TokenClaims is the payload carried by both access and refresh tokens.
type TokenClaims struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	Type   string    `json:"type"`
	jwt.RegisteredClaims
}

var (
	jwtSecret  []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
)

// InitTokens must be called once at startup before any token is issued.
func InitTokens(secret string, accessTTLMinutes, refreshTTLHours int) {
	jwtSecret = []byte(secret)
	accessTTL = time.Duration(accessTTLMinutes) * time.Minute
	refreshTTL = time.Duration(refreshTTLHours) * time.Hour
}

func GenerateAccessToken(userID uuid.UUID, email string) (string, error) {
	return generateToken(userID, email, TokenTypeAccess, accessTTL)
}

func GenerateRefreshToken(userID uuid.UUID, email string) (string, error) {
	return generateToken(userID, email, TokenTypeRefresh, refreshTTL)
}

func generateToken(userID uuid.UUID, email, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &TokenClaims{
		UserID: userID,
		Email:  email,
		Type:   tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			Subject:   userID.String(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ValidateAndParseToken verifies the signature and expiry and returns the claims.
func ValidateAndParseToken(tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return jwtSecret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
