package auth

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/rogerio-castellano/ecommerce-dashboard/internal/models"
)

var (
	mu        sync.RWMutex
	jwtSecret []byte
	tokenTTL  = 15 * time.Minute
)

var ErrAuthDisabled = errors.New("token signing is not configured")

// Configure sets the signing secret and token lifetime. An empty secret
// disables token issuing and makes every token invalid.
func Configure(secret string, ttl time.Duration) {
	mu.Lock()
	defer mu.Unlock()
	jwtSecret = []byte(secret)
	if ttl > 0 {
		tokenTTL = ttl
	}
}

func settings() ([]byte, time.Duration) {
	mu.RLock()
	defer mu.RUnlock()
	return jwtSecret, tokenTTL
}

func GenerateToken(user models.User) (string, error) {
	secret, ttl := settings()
	if len(secret) == 0 {
		return "", ErrAuthDisabled
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"role":     user.Role,
		"jti":      uuid.NewString(),
		"iat":      now.Unix(),
		"exp":      now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func ParseToken(tokenStr string) (*jwt.Token, error) {
	secret, _ := settings()
	if len(secret) == 0 {
		return nil, ErrAuthDisabled
	}
	return jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
}

// TokenClaims parses a "Bearer <token>" Authorization header value.
func TokenClaims(authorization string) (*jwt.Token, jwt.MapClaims, error) {
	tokenStr, ok := strings.CutPrefix(authorization, "Bearer ")
	if !ok || tokenStr == "" {
		return nil, nil, errors.New("missing bearer token")
	}

	token, err := ParseToken(tokenStr)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return nil, nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, nil, errors.New("invalid token claims")
	}
	return token, claims, nil
}
