package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/ecommerce-dashboard/internal/models"
)

func TestTokenRoundTrip(t *testing.T) {
	Configure("test-secret", time.Minute)

	token, err := GenerateToken(models.User{ID: 7, Username: "admin", Role: "admin"})
	require.NoError(t, err)

	_, claims, err := TokenClaims("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims["username"])
	assert.Equal(t, "admin", claims["role"])
	assert.EqualValues(t, 7, claims["sub"])
	assert.NotEmpty(t, claims["jti"])
}

func TestTokenClaimsRejects(t *testing.T) {
	Configure("test-secret", time.Minute)

	_, _, err := TokenClaims("")
	assert.Error(t, err)

	_, _, err = TokenClaims("Token abc")
	assert.Error(t, err)

	_, _, err = TokenClaims("Bearer not-a-jwt")
	assert.Error(t, err)

	foreign, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": 1,
		"exp": time.Now().Add(time.Minute).Unix(),
	}).SignedString([]byte("other-secret"))
	require.NoError(t, err)
	_, _, err = TokenClaims("Bearer " + foreign)
	assert.Error(t, err)

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": 1,
		"exp": time.Now().Add(-time.Minute).Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	_, _, err = TokenClaims("Bearer " + expired)
	assert.Error(t, err)
}

func TestDisabledWithoutSecret(t *testing.T) {
	Configure("", 0)
	t.Cleanup(func() { Configure("test-secret", time.Minute) })

	_, err := GenerateToken(models.User{ID: 1})
	assert.ErrorIs(t, err, ErrAuthDisabled)
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret")
	require.NoError(t, err)

	assert.NoError(t, CheckPassword(hash, "secret"))
	assert.ErrorIs(t, CheckPassword(hash, "wrong"), ErrInvalidCredentials)
	assert.ErrorIs(t, CheckPassword("not-a-hash", "secret"), ErrInvalidCredentials)
}
