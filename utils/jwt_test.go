package utils

import (
	"testing"
	"time"

	"backend/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWTRoundTrip(t *testing.T) {
	config.TokenSecret = []byte("test-secret")

	tokenString, err := GenerateJWT("user@example.com")
	require.NoError(t, err)

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return config.TokenSecret, nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "user@example.com", claims["email"])

	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	expiry := time.Unix(int64(exp), 0)
	assert.WithinDuration(t, time.Now().Add(TokenTTL), expiry, time.Minute)
}

func TestGenerateJWTWrongSecretRejected(t *testing.T) {
	config.TokenSecret = []byte("test-secret")

	tokenString, err := GenerateJWT("user@example.com")
	require.NoError(t, err)

	_, err = jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte("another-secret"), nil
	})
	assert.Error(t, err)
}
