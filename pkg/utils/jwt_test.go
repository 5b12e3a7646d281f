package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	InitJWT("test-secret")

	token, err := GenerateJWT("42", "maria")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseJWT(token)
	require.NoError(t, err)
	require.Equal(t, "42", claims.UserID)
	require.Equal(t, "maria", claims.Username)

	expAt, err := claims.GetExpirationTime()
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(24*time.Hour), expAt.Time, time.Minute)
}

func TestParseJWT_WrongSecret(t *testing.T) {
	InitJWT("secret-one")
	token, err := GenerateJWT("1", "joao")
	require.NoError(t, err)

	InitJWT("secret-two")
	_, err = ParseJWT(token)
	require.Error(t, err)
}

func TestParseJWT_Expired(t *testing.T) {
	InitJWT("test-secret")

	now := time.Now().Add(-48 * time.Hour)
	claims := Claims{
		UserID:   "7",
		Username: "ana",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "7",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(24 * time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = ParseJWT(expired)
	require.Error(t, err)
}
