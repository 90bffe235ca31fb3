package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	secret := []byte("secret")
	tok, err := GenerateToken(secret, 42, "alice", true)
	require.NoError(t, err)

	claims, err := ParseToken(secret, tok)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, "42", claims.Subject)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	tok, err := GenerateToken([]byte("right"), 1, "a", false)
	require.NoError(t, err)

	_, err = ParseToken([]byte("wrong"), tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	secret := []byte("secret")
	claims := &Claims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)

	_, err = ParseToken(secret, tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken([]byte("secret"), "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
