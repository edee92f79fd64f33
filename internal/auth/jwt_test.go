package auth

import (
	"testing"
	"time"

	"todo-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService([]byte("secret"), 30*time.Minute)

	tokenStr, err := svc.Generate("testuser")
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)

	subject, err := svc.Parse(tokenStr)
	require.NoError(t, err)
	assert.Equal(t, "testuser", subject)
}

func TestTokenExpired(t *testing.T) {
	svc := NewTokenService([]byte("secret"), -1*time.Minute)

	tokenStr, err := svc.Generate("testuser")
	require.NoError(t, err)

	subject, err := svc.Parse(tokenStr)
	assert.ErrorIs(t, err, models.ErrInvalidToken)
	assert.Empty(t, subject)
}

func TestTokenExpiryBoundary(t *testing.T) {
	// A zero TTL puts exp exactly at issue time; the conservative rule
	// treats that as already expired.
	svc := NewTokenService([]byte("secret"), 0)

	tokenStr, err := svc.Generate("testuser")
	require.NoError(t, err)

	_, err = svc.Parse(tokenStr)
	assert.ErrorIs(t, err, models.ErrInvalidToken)
}

func TestTokenWrongSecret(t *testing.T) {
	issuer := NewTokenService([]byte("secret"), 30*time.Minute)
	verifier := NewTokenService([]byte("other-secret"), 30*time.Minute)

	tokenStr, err := issuer.Generate("testuser")
	require.NoError(t, err)

	subject, err := verifier.Parse(tokenStr)
	assert.ErrorIs(t, err, models.ErrInvalidToken)
	assert.Empty(t, subject)
}

func TestTokenMalformed(t *testing.T) {
	svc := NewTokenService([]byte("secret"), 30*time.Minute)

	for _, tokenStr := range []string{"", "garbage", "a.b.c", "eyJhbGciOiJIUzI1NiJ9.e30."} {
		_, err := svc.Parse(tokenStr)
		assert.ErrorIs(t, err, models.ErrInvalidToken, "token %q should not parse", tokenStr)
	}
}

func TestTokenMissingSubject(t *testing.T) {
	svc := NewTokenService([]byte("secret"), 30*time.Minute)

	tokenStr, err := svc.Generate("")
	require.NoError(t, err)

	_, err = svc.Parse(tokenStr)
	assert.ErrorIs(t, err, models.ErrInvalidToken)
}
