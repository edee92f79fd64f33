package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashAndCheck(t *testing.T) {
	hash, err := HashPassword("testpassword")
	require.NoError(t, err)
	require.NotEqual(t, "testpassword", hash)

	assert.True(t, CheckPassword("testpassword", hash))
	assert.False(t, CheckPassword("wrongpassword", hash))
	assert.False(t, CheckPassword("", hash))
}

func TestPasswordHashesDiffer(t *testing.T) {
	first, err := HashPassword("testpassword")
	require.NoError(t, err)
	second, err := HashPassword("testpassword")
	require.NoError(t, err)

	// bcrypt salts every hash
	assert.NotEqual(t, first, second)
	assert.True(t, CheckPassword("testpassword", first))
	assert.True(t, CheckPassword("testpassword", second))
}
