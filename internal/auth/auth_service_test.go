package auth_test

import (
	"context"
	"testing"
	"time"

	"todo-api/internal/auth"
	"todo-api/models"
	"todo-api/tests/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthService(t *testing.T) (*auth.AuthService, *auth.TokenService, func()) {
	factory, cleanup := testutils.SetupTestRepositoryFactory(t)
	userRepo := factory.NewUserRepository()
	testutils.CreateTestUser(t, userRepo, "testuser", "testpassword")

	tokenService := auth.NewTokenService([]byte("test-secret"), 30*time.Minute)
	return auth.NewAuthService(userRepo, tokenService), tokenService, cleanup
}

func TestAuthenticate(t *testing.T) {
	svc, _, cleanup := setupAuthService(t)
	defer cleanup()
	ctx := context.Background()

	t.Run("ValidCredentials", func(t *testing.T) {
		user, err := svc.Authenticate(ctx, "testuser", "testpassword")
		require.NoError(t, err)
		assert.Equal(t, "testuser", user.Username)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "testuser", "wrongpassword")
		assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	})

	t.Run("UnknownUserFailsIdentically", func(t *testing.T) {
		_, wrongPassErr := svc.Authenticate(ctx, "testuser", "wrongpassword")
		_, noUserErr := svc.Authenticate(ctx, "nobody", "testpassword")
		assert.Equal(t, wrongPassErr, noUserErr)
	})
}

func TestVerifyToken(t *testing.T) {
	svc, tokens, cleanup := setupAuthService(t)
	defer cleanup()
	ctx := context.Background()

	t.Run("ValidToken", func(t *testing.T) {
		tokenStr, err := tokens.Generate("testuser")
		require.NoError(t, err)

		user, err := svc.VerifyToken(ctx, tokenStr)
		require.NoError(t, err)
		assert.Equal(t, "testuser", user.Username)
		assert.False(t, user.Disabled)
	})

	t.Run("GarbageToken", func(t *testing.T) {
		_, err := svc.VerifyToken(ctx, "not-a-token")
		assert.ErrorIs(t, err, models.ErrInvalidToken)
	})

	t.Run("UnresolvableSubject", func(t *testing.T) {
		// A valid token whose user no longer exists fails exactly like a
		// bad token.
		tokenStr, err := tokens.Generate("deleted-user")
		require.NoError(t, err)

		_, err = svc.VerifyToken(ctx, tokenStr)
		assert.ErrorIs(t, err, models.ErrInvalidToken)
	})
}

func TestVerifyTokenDisabledUser(t *testing.T) {
	factory, cleanup := testutils.SetupTestRepositoryFactory(t)
	defer cleanup()
	ctx := context.Background()

	userRepo := factory.NewUserRepository()
	user := testutils.CreateTestUser(t, userRepo, "inactive", "testpassword")
	require.NoError(t, userRepo.SetDisabled(ctx, user.ID, true))

	tokens := auth.NewTokenService([]byte("test-secret"), 30*time.Minute)
	svc := auth.NewAuthService(userRepo, tokens)

	tokenStr, err := tokens.Generate("inactive")
	require.NoError(t, err)

	_, err = svc.VerifyToken(ctx, tokenStr)
	assert.ErrorIs(t, err, models.ErrInactiveUser)
}

func TestIssueToken(t *testing.T) {
	svc, tokens, cleanup := setupAuthService(t)
	defer cleanup()

	user, err := svc.Authenticate(context.Background(), "testuser", "testpassword")
	require.NoError(t, err)

	token, err := svc.IssueToken(user)
	require.NoError(t, err)
	assert.Equal(t, "bearer", token.TokenType)

	subject, err := tokens.Parse(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "testuser", subject)
}
