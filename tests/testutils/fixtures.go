package testutils

import (
	"context"
	"testing"

	"todo-api/db"
	"todo-api/internal/auth"
	"todo-api/models"

	"github.com/stretchr/testify/require"
)

// CreateTestUser inserts a user with a real bcrypt hash so login flows work
// against it.
func CreateTestUser(t *testing.T, repo db.UserRepository, username, password string) *models.User {
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	user, err := repo.Create(context.Background(), &models.User{
		Username:     username,
		PasswordHash: hash,
	})
	require.NoError(t, err)
	return user
}

// CreateTestTodo inserts a todo owned by the given user.
func CreateTestTodo(t *testing.T, repo db.TodoRepository, ownerID int, title, description string) *models.Todo {
	todo, err := repo.Create(context.Background(), &models.Todo{
		Title:       title,
		Description: description,
		OwnerID:     ownerID,
	})
	require.NoError(t, err)
	return todo
}
