package user

import (
	"context"
	"errors"
	"fmt"

	"todo-api/db"
	"todo-api/internal/auth"
	"todo-api/models"
)

// UserService handles account registration.
type UserService struct {
	repo    db.UserRepository
	manager *db.Manager
}

// NewUserService creates a new UserService
func NewUserService(repo db.UserRepository, manager *db.Manager) *UserService {
	return &UserService{repo: repo, manager: manager}
}

// Create registers a new account. The password is hashed before anything is
// stored; the plaintext never leaves this call.
func (s *UserService) Create(ctx context.Context, in models.UserCreate) (*models.User, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username:     in.Username,
		Email:        in.Email,
		Disabled:     false,
		PasswordHash: hash,
	}

	created, err := s.manager.CreateUser(s.repo, ctx, user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return nil, &models.ConflictError{Message: fmt.Sprintf("Username %s is already registered", in.Username)}
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return created, nil
}
