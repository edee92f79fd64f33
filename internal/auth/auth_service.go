package auth

import (
	"context"
	"errors"
	"fmt"

	"todo-api/db"
	"todo-api/models"
)

// AuthService exchanges credentials for tokens and tokens for principals.
type AuthService struct {
	users  db.UserRepository
	tokens *TokenService
}

// NewAuthService creates a new AuthService
func NewAuthService(users db.UserRepository, tokens *TokenService) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Authenticate verifies a username/password pair. A missing user and a wrong
// password produce the same error so callers learn nothing about which
// check failed.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}
	if !CheckPassword(password, user.PasswordHash) {
		return nil, models.ErrInvalidCredentials
	}
	return user, nil
}

// IssueToken creates a bearer token for an authenticated user.
func (s *AuthService) IssueToken(user *models.User) (models.Token, error) {
	tokenStr, err := s.tokens.Generate(user.Username)
	if err != nil {
		return models.Token{}, fmt.Errorf("error signing token: %w", err)
	}
	return models.Token{AccessToken: tokenStr, TokenType: "bearer"}, nil
}

// VerifyToken resolves a bearer token to an active user. Token failures and
// an unresolvable subject fold into ErrInvalidToken; a disabled account is a
// separate, later stage and surfaces as ErrInactiveUser. Genuine storage
// failures propagate as-is rather than masquerading as auth errors.
func (s *AuthService) VerifyToken(ctx context.Context, tokenStr string) (*models.User, error) {
	username, err := s.tokens.Parse(tokenStr)
	if err != nil {
		return nil, models.ErrInvalidToken
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, models.ErrInvalidToken
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	if user.Disabled {
		return nil, models.ErrInactiveUser
	}
	return user, nil
}
