package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"wayfarer/internal/auth"
	apperrors "wayfarer/internal/errors"
	"wayfarer/internal/model"
	"wayfarer/internal/repository"
)

const bcryptCost = 10

// AuthService handles the session authentication lifecycle.
type AuthService interface {
	Signup(ctx context.Context, username, email, password string) (*model.User, string, error)
	Login(ctx context.Context, email, password string) (*model.User, string, error)
	Authenticate(ctx context.Context, token string) (*model.User, error)
}

type authService struct {
	users  repository.UserRepository
	tokens *auth.TokenService
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, tokens *auth.TokenService) AuthService {
	return &authService{users: users, tokens: tokens}
}

// Signup creates a user with a hashed password and issues a session token.
// The existence check here is not atomic with the insert; the unique index on
// the email column is what actually prevents a duplicate-email race.
func (s *authService) Signup(ctx context.Context, username, email, password string) (*model.User, string, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, "", apperrors.ErrDuplicateEmail
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", fmt.Errorf("check user existence: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashed),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", apperrors.ErrDuplicateEmail
		}
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return user, token, nil
}

// Login authenticates a user and issues a session token. Unknown email and
// wrong password both return ErrInvalidCredentials.
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return user, token, nil
}

// Authenticate verifies a session token and resolves its subject. A subject
// deleted between issuance and use is unauthenticated.
func (s *authService) Authenticate(ctx context.Context, token string) (*model.User, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, apperrors.ErrUnauthenticated
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, apperrors.ErrUnauthenticated
	}
	return user, nil
}
