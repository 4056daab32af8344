package services

import (
	"context"
	"strings"
	"time"

	"github.com/docassist-labs/docassist-core/internal/core/domain"
	"github.com/docassist-labs/docassist-core/internal/core/ports/driven"
	"github.com/docassist-labs/docassist-core/internal/core/ports/driving"
)

// Ensure userService implements UserService
var _ driving.UserService = (*userService)(nil)

// userService implements the UserService interface
type userService struct {
	userStore   driven.UserStore
	authAdapter driven.AuthAdapter
	idGen       driven.IDGenerator
}

// NewUserService creates a new UserService
func NewUserService(
	userStore driven.UserStore,
	authAdapter driven.AuthAdapter,
	idGen driven.IDGenerator,
) driving.UserService {
	return &userService{
		userStore:   userStore,
		authAdapter: authAdapter,
		idGen:       idGen,
	}
}

// Signup registers a new account
func (s *userService) Signup(ctx context.Context, req domain.SignupRequest) (*domain.UserSummary, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if name == "" || email == "" || req.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	if _, err := s.userStore.GetByEmail(ctx, email); err == nil {
		return nil, domain.ErrAlreadyExists
	}

	hash, err := s.authAdapter.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &domain.User{
		ID:           s.idGen.NewUserID(),
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userStore.Save(ctx, user); err != nil {
		return nil, err
	}

	return user.ToSummary(), nil
}

// Get retrieves a user by ID
func (s *userService) Get(ctx context.Context, id string) (*domain.User, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.userStore.Get(ctx, id)
}
