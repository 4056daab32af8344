package driving

import (
	"context"

	"github.com/docassist-labs/docassist-core/internal/core/domain"
)

// UserService handles account registration and lookup
type UserService interface {
	// Signup registers a new account
	Signup(ctx context.Context, req domain.SignupRequest) (*domain.UserSummary, error)

	// Get retrieves a user by ID
	Get(ctx context.Context, id string) (*domain.User, error)
}
