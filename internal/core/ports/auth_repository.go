package ports

import (
	"context"

	"github.com/innovatube/video-api/internal/core/domain"
)

// AuthRepository defines the interface for user persistence.
type AuthRepository interface {
	// Create inserts a new user and returns it with the assigned id.
	// A duplicate username or email yields domain.ErrUserExists.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByLogin looks a user up by username or email (single shared field).
	FindByLogin(ctx context.Context, usernameOrEmail string) (*domain.User, error)
}
