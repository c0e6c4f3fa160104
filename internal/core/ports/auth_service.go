package ports

import (
	"context"

	"github.com/innovatube/video-api/internal/core/domain"
)

// LoginResult carries everything the client needs after a successful login.
type LoginResult struct {
	Token       string
	Username    string
	DisplayName string
}

type AuthService interface {
	Register(ctx context.Context, name, username, email, password string) (*domain.User, error)
	Login(ctx context.Context, usernameOrEmail, password string) (*LoginResult, error)
}
