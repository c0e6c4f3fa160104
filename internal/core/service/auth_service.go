package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/innovatube/video-api/internal/core/domain"
	"github.com/innovatube/video-api/internal/core/ports"
)

const defaultTokenTTL = time.Hour

// AuthService implements registration and login.
type AuthService struct {
	repo      ports.AuthRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(repo ports.AuthRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Register hashes the password with bcrypt and creates the user. The
// plaintext password is never persisted. A duplicate username or email
// surfaces as domain.ErrUserExists from the repository.
func (s *AuthService) Register(ctx context.Context, name, username, email, password string) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         name,
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	return s.repo.Create(ctx, user)
}

// Login authenticates by username or email and issues a signed session
// token. A missing account and a failed password check both collapse into
// the same ErrInvalidCredentials so the caller cannot probe for account
// existence.
func (s *AuthService) Login(ctx context.Context, usernameOrEmail, password string) (*ports.LoginResult, error) {
	user, err := s.repo.FindByLogin(ctx, usernameOrEmail)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := IssueToken(user.ID, user.Username, s.jwtSecret, s.tokenTTL, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	return &ports.LoginResult{
		Token:       token,
		Username:    user.Username,
		DisplayName: user.Name,
	}, nil
}
