package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/innovatube/video-api/internal/core/domain"
)

// uniqueViolation is the PostgreSQL error code for unique constraint breaches.
const uniqueViolation = "23505"

type AuthRepository struct {
	db *sql.DB
}

func NewAuthRepository(db *sql.DB) *AuthRepository {
	return &AuthRepository{db: db}
}

// Create inserts the user and scans back the generated id. Duplicate
// username or email is detected after the write, via the engine's unique
// constraint, and mapped to domain.ErrUserExists.
func (r *AuthRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `INSERT INTO users (name, username, email, password_hash, created_at)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		user.Name, user.Username, user.Email, user.PasswordHash, user.CreatedAt,
	).Scan(&user.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	return user, nil
}

// FindByLogin matches the login field against username and email alike.
func (r *AuthRepository) FindByLogin(ctx context.Context, usernameOrEmail string) (*domain.User, error) {
	query := `SELECT id, name, username, email, password_hash, created_at
	          FROM users
	          WHERE username = $1 OR email = $1`

	user := &domain.User{}
	err := r.db.QueryRowContext(ctx, query, usernameOrEmail).Scan(
		&user.ID, &user.Name, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	return user, nil
}
