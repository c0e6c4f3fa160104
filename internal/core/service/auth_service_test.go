package service

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/innovatube/video-api/internal/core/domain"
)

type stubAuthRepo struct {
	users  map[string]*domain.User
	nextID int64
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubAuthRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	copy := cloneUser(user)
	copy.ID = r.nextID
	r.users[copy.Username] = cloneUser(copy)
	return copy, nil
}

func (r *stubAuthRepo) FindByLogin(_ context.Context, usernameOrEmail string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == usernameOrEmail || u.Email == usernameOrEmail {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	user, err := svc.Register(context.Background(), "Ana Gomez", "anag", "ana@x.com", "secret1")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if user.PasswordHash == "secret1" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	first, err := svc.Register(context.Background(), "Bob", "bob", "bob@example.com", "pass")
	if err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	if _, err := svc.Register(context.Background(), "Bob Again", "bob", "bob2@example.com", "pass2"); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}

	// The first registration must be unaffected.
	stored, err := repo.FindByLogin(context.Background(), "bob")
	if err != nil {
		t.Fatalf("find after duplicate: %v", err)
	}
	if stored.ID != first.ID || stored.Email != "bob@example.com" {
		t.Fatalf("first registration was mutated: %+v", stored)
	}
}

func TestAuthService_Login_ByUsernameAndEmail(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	user, err := svc.Register(context.Background(), "Carol", "carol", "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	for _, login := range []string{"carol", "carol@example.com"} {
		result, err := svc.Login(context.Background(), login, "s3cret")
		if err != nil {
			t.Fatalf("login with %q failed: %v", login, err)
		}
		if result.Username != "carol" || result.DisplayName != "Carol" {
			t.Fatalf("unexpected result: %+v", result)
		}

		claims, err := VerifyToken(result.Token, "secret", time.Now().UTC())
		if err != nil {
			t.Fatalf("issued token invalid: %v", err)
		}
		if claims.UserID != user.ID {
			t.Fatalf("token user id %d does not match registered id %d", claims.UserID, user.ID)
		}
	}
}

func TestAuthService_Login_FailuresAreIndistinguishable(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, err := svc.Register(context.Background(), "Dave", "dave", "dave@example.com", "goodpass"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, wrongPassErr := svc.Login(context.Background(), "dave", "badpass")
	_, noUserErr := svc.Login(context.Background(), "ghost", "whatever")

	if wrongPassErr != domain.ErrInvalidCredentials {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPassErr)
	}
	if noUserErr != domain.ErrInvalidCredentials {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", noUserErr)
	}
	if wrongPassErr != noUserErr {
		t.Fatalf("failure modes must be indistinguishable: %v vs %v", wrongPassErr, noUserErr)
	}
}

func TestAuthService_Login_TokenExpiryWindow(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	if _, err := svc.Register(context.Background(), "Eve", "eve", "eve@example.com", "pass12"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	result, err := svc.Login(context.Background(), "eve", "pass12")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if _, err := VerifyToken(result.Token, "secret", time.Now().UTC().Add(2*time.Hour)); err == nil {
		t.Fatalf("expected token past its one-hour expiry to be rejected")
	}
}
