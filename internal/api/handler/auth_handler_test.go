package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/innovatube/video-api/internal/core/domain"
	"github.com/innovatube/video-api/internal/core/ports"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

type stubAuthService struct {
	registerFn func(ctx context.Context, name, username, email, password string) (*domain.User, error)
	loginFn    func(ctx context.Context, usernameOrEmail, password string) (*ports.LoginResult, error)
}

func (s *stubAuthService) Register(ctx context.Context, name, username, email, password string) (*domain.User, error) {
	return s.registerFn(ctx, name, username, email, password)
}

func (s *stubAuthService) Login(ctx context.Context, usernameOrEmail, password string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, usernameOrEmail, password)
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, name, username, email, password string) (*domain.User, error) {
			if name != "Ana Gomez" || username != "anag" || email != "ana@x.com" {
				t.Fatalf("unexpected args: %s %s %s", name, username, email)
			}
			return &domain.User{ID: 1, Name: name, Username: username, Email: email}, nil
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.NewReader(`{"name":"Ana Gomez","username":"anag","email":"ana@x.com","password":"secret1"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/register", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != float64(1) || resp["username"] != "anag" || resp["email"] != "ana@x.com" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if _, leaked := resp["password"]; leaked {
		t.Fatalf("password must never appear in the response")
	}
}

func TestAuthHandler_Register_Conflict(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, name, username, email, password string) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.NewReader(`{"name":"Bob","username":"bob","email":"bob@x.com","password":"secret1"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/register", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Register(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_ValidationFailure(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, name, username, email, password string) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	// Missing email, short password.
	body := strings.NewReader(`{"name":"Bob","username":"bob","password":"123"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/register", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Register(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, name, username, email, password string) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader("not-json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Register(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, usernameOrEmail, password string) (*ports.LoginResult, error) {
			if usernameOrEmail != "anag" || password != "secret1" {
				t.Fatalf("unexpected args: %s %s", usernameOrEmail, password)
			}
			return &ports.LoginResult{Token: "token123", Username: "anag", DisplayName: "Ana Gomez"}, nil
		},
	}
	handler := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"login":"anag","password":"secret1"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" || resp["username"] != "anag" || resp["displayName"] != "Ana Gomez" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAuthHandler_Login_UniformFailureShape(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, usernameOrEmail, password string) (*ports.LoginResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub)

	// A wrong password and a nonexistent account must produce identical
	// responses: same status, same body.
	bodies := make([]string, 0, 2)
	for _, payload := range []string{
		`{"login":"dave","password":"wrong"}`,
		`{"login":"ghost","password":"whatever"}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(payload))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		if err := handler.Login(c); err != nil {
			e.HTTPErrorHandler(err, c)
		}
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		bodies = append(bodies, rec.Body.String())
	}

	if bodies[0] != bodies[1] {
		t.Fatalf("failure responses differ: %q vs %q", bodies[0], bodies[1])
	}
}
