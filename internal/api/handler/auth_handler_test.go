package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/agrilink/farm-market/internal/core/domain"
	"github.com/agrilink/farm-market/internal/core/ports"
)

type stubAuthService struct {
	registerResult *ports.AuthResult
	registerErr    error
	loginResult    *ports.AuthResult
	loginErr       error

	lastRegister ports.RegisterInput
}

func (s *stubAuthService) Register(_ context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	s.lastRegister = input
	return s.registerResult, s.registerErr
}

func (s *stubAuthService) Login(_ context.Context, _, _ string) (*ports.AuthResult, error) {
	return s.loginResult, s.loginErr
}

func authResult() *ports.AuthResult {
	return &ports.AuthResult{
		Token: "token-abc",
		User: &domain.User{
			ID:       "u1",
			Username: "farmer42",
			FullName: "Jane Doe",
			UserType: domain.UserTypeSeller,
		},
	}
}

const registerBody = `{
	"username": "farmer42",
	"password": "secret1",
	"full_name": "Jane Doe",
	"age": 30,
	"region": "Cebu",
	"user_type": "seller"
}`

func TestAuthHandler_Register_Created(t *testing.T) {
	svc := &stubAuthService{registerResult: authResult()}
	recorder := &stubRecorder{}
	h := NewAuthHandler(svc, recorder)

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/register", registerBody)
	if err := h.Register(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp struct {
		Token string       `json:"token"`
		User  *domain.User `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token != "token-abc" {
		t.Fatalf("unexpected token %q", resp.Token)
	}
	if resp.User == nil || resp.User.Username != "farmer42" {
		t.Fatalf("unexpected user payload: %+v", resp.User)
	}

	if svc.lastRegister.Username != "farmer42" || svc.lastRegister.Age != 30 {
		t.Fatalf("register input not forwarded: %+v", svc.lastRegister)
	}
	if len(recorder.entries) != 1 || recorder.entries[0].Kind != domain.ActivityUserRegistered {
		t.Fatalf("expected one user_registered activity, got %+v", recorder.entries)
	}
}

func TestAuthHandler_Register_PasswordNeverSerialized(t *testing.T) {
	result := authResult()
	result.User.PasswordHash = "$2a$12$hash"
	h := NewAuthHandler(&stubAuthService{registerResult: result}, &stubRecorder{})

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/register", registerBody)
	if err := h.Register(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body := rec.Body.String(); strings.Contains(body, "$2a$12$hash") {
		t.Fatalf("password hash leaked into response: %s", body)
	}
}

func TestAuthHandler_Register_ValidationRejected(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, &stubRecorder{})

	cases := []struct {
		name string
		body string
	}{
		{"missing fields", `{"username": "farmer42"}`},
		{"underage", `{"username":"farmer42","password":"secret1","full_name":"Jane Doe","age":17,"region":"Cebu","user_type":"seller"}`},
		{"bad user type", `{"username":"farmer42","password":"secret1","full_name":"Jane Doe","age":30,"region":"Cebu","user_type":"admin"}`},
		{"not json", `not-json`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newTestContext(t, http.MethodPost, "/api/auth/register", tc.body)
			err := h.Register(c)
			httpErr, ok := err.(*echo.HTTPError)
			if !ok {
				t.Fatalf("expected *echo.HTTPError, got %v", err)
			}
			if httpErr.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", httpErr.Code)
			}
		})
	}
}

func TestAuthHandler_Register_DuplicatePropagated(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{registerErr: domain.ErrUserExists}, &stubRecorder{})

	c, _ := newTestContext(t, http.MethodPost, "/api/auth/register", registerBody)
	if err := h.Register(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists to propagate, got %v", err)
	}
}

func TestAuthHandler_Login_OK(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginResult: authResult()}, &stubRecorder{})

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/login", `{"username":"farmer42","password":"secret1"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_BadCredentialsPropagated(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginErr: domain.ErrInvalidCredentials}, &stubRecorder{})

	c, _ := newTestContext(t, http.MethodPost, "/api/auth/login", `{"username":"farmer42","password":"wrong"}`)
	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials to propagate, got %v", err)
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, &stubRecorder{})

	c, _ := newTestContext(t, http.MethodPost, "/api/auth/login", `{"username":"farmer42"}`)
	err := h.Login(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", httpErr.Code)
	}
}
