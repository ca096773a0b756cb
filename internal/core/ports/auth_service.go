package ports

import (
	"context"

	"github.com/agrilink/farm-market/internal/core/domain"
)

// RegisterInput carries all data needed to create a new account.
type RegisterInput struct {
	Username string
	Password string
	FullName string
	Age      int
	Region   string
	UserType string
	Avatar   string // optional, defaults to domain.DefaultAvatar
}

// AuthResult is returned on successful registration or login.
type AuthResult struct {
	Token string
	User  *domain.User
}

// AuthService defines registration, login and token verification.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, username, password string) (*AuthResult, error)
}
