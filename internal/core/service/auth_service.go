package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/agrilink/farm-market/internal/core/domain"
	"github.com/agrilink/farm-market/internal/core/ports"
)

// bcryptCost is deliberately above bcrypt.DefaultCost to resist offline
// brute force against a leaked credential store.
const bcryptCost = 12

// AuthService implements registration and login with JWT issuance.
type AuthService struct {
	repo      ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(repo ports.UserRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	if err := validateRegistration(input); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	avatar := input.Avatar
	if avatar == "" {
		avatar = domain.DefaultAvatar
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     input.Username,
		PasswordHash: string(hash),
		FullName:     input.FullName,
		Age:          input.Age,
		Region:       input.Region,
		UserType:     input.UserType,
		Avatar:       avatar,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// The repository enforces username uniqueness atomically, so two
	// concurrent registrations with the same name cannot both succeed.
	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := s.generateToken(created)
	if err != nil {
		return nil, err
	}
	return &ports.AuthResult{Token: token, User: created}, nil
}

// Login authenticates a user. Unknown usernames and wrong passwords yield
// the identical domain.ErrInvalidCredentials so responses cannot be used to
// enumerate accounts.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.AuthResult, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", domain.ErrValidation)
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}
	return &ports.AuthResult{Token: token, User: user}, nil
}

func validateRegistration(in ports.RegisterInput) error {
	switch {
	case len(in.Username) < 3:
		return fmt.Errorf("%w: username must be at least 3 characters", domain.ErrValidation)
	case len(in.Password) < 6:
		return fmt.Errorf("%w: password must be at least 6 characters", domain.ErrValidation)
	case len(in.FullName) < 2:
		return fmt.Errorf("%w: full_name must be at least 2 characters", domain.ErrValidation)
	case in.Age < 18 || in.Age > 100:
		return fmt.Errorf("%w: age must be between 18 and 100", domain.ErrValidation)
	case len(in.Region) < 2:
		return fmt.Errorf("%w: region must be at least 2 characters", domain.ErrValidation)
	case !domain.ValidUserType(in.UserType):
		return fmt.Errorf("%w: user_type must be one of: buyer, seller, both", domain.ErrValidation)
	}
	return nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":       user.ID,
		"username":  user.Username,
		"user_type": user.UserType,
		"exp":       time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
