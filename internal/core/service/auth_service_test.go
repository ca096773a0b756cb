package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/agrilink/farm-market/internal/core/domain"
	"github.com/agrilink/farm-market/internal/core/ports"
)

type stubUserRepo struct {
	byUsername map[string]*domain.User
	order      []string
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byUsername: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.byUsername[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	r.byUsername[user.Username] = cloneUser(user)
	r.order = append(r.order, user.Username)
	return cloneUser(user), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.byUsername[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.byUsername {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, cloneUser(r.byUsername[name]))
	}
	return out, nil
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.order)), nil
}

func validRegistration() ports.RegisterInput {
	return ports.RegisterInput{
		Username: "farmer42",
		Password: "secret1",
		FullName: "Jane Doe",
		Age:      30,
		Region:   "Cebu",
		UserType: domain.UserTypeSeller,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	result, err := svc.Register(context.Background(), validRegistration())
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if result.Token == "" {
		t.Fatal("expected a token on registration")
	}
	user := result.User
	if user.ID == "" {
		t.Fatal("expected a generated id")
	}
	if user.PasswordHash == "secret1" {
		t.Fatal("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Avatar != domain.DefaultAvatar {
		t.Fatalf("expected default avatar, got %q", user.Avatar)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour)

	cases := []struct {
		name   string
		mutate func(*ports.RegisterInput)
	}{
		{"short username", func(in *ports.RegisterInput) { in.Username = "ab" }},
		{"short password", func(in *ports.RegisterInput) { in.Password = "12345" }},
		{"short full name", func(in *ports.RegisterInput) { in.FullName = "J" }},
		{"too young", func(in *ports.RegisterInput) { in.Age = 17 }},
		{"too old", func(in *ports.RegisterInput) { in.Age = 101 }},
		{"short region", func(in *ports.RegisterInput) { in.Region = "C" }},
		{"bad user type", func(in *ports.RegisterInput) { in.UserType = "admin" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validRegistration()
			tc.mutate(&input)
			_, err := svc.Register(context.Background(), input)
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour)

	if _, err := svc.Register(context.Background(), validRegistration()); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}

	// Same username, everything else different.
	second := ports.RegisterInput{
		Username: "farmer42",
		Password: "another-pass",
		FullName: "Someone Else",
		Age:      55,
		Region:   "Davao",
		UserType: domain.UserTypeBuyer,
	}
	if _, err := svc.Register(context.Background(), second); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	reg, err := svc.Register(context.Background(), validRegistration())
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	result, err := svc.Login(context.Background(), "farmer42", "secret1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.Token == "" {
		t.Fatal("expected token, got empty")
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(result.Token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["sub"] != reg.User.ID {
		t.Fatalf("expected sub %q, got %v", reg.User.ID, claims["sub"])
	}
	if claims["user_type"] != domain.UserTypeSeller {
		t.Fatalf("expected user_type seller, got %v", claims["user_type"])
	}
}

// Wrong passwords and unknown usernames must be indistinguishable.
func TestAuthService_Login_EnumerationResistance(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour)

	if _, err := svc.Register(context.Background(), validRegistration()); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, wrongPass := svc.Login(context.Background(), "farmer42", "badpass")
	_, noUser := svc.Login(context.Background(), "ghost", "whatever")

	if !errors.Is(wrongPass, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", wrongPass)
	}
	if !errors.Is(noUser, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", noUser)
	}
	if wrongPass.Error() != noUser.Error() {
		t.Fatalf("error messages differ: %q vs %q", wrongPass.Error(), noUser.Error())
	}
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour)

	if _, err := svc.Login(context.Background(), "", "pass"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "user", ""); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}
