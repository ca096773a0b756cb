package ports

import (
	"context"

	"github.com/agrilink/farm-market/internal/core/domain"
)

// UserRepository defines persistence operations for marketplace accounts.
type UserRepository interface {
	// Create inserts the user, enforcing username uniqueness atomically.
	// Returns domain.ErrUserExists when the username is already taken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByUsername performs a case-sensitive exact-match lookup.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// List returns all users in registration order.
	List(ctx context.Context) ([]*domain.User, error)
	Count(ctx context.Context) (int64, error)
}
