// Package memory provides the default in-process repositories. All stores
// are mutex-guarded so handlers can run concurrently without extra locking.
package memory

import (
	"context"
	"sync"

	"github.com/agrilink/farm-market/internal/core/domain"
)

// UserRepository is an in-memory user store. Username uniqueness is enforced
// inside a single critical section, so check-and-insert is atomic.
type UserRepository struct {
	mu         sync.RWMutex
	byUsername map[string]*domain.User
	byID       map[string]*domain.User
	order      []string // IDs in registration order
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		byUsername: make(map[string]*domain.User),
		byID:       make(map[string]*domain.User),
	}
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byUsername[user.Username]; exists {
		return nil, domain.ErrUserExists
	}

	stored := cloneUser(user)
	r.byUsername[stored.Username] = stored
	r.byID[stored.ID] = stored
	r.order = append(r.order, stored.ID)

	return cloneUser(stored), nil
}

func (r *UserRepository) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byUsername[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *UserRepository) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *UserRepository) List(_ context.Context) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.User, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, cloneUser(r.byID[id]))
	}
	return out, nil
}

func (r *UserRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.order)), nil
}

// cloneUser keeps callers from mutating stored records through the returned
// pointer.
func cloneUser(u *domain.User) *domain.User {
	clone := *u
	return &clone
}
