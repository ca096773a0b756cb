package memory

import (
	"context"
	"sync"

	"github.com/agrilink/farm-market/internal/core/domain"
)

// ActivityRepository is an in-memory activity feed store.
type ActivityRepository struct {
	mu      sync.RWMutex
	entries []*domain.Activity
	byKind  map[string]int64
}

func NewActivityRepository() *ActivityRepository {
	return &ActivityRepository{byKind: make(map[string]int64)}
}

func (r *ActivityRepository) Insert(_ context.Context, a *domain.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *a
	r.entries = append(r.entries, &clone)
	r.byKind[a.Kind]++
	return nil
}

func (r *ActivityRepository) CountByKind(_ context.Context) (map[string]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]int64, len(r.byKind))
	for k, v := range r.byKind {
		out[k] = v
	}
	return out, nil
}
