package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/agrilink/farm-market/internal/core/domain"
	"github.com/agrilink/farm-market/internal/core/ports"
)

// ProductRepository is an in-memory catalog store. Listing order is
// insertion order; no other sort is guaranteed.
type ProductRepository struct {
	mu       sync.RWMutex
	byID     map[string]*domain.Product
	products []*domain.Product
}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{byID: make(map[string]*domain.Product)}
}

func (r *ProductRepository) Create(_ context.Context, p *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := cloneProduct(p)
	r.byID[stored.ID] = stored
	r.products = append(r.products, stored)
	return nil
}

func (r *ProductRepository) FindByID(_ context.Context, id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return cloneProduct(p), nil
}

func (r *ProductRepository) List(_ context.Context, f ports.ListProductsFilter) ([]*domain.Product, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*domain.Product
	search := strings.ToLower(f.Search)
	for _, p := range r.products {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if search != "" {
			titleMatch := strings.Contains(strings.ToLower(p.Title), search)
			descMatch := strings.Contains(strings.ToLower(p.Description), search)
			if !titleMatch && !descMatch {
				continue
			}
		}
		matched = append(matched, cloneProduct(p))
	}

	total := int64(len(matched))

	limit := f.Limit
	if limit <= 0 {
		limit = len(matched)
	}
	skip := (f.Page - 1) * limit
	if skip < 0 {
		skip = 0
	}
	if skip >= len(matched) {
		return []*domain.Product{}, total, nil
	}
	end := skip + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[skip:end], total, nil
}

func (r *ProductRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.products)), nil
}

func cloneProduct(p *domain.Product) *domain.Product {
	clone := *p
	return &clone
}
