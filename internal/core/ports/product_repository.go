package ports

import (
	"context"

	"github.com/agrilink/farm-market/internal/core/domain"
)

// ListProductsFilter carries all query parameters for listing products.
type ListProductsFilter struct {
	Category string // optional: exact category match
	Search   string // optional: case-insensitive substring on title or description
	Page     int    // 1-based
	Limit    int    // rows per page (capped at 100 by the service)
}

// ProductRepository defines persistence operations for product listings.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) error
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	// List returns a page of products in insertion order plus the total
	// count of products matching the filter before pagination.
	List(ctx context.Context, filter ListProductsFilter) ([]*domain.Product, int64, error)
	Count(ctx context.Context) (int64, error)
}
