package ports

import (
	"context"

	"github.com/agrilink/farm-market/internal/core/domain"
)

// CreateProductInput carries all data needed to create a listing.
// SellerID is always the authenticated caller, never client-supplied.
type CreateProductInput struct {
	SellerID    string
	Title       string
	Description string
	PricePerKg  float64
	Stock       int
	Category    string // optional, defaults to domain.CategoryOther
}

// ListProductsInput carries the catalog query parameters.
type ListProductsInput struct {
	Category string
	Search   string
	Page     int
	Limit    int
}

// ListProductsResult is returned by ListProducts.
type ListProductsResult struct {
	Products   []*domain.Product
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// CatalogService defines use-case operations on the product catalog.
type CatalogService interface {
	CreateProduct(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	ListProducts(ctx context.Context, input ListProductsInput) (*ListProductsResult, error)
}
