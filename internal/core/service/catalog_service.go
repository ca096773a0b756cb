package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/agrilink/farm-market/internal/core/domain"
	"github.com/agrilink/farm-market/internal/core/ports"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// CatalogService implements product listing and creation.
type CatalogService struct {
	products ports.ProductRepository
	users    ports.UserRepository
	logger   zerolog.Logger
}

func NewCatalogService(products ports.ProductRepository, users ports.UserRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{products: products, users: users, logger: logger}
}

// CreateProduct creates a listing owned by the authenticated caller. The
// seller snapshot is denormalized from the caller's account at creation time.
func (s *CatalogService) CreateProduct(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	if err := validateListing(input); err != nil {
		return nil, err
	}

	seller, err := s.users.FindByID(ctx, input.SellerID)
	if err != nil {
		return nil, err
	}
	if !seller.CanSell() {
		return nil, domain.ErrForbidden
	}

	category := input.Category
	if category == "" {
		category = domain.CategoryOther
	}

	now := time.Now().UTC()
	product := &domain.Product{
		ID:          uuid.NewString(),
		SellerID:    seller.ID,
		Title:       input.Title,
		Description: input.Description,
		PricePerKg:  input.PricePerKg,
		Stock:       input.Stock,
		Category:    category,
		Seller: domain.SellerSnapshot{
			Name:     seller.FullName,
			Username: seller.Username,
			Region:   seller.Region,
			Avatar:   seller.Avatar,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.products.Create(ctx, product); err != nil {
		s.logger.Error().Err(err).Str("seller_id", seller.ID).Msg("failed to create product")
		return nil, err
	}

	s.logger.Info().Str("product_id", product.ID).Str("seller_id", seller.ID).Str("category", category).Msg("product created")
	return product, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.products.FindByID(ctx, id)
}

// ListProducts returns a page of the catalog in insertion order.
func (s *CatalogService) ListProducts(ctx context.Context, input ports.ListProductsInput) (*ports.ListProductsResult, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	products, total, err := s.products.List(ctx, ports.ListProductsFilter{
		Category: input.Category,
		Search:   input.Search,
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		return nil, err
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))

	return &ports.ListProductsResult{
		Products:   products,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

func validateListing(in ports.CreateProductInput) error {
	switch {
	case len(in.Title) < 3:
		return fmt.Errorf("%w: title must be at least 3 characters", domain.ErrValidation)
	case in.PricePerKg < 0:
		return fmt.Errorf("%w: price_per_kg must not be negative", domain.ErrValidation)
	case in.Stock < 0:
		return fmt.Errorf("%w: stock must be a non-negative integer", domain.ErrValidation)
	case in.Category != "" && !domain.ValidCategory(in.Category):
		return fmt.Errorf("%w: unknown category %q", domain.ErrValidation, in.Category)
	}
	return nil
}
