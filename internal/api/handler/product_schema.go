package handler

import "github.com/agrilink/farm-market/internal/core/domain"

// createProductRequest carries a new listing. Zero is a legal price and a
// legal stock, so neither field is tagged required.
type createProductRequest struct {
	Title       string  `json:"title"        validate:"required,min=3"`
	Description string  `json:"description"`
	PricePerKg  float64 `json:"price_per_kg" validate:"gte=0"`
	Stock       int     `json:"stock"        validate:"gte=0"`
	Category    string  `json:"category"     validate:"omitempty,oneof=vegetables fruits grains herbs dairy livestock other"`
}

type listProductsResponse struct {
	Products   []*domain.Product `json:"products"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
}
