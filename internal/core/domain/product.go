package domain

import (
	"errors"
	"time"
)

var ErrProductNotFound = errors.New("product not found")

// Categories accepted for product listings. Listings submitted without a
// category fall back to CategoryOther.
const (
	CategoryVegetables = "vegetables"
	CategoryFruits     = "fruits"
	CategoryGrains     = "grains"
	CategoryHerbs      = "herbs"
	CategoryDairy      = "dairy"
	CategoryLivestock  = "livestock"
	CategoryOther      = "other"
)

var productCategories = map[string]struct{}{
	CategoryVegetables: {},
	CategoryFruits:     {},
	CategoryGrains:     {},
	CategoryHerbs:      {},
	CategoryDairy:      {},
	CategoryLivestock:  {},
	CategoryOther:      {},
}

// ValidCategory reports whether c names a known product category.
func ValidCategory(c string) bool {
	_, ok := productCategories[c]
	return ok
}

// SellerSnapshot is the denormalized seller view embedded in each product.
// It is captured at listing time and intentionally never updated afterwards,
// so a snapshot may outlive changes to the seller account.
type SellerSnapshot struct {
	Name     string `json:"name" bson:"name"`
	Username string `json:"username" bson:"username"`
	Region   string `json:"region" bson:"region"`
	Avatar   string `json:"avatar" bson:"avatar"`
}

// Product is a marketplace listing. Listings are immutable once created:
// there is no update or delete path.
type Product struct {
	ID          string         `json:"id" bson:"_id,omitempty"`
	SellerID    string         `json:"seller_id" bson:"seller_id"`
	Title       string         `json:"title" bson:"title"`
	Description string         `json:"description" bson:"description"`
	PricePerKg  float64        `json:"price_per_kg" bson:"price_per_kg"`
	Stock       int            `json:"stock" bson:"stock"`
	Category    string         `json:"category" bson:"category"`
	Seller      SellerSnapshot `json:"seller" bson:"seller"`
	Rating      float64        `json:"rating" bson:"rating"`
	ReviewCount int            `json:"review_count" bson:"review_count"`
	CreatedAt   time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" bson:"updated_at"`
}
