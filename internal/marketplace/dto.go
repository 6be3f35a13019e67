package marketplace

import (
	"time"

	"github.com/google/uuid"
)

// Category is a storefront category with its live listing count.
type Category struct {
	ID           uuid.UUID `json:"id"`
	Label        string    `json:"label"`
	Slug         string    `json:"slug"`
	Description  *string   `json:"description"`
	ProductCount int       `json:"product_count"`
}

// Rating aggregates approved reviews for a product. Average is nil until the
// first review lands.
type Rating struct {
	Average *float64 `json:"average"`
	Count   int      `json:"count"`
}

// Product is a storefront listing with vendor, category, rating and media
// resolved.
type Product struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Summary      *string    `json:"summary"`
	VendorName   string     `json:"vendor_name"`
	VendorID     *uuid.UUID `json:"vendor_id"`
	Price        float64    `json:"price"`
	Currency     string     `json:"currency"`
	Status       string     `json:"status"`
	Category     *Category  `json:"category"`
	Rating       Rating     `json:"rating"`
	ThumbnailURL *string    `json:"thumbnail_url"`
	CreatedAt    time.Time  `json:"created_at"`
}

// Inventory is the full storefront payload.
type Inventory struct {
	Products   []Product  `json:"products"`
	Categories []Category `json:"categories"`
}
