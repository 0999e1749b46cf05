package entity

import (
	"time"

	"github.com/paulmach/orb"
)

// ProductStatusActive marks a product that is listed to shoppers.
const ProductStatusActive = "activo"

// Product is an item listed by a store.
type Product struct {
	ID          int64
	Name        string
	Price       float64
	Description string
	CategoryID  int64
	StoreID     int64
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsActive reports whether the product is listed.
func (p *Product) IsActive() bool {
	return p.Status == ProductStatusActive
}

// ProductWithCategory is a product enriched with its category.
type ProductWithCategory struct {
	Product
	Category Category
}

// ProductWithLocation is a product enriched with the location of its store.
type ProductWithLocation struct {
	Product
	Location Location
}

// Coordinates returns the store position.
func (p *ProductWithLocation) Coordinates() (orb.Point, bool) {
	return p.Location.Point(), true
}

// SearchName is the text matched by free-text search.
func (p *ProductWithLocation) SearchName() string {
	return p.Name
}

// SortPrice is the value products are ranked by.
func (p *ProductWithLocation) SortPrice() float64 {
	return p.Price
}
