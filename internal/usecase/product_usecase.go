package usecase

import (
	"context"

	"ubishop/internal/domain/entity"
)

// CreateProductInput defines the data required to list a product.
type CreateProductInput struct {
	Name        string
	Price       float64
	Description string
	CategoryID  int64
	StoreID     int64
	Status      string
}

// UpdateProductInput replaces the editable product fields.
type UpdateProductInput struct {
	Name        string
	Price       float64
	Description string
	CategoryID  int64
}

// ProductUsecase defines product write operations and the image lookup.
type ProductUsecase interface {
	Create(ctx context.Context, actor Actor, input CreateProductInput) (*entity.Product, error)
	Update(ctx context.Context, actor Actor, productID int64, input UpdateProductInput) (*entity.Product, error)

	// ImageURL finds a display image for the product name.
	ImageURL(ctx context.Context, productID int64) (string, error)
}
