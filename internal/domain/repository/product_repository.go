package repository

import (
	"context"
	"errors"

	"ubishop/internal/domain/entity"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository persists products.
type ProductRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Product, error)

	// List returns every product ordered by id.
	List(ctx context.Context) ([]*entity.Product, error)

	// ListByCategory returns the products of one category ordered by id.
	ListByCategory(ctx context.Context, categoryID int64) ([]*entity.Product, error)

	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
}
