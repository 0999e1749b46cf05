package repository

import (
	"context"

	"ubishop/internal/domain/entity"
)

// CategoryRepository reads product categories.
type CategoryRepository interface {
	// List returns every category ordered by id.
	List(ctx context.Context) ([]*entity.Category, error)
}
