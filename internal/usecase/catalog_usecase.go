package usecase

import (
	"context"

	"ubishop/internal/domain/entity"
)

// CatalogUsecase answers the read queries that combine two collections.
// Unmatched products are dropped from category and location joins; reviews
// keep a nil author name when the author is missing. When a parent row has
// more than one candidate the first one by id wins.
type CatalogUsecase interface {
	ListProducts(ctx context.Context) ([]*entity.Product, error)
	ListProductsByCategory(ctx context.Context, filter CategoryFilter) ([]*entity.ProductWithCategory, error)
	ListProductsWithLocation(ctx context.Context) ([]*entity.ProductWithLocation, error)
	ListReviewsByProduct(ctx context.Context, productID int64) ([]*entity.ReviewWithAuthor, error)
	GetStoreWithPlan(ctx context.Context, userID int64) (*entity.StoreWithPlan, error)
	ListStoresWithLocation(ctx context.Context) ([]*entity.StoreWithLocation, error)

	ListCategories(ctx context.Context) ([]*entity.Category, error)
	ListPlans(ctx context.Context) ([]*entity.Plan, error)
	ListLocations(ctx context.Context) ([]*entity.Location, error)
}
