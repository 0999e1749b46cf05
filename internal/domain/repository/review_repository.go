package repository

import (
	"context"
	"errors"

	"ubishop/internal/domain/entity"
)

// ErrReviewNotFound is returned when a review is not found.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository persists product reviews.
type ReviewRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Review, error)

	// List returns every review ordered by id.
	List(ctx context.Context) ([]*entity.Review, error)

	// ListByProduct returns the reviews of one product ordered by id.
	ListByProduct(ctx context.Context, productID int64) ([]*entity.Review, error)

	// Summarize aggregates the ratings of one product. A product without
	// reviews yields a zero summary, not an error.
	Summarize(ctx context.Context, productID int64) (*entity.ReviewSummary, error)

	Create(ctx context.Context, review *entity.Review) error
	Update(ctx context.Context, review *entity.Review) error

	// Delete removes the review permanently.
	Delete(ctx context.Context, id int64) error
}
