package usecase

import (
	"context"

	"ubishop/internal/domain/entity"
)

// CreateReviewInput defines a new review. The author is the actor.
type CreateReviewInput struct {
	ProductID int64
	Rating    int
	Comment   string
}

// UpdateReviewInput replaces rating and comment.
type UpdateReviewInput struct {
	Rating  int
	Comment string
}

// ReviewUsecase defines review operations. Only the author may change or
// delete a review.
type ReviewUsecase interface {
	List(ctx context.Context) ([]*entity.Review, error)
	Create(ctx context.Context, actor Actor, input CreateReviewInput) (*entity.Review, error)
	Update(ctx context.Context, actor Actor, reviewID int64, input UpdateReviewInput) (*entity.Review, error)
	Delete(ctx context.Context, actor Actor, reviewID int64) error
	Summary(ctx context.Context, productID int64) (*entity.ReviewSummary, error)
}
