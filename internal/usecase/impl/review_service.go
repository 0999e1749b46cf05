package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"go.uber.org/fx"

	"ubishop/internal/domain/entity"
	domainerrors "ubishop/internal/domain/errors"
	"ubishop/internal/domain/repository"
	"ubishop/internal/errors"
	"ubishop/internal/usecase"
)

// ReviewServiceParams holds dependencies for the review service, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	ReviewRepo  repository.ReviewRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

type reviewService struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
	now         func() time.Time
}

// NewReviewService creates the review service.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo:  params.ReviewRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (s *reviewService) List(ctx context.Context) ([]*entity.Review, error) {
	reviews, err := s.reviewRepo.List(ctx)

	return reviews, errors.Wrap(err, "failed to list reviews")
}

func (s *reviewService) Create(ctx context.Context, actor usecase.Actor, input usecase.CreateReviewInput) (*entity.Review, error) {
	if !entity.ValidRating(input.Rating) {
		return nil, domainerrors.ErrInvalidRating
	}
	if _, err := s.productRepo.FindByID(ctx, input.ProductID); err != nil {
		return nil, translate(err, "failed to find product")
	}

	review := &entity.Review{
		UserID:    actor.UserID,
		ProductID: input.ProductID,
		Rating:    input.Rating,
		Comment:   strings.TrimSpace(input.Comment),
		CreatedAt: s.now(),
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, translate(err, "failed to create review")
	}

	requestLogger(ctx, s.logger).Info("Review created",
		slog.Int64("reviewID", review.ID),
		slog.Int64("productID", review.ProductID),
	)

	return review, nil
}

// authorize loads the review and checks the actor wrote it.
func (s *reviewService) authorize(ctx context.Context, actor usecase.Actor, reviewID int64) (*entity.Review, error) {
	review, err := s.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		return nil, translate(err, "failed to find review")
	}
	if review.UserID != actor.UserID {
		return nil, domainerrors.ErrForbidden.WrapMessage("review belongs to another user")
	}

	return review, nil
}

func (s *reviewService) Update(ctx context.Context, actor usecase.Actor, reviewID int64, input usecase.UpdateReviewInput) (*entity.Review, error) {
	if !entity.ValidRating(input.Rating) {
		return nil, domainerrors.ErrInvalidRating
	}

	review, err := s.authorize(ctx, actor, reviewID)
	if err != nil {
		return nil, err
	}

	review.Rating = input.Rating
	review.Comment = strings.TrimSpace(input.Comment)
	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return nil, translate(err, "failed to update review")
	}

	return review, nil
}

func (s *reviewService) Delete(ctx context.Context, actor usecase.Actor, reviewID int64) error {
	if _, err := s.authorize(ctx, actor, reviewID); err != nil {
		return err
	}

	if err := s.reviewRepo.Delete(ctx, reviewID); err != nil {
		return translate(err, "failed to delete review")
	}

	requestLogger(ctx, s.logger).Info("Review deleted", slog.Int64("reviewID", reviewID))

	return nil
}

func (s *reviewService) Summary(ctx context.Context, productID int64) (*entity.ReviewSummary, error) {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		return nil, translate(err, "failed to find product")
	}

	summary, err := s.reviewRepo.Summarize(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarize reviews")
	}

	return summary, nil
}
