package impl

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ubishop/internal/domain/entity"
	domainerrors "ubishop/internal/domain/errors"
	"ubishop/internal/domain/repository"
	"ubishop/internal/infra/persistence/memory"
	mockRepo "ubishop/internal/mocks/repository"
	"ubishop/internal/usecase"
)

type reviewServiceFixtures struct {
	service     *reviewService
	reviewRepo  *mockRepo.MockReviewRepository
	productRepo *mockRepo.MockProductRepository
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	svc := NewReviewService(ReviewServiceParams{
		ReviewRepo:  reviewRepo,
		ProductRepo: productRepo,
		Logger:      newDiscardLogger(),
	}).(*reviewService)

	return reviewServiceFixtures{service: svc, reviewRepo: reviewRepo, productRepo: productRepo}
}

func TestReviewService_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fx := createTestReviewService(t)
		ctx := context.Background()
		fixed := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
		fx.service.now = func() time.Time { return fixed }

		fx.productRepo.EXPECT().FindByID(ctx, int64(4)).Return(&entity.Product{ID: 4}, nil)
		fx.reviewRepo.EXPECT().
			Create(ctx, mock.MatchedBy(func(r *entity.Review) bool {
				return r.UserID == 9 && r.ProductID == 4 && r.Rating == 5 && r.CreatedAt.Equal(fixed)
			})).
			Return(nil)

		review, err := fx.service.Create(ctx, usecase.Actor{UserID: 9}, usecase.CreateReviewInput{
			ProductID: 4,
			Rating:    5,
			Comment:   " Muy rico ",
		})

		require.NoError(t, err)
		assert.Equal(t, "Muy rico", review.Comment)
	})

	t.Run("rating out of range", func(t *testing.T) {
		for _, rating := range []int{0, 6, -1} {
			fx := createTestReviewService(t)

			_, err := fx.service.Create(context.Background(), usecase.Actor{UserID: 9}, usecase.CreateReviewInput{ProductID: 4, Rating: rating})

			assert.ErrorIs(t, err, domainerrors.ErrInvalidRating, rating)
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		fx := createTestReviewService(t)
		ctx := context.Background()

		fx.productRepo.EXPECT().FindByID(ctx, int64(4)).Return(nil, repository.ErrProductNotFound)

		_, err := fx.service.Create(ctx, usecase.Actor{UserID: 9}, usecase.CreateReviewInput{ProductID: 4, Rating: 3})

		assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	})
}

func TestReviewService_UpdateAndDelete_AuthorOnly(t *testing.T) {
	existing := &entity.Review{ID: 2, UserID: 9, ProductID: 4, Rating: 1}

	t.Run("update by author", func(t *testing.T) {
		fx := createTestReviewService(t)
		ctx := context.Background()

		fx.reviewRepo.EXPECT().FindByID(ctx, int64(2)).Return(&entity.Review{ID: 2, UserID: 9, Rating: 1}, nil)
		fx.reviewRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Review")).Return(nil)

		review, err := fx.service.Update(ctx, usecase.Actor{UserID: 9}, 2, usecase.UpdateReviewInput{Rating: 4, Comment: "mejor"})

		require.NoError(t, err)
		assert.Equal(t, 4, review.Rating)
		assert.Equal(t, "mejor", review.Comment)
	})

	t.Run("update by someone else", func(t *testing.T) {
		fx := createTestReviewService(t)
		ctx := context.Background()

		fx.reviewRepo.EXPECT().FindByID(ctx, int64(2)).Return(existing, nil)

		_, err := fx.service.Update(ctx, usecase.Actor{UserID: 10}, 2, usecase.UpdateReviewInput{Rating: 4})

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("delete missing", func(t *testing.T) {
		fx := createTestReviewService(t)
		ctx := context.Background()

		fx.reviewRepo.EXPECT().FindByID(ctx, int64(3)).Return(nil, repository.ErrReviewNotFound)

		err := fx.service.Delete(ctx, usecase.Actor{UserID: 9}, 3)

		assert.ErrorIs(t, err, domainerrors.ErrReviewNotFound)
	})

	t.Run("delete by author", func(t *testing.T) {
		fx := createTestReviewService(t)
		ctx := context.Background()

		fx.reviewRepo.EXPECT().FindByID(ctx, int64(2)).Return(existing, nil)
		fx.reviewRepo.EXPECT().Delete(ctx, int64(2)).Return(nil)

		require.NoError(t, fx.service.Delete(ctx, usecase.Actor{UserID: 9}, 2))
	})
}

func TestReviewService_Summary(t *testing.T) {
	seed := newSeedData(t)
	product := seed.addProduct(t, "Ceviche", 25, seed.foodID, seed.store.ID, "activo")
	svc := NewReviewService(ReviewServiceParams{
		ReviewRepo:  memory.NewReviewRepository(seed.db),
		ProductRepo: memory.NewProductRepository(seed.db),
		Logger:      newDiscardLogger(),
	})
	ctx := context.Background()

	empty, err := svc.Summary(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Count)
	assert.Zero(t, empty.Average)

	for _, rating := range []int{5, 4, 3} {
		_, err := svc.Create(ctx, usecase.Actor{UserID: seed.customer.ID}, usecase.CreateReviewInput{ProductID: product.ID, Rating: rating})
		require.NoError(t, err)
	}

	summary, err := svc.Summary(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Count)
	assert.InDelta(t, 4.0, summary.Average, 1e-9)

	_, err = svc.Summary(ctx, 999)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}
