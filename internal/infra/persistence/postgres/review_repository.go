package postgres

import (
	"context"

	"gorm.io/gorm"

	"ubishop/internal/domain/entity"
	domainerrors "ubishop/internal/domain/errors"
	"ubishop/internal/domain/repository"
	"ubishop/internal/infra/persistence/model"
)

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

func (repo *reviewRepository) FindByID(ctx context.Context, id int64) (*entity.Review, error) {
	var reviewM model.ReviewModel
	if err := repo.db.WithContext(ctx).First(&reviewM, "opinion_id = ?", id).Error; err != nil {
		return nil, translateFindError(err, repository.ErrReviewNotFound, "failed to find review by id")
	}

	return reviewM.ToDomain(), nil
}

func (repo *reviewRepository) List(ctx context.Context) ([]*entity.Review, error) {
	return repo.find(repo.db.WithContext(ctx), "failed to list reviews")
}

func (repo *reviewRepository) ListByProduct(ctx context.Context, productID int64) ([]*entity.Review, error) {
	return repo.find(repo.db.WithContext(ctx).Where("producto_id = ?", productID), "failed to list reviews by product")
}

func (repo *reviewRepository) find(tx *gorm.DB, details string) ([]*entity.Review, error) {
	var rows []model.ReviewModel
	if err := tx.Order("opinion_id").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, details)
	}

	out := make([]*entity.Review, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out, nil
}

func (repo *reviewRepository) Summarize(ctx context.Context, productID int64) (*entity.ReviewSummary, error) {
	var row struct {
		Average float64
		Total   int
	}
	err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Select("COALESCE(AVG(calificacion), 0) AS average, COUNT(*) AS total").
		Where("producto_id = ?", productID).
		Scan(&row).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to summarize reviews")
	}

	return &entity.ReviewSummary{ProductID: productID, Average: row.Average, Count: row.Total}, nil
}

func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := model.FromReview(review)
	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidRating
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt

	return nil
}

func (repo *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("opinion_id = ?", review.ID).
		Updates(map[string]any{
			"calificacion": review.Rating,
			"comentario":   review.Comment,
		})
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrInvalidRating
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

func (repo *reviewRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.ReviewModel{}, "opinion_id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}
