package postgres

import (
	"context"

	"gorm.io/gorm"

	"ubishop/internal/domain/entity"
	domainerrors "ubishop/internal/domain/errors"
	"ubishop/internal/domain/repository"
	"ubishop/internal/infra/persistence/model"
)

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

func (repo *categoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	var rows []model.CategoryModel
	if err := repo.db.WithContext(ctx).Order("categoria_id").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list categories")
	}

	out := make([]*entity.Category, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out, nil
}

type planRepository struct {
	db *gorm.DB
}

// NewPlanRepository is the constructor for planRepository.
func NewPlanRepository(db *gorm.DB) repository.PlanRepository {
	return &planRepository{db: db}
}

func (repo *planRepository) FindByID(ctx context.Context, id int64) (*entity.Plan, error) {
	var planM model.PlanModel
	if err := repo.db.WithContext(ctx).First(&planM, "plan_id = ?", id).Error; err != nil {
		return nil, translateFindError(err, repository.ErrPlanNotFound, "failed to find plan by id")
	}

	return planM.ToDomain(), nil
}

func (repo *planRepository) List(ctx context.Context) ([]*entity.Plan, error) {
	var rows []model.PlanModel
	if err := repo.db.WithContext(ctx).Order("plan_id").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list plans")
	}

	out := make([]*entity.Plan, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out, nil
}
