package postgres

import (
	"context"

	"gorm.io/gorm"

	"ubishop/internal/domain/entity"
	domainerrors "ubishop/internal/domain/errors"
	"ubishop/internal/domain/repository"
	"ubishop/internal/infra/persistence/model"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (repo *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).First(&productM, "producto_id = ?", id).Error; err != nil {
		return nil, translateFindError(err, repository.ErrProductNotFound, "failed to find product by id")
	}

	return productM.ToDomain(), nil
}

func (repo *productRepository) List(ctx context.Context) ([]*entity.Product, error) {
	return repo.find(repo.db.WithContext(ctx), "failed to list products")
}

func (repo *productRepository) ListByCategory(ctx context.Context, categoryID int64) ([]*entity.Product, error) {
	return repo.find(repo.db.WithContext(ctx).Where("categoria_id = ?", categoryID), "failed to list products by category")
}

func (repo *productRepository) find(tx *gorm.DB, details string) ([]*entity.Product, error) {
	var rows []model.ProductModel
	if err := tx.Order("producto_id").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, details)
	}

	out := make([]*entity.Product, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out, nil
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := model.FromProduct(product)
	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid product fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("producto_id = ?", product.ID).
		Updates(map[string]any{
			"nombre_producto": product.Name,
			"precio":          product.Price,
			"descripcion":     product.Description,
			"categoria_id":    product.CategoryID,
		})
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid product fields")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}
