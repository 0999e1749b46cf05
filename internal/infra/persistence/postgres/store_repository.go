package postgres

import (
	"context"

	"gorm.io/gorm"

	"ubishop/internal/domain/entity"
	domainerrors "ubishop/internal/domain/errors"
	"ubishop/internal/domain/repository"
	"ubishop/internal/infra/persistence/model"
)

type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository is the constructor for storeRepository.
func NewStoreRepository(db *gorm.DB) repository.StoreRepository {
	return &storeRepository{db: db}
}

func (repo *storeRepository) FindByID(ctx context.Context, id int64) (*entity.Store, error) {
	var storeM model.StoreModel
	if err := repo.db.WithContext(ctx).First(&storeM, "tienda_id = ?", id).Error; err != nil {
		return nil, translateFindError(err, repository.ErrStoreNotFound, "failed to find store by id")
	}

	return storeM.ToDomain(), nil
}

func (repo *storeRepository) FindByOwner(ctx context.Context, userID int64) (*entity.Store, error) {
	var storeM model.StoreModel
	err := repo.db.WithContext(ctx).Where("user_id = ?", userID).Order("tienda_id").First(&storeM).Error
	if err != nil {
		return nil, translateFindError(err, repository.ErrStoreNotFound, "failed to find store by owner")
	}

	return storeM.ToDomain(), nil
}

func (repo *storeRepository) List(ctx context.Context) ([]*entity.Store, error) {
	var rows []model.StoreModel
	if err := repo.db.WithContext(ctx).Order("tienda_id").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list stores")
	}

	out := make([]*entity.Store, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out, nil
}

func (repo *storeRepository) Create(ctx context.Context, store *entity.Store) error {
	storeM := model.FromStore(store)
	if err := repo.db.WithContext(ctx).Create(storeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrStoreOwnerTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create store")
	}

	store.ID = storeM.ID
	store.CreatedAt = storeM.CreatedAt
	store.UpdatedAt = storeM.UpdatedAt

	return nil
}

func (repo *storeRepository) Update(ctx context.Context, store *entity.Store) error {
	result := repo.db.WithContext(ctx).
		Model(&model.StoreModel{}).
		Where("tienda_id = ?", store.ID).
		Updates(map[string]any{
			"nombre":      store.Name,
			"descripcion": store.Description,
			"propietario": store.OwnerName,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update store")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStoreNotFound
	}

	return nil
}
