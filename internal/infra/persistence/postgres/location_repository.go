package postgres

import (
	"context"

	"gorm.io/gorm"

	"ubishop/internal/domain/entity"
	domainerrors "ubishop/internal/domain/errors"
	"ubishop/internal/domain/repository"
	"ubishop/internal/infra/persistence/model"
)

type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{db: db}
}

func (repo *locationRepository) FindByStore(ctx context.Context, storeID int64) (*entity.Location, error) {
	var locM model.LocationModel
	if err := repo.db.WithContext(ctx).First(&locM, "tienda_id = ?", storeID).Error; err != nil {
		return nil, translateFindError(err, repository.ErrLocationNotFound, "failed to find location")
	}

	return locM.ToDomain(), nil
}

func (repo *locationRepository) List(ctx context.Context) ([]*entity.Location, error) {
	var rows []model.LocationModel
	if err := repo.db.WithContext(ctx).Order("tienda_id").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list locations")
	}

	out := make([]*entity.Location, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out, nil
}

func (repo *locationRepository) Create(ctx context.Context, location *entity.Location) error {
	if err := repo.db.WithContext(ctx).Create(model.FromLocation(location)).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrLocationExists
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidCoordinates
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create location")
	}

	return nil
}

func (repo *locationRepository) Update(ctx context.Context, location *entity.Location) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LocationModel{}).
		Where("tienda_id = ?", location.StoreID).
		Updates(map[string]any{
			"latitud":   location.Latitude,
			"longitud":  location.Longitude,
			"direccion": location.Address,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update location")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLocationNotFound
	}

	return nil
}
