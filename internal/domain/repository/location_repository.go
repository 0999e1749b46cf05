package repository

import (
	"context"
	"errors"

	"ubishop/internal/domain/entity"
)

var (
	// ErrLocationNotFound is returned when a store has no location.
	ErrLocationNotFound = errors.New("location not found")
	// ErrLocationExists is returned when the store already has a location.
	ErrLocationExists = errors.New("location already exists")
)

// LocationRepository persists store locations, keyed by store id.
type LocationRepository interface {
	FindByStore(ctx context.Context, storeID int64) (*entity.Location, error)

	// List returns every location ordered by store id.
	List(ctx context.Context) ([]*entity.Location, error)

	Create(ctx context.Context, location *entity.Location) error
	Update(ctx context.Context, location *entity.Location) error
}
