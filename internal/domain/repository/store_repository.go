package repository

import (
	"context"
	"errors"

	"ubishop/internal/domain/entity"
)

var (
	// ErrStoreNotFound is returned when a store is not found.
	ErrStoreNotFound = errors.New("store not found")
	// ErrStoreOwnerTaken is returned when the user already owns a store.
	ErrStoreOwnerTaken = errors.New("user already owns a store")
)

// StoreRepository persists stores.
type StoreRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Store, error)

	// FindByOwner returns the store owned by userID. When several rows
	// match the lowest id wins.
	FindByOwner(ctx context.Context, userID int64) (*entity.Store, error)

	List(ctx context.Context) ([]*entity.Store, error)
	Create(ctx context.Context, store *entity.Store) error
	Update(ctx context.Context, store *entity.Store) error
}
