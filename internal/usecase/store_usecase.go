package usecase

import (
	"context"

	"ubishop/internal/domain/entity"
)

// LocationInput is a store position.
type LocationInput struct {
	Latitude  float64
	Longitude float64
	Address   string
}

// CreateStoreInput defines a new store owned by the actor. Location is
// optional and is stored in the same transaction.
type CreateStoreInput struct {
	Name        string
	Description string
	OwnerName   string
	PlanID      int64
	Location    *LocationInput
}

// StoreUsecase defines store and store location operations.
type StoreUsecase interface {
	List(ctx context.Context) ([]*entity.Store, error)
	Get(ctx context.Context, storeID int64) (*entity.Store, error)
	Create(ctx context.Context, actor Actor, input CreateStoreInput) (*entity.Store, error)
	Update(ctx context.Context, actor Actor, storeID int64, patch entity.StorePatch) (*entity.Store, error)

	// ShareQR renders a PNG QR code for the store.
	ShareQR(ctx context.Context, storeID int64) ([]byte, error)

	CreateLocation(ctx context.Context, actor Actor, storeID int64, input LocationInput) (*entity.Location, error)
	UpdateLocation(ctx context.Context, actor Actor, storeID int64, input LocationInput) (*entity.Location, error)
}
