package impl

import (
	"context"
	"log/slog"
	"strings"

	"go.uber.org/fx"

	"ubishop/internal/domain/entity"
	domainerrors "ubishop/internal/domain/errors"
	"ubishop/internal/domain/repository"
	"ubishop/internal/domain/service"
	"ubishop/internal/errors"
	"ubishop/internal/usecase"
)

// StoreServiceParams holds dependencies for the store service, injected by Fx.
type StoreServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	StoreRepo    repository.StoreRepository
	LocationRepo repository.LocationRepository
	PlanRepo     repository.PlanRepository
	QRCode       service.QRCodeService
	Logger       *slog.Logger
}

type storeService struct {
	txManager    repository.TransactionManager
	storeRepo    repository.StoreRepository
	locationRepo repository.LocationRepository
	planRepo     repository.PlanRepository
	qrcode       service.QRCodeService
	logger       *slog.Logger
}

// NewStoreService creates the store service.
func NewStoreService(params StoreServiceParams) usecase.StoreUsecase {
	return &storeService{
		txManager:    params.TxManager,
		storeRepo:    params.StoreRepo,
		locationRepo: params.LocationRepo,
		planRepo:     params.PlanRepo,
		qrcode:       params.QRCode,
		logger:       params.Logger,
	}
}

func (s *storeService) List(ctx context.Context) ([]*entity.Store, error) {
	stores, err := s.storeRepo.List(ctx)

	return stores, errors.Wrap(err, "failed to list stores")
}

func (s *storeService) Get(ctx context.Context, storeID int64) (*entity.Store, error) {
	store, err := s.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		return nil, translate(err, "failed to find store")
	}

	return store, nil
}

// Create stores the store and, when given, its location in one transaction.
// The unique owner index rejects a second store for the same user.
func (s *storeService) Create(ctx context.Context, actor usecase.Actor, input usecase.CreateStoreInput) (*entity.Store, error) {
	if err := requireText(map[string]string{"nombre": input.Name}); err != nil {
		return nil, err
	}
	if _, err := s.planRepo.FindByID(ctx, input.PlanID); err != nil {
		return nil, translate(err, "failed to find plan")
	}
	if loc := input.Location; loc != nil && !entity.ValidCoordinates(loc.Latitude, loc.Longitude) {
		return nil, domainerrors.ErrInvalidCoordinates
	}

	store := &entity.Store{
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		OwnerName:   strings.TrimSpace(input.OwnerName),
		UserID:      actor.UserID,
		PlanID:      input.PlanID,
	}

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewStoreRepository().Create(ctx, store); err != nil {
			return err
		}
		if input.Location == nil {
			return nil
		}

		return repoFactory.NewLocationRepository().Create(ctx, &entity.Location{
			StoreID:   store.ID,
			Latitude:  input.Location.Latitude,
			Longitude: input.Location.Longitude,
			Address:   strings.TrimSpace(input.Location.Address),
		})
	})
	if err != nil {
		return nil, translate(err, "failed to create store")
	}

	requestLogger(ctx, s.logger).Info("Store created",
		slog.Int64("storeID", store.ID),
		slog.Int64("userID", store.UserID),
		slog.Bool("withLocation", input.Location != nil),
	)

	return store, nil
}

func (s *storeService) Update(ctx context.Context, actor usecase.Actor, storeID int64, patch entity.StorePatch) (*entity.Store, error) {
	store, err := authorizeStore(ctx, s.storeRepo, actor, storeID)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		store.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Description != nil {
		store.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.OwnerName != nil {
		store.OwnerName = strings.TrimSpace(*patch.OwnerName)
	}

	if err := s.storeRepo.Update(ctx, store); err != nil {
		return nil, translate(err, "failed to update store")
	}

	return store, nil
}

func (s *storeService) ShareQR(ctx context.Context, storeID int64) ([]byte, error) {
	store, err := s.Get(ctx, storeID)
	if err != nil {
		return nil, err
	}

	png, err := s.qrcode.GenerateStoreQR(store)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate store QR code")
	}

	return png, nil
}

func (s *storeService) CreateLocation(ctx context.Context, actor usecase.Actor, storeID int64, input usecase.LocationInput) (*entity.Location, error) {
	location, err := s.prepareLocation(ctx, actor, storeID, input)
	if err != nil {
		return nil, err
	}

	if err := s.locationRepo.Create(ctx, location); err != nil {
		return nil, translate(err, "failed to create location")
	}

	return location, nil
}

func (s *storeService) UpdateLocation(ctx context.Context, actor usecase.Actor, storeID int64, input usecase.LocationInput) (*entity.Location, error) {
	location, err := s.prepareLocation(ctx, actor, storeID, input)
	if err != nil {
		return nil, err
	}

	if err := s.locationRepo.Update(ctx, location); err != nil {
		return nil, translate(err, "failed to update location")
	}

	return location, nil
}

func (s *storeService) prepareLocation(ctx context.Context, actor usecase.Actor, storeID int64, input usecase.LocationInput) (*entity.Location, error) {
	if !entity.ValidCoordinates(input.Latitude, input.Longitude) {
		return nil, domainerrors.ErrInvalidCoordinates
	}
	if _, err := authorizeStore(ctx, s.storeRepo, actor, storeID); err != nil {
		return nil, err
	}

	return &entity.Location{
		StoreID:   storeID,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Address:   strings.TrimSpace(input.Address),
	}, nil
}
