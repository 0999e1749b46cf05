package impl

import (
	"context"
	"log/slog"

	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"

	"ubishop/internal/domain/entity"
	domainerrors "ubishop/internal/domain/errors"
	"ubishop/internal/domain/repository"
	"ubishop/internal/errors"
	"ubishop/internal/usecase"
)

// CatalogServiceParams holds dependencies for the catalog service, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	LocationRepo repository.LocationRepository
	ReviewRepo   repository.ReviewRepository
	UserRepo     repository.UserRepository
	StoreRepo    repository.StoreRepository
	PlanRepo     repository.PlanRepository
	Logger       *slog.Logger
}

type catalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	locationRepo repository.LocationRepository
	reviewRepo   repository.ReviewRepository
	userRepo     repository.UserRepository
	storeRepo    repository.StoreRepository
	planRepo     repository.PlanRepository
	logger       *slog.Logger
}

// NewCatalogService creates the read-side join service.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo:  params.ProductRepo,
		categoryRepo: params.CategoryRepo,
		locationRepo: params.LocationRepo,
		reviewRepo:   params.ReviewRepo,
		userRepo:     params.UserRepo,
		storeRepo:    params.StoreRepo,
		planRepo:     params.PlanRepo,
		logger:       params.Logger,
	}
}

func (s *catalogService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

func (s *catalogService) ListProductsByCategory(ctx context.Context, filter usecase.CategoryFilter) ([]*entity.ProductWithCategory, error) {
	var (
		products   []*entity.Product
		categories []*entity.Category
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if filter.All {
			products, err = s.productRepo.List(gctx)
		} else {
			products, err = s.productRepo.ListByCategory(gctx, filter.ID)
		}

		return errors.Wrap(err, "failed to list products")
	})
	g.Go(func() error {
		var err error
		categories, err = s.categoryRepo.List(gctx)

		return errors.Wrap(err, "failed to list categories")
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return joinProductsWithCategory(products, categories), nil
}

func (s *catalogService) ListProductsWithLocation(ctx context.Context) ([]*entity.ProductWithLocation, error) {
	products, locations, err := fetchProductsAndLocations(ctx, s.productRepo, s.locationRepo)
	if err != nil {
		return nil, err
	}

	joined := joinProductsWithLocation(products, locations)
	if dropped := len(products) - len(joined); dropped > 0 {
		requestLogger(ctx, s.logger).Debug("Products without store location skipped", slog.Int("count", dropped))
	}

	return joined, nil
}

// fetchProductsAndLocations loads both collections concurrently.
func fetchProductsAndLocations(
	ctx context.Context,
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
) ([]*entity.Product, []*entity.Location, error) {
	var (
		products  []*entity.Product
		locations []*entity.Location
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = productRepo.List(gctx)

		return errors.Wrap(err, "failed to list products")
	})
	g.Go(func() error {
		var err error
		locations, err = locationRepo.List(gctx)

		return errors.Wrap(err, "failed to list locations")
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return products, locations, nil
}

func (s *catalogService) ListReviewsByProduct(ctx context.Context, productID int64) ([]*entity.ReviewWithAuthor, error) {
	reviews, err := s.reviewRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews by product")
	}
	if len(reviews) == 0 {
		return []*entity.ReviewWithAuthor{}, nil
	}

	users, err := s.userRepo.FindByIDs(ctx, distinctUserIDs(reviews))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find review authors")
	}

	return joinReviewsWithAuthor(reviews, users), nil
}

// GetStoreWithPlan is an inner join: a missing store or plan is NotFound.
func (s *catalogService) GetStoreWithPlan(ctx context.Context, userID int64) (*entity.StoreWithPlan, error) {
	store, err := s.storeRepo.FindByOwner(ctx, userID)
	if errors.Is(err, repository.ErrStoreNotFound) {
		return nil, domainerrors.ErrStorePlanNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find store by owner")
	}

	plan, err := s.planRepo.FindByID(ctx, store.PlanID)
	if errors.Is(err, repository.ErrPlanNotFound) {
		requestLogger(ctx, s.logger).Warn("Store references a missing plan",
			slog.Int64("storeID", store.ID),
			slog.Int64("planID", store.PlanID),
		)

		return nil, domainerrors.ErrStorePlanNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find plan")
	}

	return &entity.StoreWithPlan{Store: *store, Plan: *plan}, nil
}

func (s *catalogService) ListStoresWithLocation(ctx context.Context) ([]*entity.StoreWithLocation, error) {
	var (
		stores    []*entity.Store
		locations []*entity.Location
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stores, err = s.storeRepo.List(gctx)

		return errors.Wrap(err, "failed to list stores")
	})
	g.Go(func() error {
		var err error
		locations, err = s.locationRepo.List(gctx)

		return errors.Wrap(err, "failed to list locations")
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return joinStoresWithLocation(stores, locations), nil
}

func (s *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := s.categoryRepo.List(ctx)

	return categories, errors.Wrap(err, "failed to list categories")
}

func (s *catalogService) ListPlans(ctx context.Context) ([]*entity.Plan, error) {
	plans, err := s.planRepo.List(ctx)

	return plans, errors.Wrap(err, "failed to list plans")
}

func (s *catalogService) ListLocations(ctx context.Context) ([]*entity.Location, error) {
	locations, err := s.locationRepo.List(ctx)

	return locations, errors.Wrap(err, "failed to list locations")
}
