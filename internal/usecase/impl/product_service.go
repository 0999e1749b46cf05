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

// ProductServiceParams holds dependencies for the product service, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo   repository.ProductRepository
	StoreRepo     repository.StoreRepository
	ImageSearcher service.ImageSearcher
	Logger        *slog.Logger
}

type productService struct {
	productRepo   repository.ProductRepository
	storeRepo     repository.StoreRepository
	imageSearcher service.ImageSearcher
	logger        *slog.Logger
}

// NewProductService creates the product write service.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo:   params.ProductRepo,
		storeRepo:     params.StoreRepo,
		imageSearcher: params.ImageSearcher,
		logger:        params.Logger,
	}
}

// authorizeStore loads the store and checks the actor owns it.
func authorizeStore(ctx context.Context, storeRepo repository.StoreRepository, actor usecase.Actor, storeID int64) (*entity.Store, error) {
	store, err := storeRepo.FindByID(ctx, storeID)
	if err != nil {
		return nil, translate(err, "failed to find store")
	}
	if !store.OwnedBy(actor.UserID) {
		return nil, domainerrors.ErrForbidden.WrapMessage("store belongs to another user")
	}

	return store, nil
}

func (s *productService) Create(ctx context.Context, actor usecase.Actor, input usecase.CreateProductInput) (*entity.Product, error) {
	if err := requireText(map[string]string{
		"nombre_producto": input.Name,
		"descripcion":     input.Description,
	}); err != nil {
		return nil, err
	}
	if _, err := authorizeStore(ctx, s.storeRepo, actor, input.StoreID); err != nil {
		return nil, err
	}

	status := strings.TrimSpace(input.Status)
	if status == "" {
		status = entity.ProductStatusActive
	}

	product := &entity.Product{
		Name:        strings.TrimSpace(input.Name),
		Price:       input.Price,
		Description: strings.TrimSpace(input.Description),
		CategoryID:  input.CategoryID,
		StoreID:     input.StoreID,
		Status:      status,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, translate(err, "failed to create product")
	}

	requestLogger(ctx, s.logger).Info("Product created",
		slog.Int64("productID", product.ID),
		slog.Int64("storeID", product.StoreID),
	)

	return product, nil
}

func (s *productService) Update(ctx context.Context, actor usecase.Actor, productID int64, input usecase.UpdateProductInput) (*entity.Product, error) {
	if err := requireText(map[string]string{
		"nombre_producto": input.Name,
		"descripcion":     input.Description,
	}); err != nil {
		return nil, err
	}
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, translate(err, "failed to find product")
	}
	if _, err := authorizeStore(ctx, s.storeRepo, actor, product.StoreID); err != nil {
		return nil, err
	}

	product.Name = strings.TrimSpace(input.Name)
	product.Price = input.Price
	product.Description = strings.TrimSpace(input.Description)
	product.CategoryID = input.CategoryID

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, translate(err, "failed to update product")
	}

	return product, nil
}

func (s *productService) ImageURL(ctx context.Context, productID int64) (string, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return "", translate(err, "failed to find product")
	}

	imageURL, err := s.imageSearcher.SearchImage(ctx, product.Name)
	switch {
	case err == nil:
		return imageURL, nil
	case errors.Is(err, service.ErrNoImage):
		return "", domainerrors.ErrImageNotFound
	default:
		requestLogger(ctx, s.logger).Warn("Image search failed",
			slog.Int64("productID", productID),
			slog.Any("error", err),
		)

		return "", domainerrors.ErrImageSearchUnavailable.WrapMessage(err.Error())
	}
}
