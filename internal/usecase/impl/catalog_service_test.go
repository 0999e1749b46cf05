package impl

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ubishop/internal/domain/entity"
	domainerrors "ubishop/internal/domain/errors"
	"ubishop/internal/infra/persistence/memory"
	mockRepo "ubishop/internal/mocks/repository"
	"ubishop/internal/usecase"
)

func TestCatalogService_ListProductsByCategory(t *testing.T) {
	seed := newSeedData(t)
	seed.addProduct(t, "Ceviche", 25, seed.foodID, seed.store.ID, "activo")
	seed.addProduct(t, "Chicha", 6, seed.drinkID, seed.store.ID, "activo")
	seed.addProduct(t, "Sin categoría", 1, 999, seed.store.ID, "activo")
	svc := seed.catalog()
	ctx := context.Background()

	t.Run("single category", func(t *testing.T) {
		filter, err := usecase.ParseCategoryFilter("1")
		require.NoError(t, err)

		products, err := svc.ListProductsByCategory(ctx, filter)

		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Ceviche", products[0].Name)
		assert.Equal(t, "Comida", products[0].Category.Name)
	})

	for _, raw := range []string{"null", "Todos", ""} {
		t.Run("all via "+raw, func(t *testing.T) {
			filter, err := usecase.ParseCategoryFilter(raw)
			require.NoError(t, err)

			products, err := svc.ListProductsByCategory(ctx, filter)

			require.NoError(t, err)
			// the product with a dangling category is not enriched, so it is dropped
			require.Len(t, products, 2)
			assert.Equal(t, "Ceviche", products[0].Name)
			assert.Equal(t, "Chicha", products[1].Name)
		})
	}

	t.Run("unknown category", func(t *testing.T) {
		products, err := svc.ListProductsByCategory(ctx, usecase.CategoryFilter{ID: 42})

		require.NoError(t, err)
		assert.Empty(t, products)
	})
}

func TestParseCategoryFilter_Invalid(t *testing.T) {
	for _, raw := range []string{"abc", "-1", "0"} {
		_, err := usecase.ParseCategoryFilter(raw)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidID, raw)
	}
}

func TestCatalogService_ListProductsWithLocation(t *testing.T) {
	seed := newSeedData(t)
	other := &entity.User{Name: "Mario", Email: "mario@example.com", RoleID: entity.RoleIDStoreOwner}
	require.NoError(t, memory.NewUserRepository(seed.db).Create(context.Background(), other))
	located := seed.addStoreAt(t, other, -12.0464, -77.0428)

	seed.addProduct(t, "Sin ubicación", 10, seed.foodID, seed.store.ID, "activo")
	seed.addProduct(t, "Lomo", 30, seed.foodID, located.ID, "activo")

	products, err := seed.catalog().ListProductsWithLocation(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Lomo", products[0].Name)
	assert.InDelta(t, -12.0464, products[0].Location.Latitude, 1e-9)
}

func TestCatalogService_ListReviewsByProduct(t *testing.T) {
	seed := newSeedData(t)
	product := seed.addProduct(t, "Ceviche", 25, seed.foodID, seed.store.ID, "activo")
	reviews := memory.NewReviewRepository(seed.db)
	ctx := context.Background()

	require.NoError(t, reviews.Create(ctx, &entity.Review{UserID: seed.customer.ID, ProductID: product.ID, Rating: 5}))
	require.NoError(t, reviews.Create(ctx, &entity.Review{UserID: 999, ProductID: product.ID, Rating: 2}))

	svc := seed.catalog()

	t.Run("left join keeps reviews of missing users", func(t *testing.T) {
		joined, err := svc.ListReviewsByProduct(ctx, product.ID)

		require.NoError(t, err)
		require.Len(t, joined, 2)
		require.NotNil(t, joined[0].AuthorName)
		assert.Equal(t, "Luis", *joined[0].AuthorName)
		assert.Nil(t, joined[1].AuthorName)
	})

	t.Run("product without reviews", func(t *testing.T) {
		joined, err := svc.ListReviewsByProduct(ctx, 12345)

		require.NoError(t, err)
		assert.NotNil(t, joined)
		assert.Empty(t, joined)
	})
}

func TestCatalogService_GetStoreWithPlan(t *testing.T) {
	seed := newSeedData(t)
	svc := seed.catalog()
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		sp, err := svc.GetStoreWithPlan(ctx, seed.owner.ID)

		require.NoError(t, err)
		assert.Equal(t, seed.store.ID, sp.ID)
		assert.Equal(t, "mensual", sp.Plan.Period)
	})

	t.Run("user without store", func(t *testing.T) {
		_, err := svc.GetStoreWithPlan(ctx, seed.customer.ID)

		assert.ErrorIs(t, err, domainerrors.ErrStorePlanNotFound)
	})

	t.Run("store with missing plan", func(t *testing.T) {
		orphan := &entity.User{Name: "Eva", Email: "eva@example.com", RoleID: entity.RoleIDStoreOwner}
		require.NoError(t, memory.NewUserRepository(seed.db).Create(ctx, orphan))
		require.NoError(t, memory.NewStoreRepository(seed.db).Create(ctx, &entity.Store{Name: "Sin plan", UserID: orphan.ID, PlanID: 77}))

		_, err := svc.GetStoreWithPlan(ctx, orphan.ID)

		assert.ErrorIs(t, err, domainerrors.ErrStorePlanNotFound)
	})
}

func TestCatalogService_ListStoresWithLocation(t *testing.T) {
	seed := newSeedData(t)
	other := &entity.User{Name: "Mario", Email: "mario@example.com", RoleID: entity.RoleIDStoreOwner}
	require.NoError(t, memory.NewUserRepository(seed.db).Create(context.Background(), other))
	located := seed.addStoreAt(t, other, -12.05, -77.04)

	stores, err := seed.catalog().ListStoresWithLocation(context.Background())

	require.NoError(t, err)
	require.Len(t, stores, 1)
	assert.Equal(t, located.ID, stores[0].ID)
}

func TestCatalogService_ListProducts_RepositoryError(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	svc := NewCatalogService(CatalogServiceParams{ProductRepo: productRepo, Logger: newDiscardLogger()})
	ctx := context.Background()
	dbErr := errors.New("connection reset")

	productRepo.EXPECT().List(ctx).Return(nil, dbErr)

	_, err := svc.ListProducts(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
}

func TestCatalogService_CategoryRepositoryError(t *testing.T) {
	dbErr := errors.New("relation categorias does not exist")

	t.Run("listing categories", func(t *testing.T) {
		categoryRepo := mockRepo.NewMockCategoryRepository(t)
		svc := NewCatalogService(CatalogServiceParams{CategoryRepo: categoryRepo, Logger: newDiscardLogger()})
		ctx := context.Background()

		categoryRepo.EXPECT().List(ctx).Return(nil, dbErr)

		_, err := svc.ListCategories(ctx)

		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("category join", func(t *testing.T) {
		productRepo := mockRepo.NewMockProductRepository(t)
		categoryRepo := mockRepo.NewMockCategoryRepository(t)
		svc := NewCatalogService(CatalogServiceParams{
			ProductRepo:  productRepo,
			CategoryRepo: categoryRepo,
			Logger:       newDiscardLogger(),
		})

		productRepo.EXPECT().List(mock.Anything).Return([]*entity.Product{{ID: 1, CategoryID: 1}}, nil).Maybe()
		categoryRepo.EXPECT().List(mock.Anything).Return(nil, dbErr)

		products, err := svc.ListProductsByCategory(context.Background(), usecase.CategoryFilter{All: true})

		require.Error(t, err)
		assert.ErrorIs(t, err, dbErr)
		assert.Contains(t, err.Error(), "failed to list categories")
		assert.Nil(t, products)
	})
}
