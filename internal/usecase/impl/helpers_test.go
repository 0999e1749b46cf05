package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"ubishop/internal/domain/entity"
	"ubishop/internal/infra/persistence/memory"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// seedData is a small catalogue backed by the in-memory repositories.
type seedData struct {
	db *memory.DB

	owner    *entity.User
	customer *entity.User
	store    *entity.Store
	planID   int64
	foodID   int64
	drinkID  int64
}

func newSeedData(t *testing.T) *seedData {
	t.Helper()

	ctx := context.Background()
	db := memory.New()
	s := &seedData{db: db}

	s.foodID = db.AddCategory(entity.Category{Name: "Comida", Description: "Platos"})
	s.drinkID = db.AddCategory(entity.Category{Name: "Bebidas", Description: "Jugos"})
	s.planID = db.AddPlan(entity.Plan{Period: "mensual", Cost: 29.9})

	users := memory.NewUserRepository(db)
	s.owner = &entity.User{Name: "Rosa", Secret: "clave", Email: "rosa@example.com", RoleID: entity.RoleIDStoreOwner}
	require.NoError(t, users.Create(ctx, s.owner))
	s.customer = &entity.User{Name: "Luis", Secret: "1234", Email: "luis@example.com", RoleID: entity.RoleIDCustomer}
	require.NoError(t, users.Create(ctx, s.customer))

	s.store = &entity.Store{Name: "Bodega Rosa", UserID: s.owner.ID, PlanID: s.planID}
	require.NoError(t, memory.NewStoreRepository(db).Create(ctx, s.store))

	return s
}

func (s *seedData) addProduct(t *testing.T, name string, price float64, categoryID, storeID int64, status string) *entity.Product {
	t.Helper()

	p := &entity.Product{Name: name, Price: price, CategoryID: categoryID, StoreID: storeID, Status: status}
	require.NoError(t, memory.NewProductRepository(s.db).Create(context.Background(), p))

	return p
}

func (s *seedData) addStoreAt(t *testing.T, owner *entity.User, lat, lng float64) *entity.Store {
	t.Helper()

	ctx := context.Background()
	store := &entity.Store{Name: owner.Name + " store", UserID: owner.ID, PlanID: s.planID}
	require.NoError(t, memory.NewStoreRepository(s.db).Create(ctx, store))
	require.NoError(t, memory.NewLocationRepository(s.db).Create(ctx, &entity.Location{
		StoreID:   store.ID,
		Latitude:  lat,
		Longitude: lng,
	}))

	return store
}

func (s *seedData) catalog() *catalogService {
	return NewCatalogService(CatalogServiceParams{
		ProductRepo:  memory.NewProductRepository(s.db),
		CategoryRepo: memory.NewCategoryRepository(s.db),
		LocationRepo: memory.NewLocationRepository(s.db),
		ReviewRepo:   memory.NewReviewRepository(s.db),
		UserRepo:     memory.NewUserRepository(s.db),
		StoreRepo:    memory.NewStoreRepository(s.db),
		PlanRepo:     memory.NewPlanRepository(s.db),
		Logger:       newDiscardLogger(),
	}).(*catalogService)
}
