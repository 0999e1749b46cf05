package impl

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ubishop/config"
	"ubishop/internal/domain/entity"
	domainerrors "ubishop/internal/domain/errors"
	"ubishop/internal/infra/persistence/memory"
	"ubishop/internal/usecase"
)

const (
	originLat = -12.0464
	originLng = -77.0428
)

func newTestDiscoveryService(db *memory.DB) usecase.DiscoveryUsecase {
	return NewDiscoveryService(DiscoveryServiceParams{
		ProductRepo:  memory.NewProductRepository(db),
		LocationRepo: memory.NewLocationRepository(db),
		Config:       &config.Config{Discovery: &config.DiscoveryConfig{RadiusKm: 5, MaxRadiusKm: 20}},
		Logger:       newDiscardLogger(),
	})
}

// discoverySeed places three stores: at the origin, about 1.1 km north and
// about 11 km north.
func discoverySeed(t *testing.T) *seedData {
	t.Helper()

	seed := newSeedData(t)
	ctx := context.Background()
	users := memory.NewUserRepository(seed.db)
	owners := make([]*entity.User, 3)
	for i, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		owners[i] = &entity.User{Name: email, Email: email, RoleID: entity.RoleIDStoreOwner}
		require.NoError(t, users.Create(ctx, owners[i]))
	}

	here := seed.addStoreAt(t, owners[0], originLat, originLng)
	near := seed.addStoreAt(t, owners[1], originLat+0.01, originLng)
	far := seed.addStoreAt(t, owners[2], originLat+0.1, originLng)

	seed.addProduct(t, "Ceviche clásico", 30, seed.foodID, here.ID, "activo")
	seed.addProduct(t, "Chicha morada", 5, seed.drinkID, near.ID, "activo")
	seed.addProduct(t, "Ceviche mixto", 20, seed.foodID, near.ID, "activo")
	seed.addProduct(t, "Ceviche lejano", 10, seed.foodID, far.ID, "activo")
	seed.addProduct(t, "Ceviche agotado", 1, seed.foodID, here.ID, "inactivo")
	// the seed store has no location, so this product never shows up
	seed.addProduct(t, "Ceviche sin tienda", 2, seed.foodID, seed.store.ID, "activo")

	return seed
}

func names(out *usecase.NearbyOutput) []string {
	list := make([]string, 0, len(out.Items))
	for _, item := range out.Items {
		list = append(list, item.Product.Name)
	}

	return list
}

func TestDiscoveryService_Nearby(t *testing.T) {
	seed := discoverySeed(t)
	svc := newTestDiscoveryService(seed.db)
	ctx := context.Background()
	lat, lng := originLat, originLng

	t.Run("search within default radius ordered by price", func(t *testing.T) {
		out, err := svc.Nearby(ctx, usecase.NearbyInput{
			Latitude:  &lat,
			Longitude: &lng,
			Search:    "CEVICHE",
			Order:     "asc",
			Category:  usecase.AllCategories,
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"Ceviche mixto", "Ceviche clásico"}, names(out))
		assert.InDelta(t, 5.0, out.RadiusKm, 1e-9)

		require.NotNil(t, out.Items[0].DistanceKm)
		assert.InDelta(t, 1.11, *out.Items[0].DistanceKm, 0.01)
		require.NotNil(t, out.Items[1].DistanceKm)
		assert.InDelta(t, 0, *out.Items[1].DistanceKm, 1e-9)

		require.NotNil(t, out.Bounds)
		assert.InDelta(t, originLat, out.Bounds.Min.Lat(), 1e-9)
		assert.InDelta(t, originLat+0.01, out.Bounds.Max.Lat(), 1e-9)
	})

	t.Run("maps url", func(t *testing.T) {
		out, err := svc.Nearby(ctx, usecase.NearbyInput{Latitude: &lat, Longitude: &lng, Search: "chicha", Category: usecase.AllCategories})
		require.NoError(t, err)
		require.Len(t, out.Items, 1)

		u, err := url.Parse(out.Items[0].MapsURL)
		require.NoError(t, err)
		assert.Equal(t, "www.google.com", u.Host)
		assert.Equal(t, "/maps/dir/", u.Path)
		assert.Equal(t, "-12.0464,-77.0428", u.Query().Get("origin"))
		assert.Equal(t, "driving", u.Query().Get("travelmode"))
	})

	t.Run("wider radius and descending order", func(t *testing.T) {
		radius := 15.0
		out, err := svc.Nearby(ctx, usecase.NearbyInput{
			Latitude:  &lat,
			Longitude: &lng,
			RadiusKm:  &radius,
			Search:    "ceviche",
			Order:     "descending",
			Category:  usecase.AllCategories,
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"Ceviche clásico", "Ceviche mixto", "Ceviche lejano"}, names(out))
	})

	t.Run("category filter", func(t *testing.T) {
		out, err := svc.Nearby(ctx, usecase.NearbyInput{
			Latitude:  &lat,
			Longitude: &lng,
			Category:  usecase.CategoryFilter{ID: seed.drinkID},
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"Chicha morada"}, names(out))
	})

	t.Run("without origin every active located product is listed", func(t *testing.T) {
		out, err := svc.Nearby(ctx, usecase.NearbyInput{Category: usecase.AllCategories})

		require.NoError(t, err)
		assert.Equal(t, []string{"Ceviche clásico", "Chicha morada", "Ceviche mixto", "Ceviche lejano"}, names(out))
		for _, item := range out.Items {
			assert.Nil(t, item.DistanceKm)
			assert.Empty(t, item.MapsURL)
		}
		assert.Nil(t, out.Origin)
	})

	t.Run("no match", func(t *testing.T) {
		out, err := svc.Nearby(ctx, usecase.NearbyInput{Search: "pizza", Category: usecase.AllCategories})

		require.NoError(t, err)
		assert.NotNil(t, out.Items)
		assert.Empty(t, out.Items)
		assert.Nil(t, out.Bounds)
	})
}

func TestDiscoveryService_Nearby_InvalidInput(t *testing.T) {
	svc := newTestDiscoveryService(memory.New())
	ctx := context.Background()
	lat, lng, badLat := originLat, originLng, 95.0
	tooFar, zero := 50.0, 0.0

	tests := []struct {
		name    string
		input   usecase.NearbyInput
		wantErr error
	}{
		{name: "latitude without longitude", input: usecase.NearbyInput{Latitude: &lat}, wantErr: domainerrors.ErrInvalidCoordinates},
		{name: "latitude out of range", input: usecase.NearbyInput{Latitude: &badLat, Longitude: &lng}, wantErr: domainerrors.ErrInvalidCoordinates},
		{name: "radius above max", input: usecase.NearbyInput{RadiusKm: &tooFar}, wantErr: domainerrors.ErrValidationFailed},
		{name: "zero radius", input: usecase.NearbyInput{RadiusKm: &zero}, wantErr: domainerrors.ErrValidationFailed},
		{name: "unknown order", input: usecase.NearbyInput{Order: "random"}, wantErr: domainerrors.ErrInvalidSortOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Nearby(ctx, tt.input)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
