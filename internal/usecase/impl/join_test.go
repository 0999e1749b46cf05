package impl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ubishop/internal/domain/entity"
)

func TestIndexFirst_LowestIDWins(t *testing.T) {
	locations := []*entity.Location{
		{StoreID: 1, Address: "first"},
		{StoreID: 2, Address: "other"},
		{StoreID: 1, Address: "second"},
	}

	idx := indexFirst(locations, func(l *entity.Location) int64 { return l.StoreID })

	require.Len(t, idx, 2)
	assert.Equal(t, "first", idx[1].Address)
}

func TestJoinProductsWithCategory(t *testing.T) {
	products := []*entity.Product{
		{ID: 1, Name: "Ceviche", CategoryID: 10},
		{ID: 2, Name: "Huérfano", CategoryID: 99},
		{ID: 3, Name: "Chicha", CategoryID: 20},
	}
	categories := []*entity.Category{
		{ID: 10, Name: "Comida"},
		{ID: 20, Name: "Bebidas"},
	}

	joined := joinProductsWithCategory(products, categories)

	require.Len(t, joined, 2)
	assert.Equal(t, "Ceviche", joined[0].Name)
	assert.Equal(t, "Comida", joined[0].Category.Name)
	assert.Equal(t, "Chicha", joined[1].Name)
	assert.Equal(t, "Bebidas", joined[1].Category.Name)
}

func TestJoinProductsWithLocation_DropsProductsWithoutLocation(t *testing.T) {
	products := []*entity.Product{
		{ID: 1, StoreID: 5},
		{ID: 2, StoreID: 6},
	}
	locations := []*entity.Location{{StoreID: 5, Latitude: -12.04, Longitude: -77.03}}

	joined := joinProductsWithLocation(products, locations)

	require.Len(t, joined, 1)
	assert.Equal(t, int64(1), joined[0].ID)
	assert.InDelta(t, -12.04, joined[0].Location.Latitude, 1e-9)
}

func TestJoinReviewsWithAuthor_KeepsOrphans(t *testing.T) {
	reviews := []*entity.Review{
		{ID: 1, UserID: 7, Rating: 5},
		{ID: 2, UserID: 8, Rating: 3},
	}
	users := []*entity.User{{ID: 7, Name: "Ana"}}

	joined := joinReviewsWithAuthor(reviews, users)

	require.Len(t, joined, 2)
	require.NotNil(t, joined[0].AuthorName)
	assert.Equal(t, "Ana", *joined[0].AuthorName)
	assert.Nil(t, joined[1].AuthorName)
}

func TestJoinStoresWithLocation(t *testing.T) {
	stores := []*entity.Store{{ID: 1}, {ID: 2}, {ID: 3}}
	locations := []*entity.Location{{StoreID: 3}, {StoreID: 1}}

	joined := joinStoresWithLocation(stores, locations)

	require.Len(t, joined, 2)
	assert.Equal(t, int64(1), joined[0].ID)
	assert.Equal(t, int64(3), joined[1].ID)
}

func TestDistinctUserIDs(t *testing.T) {
	reviews := []*entity.Review{{UserID: 3}, {UserID: 1}, {UserID: 3}, {UserID: 2}}

	assert.Equal(t, []int64{3, 1, 2}, distinctUserIDs(reviews))
	assert.Empty(t, distinctUserIDs(nil))
}
