package services

import (
	"context"
	"testing"

	"github.com/dinerate/dinerate-backend/internal/models"
	"github.com/dinerate/dinerate-backend/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListAllEmptyCatalog(t *testing.T) {
	svc := NewCatalogService(store.NewMemoryRestaurants())

	restaurants, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, restaurants)
	assert.Empty(t, restaurants)
}

func TestListAllReturnsCatalog(t *testing.T) {
	restaurants := store.NewMemoryRestaurants()
	require.NoError(t, restaurants.Upsert(context.Background(), &models.Restaurant{
		RestaurantID: "r1",
		Name:         "Balat Lokantası",
		Location:     "Balat, Istanbul",
		Category:     "Turkish",
		PriceRange:   "$$",
	}))
	require.NoError(t, restaurants.Upsert(context.Background(), &models.Restaurant{
		RestaurantID: "r2",
		Name:         "Nonna Rosa",
	}))

	svc := NewCatalogService(restaurants)
	got, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestListAllStoreFailure(t *testing.T) {
	restaurants := store.NewMemoryRestaurants()
	restaurants.FailWith = store.ErrUnavailable

	svc := NewCatalogService(restaurants)
	_, err := svc.ListAll(context.Background())
	require.ErrorIs(t, err, store.ErrUnavailable)
}
