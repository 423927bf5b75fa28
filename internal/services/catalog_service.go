package services

import (
	"context"

	"github.com/dinerate/dinerate-backend/internal/models"
	"github.com/dinerate/dinerate-backend/internal/store"
)

type CatalogService struct {
	restaurants store.Restaurants
}

func NewCatalogService(restaurants store.Restaurants) *CatalogService {
	return &CatalogService{restaurants: restaurants}
}

// ListAll returns the full catalog in store-defined order. The application
// never sorts it.
func (s *CatalogService) ListAll(ctx context.Context) ([]models.Restaurant, error) {
	restaurants, err := s.restaurants.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if restaurants == nil {
		restaurants = []models.Restaurant{}
	}
	return restaurants, nil
}
