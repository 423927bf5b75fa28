package store

import (
	"context"
	"sort"
	"sync"

	"github.com/dinerate/dinerate-backend/internal/models"
)

// In-memory collections, used in tests and for running the server without a
// database. Each type mirrors one store interface; setting FailWith makes
// every operation return that error.

type MemoryUsers struct {
	mu       sync.RWMutex
	users    []models.User
	FailWith error
}

func NewMemoryUsers() *MemoryUsers {
	return &MemoryUsers{}
}

func (m *MemoryUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryUsers) Put(_ context.Context, user *models.User) error {
	if m.FailWith != nil {
		return m.FailWith
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users = append(m.users, *user)
	return nil
}

type MemoryRestaurants struct {
	mu          sync.RWMutex
	restaurants map[string]models.Restaurant
	FailWith    error
}

func NewMemoryRestaurants() *MemoryRestaurants {
	return &MemoryRestaurants{restaurants: make(map[string]models.Restaurant)}
}

func (m *MemoryRestaurants) ListAll(_ context.Context) ([]models.Restaurant, error) {
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Restaurant, 0, len(m.restaurants))
	for _, r := range m.restaurants {
		out = append(out, r)
	}
	return out, nil
}

func (m *MemoryRestaurants) Upsert(_ context.Context, restaurant *models.Restaurant) error {
	if m.FailWith != nil {
		return m.FailWith
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.restaurants[restaurant.RestaurantID] = *restaurant
	return nil
}

type MemoryReviews struct {
	mu       sync.RWMutex
	reviews  []models.Review
	FailWith error
}

func NewMemoryReviews() *MemoryReviews {
	return &MemoryReviews{}
}

func (m *MemoryReviews) ListByRestaurant(_ context.Context, restaurantID string) ([]models.Review, error) {
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []models.Review{}
	for _, r := range m.reviews {
		if r.RestaurantID == restaurantID {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *MemoryReviews) Put(_ context.Context, review *models.Review) error {
	if m.FailWith != nil {
		return m.FailWith
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reviews = append(m.reviews, *review)
	return nil
}
