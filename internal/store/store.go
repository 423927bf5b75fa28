// Package store is the thin adapter between the services and the persistent
// store. It exposes three kinds of primitives per collection — find-one by
// predicate, put, and partition query — and carries no business logic.
package store

import (
	"context"
	"errors"

	"github.com/dinerate/dinerate-backend/internal/models"
)

var (
	// ErrNotFound is returned by find-one lookups when no record matches.
	ErrNotFound = errors.New("record not found")

	// ErrUnavailable wraps any failure reaching or executing against the
	// backend. Callers surface it as a generic server error.
	ErrUnavailable = errors.New("store unavailable")
)

type Users interface {
	// FindByEmail returns the first user whose email matches, or ErrNotFound.
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Put(ctx context.Context, user *models.User) error
}

type Restaurants interface {
	// ListAll returns the full catalog in store-defined order. An empty
	// catalog is an empty slice, not an error.
	ListAll(ctx context.Context) ([]models.Restaurant, error)

	// Upsert inserts or replaces a catalog entry. Only the out-of-band
	// seeder writes restaurants; the API surface is read-only.
	Upsert(ctx context.Context, restaurant *models.Restaurant) error
}

type Reviews interface {
	// ListByRestaurant returns all reviews in one restaurant partition,
	// newest first. An empty partition is an empty slice, not an error.
	ListByRestaurant(ctx context.Context, restaurantID string) ([]models.Review, error)
	Put(ctx context.Context, review *models.Review) error
}
