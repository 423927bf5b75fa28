package services

import (
	"context"
	"testing"
	"time"

	"github.com/dinerate/dinerate-backend/internal/models"
	"github.com/dinerate/dinerate-backend/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListForRestaurantRequiresID(t *testing.T) {
	svc := NewReviewService(store.NewMemoryReviews())

	_, err := svc.ListForRestaurant(context.Background(), "")
	require.ErrorIs(t, err, ErrRestaurantIDRequired)
}

func TestListForRestaurantEmpty(t *testing.T) {
	svc := NewReviewService(store.NewMemoryReviews())

	reviews, err := svc.ListForRestaurant(context.Background(), "r1")
	require.NoError(t, err)
	assert.NotNil(t, reviews)
	assert.Empty(t, reviews)
}

func TestListForRestaurantNewestFirst(t *testing.T) {
	reviews := store.NewMemoryReviews()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"rev-1", "rev-2", "rev-3"} {
		err := reviews.Put(context.Background(), &models.Review{
			ReviewID:     id,
			RestaurantID: "r1",
			CreatedAt:    base.Add(time.Duration(i) * time.Minute),
			UserID:       "u1",
			Rating:       4,
		})
		require.NoError(t, err)
	}
	// A review in another partition must not leak in.
	require.NoError(t, reviews.Put(context.Background(), &models.Review{
		ReviewID:     "rev-other",
		RestaurantID: "r2",
		CreatedAt:    base.Add(time.Hour),
		UserID:       "u1",
		Rating:       5,
	}))

	svc := NewReviewService(reviews)
	got, err := svc.ListForRestaurant(context.Background(), "r1")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "rev-3", got[0].ReviewID)
	assert.Equal(t, "rev-2", got[1].ReviewID)
	assert.Equal(t, "rev-1", got[2].ReviewID)
}

func TestCreateRequiredFields(t *testing.T) {
	svc := NewReviewService(store.NewMemoryReviews())

	cases := []CreateReviewInput{
		{UserID: "u1", Rating: 4},
		{RestaurantID: "r1", Rating: 4},
		{RestaurantID: "r1", UserID: "u1"},
		// A zero rating is indistinguishable from a missing one.
		{RestaurantID: "r1", UserID: "u1", Rating: 0},
	}
	for _, in := range cases {
		_, err := svc.Create(context.Background(), in)
		assert.ErrorIs(t, err, ErrReviewFieldsRequired)
	}
}

func TestCreateRatingRange(t *testing.T) {
	svc := NewReviewService(store.NewMemoryReviews())

	for _, rating := range []int{-1, 6, 42} {
		_, err := svc.Create(context.Background(), CreateReviewInput{
			RestaurantID: "r1", UserID: "u1", Rating: rating,
		})
		assert.ErrorIs(t, err, ErrRatingOutOfRange)
	}
}

func TestCreateEchoesPersistedRecord(t *testing.T) {
	reviews := store.NewMemoryReviews()
	svc := NewReviewService(reviews)

	created, err := svc.Create(context.Background(), CreateReviewInput{
		RestaurantID: "r1",
		UserID:       "u1",
		Rating:       4,
		Comment:      "ok",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ReviewID)
	assert.Equal(t, "", created.UserName)
	assert.Equal(t, time.UTC, created.CreatedAt.Location())

	got, err := svc.ListForRestaurant(context.Background(), "r1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, *created, got[0])
}

func TestCreateStoreFailure(t *testing.T) {
	reviews := store.NewMemoryReviews()
	reviews.FailWith = store.ErrUnavailable
	svc := NewReviewService(reviews)

	_, err := svc.Create(context.Background(), CreateReviewInput{
		RestaurantID: "r1", UserID: "u1", Rating: 4,
	})
	require.ErrorIs(t, err, store.ErrUnavailable)
}

func TestValidationHappensBeforeStoreAccess(t *testing.T) {
	reviews := store.NewMemoryReviews()
	reviews.FailWith = store.ErrUnavailable
	svc := NewReviewService(reviews)

	_, err := svc.Create(context.Background(), CreateReviewInput{})
	require.ErrorIs(t, err, ErrReviewFieldsRequired)
}
