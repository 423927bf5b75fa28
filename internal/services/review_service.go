package services

import (
	"context"
	"errors"
	"time"

	"github.com/dinerate/dinerate-backend/internal/models"
	"github.com/dinerate/dinerate-backend/internal/store"
	"github.com/google/uuid"
)

// Client-facing validation messages, verbatim.
var (
	ErrRestaurantIDRequired = errors.New("restaurantId is required")
	ErrReviewFieldsRequired = errors.New("restaurantId, userId and rating are required")
	ErrRatingOutOfRange     = errors.New("rating must be between 1 and 5")
)

type CreateReviewInput struct {
	RestaurantID string
	UserID       string
	UserName     string
	Rating       int
	Comment      string
}

type ReviewService struct {
	reviews store.Reviews
	now     func() time.Time
}

func NewReviewService(reviews store.Reviews) *ReviewService {
	return &ReviewService{reviews: reviews, now: time.Now}
}

// ListForRestaurant returns the restaurant's reviews newest first.
func (s *ReviewService) ListForRestaurant(ctx context.Context, restaurantID string) ([]models.Review, error) {
	if restaurantID == "" {
		return nil, ErrRestaurantIDRequired
	}
	reviews, err := s.reviews.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	return reviews, nil
}

// Create validates, stamps identity and creation time server-side, persists
// and returns the written record verbatim (no re-read).
//
// A rating of 0 fails the required-fields check just like an absent one; that
// matches what existing clients see. Ratings outside 1-5 are rejected
// separately.
func (s *ReviewService) Create(ctx context.Context, in CreateReviewInput) (*models.Review, error) {
	if in.RestaurantID == "" || in.UserID == "" || in.Rating == 0 {
		return nil, ErrReviewFieldsRequired
	}
	if in.Rating < 1 || in.Rating > 5 {
		return nil, ErrRatingOutOfRange
	}

	// Truncate to what Postgres keeps so the echoed record equals the
	// stored one.
	review := &models.Review{
		ReviewID:     uuid.NewString(),
		RestaurantID: in.RestaurantID,
		CreatedAt:    s.now().UTC().Truncate(time.Microsecond),
		UserID:       in.UserID,
		UserName:     in.UserName,
		Rating:       in.Rating,
		Comment:      in.Comment,
	}
	if err := s.reviews.Put(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}
