package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/dinerate/dinerate-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormUsers struct {
	db *gorm.DB
}

func NewGormUsers(db *gorm.DB) *GormUsers {
	return &GormUsers{db: db}
}

func (s *GormUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return &user, nil
}

func (s *GormUsers) Put(ctx context.Context, user *models.User) error {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

type GormRestaurants struct {
	db *gorm.DB
}

func NewGormRestaurants(db *gorm.DB) *GormRestaurants {
	return &GormRestaurants{db: db}
}

func (s *GormRestaurants) ListAll(ctx context.Context) ([]models.Restaurant, error) {
	restaurants := []models.Restaurant{}
	if err := s.db.WithContext(ctx).Find(&restaurants).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return restaurants, nil
}

func (s *GormRestaurants) Upsert(ctx context.Context, restaurant *models.Restaurant) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(restaurant).Error
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

type GormReviews struct {
	db *gorm.DB
}

func NewGormReviews(db *gorm.DB) *GormReviews {
	return &GormReviews{db: db}
}

func (s *GormReviews) ListByRestaurant(ctx context.Context, restaurantID string) ([]models.Review, error) {
	reviews := []models.Review{}
	err := s.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return reviews, nil
}

func (s *GormReviews) Put(ctx context.Context, review *models.Review) error {
	if err := s.db.WithContext(ctx).Create(review).Error; err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
