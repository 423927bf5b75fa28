package models

import "time"

// Review is immutable once written. The composite index mirrors the
// partition/sort key pair of the source schema: reviews are always read per
// restaurant, newest first.
type Review struct {
	ReviewID     string    `gorm:"size:36;primaryKey" json:"reviewId"`
	RestaurantID string    `gorm:"size:36;not null;index:idx_reviews_restaurant_created,priority:1" json:"restaurantId"`
	CreatedAt    time.Time `gorm:"not null;index:idx_reviews_restaurant_created,priority:2,sort:desc" json:"createdAt"`
	UserID       string    `gorm:"size:36;not null" json:"userId"`
	UserName     string    `gorm:"size:255" json:"userName"`
	Rating       int       `gorm:"not null" json:"rating"`
	Comment      string    `gorm:"type:text" json:"comment"`
}
