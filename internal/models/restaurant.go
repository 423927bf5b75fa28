package models

// Restaurant is read-only from the API's perspective; the catalog is loaded
// out-of-band by cmd/seed.
type Restaurant struct {
	RestaurantID string `gorm:"size:36;primaryKey" json:"restaurantId"`
	Name         string `gorm:"size:255;not null" json:"name"`
	Location     string `gorm:"size:255" json:"location"`
	Category     string `gorm:"size:100" json:"category"`
	PriceRange   string `gorm:"size:20" json:"priceRange"`
	ImageURL     string `gorm:"size:512" json:"imageUrl"`
}
