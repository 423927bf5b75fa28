package models

import "time"

// User is created on first login with an unseen email and never updated.
// Email is indexed but deliberately not unique: two concurrent first logins
// with the same email can both insert (accepted race, matches the original
// read-then-write behavior).
type User struct {
	UserID    string    `gorm:"size:36;primaryKey" json:"userId"`
	Email     string    `gorm:"size:255;not null;index" json:"email"`
	Name      string    `gorm:"size:255" json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
