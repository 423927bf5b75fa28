package dto

type LoginRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type UserResponse struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

type CreateReviewRequest struct {
	RestaurantID string `json:"restaurantId"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
	UserID       string `json:"userId"`
	UserName     string `json:"userName"`
}

// ErrorResponse is the wire shape for every failure: a single error string.
type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
