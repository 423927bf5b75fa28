package services

import (
	"context"
	"errors"
	"time"

	"github.com/dinerate/dinerate-backend/internal/config"
	"github.com/dinerate/dinerate-backend/internal/models"
	"github.com/dinerate/dinerate-backend/internal/store"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrEmailRequired carries the exact client-facing message.
var ErrEmailRequired = errors.New("Email is required")

type UserService struct {
	users store.Users
	cfg   *config.Config
	now   func() time.Time
}

func NewUserService(users store.Users, cfg *config.Config) *UserService {
	return &UserService{users: users, cfg: cfg, now: time.Now}
}

// LoginOrCreate resolves an email to a user, creating one on first sight.
// The returned bool is true when a new record was persisted. For existing
// users the name argument is ignored; names are never updated.
func (s *UserService) LoginOrCreate(ctx context.Context, email, name string) (*models.User, bool, error) {
	if email == "" {
		return nil, false, ErrEmailRequired
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, false, err
	}

	user := &models.User{
		UserID:    uuid.NewString(),
		Email:     email,
		Name:      name,
		CreatedAt: s.now().UTC().Truncate(time.Microsecond),
	}
	if err := s.users.Put(ctx, user); err != nil {
		return nil, false, err
	}
	return user, true, nil
}

// IssueSessionToken signs a session token for the given user. Returns an
// empty string when no signing secret is configured.
func (s *UserService) IssueSessionToken(user *models.User) (string, error) {
	if s.cfg.JWTSecret == "" {
		return "", nil
	}

	claims := jwt.MapClaims{
		"sub":   user.UserID,
		"email": user.Email,
		"iat":   s.now().Unix(),
		"exp":   s.now().Add(s.cfg.SessionExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
