package user

import (
	"context"
	"errors"

	"github.com/thirteen-hero/myCats-server/internal/user/entity"
)

// Repository provides data access for the users collection. The mongo
// implementation lives in internal/user/repo; tests use an in-memory fake.
type Repository interface {
	// FindByUsername returns ErrUserNotFound when no document matches.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	// FindByID returns ErrUserNotFound for unknown or malformed ids.
	FindByID(ctx context.Context, id string) (*entity.User, error)
	// Create persists a new user and fills in the store-assigned id. A unique
	// index collision on username surfaces as ErrDuplicateUsername.
	Create(ctx context.Context, u *entity.User) error
}

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateUsername = errors.New("username already taken")
	ErrBadCredentials    = errors.New("invalid username or password")
	ErrMissingHeader     = errors.New("authorization header required")
	ErrMissingToken      = errors.New("bearer token required")
)

// ValidationError carries the accumulated field->message map from register
// input validation.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "user input validation failed" }
