package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the user data access interface
type Repository interface {
	// Create persists a new user; returns ErrEmailAlreadyExists on a
	// duplicate email
	Create(ctx context.Context, u *User) error

	// FindByID fetches a user by id
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByEmail fetches a user by email (login path)
	FindByEmail(ctx context.Context, email string) (*User, error)
}
