package user

import (
	"context"

	"github.com/google/uuid"
)

// Service is the user business logic interface
type Service interface {
	// Register creates a new account and issues an access token
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)

	// Login checks credentials and issues an access token
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)

	// GetProfile returns the public profile of a user
	GetProfile(ctx context.Context, id uuid.UUID) (*UserDTO, error)
}
