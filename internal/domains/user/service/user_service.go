package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"blog-backend/internal/domains/user"
	"blog-backend/pkg/jwt"
)

// userService implements the user.Service interface
type userService struct {
	repo       user.Repository
	jwtManager *jwt.Manager
	expiry     time.Duration
}

// NewUserService creates the service instance
func NewUserService(repo user.Repository, jwtManager *jwt.Manager, expiry time.Duration) user.Service {
	return &userService{
		repo:       repo,
		jwtManager: jwtManager,
		expiry:     expiry,
	}
}

// ========================================
// AUTHENTICATION
// ========================================

// Register creates a new account
func (s *userService) Register(ctx context.Context, req user.RegisterRequest) (*user.AuthResponse, error) {
	// 1. VALIDATE INPUT
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// 2. HASH PASSWORD
	// bcrypt cost 12, same trade-off the rest of the stack assumes
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// 3. CREATE USER ENTITY
	now := time.Now().UTC()
	newUser := &user.User{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(passwordHash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// 4. PERSIST TO DATABASE
	// The unique index on email is the duplicate check; no read-then-write race
	if err := s.repo.Create(ctx, newUser); err != nil {
		return nil, err
	}

	// 5. ISSUE TOKEN
	return s.issueToken(newUser)
}

// Login checks credentials and issues a token
func (s *userService) Login(ctx context.Context, req user.LoginRequest) (*user.AuthResponse, error) {
	// 1. VALIDATE INPUT
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// 2. FIND USER BY EMAIL
	u, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		// Never reveal whether the email exists
		return nil, user.ErrInvalidCredentials
	}

	// 3. CHECK PASSWORD
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	// 4. ISSUE TOKEN
	return s.issueToken(u)
}

// ========================================
// PROFILE
// ========================================

func (s *userService) GetProfile(ctx context.Context, id uuid.UUID) (*user.UserDTO, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dto := u.ToDTO()
	return &dto, nil
}

// ========================================
// HELPERS
// ========================================

func (s *userService) issueToken(u *user.User) (*user.AuthResponse, error) {
	token, err := s.jwtManager.GenerateToken(u.ID.String(), u.Email)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &user.AuthResponse{
		User:        u.ToDTO(),
		AccessToken: token,
		ExpiresAt:   time.Now().UTC().Add(s.expiry),
	}, nil
}
