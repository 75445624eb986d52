package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"blog-backend/internal/domains/user"
	"blog-backend/internal/shared/validate"
	"blog-backend/pkg/jwt"
)

// ========================================
// IN-MEMORY REPOSITORY FAKE
// ========================================

type fakeUserRepo struct {
	byID    map[uuid.UUID]*user.User
	byEmail map[string]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[uuid.UUID]*user.User),
		byEmail: make(map[string]*user.User),
	}
}

func (f *fakeUserRepo) Create(_ context.Context, u *user.User) error {
	if _, exists := f.byEmail[u.Email]; exists {
		return user.ErrEmailAlreadyExists
	}
	c := *u
	f.byID[u.ID] = &c
	f.byEmail[u.Email] = &c
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	c := *u
	return &c, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*user.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	c := *u
	return &c, nil
}

func newTestService(repo user.Repository) (user.Service, *jwt.Manager) {
	manager := jwt.NewManager("test-secret", time.Hour)
	return NewUserService(repo, manager, time.Hour), manager
}

// ========================================
// REGISTER
// ========================================

func TestRegister(t *testing.T) {
	repo := newFakeUserRepo()
	svc, manager := newTestService(repo)

	resp, err := svc.Register(context.Background(), user.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	assert.Equal(t, "Alice", resp.User.Name)
	assert.Equal(t, "alice@example.com", resp.User.Email)
	assert.NotEmpty(t, resp.AccessToken)
	assert.True(t, resp.ExpiresAt.After(time.Now()))

	// The issued token resolves back to the stored user
	claims, err := manager.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID.String(), claims.UserID)

	// The password is stored hashed, never verbatim
	stored := repo.byEmail["alice@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "s3cret-pass", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret-pass")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc, _ := newTestService(repo)

	req := user.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "s3cret-pass"}

	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, user.ErrEmailAlreadyExists)
}

func TestRegisterInvalidPayload(t *testing.T) {
	svc, _ := newTestService(newFakeUserRepo())

	_, err := svc.Register(context.Background(), user.RegisterRequest{Email: "bad"})

	var vErr *validate.Error
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "name")
	assert.Contains(t, vErr.Fields, "email")
	assert.Contains(t, vErr.Fields, "password")
}

// ========================================
// LOGIN
// ========================================

func TestLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc, manager := newTestService(repo)

	_, err := svc.Register(context.Background(), user.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), user.LoginRequest{
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	assert.Equal(t, "alice@example.com", resp.User.Email)

	claims, err := manager.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID.String(), claims.UserID)
}

func TestLoginBadCredentials(t *testing.T) {
	repo := newFakeUserRepo()
	svc, _ := newTestService(repo)

	_, err := svc.Register(context.Background(), user.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	// A wrong password and an unknown email fail identically
	_, err = svc.Login(context.Background(), user.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong-pass",
	})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), user.LoginRequest{
		Email:    "nobody@example.com",
		Password: "s3cret-pass",
	})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

// ========================================
// PROFILE
// ========================================

func TestGetProfile(t *testing.T) {
	repo := newFakeUserRepo()
	svc, _ := newTestService(repo)

	resp, err := svc.Register(context.Background(), user.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	dto, err := svc.GetProfile(context.Background(), resp.User.ID)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, dto.ID)
	assert.Equal(t, "Alice", dto.Name)

	_, err = svc.GetProfile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}
