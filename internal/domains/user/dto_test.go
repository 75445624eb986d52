package user

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/shared/validate"
)

func fieldErrors(t *testing.T, err error) validate.FieldErrors {
	t.Helper()

	var vErr *validate.Error
	require.ErrorAs(t, err, &vErr)
	return vErr.Fields
}

func TestRegisterRequestValid(t *testing.T) {
	req := RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	}
	assert.NoError(t, req.Validate())
}

func TestRegisterRequestInvalid(t *testing.T) {
	tests := []struct {
		name      string
		req       RegisterRequest
		wantField string
	}{
		{
			name:      "missing name",
			req:       RegisterRequest{Email: "alice@example.com", Password: "s3cret-pass"},
			wantField: "name",
		},
		{
			name:      "name too short",
			req:       RegisterRequest{Name: "A", Email: "alice@example.com", Password: "s3cret-pass"},
			wantField: "name",
		},
		{
			name:      "bad email",
			req:       RegisterRequest{Name: "Alice", Email: "not-an-email", Password: "s3cret-pass"},
			wantField: "email",
		},
		{
			name:      "password too short",
			req:       RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "short"},
			wantField: "password",
		},
		{
			name:      "password too long",
			req:       RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: strings.Repeat("x", 129)},
			wantField: "password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := fieldErrors(t, tt.req.Validate())
			assert.Contains(t, fields, tt.wantField)
		})
	}
}

func TestRegisterRequestReportsAllFields(t *testing.T) {
	fields := fieldErrors(t, RegisterRequest{}.Validate())

	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
}

func TestLoginRequestValidate(t *testing.T) {
	assert.NoError(t, LoginRequest{Email: "alice@example.com", Password: "whatever"}.Validate())

	fields := fieldErrors(t, LoginRequest{}.Validate())
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
}

func TestToDTOOmitsPasswordHash(t *testing.T) {
	u := User{Name: "Alice", Email: "alice@example.com", PasswordHash: "hash"}
	dto := u.ToDTO()

	assert.Equal(t, "Alice", dto.Name)
	assert.Equal(t, "alice@example.com", dto.Email)
}
