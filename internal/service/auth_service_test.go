package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	config "socialpulse/configs"
	"socialpulse/internal/models"
	"socialpulse/pkg/utils"
)

func newAuthService(users *fakeUserRepo) AuthService {
	return NewAuthService(config.Config{JWTSecret: "test-secret"}, users)
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name     string
		username string
		email    string
		password string
		wantErr  error
	}{
		{"missing fields", "", "a@b.com", "password1", ErrMissingFields},
		{"username too short", "ab", "a@b.com", "password1", ErrInvalidUsername},
		{"username bad chars", "al ice!", "a@b.com", "password1", ErrInvalidUsername},
		{"bad email", "alice", "not-an-email", "password1", ErrInvalidEmail},
		{"short password", "alice", "a@b.com", "short", ErrWeakPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newAuthService(&fakeUserRepo{})
			_, _, err := svc.Register(context.Background(), tt.username, tt.email, tt.password)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRegisterDuplicates(t *testing.T) {
	users := &fakeUserRepo{users: []*models.User{
		{ID: 1, Username: "alice", Email: "alice@example.com"},
	}}
	svc := newAuthService(users)

	_, _, err := svc.Register(context.Background(), "alice", "new@example.com", "password1")
	assert.ErrorIs(t, err, ErrDuplicateUsername)

	_, _, err = svc.Register(context.Background(), "newname", "alice@example.com", "password1")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestRegisterSuccess(t *testing.T) {
	users := &fakeUserRepo{}
	svc := newAuthService(users)

	token, user, err := svc.Register(context.Background(), "alice", "alice@example.com", "password1")
	require.NoError(t, err)
	require.NotNil(t, user)

	assert.NotEmpty(t, token)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "alice", user.Username)

	require.NotNil(t, users.created)
	assert.NotEqual(t, "password1", users.created.PasswordHash)
	assert.True(t, utils.CheckPassword(users.created.PasswordHash, "password1"))

	claims, err := utils.ValidateToken("test-secret", token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.UserID)
}

func TestLoginSuccess(t *testing.T) {
	hash, err := utils.HashPassword("password1")
	require.NoError(t, err)

	users := &fakeUserRepo{users: []*models.User{
		{ID: 5, Username: "alice", Email: "alice@example.com", PasswordHash: hash},
	}}
	svc := newAuthService(users)

	token, user, err := svc.Login(context.Background(), "alice@example.com", "password1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, int64(5), user.ID)
}

func TestLoginInvalidCredentials(t *testing.T) {
	hash, err := utils.HashPassword("password1")
	require.NoError(t, err)

	users := &fakeUserRepo{users: []*models.User{
		{ID: 5, Username: "alice", Email: "alice@example.com", PasswordHash: hash},
	}}
	svc := newAuthService(users)

	_, _, err = svc.Login(context.Background(), "alice@example.com", "wrongpass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(context.Background(), "nobody@example.com", "password1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidUsername(t *testing.T) {
	assert.True(t, ValidUsername("alice_01"))
	assert.True(t, ValidUsername("a-b-c"))
	assert.False(t, ValidUsername("ab"))
	assert.False(t, ValidUsername("has space"))
	assert.False(t, ValidUsername("emoji😀name"))
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("alice@example.com"))
	assert.False(t, ValidEmail("not-an-email"))
	assert.False(t, ValidEmail("Alice <alice@example.com>"))
}
