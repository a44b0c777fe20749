package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitgym/backend/internal/models"
	"github.com/fitgym/backend/pkg/tokens"
)

func TestUserService_Register(t *testing.T) {
	svc, ev := newUserService(t)
	ctx := context.Background()

	u, err := svc.Register(ctx, " Ana@Example.com ", "Ana", "Secret123")
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", u.ID)
	assert.Equal(t, "ana@example.com", u.Email)
	assert.Equal(t, models.RoleUser, u.Role)
	assert.True(t, u.IsActive)
	assert.NotEqual(t, "Secret123", u.PasswordHash)

	_, err = svc.Register(ctx, "ANA@example.com", "Other", "x")
	assert.ErrorIs(t, err, ErrConflict)

	assert.Equal(t, []string{"user_registered"}, ev.types())
}

func TestUserService_Register_Validation(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "empty email", email: "", password: "secret"},
		{name: "empty password", email: "a@example.com", password: ""},
		{name: "malformed email", email: "not-an-email", password: "secret"},
		{name: "display name form", email: "Ana <ana@example.com>", password: "secret"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.email, "n", tt.password)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestUserService_Register_PendingActivation(t *testing.T) {
	svc, _ := newUserService(t)
	svc.AutoActivate = false
	ctx := context.Background()

	u, err := svc.Register(ctx, "bo@example.com", "Bo", "pw")
	require.NoError(t, err)
	assert.False(t, u.IsActive)

	_, err = svc.Login(ctx, "bo@example.com", "pw")
	assert.ErrorIs(t, err, ErrInactive)
}

func TestUserService_Login(t *testing.T) {
	svc, ev := newUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "cy@example.com", "Cy", "pw123")
	require.NoError(t, err)

	res, err := svc.Login(ctx, "CY@example.com", "pw123")
	require.NoError(t, err)
	assert.Equal(t, "cy@example.com", res.User.ID)
	require.NotEmpty(t, res.Token)

	claims, err := tokens.SessionClaimsFromToken(res.Token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "cy@example.com", claims.Subject)
	assert.Equal(t, models.RoleUser, claims.Role)

	_, err = svc.Login(ctx, "cy@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@example.com", "pw")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Login(ctx, "", "pw")
	assert.ErrorIs(t, err, ErrValidation)

	assert.Equal(t, []string{"user_registered", "user_logged_in"}, ev.types())
}

func TestUserService_DeactivatedUserCannotLogin(t *testing.T) {
	svc, ev := newUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "dee@example.com", "Dee", "pw")
	require.NoError(t, err)

	u, err := svc.SetActive(ctx, "admin@local", "dee@example.com", false)
	require.NoError(t, err)
	assert.False(t, u.IsActive)

	_, err = svc.Login(ctx, "dee@example.com", "pw")
	assert.ErrorIs(t, err, ErrInactive)

	_, err = svc.SetActive(ctx, "admin@local", "dee@example.com", true)
	require.NoError(t, err)
	_, err = svc.Login(ctx, "dee@example.com", "pw")
	assert.NoError(t, err)

	_, err = svc.SetActive(ctx, "admin@local", "ghost@example.com", true)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.SetActive(ctx, "dee@example.com", "dee@example.com", false)
	assert.ErrorIs(t, err, ErrValidation)

	assert.Equal(t, []string{"user_registered", "user_deactivated", "user_activated", "user_logged_in"}, ev.types())
}

func TestUserService_Remove(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	require.NoError(t, svc.EnsureAdmin(ctx, "admin@local", "admin123"))
	_, err := svc.Register(ctx, "eve@example.com", "Eve", "pw")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Remove(ctx, "admin@local", "admin@local"), ErrValidation)
	require.NoError(t, svc.Remove(ctx, "admin@local", "eve@example.com"))
	assert.ErrorIs(t, svc.Remove(ctx, "admin@local", "eve@example.com"), ErrNotFound)

	_, err = svc.GetByEmail(ctx, "eve@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserService_EnsureAdmin(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	require.NoError(t, svc.EnsureAdmin(ctx, "Admin@Local", "admin123"))
	require.NoError(t, svc.EnsureAdmin(ctx, "other@local", "x"))

	users, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "admin@local", users[0].ID)
	assert.True(t, users[0].IsAdmin())
	assert.True(t, users[0].IsActive)

	res, err := svc.Login(ctx, "admin@local", "admin123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, res.User.Role)
}

func TestUserService_EnsureAdmin_ReactivatesSeededAdmin(t *testing.T) {
	svc, ev := newUserService(t)
	ctx := context.Background()

	require.NoError(t, svc.EnsureAdmin(ctx, "admin@local", "admin123"))
	_, err := svc.Repo.SetUserActive(ctx, "admin@local", false)
	require.NoError(t, err)
	_, err = svc.Login(ctx, "admin@local", "admin123")
	require.ErrorIs(t, err, ErrInactive)

	require.NoError(t, svc.EnsureAdmin(ctx, "admin@local", "admin123"))

	res, err := svc.Login(ctx, "admin@local", "admin123")
	require.NoError(t, err)
	assert.True(t, res.User.IsActive)
	assert.Equal(t, models.RoleAdmin, res.User.Role)
	assert.Contains(t, ev.types(), "user_activated")
}

func TestUserService_EnsureAdmin_LeavesRegularUserAlone(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "admin@local", "Not Admin", "pw")
	require.NoError(t, err)
	require.NoError(t, svc.EnsureAdmin(ctx, "admin@local", "admin123"))

	u, err := svc.GetByEmail(ctx, "admin@local")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, u.Role)
}
