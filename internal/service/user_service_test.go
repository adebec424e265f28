package service

import (
	"context"
	"testing"

	"gierkopolecacz/backend/internal/models"
	"gierkopolecacz/backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	svc := NewUserService(&fakeUsers{}, newFakeCollections())
	ctx := context.Background()

	user, err := svc.Register(ctx, "ala", "ala@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotEqual(t, "password123", user.PasswordHash)

	_, err = svc.Register(ctx, "ala", "other@example.com", "password123")
	assert.ErrorIs(t, err, ErrUserExists)

	got, err := svc.Login(ctx, "ala@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = svc.Login(ctx, "ala", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "ola", "password123")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestProfile(t *testing.T) {
	users := &fakeUsers{}
	collections := newFakeCollections()
	svc := NewUserService(users, collections)
	ctx := context.Background()

	user, err := svc.Register(ctx, "ala", "ala@example.com", "password123")
	require.NoError(t, err)
	collections.set(repository.Selected, user.ID, 4, 5)

	profile, err := svc.Profile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "ala", profile.User.Nickname)
	assert.Equal(t, int64(2), profile.SelectedCount)

	_, err = svc.Profile(ctx, 99)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
