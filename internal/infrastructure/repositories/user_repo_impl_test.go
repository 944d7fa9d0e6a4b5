package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/Inventrix-AI/vendor-Hub-sub001/internal/domain/entities"
	domainerrors "github.com/Inventrix-AI/vendor-Hub-sub001/internal/domain/errors"
)

func TestUserRepository_CreateGetDeactivate(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := &entities.User{
		ID:           uuid.New(),
		Email:        "admin@example.com",
		Name:         "Admin",
		Phone:        "9999999999",
		PasswordHash: "hash",
		Role:         entities.UserRoleAdmin,
		IsActive:     true,
	}
	require.NoError(t, repo.Create(ctx, u))

	byID, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, entities.UserRoleAdmin, byID.Role)
	require.True(t, byID.IsActive)

	byEmail, err := repo.GetByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, byEmail.ID)

	dup := &entities.User{ID: uuid.New(), Email: "admin@example.com", Name: "Dup", PasswordHash: "hash", Role: entities.UserRoleVendor, IsActive: true}
	require.ErrorIs(t, repo.Create(ctx, dup), domainerrors.ErrConflict)

	require.NoError(t, repo.Deactivate(ctx, u.ID))
	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.False(t, got.IsActive)

	require.ErrorIs(t, repo.Deactivate(ctx, uuid.New()), domainerrors.ErrNotFound)
	_, err = repo.GetByEmail(ctx, "missing@example.com")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestUserRepository_UpdateAndList(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		require.NoError(t, repo.Create(ctx, &entities.User{
			ID:           uuid.New(),
			Email:        email,
			Name:         "Vendor",
			PasswordHash: "hash",
			Role:         entities.UserRoleVendor,
			IsActive:     true,
		}))
	}

	users, total, err := repo.List(ctx, 2, 0)
	require.NoError(t, err)
	require.Equal(t, 3, total)
	require.Len(t, users, 2)

	u := users[0]
	u.Name = "Renamed"
	require.NoError(t, repo.Update(ctx, u))

	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "Renamed", got.Name)

	require.ErrorIs(t, repo.Update(ctx, &entities.User{ID: uuid.New(), Email: "x@example.com", Name: "X", PasswordHash: "h", Role: entities.UserRoleVendor}), domainerrors.ErrNotFound)
}
