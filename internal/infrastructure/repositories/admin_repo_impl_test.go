package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"vendor-kyc.backend/internal/domain/entities"
	domainerrors "vendor-kyc.backend/internal/domain/errors"
)

func TestAdminRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	createAdminTable(t, db)
	repo := NewAdminRepository(db)
	ctx := context.Background()

	admin := &entities.Admin{Username: "reviewer1", PasswordHash: "$2a$12$hash"}
	require.NoError(t, repo.Create(ctx, admin))
	require.False(t, admin.CreatedAt.IsZero())

	got, err := repo.GetByUsername(ctx, "reviewer1")
	require.NoError(t, err)
	require.Equal(t, admin.ID, got.ID)
	require.Equal(t, "$2a$12$hash", got.PasswordHash)

	err = repo.Create(ctx, &entities.Admin{Username: "reviewer1", PasswordHash: "x"})
	require.ErrorIs(t, err, domainerrors.ErrAlreadyExists)

	_, err = repo.GetByUsername(ctx, "ghost")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestAdminRepository_UpdatePassword(t *testing.T) {
	db := newTestDB(t)
	createAdminTable(t, db)
	repo := NewAdminRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entities.Admin{Username: "reviewer1", PasswordHash: "old"}))
	require.NoError(t, repo.UpdatePassword(ctx, "reviewer1", "new"))

	got, err := repo.GetByUsername(ctx, "reviewer1")
	require.NoError(t, err)
	require.Equal(t, "new", got.PasswordHash)

	err = repo.UpdatePassword(ctx, "ghost", "x")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
