package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"vendor-kyc.backend/internal/domain/entities"
	domainerrors "vendor-kyc.backend/internal/domain/errors"
)

func testVendor(vendorID, email string) *entities.Vendor {
	return &entities.Vendor{
		VendorID:       vendorID,
		Status:         entities.VendorStatusPending,
		Name:           "Asha Rao",
		Age:            34,
		DateOfBirth:    "1991-04-02",
		Email:          email,
		Phone:          "+91-9000000001",
		CurrentAddress: "12 MG Road, Bengaluru",
		BusinessName:   null.StringFrom("Rao Traders"),
		PANNumber:      null.StringFrom("ABCDE1234F"),
	}
}

func TestVendorRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	createVendorTable(t, db)
	repo := NewVendorRepository(db)
	ctx := context.Background()

	v := testVendor("VEN000001", "asha@example.com")
	require.NoError(t, repo.Create(ctx, v))
	require.False(t, v.CreatedAt.IsZero())

	got, err := repo.GetByVendorID(ctx, "VEN000001")
	require.NoError(t, err)
	require.Equal(t, "Asha Rao", got.Name)
	require.Equal(t, entities.VendorStatusPending, got.Status)
	require.Equal(t, "Rao Traders", got.BusinessName.String)
	require.False(t, got.RejectionReason.Valid)

	byEmail, err := repo.GetByEmail(ctx, "asha@example.com")
	require.NoError(t, err)
	require.Equal(t, "VEN000001", byEmail.VendorID)

	locked, err := repo.GetByVendorIDForUpdate(ctx, "VEN000001")
	require.NoError(t, err)
	require.Equal(t, "VEN000001", locked.VendorID)
}

func TestVendorRepository_DuplicateConstraints(t *testing.T) {
	db := newTestDB(t)
	createVendorTable(t, db)
	repo := NewVendorRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testVendor("VEN000001", "a@example.com")))

	err := repo.Create(ctx, testVendor("VEN000001", "b@example.com"))
	require.ErrorIs(t, err, domainerrors.ErrAlreadyExists)

	err = repo.Create(ctx, testVendor("VEN000002", "a@example.com"))
	require.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
}

func TestVendorRepository_NotFoundBranches(t *testing.T) {
	db := newTestDB(t)
	createVendorTable(t, db)
	repo := NewVendorRepository(db)
	ctx := context.Background()

	_, err := repo.GetByVendorID(ctx, "VEN999999")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = repo.GetByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	err = repo.UpdateStatus(ctx, "VEN999999", entities.VendorStatusApproved, "")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	err = repo.Touch(ctx, "VEN999999")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestVendorRepository_UpdateStatusClearsReason(t *testing.T) {
	db := newTestDB(t)
	createVendorTable(t, db)
	repo := NewVendorRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testVendor("VEN000001", "a@example.com")))

	require.NoError(t, repo.UpdateStatus(ctx, "VEN000001", entities.VendorStatusRejected, "PAN document unreadable"))
	got, err := repo.GetByVendorID(ctx, "VEN000001")
	require.NoError(t, err)
	require.Equal(t, entities.VendorStatusRejected, got.Status)
	require.Equal(t, "PAN document unreadable", got.RejectionReason.String)

	require.NoError(t, repo.UpdateStatus(ctx, "VEN000001", entities.VendorStatusApproved, ""))
	got, err = repo.GetByVendorID(ctx, "VEN000001")
	require.NoError(t, err)
	require.Equal(t, entities.VendorStatusApproved, got.Status)
	require.False(t, got.RejectionReason.Valid)
}

func TestVendorRepository_ListAndStats(t *testing.T) {
	db := newTestDB(t)
	createVendorTable(t, db)
	repo := NewVendorRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testVendor("VEN000001", "a@example.com")))
	require.NoError(t, repo.Create(ctx, testVendor("VEN000002", "b@example.com")))
	require.NoError(t, repo.Create(ctx, testVendor("VEN000003", "c@example.com")))
	require.NoError(t, repo.UpdateStatus(ctx, "VEN000002", entities.VendorStatusApproved, ""))
	require.NoError(t, repo.UpdateStatus(ctx, "VEN000003", entities.VendorStatusRejected, "incomplete"))

	all, total, err := repo.List(ctx, "", 0, 0)
	require.NoError(t, err)
	require.Equal(t, 3, total)
	require.Len(t, all, 3)

	pending, total, err := repo.List(ctx, entities.VendorStatusPending, 10, 0)
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Len(t, pending, 1)
	require.Equal(t, "VEN000001", pending[0].VendorID)

	page, total, err := repo.List(ctx, "", 2, 0)
	require.NoError(t, err)
	require.Equal(t, 3, total)
	require.Len(t, page, 2)

	ids, err := repo.ListVendorIDs(ctx)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"VEN000001", "VEN000002", "VEN000003"}, ids)

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(3), stats.Total)
	require.Equal(t, int64(1), stats.Pending)
	require.Equal(t, int64(1), stats.Approved)
	require.Equal(t, int64(1), stats.Rejected)
}
