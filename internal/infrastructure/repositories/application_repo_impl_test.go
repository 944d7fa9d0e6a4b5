package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/Inventrix-AI/vendor-Hub-sub001/internal/domain/entities"
	domainerrors "github.com/Inventrix-AI/vendor-Hub-sub001/internal/domain/errors"
)

func newApplication(userID *uuid.UUID) *entities.VendorApplication {
	return &entities.VendorApplication{
		ID:            uuid.New(),
		ApplicationID: "APP" + uuid.New().String()[:8],
		UserID:        userID,
		OwnerName:     "Sunita Devi",
		BusinessName:  "Sunita Vegetables",
		BusinessType:  "street_vendor",
		Gender:        entities.GenderFemale,
		Email:         "sunita@example.com",
		Phone:         "9876543210",
		Address:       "Ward 12",
		City:          "Jabalpur",
		State:         "Madhya Pradesh",
		Pincode:       "482001",
		Status:        entities.ApplicationStatusPending,
		PaymentStatus: entities.PaymentStatusPending,
	}
}

func TestApplicationRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	createApplicationTable(t, db)
	repo := NewApplicationRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	app := newApplication(&userID)
	require.NoError(t, repo.Create(ctx, app))

	byID, err := repo.GetByID(ctx, app.ID)
	require.NoError(t, err)
	require.Equal(t, app.ApplicationID, byID.ApplicationID)
	require.Equal(t, entities.GenderFemale, byID.Gender)

	byAppID, err := repo.GetByApplicationID(ctx, app.ApplicationID)
	require.NoError(t, err)
	require.Equal(t, app.ID, byAppID.ID)

	byUser, err := repo.GetByUserID(ctx, userID)
	require.NoError(t, err)
	require.Len(t, byUser, 1)

	_, err = repo.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = repo.GetByApplicationID(ctx, "APPMISSING")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestApplicationRepository_CreateDuplicateApplicationID(t *testing.T) {
	db := newTestDB(t)
	createApplicationTable(t, db)
	repo := NewApplicationRepository(db)
	ctx := context.Background()

	app := newApplication(nil)
	require.NoError(t, repo.Create(ctx, app))

	dup := newApplication(nil)
	dup.ApplicationID = app.ApplicationID
	err := repo.Create(ctx, dup)
	require.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestApplicationRepository_OptimisticUpdate(t *testing.T) {
	db := newTestDB(t)
	createApplicationTable(t, db)
	repo := NewApplicationRepository(db)
	ctx := context.Background()

	app := newApplication(nil)
	require.NoError(t, repo.Create(ctx, app))

	app.Status = entities.ApplicationStatusUnderReview
	require.NoError(t, repo.Update(ctx, app))
	require.Equal(t, 1, app.LockVersion)

	// A writer holding the old version loses.
	stale := newApplication(nil)
	stale.ID = app.ID
	stale.ApplicationID = app.ApplicationID
	stale.LockVersion = 0
	stale.Status = entities.ApplicationStatusApproved
	err := repo.Update(ctx, stale)
	require.ErrorIs(t, err, domainerrors.ErrConflict)

	// The row kept the winner's state.
	got, err := repo.GetByID(ctx, app.ID)
	require.NoError(t, err)
	require.Equal(t, entities.ApplicationStatusUnderReview, got.Status)

	err = repo.Update(ctx, newApplication(nil))
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestApplicationRepository_LockByID(t *testing.T) {
	db := newTestDB(t)
	createApplicationTable(t, db)
	repo := NewApplicationRepository(db)
	ctx := context.Background()

	app := newApplication(nil)
	require.NoError(t, repo.Create(ctx, app))

	locked, err := repo.LockByID(ctx, app.ID)
	require.NoError(t, err)
	require.Equal(t, app.ID, locked.ID)

	_, err = repo.LockByID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestApplicationRepository_ListFilters(t *testing.T) {
	db := newTestDB(t)
	createApplicationTable(t, db)
	repo := NewApplicationRepository(db)
	ctx := context.Background()

	a := newApplication(nil)
	a.Status = entities.ApplicationStatusUnderReview
	a.City = "Bhopal"
	require.NoError(t, repo.Create(ctx, a))

	b := newApplication(nil)
	b.Status = entities.ApplicationStatusApproved
	b.City = "Indore"
	b.BusinessName = "Ravi Fruits"
	require.NoError(t, repo.Create(ctx, b))

	all, total, err := repo.List(ctx, entities.ApplicationFilter{}, 10, 0)
	require.NoError(t, err)
	require.Equal(t, 2, total)
	require.Len(t, all, 2)

	underReview, total, err := repo.List(ctx, entities.ApplicationFilter{Status: "under_review"}, 10, 0)
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Equal(t, a.ID, underReview[0].ID)

	byCity, total, err := repo.List(ctx, entities.ApplicationFilter{City: "Indore"}, 10, 0)
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Equal(t, b.ID, byCity[0].ID)

	bySearch, total, err := repo.List(ctx, entities.ApplicationFilter{Search: "Fruits"}, 10, 0)
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Equal(t, b.ID, bySearch[0].ID)

	paged, total, err := repo.List(ctx, entities.ApplicationFilter{}, 1, 1)
	require.NoError(t, err)
	require.Equal(t, 2, total)
	require.Len(t, paged, 1)
}
