package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/Inventrix-AI/vendor-Hub-sub001/internal/domain/entities"
	domainerrors "github.com/Inventrix-AI/vendor-Hub-sub001/internal/domain/errors"
)

func TestUnitOfWork_CommitAndRollback(t *testing.T) {
	db := newTestDB(t)
	createApplicationTable(t, db)
	createAuditLogTable(t, db)
	appRepo := NewApplicationRepository(db)
	auditRepo := NewAuditLogRepository(db)
	uow := NewUnitOfWork(db)
	ctx := context.Background()

	app := newApplication(nil)
	err := uow.Do(ctx, func(txCtx context.Context) error {
		if err := appRepo.Create(txCtx, app); err != nil {
			return err
		}
		return auditRepo.Append(txCtx, &entities.AuditLogEntry{
			ApplicationID: &app.ID,
			EntityType:    "application",
			EntityID:      app.ID,
			Action:        entities.AuditActionApplicationSubmitted,
		})
	})
	require.NoError(t, err)

	_, err = appRepo.GetByID(ctx, app.ID)
	require.NoError(t, err)
	entries, err := auditRepo.ListByApplicationID(ctx, app.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	// A failing step rolls back every write in the scope.
	boom := errors.New("boom")
	rolled := newApplication(nil)
	err = uow.Do(ctx, func(txCtx context.Context) error {
		if err := appRepo.Create(txCtx, rolled); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = appRepo.GetByID(ctx, rolled.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestUnitOfWork_NestedReusesTransaction(t *testing.T) {
	db := newTestDB(t)
	createApplicationTable(t, db)
	appRepo := NewApplicationRepository(db)
	uow := NewUnitOfWork(db)
	ctx := context.Background()

	app := newApplication(nil)
	err := uow.Do(ctx, func(outer context.Context) error {
		return uow.Do(outer, func(inner context.Context) error {
			return appRepo.Create(inner, app)
		})
	})
	require.NoError(t, err)

	got, err := appRepo.GetByID(ctx, app.ID)
	require.NoError(t, err)
	require.Equal(t, app.ID, got.ID)
}
