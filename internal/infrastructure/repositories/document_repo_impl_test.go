package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"github.com/Inventrix-AI/vendor-Hub-sub001/internal/domain/entities"
	domainerrors "github.com/Inventrix-AI/vendor-Hub-sub001/internal/domain/errors"
)

func TestDocumentRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	createDocumentTable(t, db)
	repo := NewDocumentRepository(db)
	ctx := context.Background()

	appID := uuid.New()
	doc := &entities.Document{
		ID:            uuid.New(),
		ApplicationID: appID,
		DocumentType:  entities.DocumentTypeID,
		FilePath:      "uploads/id.pdf",
		FileURL:       "https://files.example.com/id.pdf",
		Status:        entities.DocumentStatusPending,
	}
	require.NoError(t, repo.Create(ctx, doc))

	got, err := repo.GetByID(ctx, doc.ID)
	require.NoError(t, err)
	require.Equal(t, entities.DocumentStatusPending, got.Status)

	photo := &entities.Document{
		ID:            uuid.New(),
		ApplicationID: appID,
		DocumentType:  entities.DocumentTypePhoto,
		FilePath:      "uploads/photo.jpg",
		Status:        entities.DocumentStatusPending,
	}
	require.NoError(t, repo.Create(ctx, photo))

	docs, err := repo.GetByApplicationID(ctx, appID)
	require.NoError(t, err)
	require.Len(t, docs, 2)

	_, err = repo.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestDocumentRepository_UpdateStatusFrom(t *testing.T) {
	db := newTestDB(t)
	createDocumentTable(t, db)
	repo := NewDocumentRepository(db)
	ctx := context.Background()

	doc := &entities.Document{
		ID:            uuid.New(),
		ApplicationID: uuid.New(),
		DocumentType:  entities.DocumentTypeShopPhoto,
		FilePath:      "uploads/shop.jpg",
		Status:        entities.DocumentStatusPending,
	}
	require.NoError(t, repo.Create(ctx, doc))

	adminID := uuid.New()
	now := time.Now()
	doc.Status = entities.DocumentStatusVerified
	doc.VerifiedBy = &adminID
	doc.VerifiedAt = &now
	require.NoError(t, repo.UpdateStatusFrom(ctx, doc, entities.DocumentStatusPending))

	got, err := repo.GetByID(ctx, doc.ID)
	require.NoError(t, err)
	require.Equal(t, entities.DocumentStatusVerified, got.Status)
	require.NotNil(t, got.VerifiedBy)

	// The document already left pending; a second actor expecting pending loses.
	stale := *doc
	stale.Status = entities.DocumentStatusFlagged
	stale.Remarks = null.StringFrom("blurry")
	err = repo.UpdateStatusFrom(ctx, &stale, entities.DocumentStatusPending)
	require.ErrorIs(t, err, domainerrors.ErrConflict)

	got, err = repo.GetByID(ctx, doc.ID)
	require.NoError(t, err)
	require.Equal(t, entities.DocumentStatusVerified, got.Status)

	missing := &entities.Document{ID: uuid.New(), Status: entities.DocumentStatusVerified}
	err = repo.UpdateStatusFrom(ctx, missing, entities.DocumentStatusPending)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
