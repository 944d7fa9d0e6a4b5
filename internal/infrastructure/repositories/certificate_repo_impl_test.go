package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/Inventrix-AI/vendor-Hub-sub001/internal/domain/entities"
	domainerrors "github.com/Inventrix-AI/vendor-Hub-sub001/internal/domain/errors"
)

func newCertificate(appID uuid.UUID, number string, certType entities.CertificateType) *entities.Certificate {
	return &entities.Certificate{
		ID:                uuid.New(),
		ApplicationID:     appID,
		CertificateNumber: number,
		CertificateType:   certType,
		Status:            entities.CertificateStatusActive,
		IssuedAt:          time.Now(),
		ValidUntil:        time.Now().AddDate(1, 0, 0),
	}
}

func TestCertificateRepository_CreateAndLookups(t *testing.T) {
	db := newTestDB(t)
	createCertificateTable(t, db)
	repo := NewCertificateRepository(db)
	ctx := context.Background()

	appID := uuid.New()
	mp := newCertificate(appID, "VH-AAA111", entities.CertificateTypeMP)
	require.NoError(t, repo.Create(ctx, mp))

	city := newCertificate(appID, "VH-BBB222", entities.CertificateTypeJabalpur)
	require.NoError(t, repo.Create(ctx, city))

	byNumber, err := repo.GetByNumber(ctx, "VH-AAA111")
	require.NoError(t, err)
	require.Equal(t, mp.ID, byNumber.ID)

	_, err = repo.GetByNumber(ctx, "VH-NOPE")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	exists, err := repo.NumberExists(ctx, "VH-BBB222")
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = repo.NumberExists(ctx, "VH-NOPE")
	require.NoError(t, err)
	require.False(t, exists)

	active, err := repo.GetActiveByApplicationID(ctx, appID)
	require.NoError(t, err)
	require.Len(t, active, 2)

	dup := newCertificate(uuid.New(), "VH-AAA111", entities.CertificateTypeMP)
	require.ErrorIs(t, repo.Create(ctx, dup), domainerrors.ErrConflict)
}

func TestCertificateRepository_RevokeOnlyActive(t *testing.T) {
	db := newTestDB(t)
	createCertificateTable(t, db)
	repo := NewCertificateRepository(db)
	ctx := context.Background()

	appID := uuid.New()
	cert := newCertificate(appID, "VH-CCC333", entities.CertificateTypeMP)
	require.NoError(t, repo.Create(ctx, cert))

	require.NoError(t, repo.Revoke(ctx, cert.ID, "data correction"))

	got, err := repo.GetByID(ctx, cert.ID)
	require.NoError(t, err)
	require.Equal(t, entities.CertificateStatusRevoked, got.Status)
	require.Equal(t, "data correction", got.RevokeReason.String)
	require.NotNil(t, got.RevokedAt)

	// Already revoked: nothing to do.
	require.ErrorIs(t, repo.Revoke(ctx, cert.ID, "again"), domainerrors.ErrNotFound)

	active, err := repo.GetActiveByApplicationID(ctx, appID)
	require.NoError(t, err)
	require.Empty(t, active)

	all, err := repo.GetByApplicationID(ctx, appID)
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestCertificateRepository_IncrementDownloadCount(t *testing.T) {
	db := newTestDB(t)
	createCertificateTable(t, db)
	repo := NewCertificateRepository(db)
	ctx := context.Background()

	cert := newCertificate(uuid.New(), "VH-DDD444", entities.CertificateTypeMahilaEkta)
	require.NoError(t, repo.Create(ctx, cert))

	require.NoError(t, repo.IncrementDownloadCount(ctx, cert.ID))
	require.NoError(t, repo.IncrementDownloadCount(ctx, cert.ID))

	got, err := repo.GetByID(ctx, cert.ID)
	require.NoError(t, err)
	require.Equal(t, int64(2), got.DownloadCount)
}
