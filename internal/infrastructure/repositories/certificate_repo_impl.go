package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"github.com/Inventrix-AI/vendor-Hub-sub001/internal/domain/entities"
	domainerrors "github.com/Inventrix-AI/vendor-Hub-sub001/internal/domain/errors"
	"github.com/Inventrix-AI/vendor-Hub-sub001/internal/infrastructure/models"
)

// CertificateRepository implements certificate data operations
type CertificateRepository struct {
	db *gorm.DB
}

// NewCertificateRepository creates a new certificate repository
func NewCertificateRepository(db *gorm.DB) *CertificateRepository {
	return &CertificateRepository{db: db}
}

// Create creates a new certificate. The unique index on certificate_number is
// the last line of defense against generator collisions.
func (r *CertificateRepository) Create(ctx context.Context, cert *entities.Certificate) error {
	m := toCertificateModel(cert)
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.Conflict("certificate number already exists")
		}
		return err
	}
	cert.ID = m.ID
	cert.CreatedAt = m.CreatedAt
	cert.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a certificate by ID
func (r *CertificateRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Certificate, error) {
	var m models.Certificate
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toCertificateEntity(&m), nil
}

// GetByNumber gets a certificate by its public certificate number
func (r *CertificateRepository) GetByNumber(ctx context.Context, certificateNumber string) (*entities.Certificate, error) {
	var m models.Certificate
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("certificate_number = ?", certificateNumber).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toCertificateEntity(&m), nil
}

// GetActiveByApplicationID lists active certificates of an application
func (r *CertificateRepository) GetActiveByApplicationID(ctx context.Context, applicationID uuid.UUID) ([]*entities.Certificate, error) {
	return r.listByApplication(ctx, applicationID, true)
}

// GetByApplicationID lists all certificates of an application
func (r *CertificateRepository) GetByApplicationID(ctx context.Context, applicationID uuid.UUID) ([]*entities.Certificate, error) {
	return r.listByApplication(ctx, applicationID, false)
}

func (r *CertificateRepository) listByApplication(ctx context.Context, applicationID uuid.UUID, activeOnly bool) ([]*entities.Certificate, error) {
	db := GetDB(ctx, r.db).WithContext(ctx).Where("application_id = ?", applicationID)
	if activeOnly {
		db = db.Where("status = ?", string(entities.CertificateStatusActive))
	}
	var ms []models.Certificate
	if err := db.Order("certificate_type ASC, issued_at DESC").Find(&ms).Error; err != nil {
		return nil, err
	}
	certs := make([]*entities.Certificate, 0, len(ms))
	for i := range ms {
		certs = append(certs, toCertificateEntity(&ms[i]))
	}
	return certs, nil
}

// NumberExists reports whether a certificate number is already taken
func (r *CertificateRepository) NumberExists(ctx context.Context, certificateNumber string) (bool, error) {
	var count int64
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Model(&models.Certificate{}).
		Where("certificate_number = ?", certificateNumber).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Revoke marks a certificate revoked with the given reason
func (r *CertificateRepository) Revoke(ctx context.Context, id uuid.UUID, reason string) error {
	now := time.Now()
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Certificate{}).
		Where("id = ? AND status = ?", id, string(entities.CertificateStatusActive)).
		Updates(map[string]interface{}{
			"status":        string(entities.CertificateStatusRevoked),
			"revoked_at":    now,
			"revoke_reason": reason,
			"updated_at":    now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// IncrementDownloadCount bumps the download counter. Best-effort; callers
// ignore failures.
func (r *CertificateRepository) IncrementDownloadCount(ctx context.Context, id uuid.UUID) error {
	db := GetDB(ctx, r.db)
	return db.WithContext(ctx).Model(&models.Certificate{}).
		Where("id = ?", id).
		UpdateColumn("download_count", gorm.Expr("download_count + 1")).Error
}

func toCertificateModel(c *entities.Certificate) *models.Certificate {
	m := &models.Certificate{
		ID:                c.ID,
		ApplicationID:     c.ApplicationID,
		CertificateNumber: c.CertificateNumber,
		CertificateType:   string(c.CertificateType),
		Status:            string(c.Status),
		IssuedAt:          c.IssuedAt,
		ValidUntil:        c.ValidUntil,
		RevokedAt:         c.RevokedAt,
		RevokeReason:      c.RevokeReason.Ptr(),
		DownloadCount:     c.DownloadCount,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return m
}

func toCertificateEntity(m *models.Certificate) *entities.Certificate {
	return &entities.Certificate{
		ID:                m.ID,
		ApplicationID:     m.ApplicationID,
		CertificateNumber: m.CertificateNumber,
		CertificateType:   entities.CertificateType(m.CertificateType),
		Status:            entities.CertificateStatus(m.Status),
		IssuedAt:          m.IssuedAt,
		ValidUntil:        m.ValidUntil,
		RevokedAt:         m.RevokedAt,
		RevokeReason:      null.StringFromPtr(m.RevokeReason),
		DownloadCount:     m.DownloadCount,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}
