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

// DocumentRepository implements document data operations
type DocumentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Create creates a new document row
func (r *DocumentRepository) Create(ctx context.Context, doc *entities.Document) error {
	m := toDocumentModel(doc)
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	doc.ID = m.ID
	doc.CreatedAt = m.CreatedAt
	doc.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a document by ID
func (r *DocumentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Document, error) {
	var m models.Document
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toDocumentEntity(&m), nil
}

// GetByApplicationID gets all documents of an application ordered by type
func (r *DocumentRepository) GetByApplicationID(ctx context.Context, applicationID uuid.UUID) ([]*entities.Document, error) {
	var ms []models.Document
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Order("document_type ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	docs := make([]*entities.Document, 0, len(ms))
	for i := range ms {
		docs = append(docs, toDocumentEntity(&ms[i]))
	}
	return docs, nil
}

// UpdateStatusFrom performs a compare-and-set on verification status. When the
// expected status no longer matches, a concurrent admin action already moved
// the document and the caller gets a Conflict instead of a silent overwrite.
func (r *DocumentRepository) UpdateStatusFrom(ctx context.Context, doc *entities.Document, expected entities.DocumentStatus) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Document{}).
		Where("id = ? AND verification_status = ?", doc.ID, string(expected)).
		Updates(map[string]interface{}{
			"verification_status": string(doc.Status),
			"remarks":             doc.Remarks.Ptr(),
			"verified_by":         doc.VerifiedBy,
			"verified_at":         doc.VerifiedAt,
			"file_path":           doc.FilePath,
			"file_url":            doc.FileURL,
			"updated_at":          time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := db.WithContext(ctx).Model(&models.Document{}).
			Where("id = ?", doc.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domainerrors.ErrNotFound
		}
		return domainerrors.Conflict("document was modified concurrently")
	}
	return nil
}

func toDocumentModel(d *entities.Document) *models.Document {
	m := &models.Document{
		ID:            d.ID,
		ApplicationID: d.ApplicationID,
		DocumentType:  string(d.DocumentType),
		FilePath:      d.FilePath,
		FileURL:       d.FileURL,
		Status:        string(d.Status),
		Remarks:       d.Remarks.Ptr(),
		VerifiedBy:    d.VerifiedBy,
		VerifiedAt:    d.VerifiedAt,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return m
}

func toDocumentEntity(m *models.Document) *entities.Document {
	return &entities.Document{
		ID:            m.ID,
		ApplicationID: m.ApplicationID,
		DocumentType:  entities.DocumentType(m.DocumentType),
		FilePath:      m.FilePath,
		FileURL:       m.FileURL,
		Status:        entities.DocumentStatus(m.Status),
		Remarks:       null.StringFromPtr(m.Remarks),
		VerifiedBy:    m.VerifiedBy,
		VerifiedAt:    m.VerifiedAt,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
