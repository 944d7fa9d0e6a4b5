package repositories

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Inventrix-AI/vendor-Hub-sub001/internal/domain/entities"
	"github.com/Inventrix-AI/vendor-Hub-sub001/internal/infrastructure/models"
)

// AuditLogRepository implements the append-only audit ledger.
// Entries are never updated or deleted.
type AuditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository creates a new audit log repository
func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

// Append writes one ledger entry. Called inside the same transaction as the
// entity mutation it records.
func (r *AuditLogRepository) Append(ctx context.Context, entry *entities.AuditLogEntry) error {
	m := &models.AuditLog{
		ID:            entry.ID,
		ApplicationID: entry.ApplicationID,
		EntityType:    entry.EntityType,
		EntityID:      entry.EntityID,
		ActorID:       entry.ActorID,
		Action:        entry.Action,
	}
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if entry.OldValues != nil {
		b, err := json.Marshal(entry.OldValues)
		if err != nil {
			return err
		}
		m.OldValues = models.JSONB(b)
	}
	if entry.NewValues != nil {
		b, err := json.Marshal(entry.NewValues)
		if err != nil {
			return err
		}
		m.NewValues = models.JSONB(b)
	}

	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	entry.ID = m.ID
	entry.CreatedAt = m.CreatedAt
	return nil
}

// ListByApplicationID returns the ledger for one application ordered by time
func (r *AuditLogRepository) ListByApplicationID(ctx context.Context, applicationID uuid.UUID) ([]*entities.AuditLogEntry, error) {
	var ms []models.AuditLog
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Order("created_at ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	entries := make([]*entities.AuditLogEntry, 0, len(ms))
	for i := range ms {
		m := &ms[i]
		e := &entities.AuditLogEntry{
			ID:            m.ID,
			ApplicationID: m.ApplicationID,
			EntityType:    m.EntityType,
			EntityID:      m.EntityID,
			ActorID:       m.ActorID,
			Action:        m.Action,
			CreatedAt:     m.CreatedAt,
		}
		if len(m.OldValues) > 0 {
			_ = json.Unmarshal(m.OldValues, &e.OldValues)
		}
		if len(m.NewValues) > 0 {
			_ = json.Unmarshal(m.NewValues, &e.NewValues)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
