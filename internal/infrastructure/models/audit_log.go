package models

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog rows are append-only. No UpdatedAt, no soft delete.
type AuditLog struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	ApplicationID *uuid.UUID `gorm:"type:uuid;index"`
	EntityType    string     `gorm:"type:varchar(50);not null"`
	EntityID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	ActorID       *uuid.UUID `gorm:"type:uuid"`
	Action        string     `gorm:"type:varchar(100);not null"`
	OldValues     JSONB      `gorm:"type:jsonb"`
	NewValues     JSONB      `gorm:"type:jsonb"`
	CreatedAt     time.Time
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
