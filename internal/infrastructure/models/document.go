package models

import (
	"time"

	"github.com/google/uuid"
)

type Document struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	ApplicationID uuid.UUID `gorm:"type:uuid;not null;index"`
	DocumentType  string    `gorm:"type:varchar(30);not null;index"`
	FilePath      string    `gorm:"type:text;not null"`
	FileURL       string    `gorm:"type:text"`
	Status        string    `gorm:"column:verification_status;type:varchar(30);not null;default:'pending'"`
	Remarks       *string   `gorm:"type:text"`
	VerifiedBy    *uuid.UUID `gorm:"type:uuid"`
	VerifiedAt    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
