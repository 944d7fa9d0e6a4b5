package models

import (
	"time"

	"github.com/google/uuid"
)

type Certificate struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	ApplicationID     uuid.UUID `gorm:"type:uuid;not null;index"`
	CertificateNumber string    `gorm:"type:varchar(30);uniqueIndex;not null"`
	CertificateType   string    `gorm:"type:varchar(30);not null;index"`
	Status            string    `gorm:"type:varchar(20);not null;default:'active';index"`
	IssuedAt          time.Time `gorm:"not null"`
	ValidUntil        time.Time `gorm:"not null"`
	RevokedAt         *time.Time
	RevokeReason      *string `gorm:"type:text"`
	DownloadCount     int64   `gorm:"not null;default:0"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
