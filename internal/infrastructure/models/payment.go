package models

import (
	"time"

	"github.com/google/uuid"
)

type Payment struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	ApplicationID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount           int64     `gorm:"not null"`
	Currency         string    `gorm:"type:varchar(10);not null;default:'INR'"`
	GatewayOrderID   string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	GatewayPaymentID *string   `gorm:"type:varchar(100)"`
	GatewaySignature *string   `gorm:"type:varchar(255)"`
	Status           string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	PaidAt           *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type VendorSubscription struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	ApplicationID uuid.UUID `gorm:"type:uuid;not null;index"`
	PaymentID     uuid.UUID `gorm:"type:uuid;not null"`
	Status        string    `gorm:"type:varchar(20);not null;default:'active';index"`
	ActivatedAt   time.Time `gorm:"not null"`
	ExpiresAt     time.Time `gorm:"not null;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
