package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VendorApplication struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	ApplicationID string     `gorm:"type:varchar(30);uniqueIndex;not null"`
	VendorID      *string    `gorm:"type:varchar(30);uniqueIndex"`
	UserID        *uuid.UUID `gorm:"type:uuid;index"`

	OwnerName           string  `gorm:"type:varchar(100);not null"`
	BusinessName        string  `gorm:"type:varchar(255);not null"`
	BusinessType        string  `gorm:"type:varchar(100);not null"`
	BusinessDescription *string `gorm:"type:text"`
	Gender              string  `gorm:"type:varchar(10);default:'male'"`
	Email               string  `gorm:"type:varchar(255);not null"`
	Phone               string  `gorm:"type:varchar(20);not null"`
	Address             string  `gorm:"type:text;not null"`
	City                string  `gorm:"type:varchar(100);not null"`
	State               string  `gorm:"type:varchar(100);not null"`
	Pincode             string  `gorm:"type:varchar(10);not null"`
	AadhaarLast4        *string `gorm:"type:varchar(4)"`

	Status        string `gorm:"type:varchar(30);not null;default:'pending';index"`
	PaymentStatus string `gorm:"type:varchar(20);not null;default:'pending';index"`

	PersonalVerified    bool `gorm:"not null;default:false"`
	PersonalVerifiedBy  *uuid.UUID `gorm:"type:uuid"`
	PersonalVerifiedAt  *time.Time
	PersonalVerifyNotes *string `gorm:"type:text"`
	BusinessVerified    bool    `gorm:"not null;default:false"`
	BusinessVerifiedBy  *uuid.UUID `gorm:"type:uuid"`
	BusinessVerifiedAt  *time.Time
	BusinessVerifyNotes *string `gorm:"type:text"`

	ReviewedBy      *uuid.UUID `gorm:"type:uuid"`
	ReviewedAt      *time.Time
	RejectionReason *string `gorm:"type:text"`

	// LockVersion implements optimistic concurrency on transitions.
	LockVersion int `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	// Relations
	Documents    []Document    `gorm:"foreignKey:ApplicationID"`
	Payments     []Payment     `gorm:"foreignKey:ApplicationID"`
	Certificates []Certificate `gorm:"foreignKey:ApplicationID"`
}

func (VendorApplication) TableName() string {
	return "vendor_applications"
}
