package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Payment represents one gateway payment attempt for an application.
// Gateway identifiers are opaque strings recorded as-is.
type Payment struct {
	ID               uuid.UUID     `json:"id"`
	ApplicationID    uuid.UUID     `json:"applicationId"`
	Amount           int64         `json:"amount"`
	Currency         string        `json:"currency"`
	GatewayOrderID   string        `json:"gatewayOrderId"`
	GatewayPaymentID null.String   `json:"gatewayPaymentId,omitempty"`
	GatewaySignature null.String   `json:"-"`
	Status           PaymentStatus `json:"status"`
	PaidAt           *time.Time    `json:"paidAt,omitempty"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}

// SubscriptionStatus represents vendor subscription lifecycle status
type SubscriptionStatus string

const (
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusExpired   SubscriptionStatus = "expired"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
)

// VendorSubscription tracks the yearly membership derived from a successful payment
type VendorSubscription struct {
	ID            uuid.UUID          `json:"id"`
	UserID        uuid.UUID          `json:"userId"`
	ApplicationID uuid.UUID          `json:"applicationId"`
	PaymentID     uuid.UUID          `json:"paymentId"`
	Status        SubscriptionStatus `json:"status"`
	ActivatedAt   time.Time          `json:"activatedAt"`
	ExpiresAt     time.Time          `json:"expiresAt"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}
