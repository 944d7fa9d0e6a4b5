package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// ApplicationStatus represents the top-level application lifecycle status
type ApplicationStatus string

const (
	ApplicationStatusPending        ApplicationStatus = "pending"
	ApplicationStatusPaymentPending ApplicationStatus = "payment_pending"
	ApplicationStatusUnderReview    ApplicationStatus = "under_review"
	ApplicationStatusApproved       ApplicationStatus = "approved"
	ApplicationStatusRejected       ApplicationStatus = "rejected"
)

// PaymentStatus represents the application-level payment status
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusSuccess  PaymentStatus = "success"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// Gender represents the applicant's declared gender
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Section represents a verifiable data section of an application
type Section string

const (
	SectionPersonal Section = "personal"
	SectionBusiness Section = "business"
)

// Valid reports whether the section is a known section name.
func (s Section) Valid() bool {
	return s == SectionPersonal || s == SectionBusiness
}

// VendorApplication represents one vendor onboarding attempt
type VendorApplication struct {
	ID            uuid.UUID   `json:"id"`
	ApplicationID string      `json:"applicationId"`
	VendorID      null.String `json:"vendorId,omitempty"`
	UserID        *uuid.UUID  `json:"userId,omitempty"`

	OwnerName           string      `json:"ownerName"`
	BusinessName        string      `json:"businessName"`
	BusinessType        string      `json:"businessType"`
	BusinessDescription null.String `json:"businessDescription,omitempty"`
	Gender              Gender      `json:"gender"`
	Email               string      `json:"email"`
	Phone               string      `json:"phone"`
	Address             string      `json:"address"`
	City                string      `json:"city"`
	State               string      `json:"state"`
	Pincode             string      `json:"pincode"`
	AadhaarLast4        null.String `json:"aadhaarLast4,omitempty"`

	Status        ApplicationStatus `json:"status"`
	PaymentStatus PaymentStatus     `json:"paymentStatus"`

	PersonalVerified      bool        `json:"personalVerified"`
	PersonalVerifiedBy    *uuid.UUID  `json:"personalVerifiedBy,omitempty"`
	PersonalVerifiedAt    *time.Time  `json:"personalVerifiedAt,omitempty"`
	PersonalVerifyNotes   null.String `json:"personalVerifyNotes,omitempty"`
	BusinessVerified      bool        `json:"businessVerified"`
	BusinessVerifiedBy    *uuid.UUID  `json:"businessVerifiedBy,omitempty"`
	BusinessVerifiedAt    *time.Time  `json:"businessVerifiedAt,omitempty"`
	BusinessVerifyNotes   null.String `json:"businessVerifyNotes,omitempty"`

	ReviewedBy      *uuid.UUID  `json:"reviewedBy,omitempty"`
	ReviewedAt      *time.Time  `json:"reviewedAt,omitempty"`
	RejectionReason null.String `json:"rejectionReason,omitempty"`

	LockVersion int        `json:"-"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	DeletedAt   *time.Time `json:"-"`

	// Joins
	Documents    []*Document    `json:"documents,omitempty"`
	Certificates []*Certificate `json:"certificates,omitempty"`
}

// SectionVerified reports whether the given section has been signed off.
func (a *VendorApplication) SectionVerified(section Section) bool {
	if section == SectionPersonal {
		return a.PersonalVerified
	}
	return a.BusinessVerified
}

// SubmitApplicationInput represents input for submitting a vendor application
type SubmitApplicationInput struct {
	OwnerName           string `json:"ownerName" binding:"required,min=2,max=100"`
	BusinessName        string `json:"businessName" binding:"required,min=2,max=255"`
	BusinessType        string `json:"businessType" binding:"required"`
	BusinessDescription string `json:"businessDescription"`
	Gender              string `json:"gender"`
	Email               string `json:"email" binding:"required,email"`
	Phone               string `json:"phone" binding:"required,min=10,max=15"`
	Address             string `json:"address" binding:"required"`
	City                string `json:"city" binding:"required"`
	State               string `json:"state" binding:"required"`
	Pincode             string `json:"pincode" binding:"required,len=6"`
	AadhaarLast4        string `json:"aadhaarLast4"`
	// DeferPayment creates the application without payment context; it stays
	// in "pending" until a payment order is attached.
	DeferPayment bool `json:"deferPayment"`
}

// PaymentProof carries the gateway collaborator's result for one payment.
// Verified is the gateway integration's signature-check outcome; the core
// never performs cryptographic verification itself.
type PaymentProof struct {
	GatewayOrderID   string `json:"gatewayOrderId" binding:"required"`
	GatewayPaymentID string `json:"gatewayPaymentId" binding:"required"`
	GatewaySignature string `json:"gatewaySignature"`
	Amount           int64  `json:"amount"`
	Verified         bool   `json:"verified"`
}

// VerifySectionInput represents input for section sign-off
type VerifySectionInput struct {
	Notes string `json:"notes"`
}

// Decision represents an admin decision on an application
type Decision string

const (
	DecisionApproved Decision = "approved"
	DecisionRejected Decision = "rejected"
)

// DecisionInput represents input for the final admin decision
type DecisionInput struct {
	Decision string `json:"decision" binding:"required"`
	Reason   string `json:"reason"`
}

// ApplicationFilter represents admin list filters
type ApplicationFilter struct {
	Status        string `form:"status"`
	PaymentStatus string `form:"paymentStatus"`
	City          string `form:"city"`
	Search        string `form:"search"`
}
