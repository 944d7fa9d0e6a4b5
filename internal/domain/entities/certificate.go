package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// CertificateType represents a certificate category
type CertificateType string

const (
	CertificateTypeMP         CertificateType = "mp"
	CertificateTypeMahilaEkta CertificateType = "mahila_ekta"
	CertificateTypeBhopal     CertificateType = "bhopal"
	CertificateTypeIndore     CertificateType = "indore"
	CertificateTypeJabalpur   CertificateType = "jabalpur"
	CertificateTypeGwalior    CertificateType = "gwalior"
	CertificateTypeUjjain     CertificateType = "ujjain"
)

// CertificateStatus represents certificate lifecycle status
type CertificateStatus string

const (
	CertificateStatusActive  CertificateStatus = "active"
	CertificateStatusExpired CertificateStatus = "expired"
	CertificateStatusRevoked CertificateStatus = "revoked"
)

// Certificate represents a digitally verifiable vendor certificate/ID card
type Certificate struct {
	ID                uuid.UUID         `json:"id"`
	ApplicationID     uuid.UUID         `json:"applicationId"`
	CertificateNumber string            `json:"certificateNumber"`
	CertificateType   CertificateType   `json:"certificateType"`
	Status            CertificateStatus `json:"status"`
	IssuedAt          time.Time         `json:"issuedAt"`
	ValidUntil        time.Time         `json:"validUntil"`
	RevokedAt         *time.Time        `json:"revokedAt,omitempty"`
	RevokeReason      null.String       `json:"revokeReason,omitempty"`
	DownloadCount     int64             `json:"downloadCount"`
	CreatedAt         time.Time         `json:"createdAt"`
	UpdatedAt         time.Time         `json:"updatedAt"`
}

// VerificationStatus is the public verification outcome for a certificate number
type VerificationStatus string

const (
	VerificationStatusActive   VerificationStatus = "active"
	VerificationStatusExpired  VerificationStatus = "expired"
	VerificationStatusRevoked  VerificationStatus = "revoked"
	VerificationStatusNotFound VerificationStatus = "not_found"
)

// CertificatePublicFields are the only applicant fields the public
// verification endpoint may expose.
type CertificatePublicFields struct {
	HolderName        string          `json:"holderName"`
	BusinessName      string          `json:"businessName"`
	City              string          `json:"city"`
	State             string          `json:"state"`
	CertificateType   CertificateType `json:"certificateType"`
	CertificateNumber string          `json:"certificateNumber"`
	IssuedAt          time.Time       `json:"issuedAt"`
	ValidUntil        time.Time       `json:"validUntil"`
}

// VerificationResult is the public, unauthenticated lookup response
type VerificationResult struct {
	Valid        bool                     `json:"valid"`
	Status       VerificationStatus       `json:"status"`
	Message      string                   `json:"message"`
	PublicFields *CertificatePublicFields `json:"publicFields,omitempty"`
}
