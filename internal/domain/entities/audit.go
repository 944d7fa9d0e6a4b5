package entities

import (
	"time"

	"github.com/google/uuid"
)

// Audit action labels written by the usecases. Labels are human-readable and
// stable; the ledger is the forensic record for disputed decisions.
const (
	AuditActionApplicationSubmitted   = "application_submitted"
	AuditActionPaymentConfirmed       = "payment_confirmed"
	AuditActionSectionVerified        = "section_verified"
	AuditActionApplicationApproved    = "application_approved"
	AuditActionApplicationRejected    = "application_rejected"
	AuditActionDocumentUploaded       = "document_uploaded"
	AuditActionDocumentVerified       = "document_verified"
	AuditActionDocumentFlagged        = "document_flagged"
	AuditActionReuploadRequested      = "document_reupload_requested"
	AuditActionDocumentReuploaded     = "document_reuploaded"
	AuditActionCertificateGenerated   = "certificate_generated"
	AuditActionCertificateRevoked     = "certificate_revoked"
	AuditActionCertificateGenFailed   = "certificate_generation_failed"
	AuditActionNotificationFailed     = "notification_failed"
	AuditActionUserCreated            = "user_created"
	AuditActionUserDeactivated        = "user_deactivated"
	AuditActionSubscriptionExpired    = "subscription_expired"
)

// AuditLogEntry is one immutable row of the append-only ledger.
// OldValues/NewValues are structured snapshots sufficient to reconstruct the
// change without consulting the live entity store.
type AuditLogEntry struct {
	ID            uuid.UUID              `json:"id"`
	ApplicationID *uuid.UUID             `json:"applicationId,omitempty"`
	EntityType    string                 `json:"entityType"`
	EntityID      uuid.UUID              `json:"entityId"`
	ActorID       *uuid.UUID             `json:"actorId,omitempty"`
	Action        string                 `json:"action"`
	OldValues     map[string]interface{} `json:"oldValues,omitempty"`
	NewValues     map[string]interface{} `json:"newValues,omitempty"`
	CreatedAt     time.Time              `json:"createdAt"`
}
