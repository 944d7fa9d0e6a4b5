package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// DocumentType represents the kind of document attached to an application
type DocumentType string

const (
	DocumentTypeID           DocumentType = "id_document"
	DocumentTypePhoto        DocumentType = "photo"
	DocumentTypeShopDocument DocumentType = "shop_document"
	DocumentTypeShopPhoto    DocumentType = "shop_photo"
	DocumentTypeOther        DocumentType = "other"
)

// RequiredDocumentTypes lists the document types every application must clear
// before approval.
var RequiredDocumentTypes = []DocumentType{
	DocumentTypeID,
	DocumentTypePhoto,
	DocumentTypeShopDocument,
	DocumentTypeShopPhoto,
}

// DocumentStatus represents per-document verification status
type DocumentStatus string

const (
	DocumentStatusPending           DocumentStatus = "pending"
	DocumentStatusVerified          DocumentStatus = "verified"
	DocumentStatusFlagged           DocumentStatus = "flagged"
	DocumentStatusReuploadRequested DocumentStatus = "reupload_requested"
)

// Document represents a file reference attached to an application.
// The core stores only the storage collaborator's reference, never file bytes.
type Document struct {
	ID            uuid.UUID      `json:"id"`
	ApplicationID uuid.UUID      `json:"applicationId"`
	DocumentType  DocumentType   `json:"documentType"`
	FilePath      string         `json:"filePath"`
	FileURL       string         `json:"fileUrl"`
	Status        DocumentStatus `json:"status"`
	Remarks       null.String    `json:"remarks,omitempty"`
	VerifiedBy    *uuid.UUID     `json:"verifiedBy,omitempty"`
	VerifiedAt    *time.Time     `json:"verifiedAt,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

// FlagDocumentInput represents input for flagging or requesting reupload
type FlagDocumentInput struct {
	Reason string `json:"reason" binding:"required"`
}

// ReuploadDocumentInput represents the replacement file reference from the vendor
type ReuploadDocumentInput struct {
	FilePath string `json:"filePath" binding:"required"`
	FileURL  string `json:"fileUrl" binding:"required"`
}
