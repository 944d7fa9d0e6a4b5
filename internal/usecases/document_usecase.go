package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Inventrix-AI/vendor-Hub-sub001/internal/domain/entities"
	domainerrors "github.com/Inventrix-AI/vendor-Hub-sub001/internal/domain/errors"
	"github.com/Inventrix-AI/vendor-Hub-sub001/internal/domain/repositories"
	"github.com/Inventrix-AI/vendor-Hub-sub001/pkg/logger"
)

const reuploadTemplateID = "document_reupload_requested"

// DocumentUsecase handles the per-document verification sub-machine
type DocumentUsecase struct {
	docRepo   repositories.DocumentRepository
	appRepo   repositories.ApplicationRepository
	auditRepo repositories.AuditLogRepository
	uow       repositories.UnitOfWork
	notifier  Notifier
}

// NewDocumentUsecase creates a new document usecase
func NewDocumentUsecase(
	docRepo repositories.DocumentRepository,
	appRepo repositories.ApplicationRepository,
	auditRepo repositories.AuditLogRepository,
	uow repositories.UnitOfWork,
	notifier Notifier,
) *DocumentUsecase {
	return &DocumentUsecase{
		docRepo:   docRepo,
		appRepo:   appRepo,
		auditRepo: auditRepo,
		uow:       uow,
		notifier:  notifier,
	}
}

// Attach records a newly uploaded document reference for an application
func (u *DocumentUsecase) Attach(ctx context.Context, actor entities.Actor, ref string, docType entities.DocumentType, filePath, fileURL string) (*entities.Document, error) {
	if filePath == "" {
		return nil, domainerrors.Validation("file reference is required")
	}

	app, err := u.resolveApplication(ctx, ref)
	if err != nil {
		return nil, err
	}
	if err := ensureOwnerOrReviewer(actor, app); err != nil {
		return nil, err
	}

	doc := &entities.Document{
		ApplicationID: app.ID,
		DocumentType:  docType,
		FilePath:      filePath,
		FileURL:       fileURL,
		Status:        entities.DocumentStatusPending,
	}
	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.docRepo.Create(txCtx, doc); err != nil {
			return err
		}
		return u.auditRepo.Append(txCtx, &entities.AuditLogEntry{
			ApplicationID: &app.ID,
			EntityType:    "document",
			EntityID:      doc.ID,
			ActorID:       actorIDPtr(actor),
			Action:        entities.AuditActionDocumentUploaded,
			NewValues:     snapshotDocument(doc),
		})
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Verify marks a document verified. No reason required.
func (u *DocumentUsecase) Verify(ctx context.Context, actor entities.Actor, documentID uuid.UUID) (*entities.Document, error) {
	if !actor.Role.CanReview() {
		return nil, domainerrors.Forbidden("only reviewers may verify documents")
	}

	var result *entities.Document
	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		doc, err := u.docRepo.GetByID(txCtx, documentID)
		if err != nil {
			return err
		}

		oldValues := snapshotDocument(doc)
		expected := doc.Status
		now := time.Now()
		actorID := actor.ID
		doc.Status = entities.DocumentStatusVerified
		doc.VerifiedBy = &actorID
		doc.VerifiedAt = &now

		if err := u.docRepo.UpdateStatusFrom(txCtx, doc, expected); err != nil {
			return err
		}
		if err := u.auditRepo.Append(txCtx, &entities.AuditLogEntry{
			ApplicationID: &doc.ApplicationID,
			EntityType:    "document",
			EntityID:      doc.ID,
			ActorID:       &actorID,
			Action:        entities.AuditActionDocumentVerified,
			OldValues:     oldValues,
			NewValues:     snapshotDocument(doc),
		}); err != nil {
			return err
		}
		result = doc
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Flag marks a document flagged. A reason is mandatory so the vendor knows
// what to fix.
func (u *DocumentUsecase) Flag(ctx context.Context, actor entities.Actor, documentID uuid.UUID, reason string) (*entities.Document, error) {
	if !actor.Role.CanReview() {
		return nil, domainerrors.Forbidden("only reviewers may flag documents")
	}
	if reason == "" {
		return nil, domainerrors.Validation("a reason is required to flag a document")
	}
	return u.setStatusWithReason(ctx, actor, documentID, entities.DocumentStatusFlagged, reason, entities.AuditActionDocumentFlagged)
}

// RequestReupload asks the vendor to replace a document. Mandatory reason;
// the vendor is notified best-effort.
func (u *DocumentUsecase) RequestReupload(ctx context.Context, actor entities.Actor, documentID uuid.UUID, reason string) (*entities.Document, error) {
	if !actor.Role.CanReview() {
		return nil, domainerrors.Forbidden("only reviewers may request reuploads")
	}
	if reason == "" {
		return nil, domainerrors.Validation("a reason is required to request a reupload")
	}

	doc, err := u.setStatusWithReason(ctx, actor, documentID, entities.DocumentStatusReuploadRequested, reason, entities.AuditActionReuploadRequested)
	if err != nil {
		return nil, err
	}

	u.notifyReupload(ctx, actor, doc, reason)
	return doc, nil
}

// notifyReupload tells the vendor a replacement is needed. Failure is logged
// and audited, never propagated.
func (u *DocumentUsecase) notifyReupload(ctx context.Context, actor entities.Actor, doc *entities.Document, reason string) {
	app, err := u.appRepo.GetByID(ctx, doc.ApplicationID)
	if err != nil {
		logger.Warn(ctx, "could not load application for reupload notification", zap.Error(err))
		return
	}

	_, err = u.notifier.Send(ctx, NotificationChannelEmail, app.Email, reuploadTemplateID, map[string]interface{}{
		"applicationId": app.ApplicationID,
		"documentType":  string(doc.DocumentType),
		"reason":        reason,
	})
	if err != nil {
		logger.Warn(ctx, "reupload notification failed",
			zap.String("application_id", app.ApplicationID),
			zap.Error(err),
		)
		auditErr := u.auditRepo.Append(ctx, &entities.AuditLogEntry{
			ApplicationID: &app.ID,
			EntityType:    "document",
			EntityID:      doc.ID,
			ActorID:       actorIDPtr(actor),
			Action:        entities.AuditActionNotificationFailed,
			NewValues:     map[string]interface{}{"error": err.Error(), "template": reuploadTemplateID},
		})
		if auditErr != nil {
			logger.Error(ctx, "failed to audit notification failure", zap.Error(auditErr))
		}
	}
}

// Reupload replaces the file reference of a flagged or reupload-requested
// document and resets it to pending. Vendor-only.
func (u *DocumentUsecase) Reupload(ctx context.Context, actor entities.Actor, documentID uuid.UUID, input *entities.ReuploadDocumentInput) (*entities.Document, error) {
	if input.FilePath == "" {
		return nil, domainerrors.Validation("replacement file reference is required")
	}

	var result *entities.Document
	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		doc, err := u.docRepo.GetByID(txCtx, documentID)
		if err != nil {
			return err
		}
		app, err := u.appRepo.GetByID(txCtx, doc.ApplicationID)
		if err != nil {
			return err
		}
		if err := ensureOwnerOrReviewer(actor, app); err != nil {
			return err
		}
		if doc.Status != entities.DocumentStatusFlagged && doc.Status != entities.DocumentStatusReuploadRequested {
			return domainerrors.InvalidTransition("only flagged or reupload-requested documents can be replaced")
		}

		oldValues := snapshotDocument(doc)
		expected := doc.Status
		doc.FilePath = input.FilePath
		doc.FileURL = input.FileURL
		doc.Status = entities.DocumentStatusPending
		doc.Remarks.Valid = false
		doc.VerifiedBy = nil
		doc.VerifiedAt = nil

		if err := u.docRepo.UpdateStatusFrom(txCtx, doc, expected); err != nil {
			return err
		}
		if err := u.auditRepo.Append(txCtx, &entities.AuditLogEntry{
			ApplicationID: &doc.ApplicationID,
			EntityType:    "document",
			EntityID:      doc.ID,
			ActorID:       actorIDPtr(actor),
			Action:        entities.AuditActionDocumentReuploaded,
			OldValues:     oldValues,
			NewValues:     snapshotDocument(doc),
		}); err != nil {
			return err
		}
		result = doc
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// FindByApplication lists documents of one application ordered by type
func (u *DocumentUsecase) FindByApplication(ctx context.Context, actor entities.Actor, ref string) ([]*entities.Document, error) {
	app, err := u.resolveApplication(ctx, ref)
	if err != nil {
		return nil, err
	}
	if err := ensureOwnerOrReviewer(actor, app); err != nil {
		return nil, err
	}
	return u.docRepo.GetByApplicationID(ctx, app.ID)
}

func (u *DocumentUsecase) setStatusWithReason(ctx context.Context, actor entities.Actor, documentID uuid.UUID, status entities.DocumentStatus, reason, action string) (*entities.Document, error) {
	var result *entities.Document
	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		doc, err := u.docRepo.GetByID(txCtx, documentID)
		if err != nil {
			return err
		}

		oldValues := snapshotDocument(doc)
		expected := doc.Status
		actorID := actor.ID
		doc.Status = status
		doc.Remarks.SetValid(reason)
		doc.VerifiedBy = &actorID

		if err := u.docRepo.UpdateStatusFrom(txCtx, doc, expected); err != nil {
			return err
		}
		if err := u.auditRepo.Append(txCtx, &entities.AuditLogEntry{
			ApplicationID: &doc.ApplicationID,
			EntityType:    "document",
			EntityID:      doc.ID,
			ActorID:       &actorID,
			Action:        action,
			OldValues:     oldValues,
			NewValues:     snapshotDocument(doc),
		}); err != nil {
			return err
		}
		result = doc
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (u *DocumentUsecase) resolveApplication(ctx context.Context, ref string) (*entities.VendorApplication, error) {
	if id, err := uuid.Parse(ref); err == nil {
		return u.appRepo.GetByID(ctx, id)
	}
	return u.appRepo.GetByApplicationID(ctx, ref)
}

func snapshotDocument(doc *entities.Document) map[string]interface{} {
	snap := map[string]interface{}{
		"document_type":       string(doc.DocumentType),
		"verification_status": string(doc.Status),
		"file_path":           doc.FilePath,
	}
	if doc.Remarks.Valid {
		snap["remarks"] = doc.Remarks.String
	}
	return snap
}
