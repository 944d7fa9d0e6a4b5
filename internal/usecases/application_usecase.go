package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Inventrix-AI/vendor-Hub-sub001/internal/domain/entities"
	domainerrors "github.com/Inventrix-AI/vendor-Hub-sub001/internal/domain/errors"
	"github.com/Inventrix-AI/vendor-Hub-sub001/internal/domain/repositories"
	"github.com/Inventrix-AI/vendor-Hub-sub001/internal/metrics"
	"github.com/Inventrix-AI/vendor-Hub-sub001/pkg/crypto"
	"github.com/Inventrix-AI/vendor-Hub-sub001/pkg/logger"
)

// CertificateIssuer is what the state machine needs from the issuance engine
// after an approval. Kept as an interface to avoid coupling the two usecases.
type CertificateIssuer interface {
	Generate(ctx context.Context, actor entities.Actor, ref string) ([]*entities.Certificate, error)
}

// ApplicationUsecase orchestrates the application lifecycle state machine
type ApplicationUsecase struct {
	appRepo     repositories.ApplicationRepository
	docRepo     repositories.DocumentRepository
	paymentRepo repositories.PaymentRepository
	subRepo     repositories.SubscriptionRepository
	userRepo    repositories.UserRepository
	auditRepo   repositories.AuditLogRepository
	uow         repositories.UnitOfWork
	issuer      CertificateIssuer
	notifier    Notifier
}

// NewApplicationUsecase creates a new application usecase
func NewApplicationUsecase(
	appRepo repositories.ApplicationRepository,
	docRepo repositories.DocumentRepository,
	paymentRepo repositories.PaymentRepository,
	subRepo repositories.SubscriptionRepository,
	userRepo repositories.UserRepository,
	auditRepo repositories.AuditLogRepository,
	uow repositories.UnitOfWork,
	notifier Notifier,
) *ApplicationUsecase {
	return &ApplicationUsecase{
		appRepo:     appRepo,
		docRepo:     docRepo,
		paymentRepo: paymentRepo,
		subRepo:     subRepo,
		userRepo:    userRepo,
		auditRepo:   auditRepo,
		uow:         uow,
		notifier:    notifier,
	}
}

// SetIssuer wires the certificate issuance engine. Done after construction
// because the issuer also needs the application repository.
func (u *ApplicationUsecase) SetIssuer(issuer CertificateIssuer) {
	u.issuer = issuer
}

// Submit creates a new vendor application
func (u *ApplicationUsecase) Submit(ctx context.Context, actor entities.Actor, input *entities.SubmitApplicationInput) (*entities.VendorApplication, error) {
	if input.OwnerName == "" || input.BusinessName == "" || input.BusinessType == "" ||
		input.Phone == "" || input.Address == "" || input.City == "" || input.State == "" {
		return nil, domainerrors.Validation("required business fields are missing")
	}

	gender := entities.Gender(input.Gender)
	switch gender {
	case entities.GenderMale, entities.GenderFemale, entities.GenderOther:
	case "":
		gender = entities.GenderMale
	default:
		return nil, domainerrors.Validation("unknown gender value")
	}

	applicationID, err := generateApplicationID()
	if err != nil {
		return nil, err
	}

	status := entities.ApplicationStatusPaymentPending
	if input.DeferPayment {
		status = entities.ApplicationStatusPending
	}

	app := &entities.VendorApplication{
		ApplicationID: applicationID,
		OwnerName:     input.OwnerName,
		BusinessName:  input.BusinessName,
		BusinessType:  input.BusinessType,
		Gender:        gender,
		Email:         input.Email,
		Phone:         input.Phone,
		Address:       input.Address,
		City:          input.City,
		State:         input.State,
		Pincode:       input.Pincode,
		Status:        status,
		PaymentStatus: entities.PaymentStatusPending,
	}
	if input.BusinessDescription != "" {
		app.BusinessDescription.SetValid(input.BusinessDescription)
	}
	if input.AadhaarLast4 != "" {
		app.AadhaarLast4.SetValid(input.AadhaarLast4)
	}
	if actor.ID != uuid.Nil {
		userID := actor.ID
		app.UserID = &userID
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.appRepo.Create(txCtx, app); err != nil {
			return err
		}
		return u.auditRepo.Append(txCtx, &entities.AuditLogEntry{
			ApplicationID: &app.ID,
			EntityType:    "vendor_application",
			EntityID:      app.ID,
			ActorID:       actorIDPtr(actor),
			Action:        entities.AuditActionApplicationSubmitted,
			NewValues:     snapshotApplication(app),
		})
	})
	if err != nil {
		return nil, err
	}

	metrics.ApplicationsSubmitted.Inc()
	logger.Info(ctx, "application submitted",
		zap.String("application_id", app.ApplicationID),
		zap.String("status", string(app.Status)),
	)
	return app, nil
}

// ConfirmPayment transitions payment_pending → under_review once the gateway
// collaborator has verified the payment. Idempotent: confirming an already
// confirmed payment returns the current state and creates nothing new.
func (u *ApplicationUsecase) ConfirmPayment(ctx context.Context, actor entities.Actor, ref string, proof *entities.PaymentProof) (*entities.VendorApplication, error) {
	if proof.GatewayOrderID == "" || proof.GatewayPaymentID == "" {
		return nil, domainerrors.Validation("gateway order id and payment id are required")
	}
	if !proof.Verified {
		return nil, domainerrors.Validation("payment signature was not verified by the gateway")
	}

	var result *entities.VendorApplication
	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		app, err := u.resolveForUpdate(txCtx, ref)
		if err != nil {
			return err
		}

		// Idempotency: a second confirmation for a cleared payment is a no-op.
		if app.PaymentStatus == entities.PaymentStatusSuccess {
			result = app
			return nil
		}

		if app.Status != entities.ApplicationStatusPaymentPending && app.Status != entities.ApplicationStatusPending {
			return domainerrors.InvalidTransition(
				fmt.Sprintf("payment cannot be confirmed while application is %s", app.Status))
		}

		payment, err := u.recordPayment(txCtx, app, proof)
		if err != nil {
			return err
		}

		user, err := u.provisionUser(txCtx, app)
		if err != nil {
			return err
		}

		if err := u.ensureSubscription(txCtx, user, app, payment); err != nil {
			return err
		}

		oldValues := snapshotApplication(app)
		if !app.VendorID.Valid {
			vendorID, err := generateVendorID()
			if err != nil {
				return err
			}
			app.VendorID.SetValid(vendorID)
		}
		app.UserID = &user.ID
		app.PaymentStatus = entities.PaymentStatusSuccess
		app.Status = entities.ApplicationStatusUnderReview

		if err := u.appRepo.Update(txCtx, app); err != nil {
			return err
		}
		if err := u.auditRepo.Append(txCtx, &entities.AuditLogEntry{
			ApplicationID: &app.ID,
			EntityType:    "vendor_application",
			EntityID:      app.ID,
			ActorID:       actorIDPtr(actor),
			Action:        entities.AuditActionPaymentConfirmed,
			OldValues:     oldValues,
			NewValues:     snapshotApplication(app),
		}); err != nil {
			return err
		}
		result = app
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.PaymentsConfirmed.Inc()
	return result, nil
}

// VerifySection records admin sign-off on the personal or business section.
// Top-level status is unchanged.
func (u *ApplicationUsecase) VerifySection(ctx context.Context, actor entities.Actor, ref string, section entities.Section, notes string) (*entities.VendorApplication, error) {
	if !actor.Role.CanReview() {
		return nil, domainerrors.Forbidden("only reviewers may verify sections")
	}
	if !section.Valid() {
		return nil, domainerrors.Validation("section must be personal or business")
	}

	var result *entities.VendorApplication
	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		app, err := u.resolveForUpdate(txCtx, ref)
		if err != nil {
			return err
		}

		oldValues := snapshotApplication(app)
		now := time.Now()
		actorID := actor.ID
		if section == entities.SectionPersonal {
			app.PersonalVerified = true
			app.PersonalVerifiedBy = &actorID
			app.PersonalVerifiedAt = &now
			if notes != "" {
				app.PersonalVerifyNotes.SetValid(notes)
			}
		} else {
			app.BusinessVerified = true
			app.BusinessVerifiedBy = &actorID
			app.BusinessVerifiedAt = &now
			if notes != "" {
				app.BusinessVerifyNotes.SetValid(notes)
			}
		}

		if err := u.appRepo.Update(txCtx, app); err != nil {
			return err
		}
		if err := u.auditRepo.Append(txCtx, &entities.AuditLogEntry{
			ApplicationID: &app.ID,
			EntityType:    "vendor_application",
			EntityID:      app.ID,
			ActorID:       &actorID,
			Action:        entities.AuditActionSectionVerified,
			OldValues:     oldValues,
			NewValues:     snapshotApplication(app),
		}); err != nil {
			return err
		}
		result = app
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Decide records the final admin decision. Only legal from under_review.
// Approval requires both sections signed off and every document verified.
func (u *ApplicationUsecase) Decide(ctx context.Context, actor entities.Actor, ref string, input *entities.DecisionInput) (*entities.VendorApplication, error) {
	if !actor.Role.CanReview() {
		return nil, domainerrors.Forbidden("only reviewers may decide applications")
	}

	decision := entities.Decision(input.Decision)
	if decision != entities.DecisionApproved && decision != entities.DecisionRejected {
		return nil, domainerrors.Validation("decision must be approved or rejected")
	}
	if decision == entities.DecisionRejected && input.Reason == "" {
		return nil, domainerrors.Validation("a reason is required to reject an application")
	}

	var result *entities.VendorApplication
	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		app, err := u.resolveForUpdate(txCtx, ref)
		if err != nil {
			return err
		}

		if app.Status != entities.ApplicationStatusUnderReview {
			return domainerrors.InvalidTransition(
				fmt.Sprintf("decision is only allowed from under_review, current status is %s", app.Status))
		}

		if decision == entities.DecisionApproved {
			if err := u.checkApprovalPreconditions(txCtx, app); err != nil {
				return err
			}
		}

		oldValues := snapshotApplication(app)
		now := time.Now()
		actorID := actor.ID
		app.ReviewedBy = &actorID
		app.ReviewedAt = &now

		action := entities.AuditActionApplicationApproved
		if decision == entities.DecisionApproved {
			app.Status = entities.ApplicationStatusApproved
		} else {
			app.Status = entities.ApplicationStatusRejected
			app.RejectionReason.SetValid(input.Reason)
			action = entities.AuditActionApplicationRejected
		}

		// Optimistic version check; the loser of two concurrent decisions
		// gets a Conflict here.
		if err := u.appRepo.Update(txCtx, app); err != nil {
			return err
		}
		if err := u.auditRepo.Append(txCtx, &entities.AuditLogEntry{
			ApplicationID: &app.ID,
			EntityType:    "vendor_application",
			EntityID:      app.ID,
			ActorID:       &actorID,
			Action:        action,
			OldValues:     oldValues,
			NewValues:     snapshotApplication(app),
		}); err != nil {
			return err
		}
		result = app
		return nil
	})
	if err != nil {
		return nil, err
	}

	if decision == entities.DecisionApproved {
		metrics.ApplicationsApproved.Inc()
		u.issueCertificates(ctx, actor, result)
	} else {
		metrics.ApplicationsRejected.Inc()
	}
	return result, nil
}

// issueCertificates mints certificates after an approval has committed.
// Failure is recorded in the ledger, never unwinds the decision.
func (u *ApplicationUsecase) issueCertificates(ctx context.Context, actor entities.Actor, app *entities.VendorApplication) {
	if u.issuer == nil {
		return
	}
	if _, err := u.issuer.Generate(ctx, actor, app.ApplicationID); err != nil {
		logger.Error(ctx, "certificate generation after approval failed",
			zap.String("application_id", app.ApplicationID),
			zap.Error(err),
		)
		auditErr := u.auditRepo.Append(ctx, &entities.AuditLogEntry{
			ApplicationID: &app.ID,
			EntityType:    "vendor_application",
			EntityID:      app.ID,
			ActorID:       actorIDPtr(actor),
			Action:        entities.AuditActionCertificateGenFailed,
			NewValues:     map[string]interface{}{"error": err.Error()},
		})
		if auditErr != nil {
			logger.Error(ctx, "failed to audit certificate generation failure", zap.Error(auditErr))
		}
	}
}

// checkApprovalPreconditions enforces the approval gate: both sections signed
// off, at least the required document set present, and nothing unverified.
func (u *ApplicationUsecase) checkApprovalPreconditions(ctx context.Context, app *entities.VendorApplication) error {
	if !app.PersonalVerified || !app.BusinessVerified {
		return domainerrors.PreconditionFailed("both personal and business sections must be verified before approval")
	}

	docs, err := u.docRepo.GetByApplicationID(ctx, app.ID)
	if err != nil {
		return err
	}
	present := make(map[entities.DocumentType]bool, len(docs))
	for _, doc := range docs {
		if doc.Status != entities.DocumentStatusVerified {
			return domainerrors.PreconditionFailed(
				fmt.Sprintf("document %s is %s, all documents must be verified before approval", doc.DocumentType, doc.Status))
		}
		present[doc.DocumentType] = true
	}
	for _, required := range entities.RequiredDocumentTypes {
		if !present[required] {
			return domainerrors.PreconditionFailed(
				fmt.Sprintf("required document %s has not been uploaded", required))
		}
	}
	return nil
}

// GetByRef loads one application; vendors may only see their own.
func (u *ApplicationUsecase) GetByRef(ctx context.Context, actor entities.Actor, ref string) (*entities.VendorApplication, error) {
	app, err := u.resolve(ctx, ref)
	if err != nil {
		return nil, err
	}
	if err := ensureOwnerOrReviewer(actor, app); err != nil {
		return nil, err
	}

	docs, err := u.docRepo.GetByApplicationID(ctx, app.ID)
	if err != nil {
		return nil, err
	}
	app.Documents = docs
	return app, nil
}

// ListByUser lists the calling vendor's applications
func (u *ApplicationUsecase) ListByUser(ctx context.Context, actor entities.Actor) ([]*entities.VendorApplication, error) {
	return u.appRepo.GetByUserID(ctx, actor.ID)
}

// List returns applications for the admin dashboard
func (u *ApplicationUsecase) List(ctx context.Context, actor entities.Actor, filter entities.ApplicationFilter, limit, offset int) ([]*entities.VendorApplication, int, error) {
	if !actor.Role.CanReview() {
		return nil, 0, domainerrors.Forbidden("only reviewers may list applications")
	}
	return u.appRepo.List(ctx, filter, limit, offset)
}

// UpdateSubscriptionStatuses expires due subscriptions. Idempotent entry
// point for the scheduled sweep job.
func (u *ApplicationUsecase) UpdateSubscriptionStatuses(ctx context.Context) (int, error) {
	n, err := u.subRepo.ExpireDue(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		logger.Info(ctx, "subscriptions expired", zap.Int("count", n))
	}
	return n, nil
}

// recordPayment finds or creates the payment row for the proof and marks it
// successful.
func (u *ApplicationUsecase) recordPayment(ctx context.Context, app *entities.VendorApplication, proof *entities.PaymentProof) (*entities.Payment, error) {
	payment, err := u.paymentRepo.GetByGatewayOrderID(ctx, proof.GatewayOrderID)
	if err != nil {
		if err != domainerrors.ErrNotFound {
			return nil, err
		}
		// At most one successful payment clears an application. A fresh
		// gateway order must not mint a second one.
		if _, err := u.paymentRepo.GetSuccessfulByApplicationID(ctx, app.ID); err == nil {
			return nil, domainerrors.Conflict("application already has a successful payment")
		} else if err != domainerrors.ErrNotFound {
			return nil, err
		}
		amount := proof.Amount
		if amount == 0 {
			amount = DefaultApplicationFee
		}
		payment = &entities.Payment{
			ApplicationID:  app.ID,
			Amount:         amount,
			GatewayOrderID: proof.GatewayOrderID,
		}
		if err := u.paymentRepo.Create(ctx, payment); err != nil {
			return nil, err
		}
	}
	if payment.ApplicationID != app.ID {
		return nil, domainerrors.Validation("gateway order belongs to a different application")
	}

	now := time.Now()
	payment.GatewayPaymentID.SetValid(proof.GatewayPaymentID)
	if proof.GatewaySignature != "" {
		payment.GatewaySignature.SetValid(proof.GatewaySignature)
	}
	payment.Status = entities.PaymentStatusSuccess
	payment.PaidAt = &now
	if err := u.paymentRepo.Update(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// provisionUser returns the owning user, creating a vendor account with a
// temporary password when none exists yet.
func (u *ApplicationUsecase) provisionUser(ctx context.Context, app *entities.VendorApplication) (*entities.User, error) {
	if app.UserID != nil {
		user, err := u.userRepo.GetByID(ctx, *app.UserID)
		if err == nil {
			return user, nil
		}
		if err != domainerrors.ErrNotFound {
			return nil, err
		}
	}

	user, err := u.userRepo.GetByEmail(ctx, app.Email)
	if err == nil {
		return user, nil
	}
	if err != domainerrors.ErrNotFound {
		return nil, err
	}

	tempPassword, err := crypto.GenerateRandomToken(8)
	if err != nil {
		return nil, err
	}
	hash, err := crypto.HashPassword(tempPassword)
	if err != nil {
		return nil, err
	}
	user = &entities.User{
		Email:        app.Email,
		Name:         app.OwnerName,
		Phone:        app.Phone,
		PasswordHash: hash,
		Role:         entities.UserRoleVendor,
		IsActive:     true,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ensureSubscription creates the yearly subscription unless the vendor
// already holds an active one.
func (u *ApplicationUsecase) ensureSubscription(ctx context.Context, user *entities.User, app *entities.VendorApplication, payment *entities.Payment) error {
	_, err := u.subRepo.GetActiveByUserID(ctx, user.ID)
	if err == nil {
		return nil
	}
	if err != domainerrors.ErrNotFound {
		return err
	}

	now := time.Now()
	return u.subRepo.Create(ctx, &entities.VendorSubscription{
		UserID:        user.ID,
		ApplicationID: app.ID,
		PaymentID:     payment.ID,
		Status:        entities.SubscriptionStatusActive,
		ActivatedAt:   now,
		ExpiresAt:     now.AddDate(1, 0, 0),
	})
}

// resolve loads an application by external application id or internal uuid.
func (u *ApplicationUsecase) resolve(ctx context.Context, ref string) (*entities.VendorApplication, error) {
	if id, err := uuid.Parse(ref); err == nil {
		return u.appRepo.GetByID(ctx, id)
	}
	return u.appRepo.GetByApplicationID(ctx, ref)
}

// resolveForUpdate resolves the reference and reloads it with a row lock so
// concurrent transitions on the same application serialize.
func (u *ApplicationUsecase) resolveForUpdate(ctx context.Context, ref string) (*entities.VendorApplication, error) {
	app, err := u.resolve(ctx, ref)
	if err != nil {
		return nil, err
	}
	return u.appRepo.LockByID(ctx, app.ID)
}

func ensureOwnerOrReviewer(actor entities.Actor, app *entities.VendorApplication) error {
	if actor.Role.CanReview() {
		return nil
	}
	if app.UserID != nil && *app.UserID == actor.ID {
		return nil
	}
	return domainerrors.Forbidden("you do not have access to this application")
}

func actorIDPtr(actor entities.Actor) *uuid.UUID {
	if actor.ID == uuid.Nil {
		return nil
	}
	id := actor.ID
	return &id
}

// snapshotApplication captures the audit-relevant fields of an application.
func snapshotApplication(app *entities.VendorApplication) map[string]interface{} {
	snap := map[string]interface{}{
		"application_id":    app.ApplicationID,
		"status":            string(app.Status),
		"payment_status":    string(app.PaymentStatus),
		"personal_verified": app.PersonalVerified,
		"business_verified": app.BusinessVerified,
		"business_name":     app.BusinessName,
		"city":              app.City,
		"gender":            string(app.Gender),
	}
	if app.VendorID.Valid {
		snap["vendor_id"] = app.VendorID.String
	}
	if app.RejectionReason.Valid {
		snap["rejection_reason"] = app.RejectionReason.String
	}
	return snap
}
