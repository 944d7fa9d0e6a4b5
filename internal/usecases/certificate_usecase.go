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
	"github.com/Inventrix-AI/vendor-Hub-sub001/pkg/logger"
)

// CertificateUsecase is the certificate issuance engine
type CertificateUsecase struct {
	certRepo  repositories.CertificateRepository
	appRepo   repositories.ApplicationRepository
	auditRepo repositories.AuditLogRepository
	uow       repositories.UnitOfWork
	renderer  Renderer
}

// NewCertificateUsecase creates a new certificate usecase
func NewCertificateUsecase(
	certRepo repositories.CertificateRepository,
	appRepo repositories.ApplicationRepository,
	auditRepo repositories.AuditLogRepository,
	uow repositories.UnitOfWork,
	renderer Renderer,
) *CertificateUsecase {
	return &CertificateUsecase{
		certRepo:  certRepo,
		appRepo:   appRepo,
		auditRepo: auditRepo,
		uow:       uow,
		renderer:  renderer,
	}
}

// Generate mints the certificate set for an approved application. Idempotent:
// when active certificates already exist they are returned unchanged.
func (u *CertificateUsecase) Generate(ctx context.Context, actor entities.Actor, ref string) ([]*entities.Certificate, error) {
	var result []*entities.Certificate
	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		app, err := u.lockApplication(txCtx, ref)
		if err != nil {
			return err
		}
		if app.Status != entities.ApplicationStatusApproved {
			return domainerrors.InvalidTransition(
				fmt.Sprintf("certificates can only be generated for approved applications, status is %s", app.Status))
		}

		existing, err := u.certRepo.GetActiveByApplicationID(txCtx, app.ID)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			result = existing
			return nil
		}

		minted, err := u.mintSet(txCtx, actor, app)
		if err != nil {
			return err
		}
		result = minted
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Regenerate revokes every existing certificate and mints a fresh set with
// new numbers. Admin only. Revoke and mint run in one transaction so a mint
// failure can never leave the application stripped of its certificates.
func (u *CertificateUsecase) Regenerate(ctx context.Context, actor entities.Actor, ref string, reason string) ([]*entities.Certificate, error) {
	if !actor.Role.CanManageCertificates() {
		return nil, domainerrors.Forbidden("only admins may regenerate certificates")
	}
	if reason == "" {
		reason = "certificate regeneration"
	}

	var result []*entities.Certificate
	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		app, err := u.lockApplication(txCtx, ref)
		if err != nil {
			return err
		}
		if app.Status != entities.ApplicationStatusApproved {
			return domainerrors.InvalidTransition(
				fmt.Sprintf("certificates can only be regenerated for approved applications, status is %s", app.Status))
		}

		active, err := u.certRepo.GetActiveByApplicationID(txCtx, app.ID)
		if err != nil {
			return err
		}
		actorID := actor.ID
		for _, cert := range active {
			oldValues := snapshotCertificate(cert)
			if err := u.certRepo.Revoke(txCtx, cert.ID, reason); err != nil {
				return err
			}
			cert.Status = entities.CertificateStatusRevoked
			cert.RevokeReason.SetValid(reason)
			if err := u.auditRepo.Append(txCtx, &entities.AuditLogEntry{
				ApplicationID: &app.ID,
				EntityType:    "certificate",
				EntityID:      cert.ID,
				ActorID:       &actorID,
				Action:        entities.AuditActionCertificateRevoked,
				OldValues:     oldValues,
				NewValues:     snapshotCertificate(cert),
			}); err != nil {
				return err
			}
			metrics.CertificatesRevoked.Inc()
		}

		minted, err := u.mintSet(txCtx, actor, app)
		if err != nil {
			return err
		}
		result = minted
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// mintSet creates one certificate per determined type. Certificate numbers
// are collision-checked against the store with a bounded retry; the unique
// index backstops any race the check misses.
func (u *CertificateUsecase) mintSet(ctx context.Context, actor entities.Actor, app *entities.VendorApplication) ([]*entities.Certificate, error) {
	types := DetermineCertificateTypes(app.Gender, app.City)
	now := time.Now()

	certs := make([]*entities.Certificate, 0, len(types))
	for _, certType := range types {
		number, err := u.uniqueCertificateNumber(ctx)
		if err != nil {
			return nil, fmt.Errorf("minting %s certificate: %w", certType, err)
		}
		cert := &entities.Certificate{
			ApplicationID:     app.ID,
			CertificateNumber: number,
			CertificateType:   certType,
			Status:            entities.CertificateStatusActive,
			IssuedAt:          now,
			ValidUntil:        now.AddDate(1, 0, 0),
		}
		if err := u.certRepo.Create(ctx, cert); err != nil {
			return nil, fmt.Errorf("minting %s certificate: %w", certType, err)
		}
		if err := u.auditRepo.Append(ctx, &entities.AuditLogEntry{
			ApplicationID: &app.ID,
			EntityType:    "certificate",
			EntityID:      cert.ID,
			ActorID:       actorIDPtr(actor),
			Action:        entities.AuditActionCertificateGenerated,
			NewValues:     snapshotCertificate(cert),
		}); err != nil {
			return nil, err
		}
		metrics.CertificatesIssued.Inc()
		certs = append(certs, cert)
	}

	logger.Info(ctx, "certificates minted",
		zap.String("application_id", app.ApplicationID),
		zap.Int("count", len(certs)),
	)
	return certs, nil
}

func (u *CertificateUsecase) uniqueCertificateNumber(ctx context.Context) (string, error) {
	for attempt := 0; attempt < certNumberMaxAttempts; attempt++ {
		number, err := generateCertificateNumber()
		if err != nil {
			return "", err
		}
		exists, err := u.certRepo.NumberExists(ctx, number)
		if err != nil {
			return "", err
		}
		if !exists {
			return number, nil
		}
	}
	return "", domainerrors.Conflict("could not generate a unique certificate number")
}

// VerifyCertificate is the public, unauthenticated lookup by certificate
// number. It never exposes internal errors or non-public applicant fields.
func (u *CertificateUsecase) VerifyCertificate(ctx context.Context, certificateNumber string) *entities.VerificationResult {
	cert, err := u.certRepo.GetByNumber(ctx, certificateNumber)
	if err != nil {
		if err != domainerrors.ErrNotFound {
			logger.Error(ctx, "certificate lookup failed", zap.Error(err))
		}
		return &entities.VerificationResult{
			Valid:   false,
			Status:  entities.VerificationStatusNotFound,
			Message: "No certificate found for this number",
		}
	}

	app, err := u.appRepo.GetByID(ctx, cert.ApplicationID)
	if err != nil {
		logger.Error(ctx, "application lookup for certificate failed", zap.Error(err))
		return &entities.VerificationResult{
			Valid:   false,
			Status:  entities.VerificationStatusNotFound,
			Message: "No certificate found for this number",
		}
	}

	publicFields := &entities.CertificatePublicFields{
		HolderName:        app.OwnerName,
		BusinessName:      app.BusinessName,
		City:              app.City,
		State:             app.State,
		CertificateType:   cert.CertificateType,
		CertificateNumber: cert.CertificateNumber,
		IssuedAt:          cert.IssuedAt,
		ValidUntil:        cert.ValidUntil,
	}

	switch {
	case cert.Status == entities.CertificateStatusRevoked:
		return &entities.VerificationResult{
			Valid:        false,
			Status:       entities.VerificationStatusRevoked,
			Message:      "This certificate has been revoked",
			PublicFields: publicFields,
		}
	case cert.Status == entities.CertificateStatusExpired || time.Now().After(cert.ValidUntil):
		return &entities.VerificationResult{
			Valid:        false,
			Status:       entities.VerificationStatusExpired,
			Message:      "This certificate has expired",
			PublicFields: publicFields,
		}
	default:
		return &entities.VerificationResult{
			Valid:        true,
			Status:       entities.VerificationStatusActive,
			Message:      "Certificate is valid",
			PublicFields: publicFields,
		}
	}
}

// Download renders the certificate and bumps the download counter.
// Counter failures are ignored; rendering failures are a DependencyFailure.
func (u *CertificateUsecase) Download(ctx context.Context, actor entities.Actor, certificateID uuid.UUID) ([]byte, error) {
	cert, err := u.certRepo.GetByID(ctx, certificateID)
	if err != nil {
		return nil, err
	}
	app, err := u.appRepo.GetByID(ctx, cert.ApplicationID)
	if err != nil {
		return nil, err
	}
	if err := ensureOwnerOrReviewer(actor, app); err != nil {
		return nil, err
	}

	data := &CertificateRenderData{
		CertificateNumber: cert.CertificateNumber,
		CertificateType:   string(cert.CertificateType),
		HolderName:        app.OwnerName,
		BusinessName:      app.BusinessName,
		Address:           app.Address,
		City:              app.City,
		State:             app.State,
		IssuedAt:          cert.IssuedAt.Format("02 Jan 2006"),
		ValidUntil:        cert.ValidUntil.Format("02 Jan 2006"),
	}
	rendered, err := u.renderer.RenderCertificate(ctx, data)
	if err != nil {
		return nil, domainerrors.DependencyFailure("certificate rendering failed", err)
	}

	if err := u.certRepo.IncrementDownloadCount(ctx, cert.ID); err != nil {
		logger.Warn(ctx, "download counter increment failed",
			zap.String("certificate_number", cert.CertificateNumber),
			zap.Error(err),
		)
	}
	return rendered, nil
}

// ListByApplication lists all certificates of one application
func (u *CertificateUsecase) ListByApplication(ctx context.Context, actor entities.Actor, ref string) ([]*entities.Certificate, error) {
	app, err := u.resolveApplication(ctx, ref)
	if err != nil {
		return nil, err
	}
	if err := ensureOwnerOrReviewer(actor, app); err != nil {
		return nil, err
	}
	return u.certRepo.GetByApplicationID(ctx, app.ID)
}

func (u *CertificateUsecase) resolveApplication(ctx context.Context, ref string) (*entities.VendorApplication, error) {
	if id, err := uuid.Parse(ref); err == nil {
		return u.appRepo.GetByID(ctx, id)
	}
	return u.appRepo.GetByApplicationID(ctx, ref)
}

func (u *CertificateUsecase) lockApplication(ctx context.Context, ref string) (*entities.VendorApplication, error) {
	app, err := u.resolveApplication(ctx, ref)
	if err != nil {
		return nil, err
	}
	return u.appRepo.LockByID(ctx, app.ID)
}

func snapshotCertificate(cert *entities.Certificate) map[string]interface{} {
	snap := map[string]interface{}{
		"certificate_number": cert.CertificateNumber,
		"certificate_type":   string(cert.CertificateType),
		"status":             string(cert.Status),
		"issued_at":          cert.IssuedAt,
		"valid_until":        cert.ValidUntil,
	}
	if cert.RevokeReason.Valid {
		snap["revoke_reason"] = cert.RevokeReason.String
	}
	return snap
}
