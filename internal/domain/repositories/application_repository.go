package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/Inventrix-AI/vendor-Hub-sub001/internal/domain/entities"
)

// ApplicationRepository defines vendor application data operations
type ApplicationRepository interface {
	Create(ctx context.Context, app *entities.VendorApplication) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.VendorApplication, error)
	GetByApplicationID(ctx context.Context, applicationID string) (*entities.VendorApplication, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.VendorApplication, error)
	// Update persists the entity with an optimistic lock check on LockVersion.
	// Returns domain Conflict when a concurrent writer got there first.
	Update(ctx context.Context, app *entities.VendorApplication) error
	// LockByID loads the application with a row-level lock inside the current
	// transaction so transition operations on one application serialize.
	LockByID(ctx context.Context, id uuid.UUID) (*entities.VendorApplication, error)
	List(ctx context.Context, filter entities.ApplicationFilter, limit, offset int) ([]*entities.VendorApplication, int, error)
}

// DocumentRepository defines document data operations
type DocumentRepository interface {
	Create(ctx context.Context, doc *entities.Document) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Document, error)
	GetByApplicationID(ctx context.Context, applicationID uuid.UUID) ([]*entities.Document, error)
	// UpdateStatusFrom performs a compare-and-set on verification status so
	// concurrent admin actions on the same document cannot both win. Returns
	// domain Conflict when the expected status no longer matches.
	UpdateStatusFrom(ctx context.Context, doc *entities.Document, expected entities.DocumentStatus) error
}

// PaymentRepository defines payment data operations
type PaymentRepository interface {
	Create(ctx context.Context, payment *entities.Payment) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Payment, error)
	GetByGatewayOrderID(ctx context.Context, orderID string) (*entities.Payment, error)
	GetSuccessfulByApplicationID(ctx context.Context, applicationID uuid.UUID) (*entities.Payment, error)
	Update(ctx context.Context, payment *entities.Payment) error
}

// SubscriptionRepository defines vendor subscription data operations
type SubscriptionRepository interface {
	Create(ctx context.Context, sub *entities.VendorSubscription) error
	GetActiveByUserID(ctx context.Context, userID uuid.UUID) (*entities.VendorSubscription, error)
	// ExpireDue marks active subscriptions whose expiry has passed as expired
	// and returns how many rows changed. Safe to call repeatedly.
	ExpireDue(ctx context.Context) (int, error)
}

// CertificateRepository defines certificate data operations
type CertificateRepository interface {
	Create(ctx context.Context, cert *entities.Certificate) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Certificate, error)
	GetByNumber(ctx context.Context, certificateNumber string) (*entities.Certificate, error)
	GetActiveByApplicationID(ctx context.Context, applicationID uuid.UUID) ([]*entities.Certificate, error)
	GetByApplicationID(ctx context.Context, applicationID uuid.UUID) ([]*entities.Certificate, error)
	NumberExists(ctx context.Context, certificateNumber string) (bool, error)
	Revoke(ctx context.Context, id uuid.UUID, reason string) error
	IncrementDownloadCount(ctx context.Context, id uuid.UUID) error
}

// AuditLogRepository defines the append-only audit ledger.
// There is deliberately no update or delete operation.
type AuditLogRepository interface {
	Append(ctx context.Context, entry *entities.AuditLogEntry) error
	ListByApplicationID(ctx context.Context, applicationID uuid.UUID) ([]*entities.AuditLogEntry, error)
}

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
	Deactivate(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*entities.User, int, error)
}
