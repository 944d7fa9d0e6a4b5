package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"github.com/Inventrix-AI/vendor-Hub-sub001/internal/domain/entities"
	domainerrors "github.com/Inventrix-AI/vendor-Hub-sub001/internal/domain/errors"
	"github.com/Inventrix-AI/vendor-Hub-sub001/internal/infrastructure/models"
)

// PaymentRepository implements payment data operations
type PaymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Create creates a new payment
func (r *PaymentRepository) Create(ctx context.Context, payment *entities.Payment) error {
	m := toPaymentModel(payment)
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.Conflict("gateway order already recorded")
		}
		return err
	}
	payment.ID = m.ID
	payment.CreatedAt = m.CreatedAt
	payment.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a payment by ID
func (r *PaymentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Payment, error) {
	var m models.Payment
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toPaymentEntity(&m), nil
}

// GetByGatewayOrderID gets a payment by the gateway order reference
func (r *PaymentRepository) GetByGatewayOrderID(ctx context.Context, orderID string) (*entities.Payment, error) {
	var m models.Payment
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("gateway_order_id = ?", orderID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toPaymentEntity(&m), nil
}

// GetSuccessfulByApplicationID gets the successful payment of an application,
// if any. At most one payment transitions an application out of
// payment_pending.
func (r *PaymentRepository) GetSuccessfulByApplicationID(ctx context.Context, applicationID uuid.UUID) (*entities.Payment, error) {
	var m models.Payment
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).
		Where("application_id = ? AND status = ?", applicationID, string(entities.PaymentStatusSuccess)).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toPaymentEntity(&m), nil
}

// Update persists payment mutations
func (r *PaymentRepository) Update(ctx context.Context, payment *entities.Payment) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Payment{}).
		Where("id = ?", payment.ID).
		Updates(map[string]interface{}{
			"gateway_payment_id": payment.GatewayPaymentID.Ptr(),
			"gateway_signature":  payment.GatewaySignature.Ptr(),
			"status":             string(payment.Status),
			"paid_at":            payment.PaidAt,
			"updated_at":         time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func toPaymentModel(p *entities.Payment) *models.Payment {
	m := &models.Payment{
		ID:               p.ID,
		ApplicationID:    p.ApplicationID,
		Amount:           p.Amount,
		Currency:         p.Currency,
		GatewayOrderID:   p.GatewayOrderID,
		GatewayPaymentID: p.GatewayPaymentID.Ptr(),
		GatewaySignature: p.GatewaySignature.Ptr(),
		Status:           string(p.Status),
		PaidAt:           p.PaidAt,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.Currency == "" {
		m.Currency = "INR"
	}
	return m
}

func toPaymentEntity(m *models.Payment) *entities.Payment {
	return &entities.Payment{
		ID:               m.ID,
		ApplicationID:    m.ApplicationID,
		Amount:           m.Amount,
		Currency:         m.Currency,
		GatewayOrderID:   m.GatewayOrderID,
		GatewayPaymentID: null.StringFromPtr(m.GatewayPaymentID),
		GatewaySignature: null.StringFromPtr(m.GatewaySignature),
		Status:           entities.PaymentStatus(m.Status),
		PaidAt:           m.PaidAt,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}
