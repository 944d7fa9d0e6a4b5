package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Inventrix-AI/vendor-Hub-sub001/internal/domain/entities"
	domainerrors "github.com/Inventrix-AI/vendor-Hub-sub001/internal/domain/errors"
	"github.com/Inventrix-AI/vendor-Hub-sub001/internal/infrastructure/models"
)

// SubscriptionRepository implements vendor subscription data operations
type SubscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates a new subscription repository
func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// Create creates a new subscription
func (r *SubscriptionRepository) Create(ctx context.Context, sub *entities.VendorSubscription) error {
	m := &models.VendorSubscription{
		ID:            sub.ID,
		UserID:        sub.UserID,
		ApplicationID: sub.ApplicationID,
		PaymentID:     sub.PaymentID,
		Status:        string(sub.Status),
		ActivatedAt:   sub.ActivatedAt,
		ExpiresAt:     sub.ExpiresAt,
	}
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	sub.ID = m.ID
	sub.CreatedAt = m.CreatedAt
	sub.UpdatedAt = m.UpdatedAt
	return nil
}

// GetActiveByUserID gets the active subscription of a user
func (r *SubscriptionRepository) GetActiveByUserID(ctx context.Context, userID uuid.UUID) (*entities.VendorSubscription, error) {
	var m models.VendorSubscription
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, string(entities.SubscriptionStatusActive)).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toSubscriptionEntity(&m), nil
}

// ExpireDue marks active subscriptions past their expiry as expired.
// Idempotent; called by the scheduled sweep job.
func (r *SubscriptionRepository) ExpireDue(ctx context.Context) (int, error) {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.VendorSubscription{}).
		Where("status = ? AND expires_at <= ?", string(entities.SubscriptionStatusActive), time.Now()).
		Updates(map[string]interface{}{
			"status":     string(entities.SubscriptionStatusExpired),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return int(result.RowsAffected), nil
}

func toSubscriptionEntity(m *models.VendorSubscription) *entities.VendorSubscription {
	return &entities.VendorSubscription{
		ID:            m.ID,
		UserID:        m.UserID,
		ApplicationID: m.ApplicationID,
		PaymentID:     m.PaymentID,
		Status:        entities.SubscriptionStatus(m.Status),
		ActivatedAt:   m.ActivatedAt,
		ExpiresAt:     m.ExpiresAt,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
