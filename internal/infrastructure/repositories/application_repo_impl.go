package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Inventrix-AI/vendor-Hub-sub001/internal/domain/entities"
	domainerrors "github.com/Inventrix-AI/vendor-Hub-sub001/internal/domain/errors"
	"github.com/Inventrix-AI/vendor-Hub-sub001/internal/infrastructure/models"
)

// ApplicationRepository implements vendor application data operations
type ApplicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create creates a new vendor application
func (r *ApplicationRepository) Create(ctx context.Context, app *entities.VendorApplication) error {
	m := toApplicationModel(app)
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.Conflict("application id already exists")
		}
		return err
	}
	app.ID = m.ID
	app.CreatedAt = m.CreatedAt
	app.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets an application by its internal ID
func (r *ApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.VendorApplication, error) {
	var m models.VendorApplication
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toApplicationEntity(&m), nil
}

// GetByApplicationID gets an application by its external application id
func (r *ApplicationRepository) GetByApplicationID(ctx context.Context, applicationID string) (*entities.VendorApplication, error) {
	var m models.VendorApplication
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("application_id = ?", applicationID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toApplicationEntity(&m), nil
}

// GetByUserID gets all applications owned by a user
func (r *ApplicationRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.VendorApplication, error) {
	var ms []models.VendorApplication
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	apps := make([]*entities.VendorApplication, 0, len(ms))
	for i := range ms {
		apps = append(apps, toApplicationEntity(&ms[i]))
	}
	return apps, nil
}

// LockByID loads the application with a row-level lock inside the current
// transaction. FOR UPDATE is a no-op on sqlite (single writer anyway).
func (r *ApplicationRepository) LockByID(ctx context.Context, id uuid.UUID) (*entities.VendorApplication, error) {
	var m models.VendorApplication
	db := GetDB(ctx, r.db).WithContext(ctx)
	if db.Dialector.Name() == "postgres" {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	if err := db.Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toApplicationEntity(&m), nil
}

// Update persists the entity guarded by an optimistic version check. The
// loser of a concurrent transition race gets a Conflict, never a silent
// overwrite.
func (r *ApplicationRepository) Update(ctx context.Context, app *entities.VendorApplication) error {
	db := GetDB(ctx, r.db)
	updates := map[string]interface{}{
		"vendor_id":             app.VendorID.Ptr(),
		"user_id":               app.UserID,
		"business_description":  app.BusinessDescription.Ptr(),
		"gender":                string(app.Gender),
		"status":                string(app.Status),
		"payment_status":        string(app.PaymentStatus),
		"personal_verified":     app.PersonalVerified,
		"personal_verified_by":  app.PersonalVerifiedBy,
		"personal_verified_at":  app.PersonalVerifiedAt,
		"personal_verify_notes": app.PersonalVerifyNotes.Ptr(),
		"business_verified":     app.BusinessVerified,
		"business_verified_by":  app.BusinessVerifiedBy,
		"business_verified_at":  app.BusinessVerifiedAt,
		"business_verify_notes": app.BusinessVerifyNotes.Ptr(),
		"reviewed_by":           app.ReviewedBy,
		"reviewed_at":           app.ReviewedAt,
		"rejection_reason":      app.RejectionReason.Ptr(),
		"lock_version":          app.LockVersion + 1,
		"updated_at":            time.Now(),
	}
	result := db.WithContext(ctx).Model(&models.VendorApplication{}).
		Where("id = ? AND lock_version = ?", app.ID, app.LockVersion).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Either gone or a concurrent writer bumped the version first.
		var count int64
		if err := db.WithContext(ctx).Model(&models.VendorApplication{}).
			Where("id = ?", app.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domainerrors.ErrNotFound
		}
		return domainerrors.Conflict("application was modified concurrently")
	}
	app.LockVersion++
	return nil
}

// List returns applications matching the filter with pagination
func (r *ApplicationRepository) List(ctx context.Context, filter entities.ApplicationFilter, limit, offset int) ([]*entities.VendorApplication, int, error) {
	db := GetDB(ctx, r.db).WithContext(ctx).Model(&models.VendorApplication{})
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.PaymentStatus != "" {
		db = db.Where("payment_status = ?", filter.PaymentStatus)
	}
	if filter.City != "" {
		db = db.Where("LOWER(city) = LOWER(?)", filter.City)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		db = db.Where("business_name LIKE ? OR owner_name LIKE ? OR application_id LIKE ?", like, like, like)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.VendorApplication
	q := db.Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	if err := q.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	apps := make([]*entities.VendorApplication, 0, len(ms))
	for i := range ms {
		apps = append(apps, toApplicationEntity(&ms[i]))
	}
	return apps, int(total), nil
}

func toApplicationModel(a *entities.VendorApplication) *models.VendorApplication {
	m := &models.VendorApplication{
		ID:                  a.ID,
		ApplicationID:       a.ApplicationID,
		VendorID:            a.VendorID.Ptr(),
		UserID:              a.UserID,
		OwnerName:           a.OwnerName,
		BusinessName:        a.BusinessName,
		BusinessType:        a.BusinessType,
		BusinessDescription: a.BusinessDescription.Ptr(),
		Gender:              string(a.Gender),
		Email:               a.Email,
		Phone:               a.Phone,
		Address:             a.Address,
		City:                a.City,
		State:               a.State,
		Pincode:             a.Pincode,
		AadhaarLast4:        a.AadhaarLast4.Ptr(),
		Status:              string(a.Status),
		PaymentStatus:       string(a.PaymentStatus),
		PersonalVerified:    a.PersonalVerified,
		PersonalVerifiedBy:  a.PersonalVerifiedBy,
		PersonalVerifiedAt:  a.PersonalVerifiedAt,
		PersonalVerifyNotes: a.PersonalVerifyNotes.Ptr(),
		BusinessVerified:    a.BusinessVerified,
		BusinessVerifiedBy:  a.BusinessVerifiedBy,
		BusinessVerifiedAt:  a.BusinessVerifiedAt,
		BusinessVerifyNotes: a.BusinessVerifyNotes.Ptr(),
		ReviewedBy:          a.ReviewedBy,
		ReviewedAt:          a.ReviewedAt,
		RejectionReason:     a.RejectionReason.Ptr(),
		LockVersion:         a.LockVersion,
		CreatedAt:           a.CreatedAt,
		UpdatedAt:           a.UpdatedAt,
	}
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return m
}

func toApplicationEntity(m *models.VendorApplication) *entities.VendorApplication {
	return &entities.VendorApplication{
		ID:                  m.ID,
		ApplicationID:       m.ApplicationID,
		VendorID:            null.StringFromPtr(m.VendorID),
		UserID:              m.UserID,
		OwnerName:           m.OwnerName,
		BusinessName:        m.BusinessName,
		BusinessType:        m.BusinessType,
		BusinessDescription: null.StringFromPtr(m.BusinessDescription),
		Gender:              entities.Gender(m.Gender),
		Email:               m.Email,
		Phone:               m.Phone,
		Address:             m.Address,
		City:                m.City,
		State:               m.State,
		Pincode:             m.Pincode,
		AadhaarLast4:        null.StringFromPtr(m.AadhaarLast4),
		Status:              entities.ApplicationStatus(m.Status),
		PaymentStatus:       entities.PaymentStatus(m.PaymentStatus),
		PersonalVerified:    m.PersonalVerified,
		PersonalVerifiedBy:  m.PersonalVerifiedBy,
		PersonalVerifiedAt:  m.PersonalVerifiedAt,
		PersonalVerifyNotes: null.StringFromPtr(m.PersonalVerifyNotes),
		BusinessVerified:    m.BusinessVerified,
		BusinessVerifiedBy:  m.BusinessVerifiedBy,
		BusinessVerifiedAt:  m.BusinessVerifiedAt,
		BusinessVerifyNotes: null.StringFromPtr(m.BusinessVerifyNotes),
		ReviewedBy:          m.ReviewedBy,
		ReviewedAt:          m.ReviewedAt,
		RejectionReason:     null.StringFromPtr(m.RejectionReason),
		LockVersion:         m.LockVersion,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}
