package usecases

import (
	"context"

	"github.com/google/uuid"

	"github.com/Inventrix-AI/vendor-Hub-sub001/internal/domain/entities"
	domainerrors "github.com/Inventrix-AI/vendor-Hub-sub001/internal/domain/errors"
	"github.com/Inventrix-AI/vendor-Hub-sub001/internal/domain/repositories"
	"github.com/Inventrix-AI/vendor-Hub-sub001/pkg/crypto"
)

// AdminUsecase handles admin user management and audit reads
type AdminUsecase struct {
	userRepo  repositories.UserRepository
	appRepo   repositories.ApplicationRepository
	auditRepo repositories.AuditLogRepository
	uow       repositories.UnitOfWork
}

// NewAdminUsecase creates a new admin usecase
func NewAdminUsecase(
	userRepo repositories.UserRepository,
	appRepo repositories.ApplicationRepository,
	auditRepo repositories.AuditLogRepository,
	uow repositories.UnitOfWork,
) *AdminUsecase {
	return &AdminUsecase{
		userRepo:  userRepo,
		appRepo:   appRepo,
		auditRepo: auditRepo,
		uow:       uow,
	}
}

// CreateUser creates a staff or vendor user. Super admin only.
func (u *AdminUsecase) CreateUser(ctx context.Context, actor entities.Actor, input *entities.CreateUserInput) (*entities.User, error) {
	if !actor.Role.CanManageUsers() {
		return nil, domainerrors.Forbidden("only a super admin may create users")
	}
	role := entities.UserRole(input.Role)
	if !role.Valid() {
		return nil, domainerrors.Validation("unknown role")
	}

	hash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Email:        input.Email,
		Name:         input.Name,
		Phone:        input.Phone,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}
	actorID := actor.ID
	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.userRepo.Create(txCtx, user); err != nil {
			return err
		}
		return u.auditRepo.Append(txCtx, &entities.AuditLogEntry{
			EntityType: "user",
			EntityID:   user.ID,
			ActorID:    &actorID,
			Action:     entities.AuditActionUserCreated,
			NewValues: map[string]interface{}{
				"email": user.Email,
				"role":  string(user.Role),
			},
		})
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// DeactivateUser disables a user account. Users are never deleted, only
// deactivated, so their history stays attributable.
func (u *AdminUsecase) DeactivateUser(ctx context.Context, actor entities.Actor, userID uuid.UUID) error {
	if !actor.Role.CanManageUsers() {
		return domainerrors.Forbidden("only a super admin may deactivate users")
	}
	if userID == actor.ID {
		return domainerrors.Validation("you cannot deactivate your own account")
	}

	actorID := actor.ID
	return u.uow.Do(ctx, func(txCtx context.Context) error {
		user, err := u.userRepo.GetByID(txCtx, userID)
		if err != nil {
			return err
		}
		if err := u.userRepo.Deactivate(txCtx, userID); err != nil {
			return err
		}
		return u.auditRepo.Append(txCtx, &entities.AuditLogEntry{
			EntityType: "user",
			EntityID:   userID,
			ActorID:    &actorID,
			Action:     entities.AuditActionUserDeactivated,
			OldValues:  map[string]interface{}{"is_active": user.IsActive},
			NewValues:  map[string]interface{}{"is_active": false},
		})
	})
}

// ListUsers returns users with pagination. Super admin only.
func (u *AdminUsecase) ListUsers(ctx context.Context, actor entities.Actor, limit, offset int) ([]*entities.User, int, error) {
	if !actor.Role.CanManageUsers() {
		return nil, 0, domainerrors.Forbidden("only a super admin may list users")
	}
	return u.userRepo.List(ctx, limit, offset)
}

// ListAuditLog returns the full ledger of one application, time ordered.
func (u *AdminUsecase) ListAuditLog(ctx context.Context, actor entities.Actor, ref string) ([]*entities.AuditLogEntry, error) {
	if !actor.Role.CanReview() {
		return nil, domainerrors.Forbidden("only reviewers may read the audit log")
	}

	var app *entities.VendorApplication
	var err error
	if id, parseErr := uuid.Parse(ref); parseErr == nil {
		app, err = u.appRepo.GetByID(ctx, id)
	} else {
		app, err = u.appRepo.GetByApplicationID(ctx, ref)
	}
	if err != nil {
		return nil, err
	}
	return u.auditRepo.ListByApplicationID(ctx, app.ID)
}
