package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/Inventrix-AI/vendor-Hub-sub001/internal/domain/entities"
	domainerrors "github.com/Inventrix-AI/vendor-Hub-sub001/internal/domain/errors"
	"github.com/Inventrix-AI/vendor-Hub-sub001/internal/interfaces/http/middleware"
	"github.com/Inventrix-AI/vendor-Hub-sub001/internal/interfaces/http/response"
)

type AdminService interface {
	CreateUser(ctx context.Context, actor entities.Actor, input *entities.CreateUserInput) (*entities.User, error)
	DeactivateUser(ctx context.Context, actor entities.Actor, userID uuid.UUID) error
	ListUsers(ctx context.Context, actor entities.Actor, limit, offset int) ([]*entities.User, int, error)
	ListAuditLog(ctx context.Context, actor entities.Actor, ref string) ([]*entities.AuditLogEntry, error)
}

// AdminHandler handles user administration endpoints
type AdminHandler struct {
	adminUsecase AdminService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminUsecase AdminService) *AdminHandler {
	return &AdminHandler{adminUsecase: adminUsecase}
}

// CreateUser creates a staff or vendor user
// POST /api/v1/admin/users
func (h *AdminHandler) CreateUser(c *gin.Context) {
	var input entities.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.Validation(err.Error()))
		return
	}

	actor, ok := middleware.GetActor(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	user, err := h.adminUsecase.CreateUser(c.Request.Context(), actor, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"user": user})
}

// DeactivateUser deactivates a user account
// POST /api/v1/admin/users/:id/deactivate
func (h *AdminHandler) DeactivateUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.Validation("Invalid user ID"))
		return
	}

	actor, ok := middleware.GetActor(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	if err := h.adminUsecase.DeactivateUser(c.Request.Context(), actor, id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"status": "deactivated"})
}

// ListUsers lists users with pagination
// GET /api/v1/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	users, total, err := h.adminUsecase.ListUsers(c.Request.Context(), actor, limit, (page-1)*limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	totalPages := (total + limit - 1) / limit

	response.Success(c, http.StatusOK, gin.H{
		"users": users,
		"pagination": gin.H{
			"page":       page,
			"limit":      limit,
			"total":      total,
			"totalPages": totalPages,
		},
	})
}

// ListAuditLog lists the audit trail for one application
// GET /api/v1/admin/applications/:ref/audit
func (h *AdminHandler) ListAuditLog(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	entries, err := h.adminUsecase.ListAuditLog(c.Request.Context(), actor, c.Param("ref"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"auditLog": entries})
}
