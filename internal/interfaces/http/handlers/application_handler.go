package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/Inventrix-AI/vendor-Hub-sub001/internal/domain/entities"
	domainerrors "github.com/Inventrix-AI/vendor-Hub-sub001/internal/domain/errors"
	"github.com/Inventrix-AI/vendor-Hub-sub001/internal/interfaces/http/middleware"
	"github.com/Inventrix-AI/vendor-Hub-sub001/internal/interfaces/http/response"
)

type ApplicationService interface {
	Submit(ctx context.Context, actor entities.Actor, input *entities.SubmitApplicationInput) (*entities.VendorApplication, error)
	ConfirmPayment(ctx context.Context, actor entities.Actor, ref string, proof *entities.PaymentProof) (*entities.VendorApplication, error)
	VerifySection(ctx context.Context, actor entities.Actor, ref string, section entities.Section, notes string) (*entities.VendorApplication, error)
	Decide(ctx context.Context, actor entities.Actor, ref string, input *entities.DecisionInput) (*entities.VendorApplication, error)
	GetByRef(ctx context.Context, actor entities.Actor, ref string) (*entities.VendorApplication, error)
	ListByUser(ctx context.Context, actor entities.Actor) ([]*entities.VendorApplication, error)
	List(ctx context.Context, actor entities.Actor, filter entities.ApplicationFilter, limit, offset int) ([]*entities.VendorApplication, int, error)
}

// ApplicationHandler handles vendor application endpoints
type ApplicationHandler struct {
	applicationUsecase ApplicationService
}

// NewApplicationHandler creates a new application handler
func NewApplicationHandler(applicationUsecase ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applicationUsecase: applicationUsecase}
}

// Submit submits a new vendor application
// POST /api/v1/applications
func (h *ApplicationHandler) Submit(c *gin.Context) {
	var input entities.SubmitApplicationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.Validation(err.Error()))
		return
	}

	actor, ok := middleware.GetActor(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	app, err := h.applicationUsecase.Submit(c.Request.Context(), actor, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"application": app})
}

// ConfirmPayment records a verified gateway payment for an application
// POST /api/v1/applications/:ref/payment
func (h *ApplicationHandler) ConfirmPayment(c *gin.Context) {
	var proof entities.PaymentProof
	if err := c.ShouldBindJSON(&proof); err != nil {
		response.Error(c, domainerrors.Validation(err.Error()))
		return
	}

	actor, ok := middleware.GetActor(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	app, err := h.applicationUsecase.ConfirmPayment(c.Request.Context(), actor, c.Param("ref"), &proof)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"application": app})
}

// VerifySection signs off one review section
// POST /api/v1/applications/:ref/sections/:section/verify
func (h *ApplicationHandler) VerifySection(c *gin.Context) {
	var input entities.VerifySectionInput
	if err := c.ShouldBindJSON(&input); err != nil && err.Error() != "EOF" {
		response.Error(c, domainerrors.Validation(err.Error()))
		return
	}

	actor, ok := middleware.GetActor(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	section := entities.Section(c.Param("section"))
	app, err := h.applicationUsecase.VerifySection(c.Request.Context(), actor, c.Param("ref"), section, input.Notes)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"application": app})
}

// Decide approves or rejects an application under review
// POST /api/v1/applications/:ref/decision
func (h *ApplicationHandler) Decide(c *gin.Context) {
	var input entities.DecisionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.Validation(err.Error()))
		return
	}

	actor, ok := middleware.GetActor(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	app, err := h.applicationUsecase.Decide(c.Request.Context(), actor, c.Param("ref"), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"application": app})
}

// Get returns one application by ID or external reference
// GET /api/v1/applications/:ref
func (h *ApplicationHandler) Get(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	app, err := h.applicationUsecase.GetByRef(c.Request.Context(), actor, c.Param("ref"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"application": app})
}

// ListMine lists the caller's own applications
// GET /api/v1/applications
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	apps, err := h.applicationUsecase.ListByUser(c.Request.Context(), actor)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"applications": apps})
}

// List lists applications with admin filters
// GET /api/v1/admin/applications
func (h *ApplicationHandler) List(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	var filter entities.ApplicationFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, domainerrors.Validation(err.Error()))
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

	apps, total, err := h.applicationUsecase.List(c.Request.Context(), actor, filter, limit, (page-1)*limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	totalPages := (total + limit - 1) / limit

	response.Success(c, http.StatusOK, gin.H{
		"applications": apps,
		"pagination": gin.H{
			"page":       page,
			"limit":      limit,
			"total":      total,
			"totalPages": totalPages,
		},
	})
}
