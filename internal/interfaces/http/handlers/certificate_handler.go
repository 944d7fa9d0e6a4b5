package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/Inventrix-AI/vendor-Hub-sub001/internal/domain/entities"
	domainerrors "github.com/Inventrix-AI/vendor-Hub-sub001/internal/domain/errors"
	"github.com/Inventrix-AI/vendor-Hub-sub001/internal/interfaces/http/middleware"
	"github.com/Inventrix-AI/vendor-Hub-sub001/internal/interfaces/http/response"
)

type CertificateService interface {
	Generate(ctx context.Context, actor entities.Actor, ref string) ([]*entities.Certificate, error)
	Regenerate(ctx context.Context, actor entities.Actor, ref string, reason string) ([]*entities.Certificate, error)
	VerifyCertificate(ctx context.Context, certificateNumber string) *entities.VerificationResult
	Download(ctx context.Context, actor entities.Actor, certificateID uuid.UUID) ([]byte, error)
	ListByApplication(ctx context.Context, actor entities.Actor, ref string) ([]*entities.Certificate, error)
}

// CertificateHandler handles certificate endpoints
type CertificateHandler struct {
	certificateUsecase CertificateService
}

// NewCertificateHandler creates a new certificate handler
func NewCertificateHandler(certificateUsecase CertificateService) *CertificateHandler {
	return &CertificateHandler{certificateUsecase: certificateUsecase}
}

// Generate issues certificates for an approved application
// POST /api/v1/applications/:ref/certificates
func (h *CertificateHandler) Generate(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	certs, err := h.certificateUsecase.Generate(c.Request.Context(), actor, c.Param("ref"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"certificates": certs})
}

type regenerateInput struct {
	Reason string `json:"reason"`
}

// Regenerate revokes active certificates and issues a fresh set
// POST /api/v1/applications/:ref/certificates/regenerate
func (h *CertificateHandler) Regenerate(c *gin.Context) {
	var input regenerateInput
	if err := c.ShouldBindJSON(&input); err != nil && err.Error() != "EOF" {
		response.Error(c, domainerrors.Validation(err.Error()))
		return
	}

	actor, ok := middleware.GetActor(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	certs, err := h.certificateUsecase.Regenerate(c.Request.Context(), actor, c.Param("ref"), input.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"certificates": certs})
}

// Verify checks a certificate number. Public, no authentication.
// GET /api/v1/certificates/verify/:number
func (h *CertificateHandler) Verify(c *gin.Context) {
	result := h.certificateUsecase.VerifyCertificate(c.Request.Context(), c.Param("number"))
	response.Success(c, http.StatusOK, result)
}

// Download renders a certificate document for its owner
// GET /api/v1/certificates/:id/download
func (h *CertificateHandler) Download(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.Validation("Invalid certificate ID"))
		return
	}

	actor, ok := middleware.GetActor(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	data, err := h.certificateUsecase.Download(c.Request.Context(), actor, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=certificate.txt")
	c.Data(http.StatusOK, "application/octet-stream", data)
}

// ListByApplication lists certificates for an application
// GET /api/v1/applications/:ref/certificates
func (h *CertificateHandler) ListByApplication(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	certs, err := h.certificateUsecase.ListByApplication(c.Request.Context(), actor, c.Param("ref"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"certificates": certs})
}
