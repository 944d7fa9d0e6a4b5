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

type DocumentService interface {
	Attach(ctx context.Context, actor entities.Actor, ref string, docType entities.DocumentType, filePath, fileURL string) (*entities.Document, error)
	Verify(ctx context.Context, actor entities.Actor, documentID uuid.UUID) (*entities.Document, error)
	Flag(ctx context.Context, actor entities.Actor, documentID uuid.UUID, reason string) (*entities.Document, error)
	RequestReupload(ctx context.Context, actor entities.Actor, documentID uuid.UUID, reason string) (*entities.Document, error)
	Reupload(ctx context.Context, actor entities.Actor, documentID uuid.UUID, input *entities.ReuploadDocumentInput) (*entities.Document, error)
	FindByApplication(ctx context.Context, actor entities.Actor, ref string) ([]*entities.Document, error)
}

// DocumentHandler handles document verification endpoints
type DocumentHandler struct {
	documentUsecase DocumentService
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documentUsecase DocumentService) *DocumentHandler {
	return &DocumentHandler{documentUsecase: documentUsecase}
}

type attachDocumentInput struct {
	DocumentType string `json:"documentType" binding:"required"`
	FilePath     string `json:"filePath" binding:"required"`
	FileURL      string `json:"fileUrl" binding:"required"`
}

// Attach attaches a document to an application
// POST /api/v1/applications/:ref/documents
func (h *DocumentHandler) Attach(c *gin.Context) {
	var input attachDocumentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.Validation(err.Error()))
		return
	}

	actor, ok := middleware.GetActor(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	doc, err := h.documentUsecase.Attach(c.Request.Context(), actor, c.Param("ref"), entities.DocumentType(input.DocumentType), input.FilePath, input.FileURL)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"document": doc})
}

// Verify marks a document as verified
// POST /api/v1/documents/:id/verify
func (h *DocumentHandler) Verify(c *gin.Context) {
	h.withDocument(c, func(actor entities.Actor, id uuid.UUID) (*entities.Document, error) {
		return h.documentUsecase.Verify(c.Request.Context(), actor, id)
	})
}

// Flag flags a document with a mandatory reason
// POST /api/v1/documents/:id/flag
func (h *DocumentHandler) Flag(c *gin.Context) {
	var input entities.FlagDocumentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.Validation(err.Error()))
		return
	}

	h.withDocument(c, func(actor entities.Actor, id uuid.UUID) (*entities.Document, error) {
		return h.documentUsecase.Flag(c.Request.Context(), actor, id, input.Reason)
	})
}

// RequestReupload asks the vendor for a replacement file
// POST /api/v1/documents/:id/request-reupload
func (h *DocumentHandler) RequestReupload(c *gin.Context) {
	var input entities.FlagDocumentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.Validation(err.Error()))
		return
	}

	h.withDocument(c, func(actor entities.Actor, id uuid.UUID) (*entities.Document, error) {
		return h.documentUsecase.RequestReupload(c.Request.Context(), actor, id, input.Reason)
	})
}

// Reupload replaces a flagged document's file
// POST /api/v1/documents/:id/reupload
func (h *DocumentHandler) Reupload(c *gin.Context) {
	var input entities.ReuploadDocumentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.Validation(err.Error()))
		return
	}

	h.withDocument(c, func(actor entities.Actor, id uuid.UUID) (*entities.Document, error) {
		return h.documentUsecase.Reupload(c.Request.Context(), actor, id, &input)
	})
}

// ListByApplication lists documents for an application
// GET /api/v1/applications/:ref/documents
func (h *DocumentHandler) ListByApplication(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	docs, err := h.documentUsecase.FindByApplication(c.Request.Context(), actor, c.Param("ref"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"documents": docs})
}

func (h *DocumentHandler) withDocument(c *gin.Context, fn func(entities.Actor, uuid.UUID) (*entities.Document, error)) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.Validation("Invalid document ID"))
		return
	}

	actor, ok := middleware.GetActor(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	doc, err := fn(actor, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"document": doc})
}
