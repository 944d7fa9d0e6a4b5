package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/Inventrix-AI/vendor-Hub-sub001/internal/domain/entities"
	domainerrors "github.com/Inventrix-AI/vendor-Hub-sub001/internal/domain/errors"
)

type documentServiceStub struct {
	attachFn          func(ctx context.Context, actor entities.Actor, ref string, docType entities.DocumentType, filePath, fileURL string) (*entities.Document, error)
	verifyFn          func(ctx context.Context, actor entities.Actor, documentID uuid.UUID) (*entities.Document, error)
	flagFn            func(ctx context.Context, actor entities.Actor, documentID uuid.UUID, reason string) (*entities.Document, error)
	requestReuploadFn func(ctx context.Context, actor entities.Actor, documentID uuid.UUID, reason string) (*entities.Document, error)
	reuploadFn        func(ctx context.Context, actor entities.Actor, documentID uuid.UUID, input *entities.ReuploadDocumentInput) (*entities.Document, error)
	findFn            func(ctx context.Context, actor entities.Actor, ref string) ([]*entities.Document, error)
}

func (s documentServiceStub) Attach(ctx context.Context, actor entities.Actor, ref string, docType entities.DocumentType, filePath, fileURL string) (*entities.Document, error) {
	return s.attachFn(ctx, actor, ref, docType, filePath, fileURL)
}
func (s documentServiceStub) Verify(ctx context.Context, actor entities.Actor, documentID uuid.UUID) (*entities.Document, error) {
	return s.verifyFn(ctx, actor, documentID)
}
func (s documentServiceStub) Flag(ctx context.Context, actor entities.Actor, documentID uuid.UUID, reason string) (*entities.Document, error) {
	return s.flagFn(ctx, actor, documentID, reason)
}
func (s documentServiceStub) RequestReupload(ctx context.Context, actor entities.Actor, documentID uuid.UUID, reason string) (*entities.Document, error) {
	return s.requestReuploadFn(ctx, actor, documentID, reason)
}
func (s documentServiceStub) Reupload(ctx context.Context, actor entities.Actor, documentID uuid.UUID, input *entities.ReuploadDocumentInput) (*entities.Document, error) {
	return s.reuploadFn(ctx, actor, documentID, input)
}
func (s documentServiceStub) FindByApplication(ctx context.Context, actor entities.Actor, ref string) ([]*entities.Document, error) {
	return s.findFn(ctx, actor, ref)
}

func TestDocumentHandler_Attach(t *testing.T) {
	gin.SetMode(gin.TestMode)
	docID := uuid.New()

	service := documentServiceStub{
		attachFn: func(_ context.Context, _ entities.Actor, ref string, docType entities.DocumentType, filePath, fileURL string) (*entities.Document, error) {
			assert.Equal(t, "APPTEST01", ref)
			assert.Equal(t, entities.DocumentTypePhoto, docType)
			return &entities.Document{ID: docID, DocumentType: docType, FilePath: filePath, Status: entities.DocumentStatusPending}, nil
		},
	}
	h := NewDocumentHandler(service)
	r := gin.New()
	r.POST("/applications/:ref/documents", withIdentity(uuid.New(), "vendor"), h.Attach)

	w := postJSON(r, "/applications/APPTEST01/documents",
		`{"documentType":"photo","filePath":"uploads/photo.jpg","fileUrl":"https://cdn/photo.jpg"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), docID.String())
}

func TestDocumentHandler_Attach_MissingFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewDocumentHandler(documentServiceStub{})
	r := gin.New()
	r.POST("/applications/:ref/documents", withIdentity(uuid.New(), "vendor"), h.Attach)

	w := postJSON(r, "/applications/APPTEST01/documents", `{"documentType":"photo"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDocumentHandler_Verify(t *testing.T) {
	gin.SetMode(gin.TestMode)
	docID := uuid.New()

	service := documentServiceStub{
		verifyFn: func(_ context.Context, _ entities.Actor, id uuid.UUID) (*entities.Document, error) {
			assert.Equal(t, docID, id)
			return &entities.Document{ID: id, Status: entities.DocumentStatusVerified}, nil
		},
	}
	h := NewDocumentHandler(service)
	r := gin.New()
	r.POST("/documents/:id/verify", withIdentity(uuid.New(), "reviewer"), h.Verify)

	w := postJSON(r, "/documents/"+docID.String()+"/verify", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "verified")
}

func TestDocumentHandler_Verify_BadID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewDocumentHandler(documentServiceStub{})
	r := gin.New()
	r.POST("/documents/:id/verify", withIdentity(uuid.New(), "reviewer"), h.Verify)

	w := postJSON(r, "/documents/not-a-uuid/verify", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid document ID")
}

func TestDocumentHandler_Verify_UnknownIDMapsToNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// The usecase propagates the repository sentinel unchanged for unknown ids.
	service := documentServiceStub{
		verifyFn: func(_ context.Context, _ entities.Actor, _ uuid.UUID) (*entities.Document, error) {
			return nil, domainerrors.ErrNotFound
		},
	}
	h := NewDocumentHandler(service)
	r := gin.New()
	r.POST("/documents/:id/verify", withIdentity(uuid.New(), "reviewer"), h.Verify)

	w := postJSON(r, "/documents/"+uuid.NewString()+"/verify", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), domainerrors.CodeNotFound)
	assert.NotContains(t, w.Body.String(), domainerrors.CodeInternalError)
}

func TestDocumentHandler_Flag_RequiresReason(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewDocumentHandler(documentServiceStub{})
	r := gin.New()
	r.POST("/documents/:id/flag", withIdentity(uuid.New(), "reviewer"), h.Flag)

	w := postJSON(r, "/documents/"+uuid.NewString()+"/flag", `{}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDocumentHandler_RequestReupload(t *testing.T) {
	gin.SetMode(gin.TestMode)
	docID := uuid.New()

	service := documentServiceStub{
		requestReuploadFn: func(_ context.Context, _ entities.Actor, id uuid.UUID, reason string) (*entities.Document, error) {
			assert.Equal(t, "name does not match", reason)
			return &entities.Document{ID: id, Status: entities.DocumentStatusReuploadRequested}, nil
		},
	}
	h := NewDocumentHandler(service)
	r := gin.New()
	r.POST("/documents/:id/request-reupload", withIdentity(uuid.New(), "reviewer"), h.RequestReupload)

	w := postJSON(r, "/documents/"+docID.String()+"/request-reupload", `{"reason":"name does not match"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "reupload_requested")
}

func TestDocumentHandler_Reupload_ErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	service := documentServiceStub{
		reuploadFn: func(_ context.Context, _ entities.Actor, _ uuid.UUID, _ *entities.ReuploadDocumentInput) (*entities.Document, error) {
			return nil, domainerrors.InvalidTransition("only flagged or reupload-requested documents can be replaced")
		},
	}
	h := NewDocumentHandler(service)
	r := gin.New()
	r.POST("/documents/:id/reupload", withIdentity(uuid.New(), "vendor"), h.Reupload)

	w := postJSON(r, "/documents/"+uuid.NewString()+"/reupload",
		`{"filePath":"uploads/new.pdf","fileUrl":"https://cdn/new.pdf"}`)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), domainerrors.CodeInvalidTransition)
}

func TestDocumentHandler_ListByApplication(t *testing.T) {
	gin.SetMode(gin.TestMode)

	service := documentServiceStub{
		findFn: func(_ context.Context, _ entities.Actor, ref string) ([]*entities.Document, error) {
			return []*entities.Document{{ID: uuid.New(), DocumentType: entities.DocumentTypeID}}, nil
		},
	}
	h := NewDocumentHandler(service)
	r := gin.New()
	r.GET("/applications/:ref/documents", withIdentity(uuid.New(), "vendor"), h.ListByApplication)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/applications/APPTEST01/documents", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "id_document")
}
