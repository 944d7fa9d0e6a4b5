package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	e := NotFound("application not found")
	assert.Equal(t, "application not found", e.Error())
	assert.Equal(t, http.StatusNotFound, e.Status)
	assert.Equal(t, CodeNotFound, e.Code)
}

func TestAppError_Unwrap(t *testing.T) {
	assert.True(t, stderrors.Is(InvalidTransition("nope"), ErrInvalidTransition))
	assert.True(t, stderrors.Is(PreconditionFailed("docs pending"), ErrPreconditionFailed))
	assert.True(t, stderrors.Is(Conflict("lost race"), ErrConflict))
	assert.True(t, stderrors.Is(Validation("missing reason"), ErrValidation))
}

func TestDependencyFailure_WrapsCause(t *testing.T) {
	cause := stderrors.New("smtp timeout")
	e := DependencyFailure("notification failed", cause)
	assert.True(t, stderrors.Is(e, ErrDependencyFailure))
	assert.True(t, stderrors.Is(e, cause))
	assert.Equal(t, http.StatusBadGateway, e.Status)
}

func TestAppError_MessageFallback(t *testing.T) {
	e := &AppError{Code: CodeInternalError, Err: stderrors.New("boom")}
	assert.Equal(t, "boom", e.Error())
	e2 := &AppError{Code: CodeInternalError}
	assert.Equal(t, CodeInternalError, e2.Error())
}
