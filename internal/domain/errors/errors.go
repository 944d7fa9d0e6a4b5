package errors

import (
	"errors"
	"net/http"
)

// Domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrValidation         = errors.New("invalid input")
	ErrForbidden          = errors.New("forbidden")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidTransition  = errors.New("operation not allowed in current state")
	ErrPreconditionFailed = errors.New("business precondition not met")
	ErrConflict           = errors.New("conflicting concurrent update")
	ErrDependencyFailure  = errors.New("external dependency failed")
)

// Error codes surfaced to API clients
const (
	CodeNotFound           = "ERR_NOT_FOUND"
	CodeValidation         = "ERR_VALIDATION"
	CodeForbidden          = "ERR_FORBIDDEN"
	CodeUnauthorized       = "ERR_UNAUTHORIZED"
	CodeInvalidTransition  = "ERR_INVALID_TRANSITION"
	CodePreconditionFailed = "ERR_PRECONDITION_FAILED"
	CodeConflict           = "ERR_CONFLICT"
	CodeDependencyFailure  = "ERR_DEPENDENCY_FAILURE"
	CodeInternalError      = "ERR_INTERNAL"
)

// AppError represents an application error with HTTP status and stable code
type AppError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Code
}

// Unwrap exposes the wrapped sentinel so errors.Is works across layers.
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(status int, code, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error constructors

func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, CodeNotFound, message, ErrNotFound)
}

func Validation(message string) *AppError {
	return NewAppError(http.StatusBadRequest, CodeValidation, message, ErrValidation)
}

func Forbidden(message string) *AppError {
	return NewAppError(http.StatusForbidden, CodeForbidden, message, ErrForbidden)
}

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, CodeUnauthorized, message, ErrUnauthorized)
}

func InvalidTransition(message string) *AppError {
	return NewAppError(http.StatusConflict, CodeInvalidTransition, message, ErrInvalidTransition)
}

func PreconditionFailed(message string) *AppError {
	return NewAppError(http.StatusUnprocessableEntity, CodePreconditionFailed, message, ErrPreconditionFailed)
}

func Conflict(message string) *AppError {
	return NewAppError(http.StatusConflict, CodeConflict, message, ErrConflict)
}

func DependencyFailure(message string, err error) *AppError {
	return &AppError{
		Status:  http.StatusBadGateway,
		Code:    CodeDependencyFailure,
		Message: message,
		Err:     errors.Join(ErrDependencyFailure, err),
	}
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, CodeInternalError, "internal server error", err)
}
