package apperrors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// AppError is the application error carried from services up to the HTTP
// boundary. HTTPCode and Err never leave the process; clients only see
// Message and, for validation failures, Details.
type AppError struct {
	Code     ErrorCode
	Message  string
	Details  interface{}
	Err      error
	HTTPCode int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New builds an AppError without an underlying cause.
func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// Wrap attaches an underlying cause to a new AppError.
func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	e.Details = details
	return e
}

// Is wraps the standard errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As wraps the standard errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// AsAppError extracts an *AppError from an error chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Predeclared errors
var (
	ErrUnauthorized       = New(CodeUnauthorized, "unauthorized request", http.StatusUnauthorized)
	ErrForbidden          = New(CodeForbidden, "forbidden request", http.StatusForbidden)
	ErrInvalidCredentials = New(CodeInvalidCredentials, "invalid login credentials", http.StatusUnauthorized)
)

// FieldError is one entry of a validation failure detail list.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// InternalError wraps an unexpected system error. The cause is kept for
// logging only and never serialized to the client.
func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "internal server error", http.StatusInternalServerError)
}

// ValidationError builds a 400 carrying per-field details.
func ValidationError(details interface{}) *AppError {
	return New(CodeValidationFailed, "validation errors", http.StatusBadRequest).WithDetails(details)
}

func NewNotFoundError(message string) *AppError {
	return New(CodeNotFound, message, http.StatusNotFound)
}

func NewConflictError(message string) *AppError {
	return New(CodeConflict, message, http.StatusConflict)
}

func NewInvalidStateError(message string) *AppError {
	return New(CodeInvalidState, message, http.StatusBadRequest)
}

func NewExpiredError(message string) *AppError {
	return New(CodeExpired, message, http.StatusBadRequest)
}

func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}

func NewForbiddenError(message string) *AppError {
	return New(CodeForbidden, message, http.StatusForbidden)
}

func NewInvalidTokenError(message string) *AppError {
	return New(CodeInvalidToken, message, http.StatusUnauthorized)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}
