package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is an application error carrying the HTTP status it maps to.
type AppError struct {
	Code     string      `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
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

// New creates an AppError with the given code, message and HTTP status.
func New(code, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// Wrap attaches an underlying cause to a new AppError.
func Wrap(err error, code, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

// WithDetails returns a copy of e carrying extra per-request details, so the
// predefined errors below stay immutable.
func (e *AppError) WithDetails(details interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

// Predefined errors covering the service's taxonomy:
// validation 400, authentication 401, authorization 403, not found 404,
// conflict 409, internal 500.
var (
	ErrValidation         = New("VALIDATION_FAILED", "validation failed", http.StatusBadRequest)
	ErrInvalidCredentials = New("INVALID_CREDENTIALS", "invalid email or password", http.StatusUnauthorized)
	ErrUnauthorized       = New("UNAUTHORIZED", "authentication required", http.StatusUnauthorized)
	ErrInvalidToken       = New("INVALID_TOKEN", "invalid or expired token", http.StatusUnauthorized)
	ErrForbidden          = New("FORBIDDEN", "access denied", http.StatusForbidden)
	ErrUserNotFound       = New("USER_NOT_FOUND", "user not found", http.StatusNotFound)
	ErrNotFound           = New("NOT_FOUND", "resource not found", http.StatusNotFound)
	ErrEmailTaken         = New("EMAIL_TAKEN", "email already registered", http.StatusConflict)
	ErrInternal           = New("INTERNAL", "internal server error", http.StatusInternalServerError)
)

// Status maps err to its HTTP status, defaulting to 500 for unknown errors.
func Status(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode
	}
	return http.StatusInternalServerError
}

// Envelope builds the JSON error body for err. Unknown errors are masked so
// internal details never reach the client.
func Envelope(err error) map[string]interface{} {
	var appErr *AppError
	if errors.As(err, &appErr) {
		body := map[string]interface{}{"error": appErr.Message}
		if appErr.Details != nil {
			body["details"] = appErr.Details
		}
		return body
	}
	return map[string]interface{}{"error": "internal server error"}
}
