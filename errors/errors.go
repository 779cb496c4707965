// Package errors defines the application's error taxonomy. Every failure that reaches an
// HTTP response is an *AppError of exactly one ErrorType; anything else is treated as an
// unknown error by the response normalizer.
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

type ErrorType string

// The set of error kinds is closed. Switches over ErrorType must cover all three.
const (
	ValidationError ErrorType = "VALIDATION_ERROR"
	NotFoundError   ErrorType = "NOT_FOUND"
	DatabaseError   ErrorType = "DATABASE_ERROR"
)

// AppError represents a structured application error.
// Details is only meaningful for ValidationError, Code only for DatabaseError.
type AppError struct {
	Type    ErrorType
	Message string
	Details *Details
	Code    string
	Raw     error
}

func (e *AppError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// ErrorKind reports the error's classification for structured logs.
func (e *AppError) ErrorKind() string {
	return string(e.Type)
}

// Unwrap exposes the underlying driver error, if any, to errors.Is / errors.As.
func (e *AppError) Unwrap() error {
	return e.Raw
}

// ValidationFailed builds a ValidationError. details may be nil.
func ValidationFailed(message string, details *Details) *AppError {
	return &AppError{
		Type:    ValidationError,
		Message: message,
		Details: details,
	}
}

// NotFound builds a NotFoundError for the named entity, e.g. NotFound("User").
func NotFound(entity string) *AppError {
	return &AppError{
		Type:    NotFoundError,
		Message: fmt.Sprintf("%s not found", entity),
	}
}

// NewDatabaseError builds a DatabaseError. code is the storage engine's condition code and
// may be empty when the failure carried none.
func NewDatabaseError(message, code string, raw error) *AppError {
	return &AppError{
		Type:    DatabaseError,
		Message: message,
		Code:    code,
		Raw:     raw,
	}
}

// As reports whether err is, or wraps, an *AppError.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) && appErr != nil {
		return appErr, true
	}
	return nil, false
}

// StatusFor returns the HTTP status implied by the error's kind. Unknown errors map to 500.
func StatusFor(err error) int {
	appErr, ok := As(err)
	if !ok {
		return http.StatusInternalServerError
	}
	return getHTTPStatus(appErr.Type)
}

func getHTTPStatus(errType ErrorType) int {
	switch errType {
	case ValidationError:
		return http.StatusBadRequest
	case NotFoundError:
		return http.StatusNotFound
	case DatabaseError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
