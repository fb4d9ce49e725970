package model

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes shared by every catalog entity.
const (
	CodeValidation       = "VALIDATION_FAILED"
	CodeConflict         = "CONFLICT"
	CodeNotFound         = "NOT_FOUND"
	CodePermissionDenied = "PERMISSION_DENIED"
	CodePersistence      = "PERSISTENCE_ERROR"
)

// CatalogError is the base error for the catalog domain.
type CatalogError struct {
	Code    string     // One of the Code* constants
	Entity  EntityKind // Set for NOT_FOUND
	Field   string     // Offending field for VALIDATION_FAILED and CONFLICT
	Message string     // Human-readable message, safe to show next to a form field
	Err     error      // Underlying error
}

// Error implements error interface
func (e *CatalogError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap allows error wrapping compatibility
func (e *CatalogError) Unwrap() error {
	return e.Err
}

// ============================================
// ERROR FACTORY FUNCTIONS
// ============================================

// NewValidationError reports a rule violation on one field.
func NewValidationError(field, message string) *CatalogError {
	return &CatalogError{
		Code:    CodeValidation,
		Field:   field,
		Message: message,
	}
}

// NewConflict reports a scoped-key collision with another row.
func NewConflict(field string, value interface{}, message string) *CatalogError {
	return &CatalogError{
		Code:    CodeConflict,
		Field:   field,
		Message: message,
		Err:     fmt.Errorf("%s %v is already taken", field, value),
	}
}

// NewNotFound reports a missing entity looked up by key (id or slug).
func NewNotFound(entity EntityKind, key interface{}) *CatalogError {
	return &CatalogError{
		Code:    CodeNotFound,
		Entity:  entity,
		Message: fmt.Sprintf("%s %v not found", entity.Title(), key),
	}
}

// ErrPermissionDenied is returned when the actor lacks a required permission.
var ErrPermissionDenied = &CatalogError{
	Code:    CodePermissionDenied,
	Message: "You do not have permission.",
}

// NewPersistenceError wraps a storage failure without interpreting it.
func NewPersistenceError(op string, err error) *CatalogError {
	return &CatalogError{
		Code:    CodePersistence,
		Message: fmt.Sprintf("Failed to %s", op),
		Err:     err,
	}
}

// ============================================
// ERROR CHECKING FUNCTIONS
// ============================================

func hasCode(err error, code string) bool {
	var catErr *CatalogError
	return errors.As(err, &catErr) && catErr.Code == code
}

// IsValidation reports a VALIDATION_FAILED error.
func IsValidation(err error) bool { return hasCode(err, CodeValidation) }

// IsConflict reports a CONFLICT error.
func IsConflict(err error) bool { return hasCode(err, CodeConflict) }

// IsNotFound reports a NOT_FOUND error.
func IsNotFound(err error) bool { return hasCode(err, CodeNotFound) }

// IsPermissionDenied reports a PERMISSION_DENIED error.
func IsPermissionDenied(err error) bool { return hasCode(err, CodePermissionDenied) }

// IsPersistence reports a PERSISTENCE_ERROR error.
func IsPersistence(err error) bool { return hasCode(err, CodePersistence) }

// FieldOf returns the offending field of a validation or conflict error, or "".
func FieldOf(err error) string {
	var catErr *CatalogError
	if errors.As(err, &catErr) {
		return catErr.Field
	}
	return ""
}

// GetErrorCode lấy error code từ error
func GetErrorCode(err error) string {
	var catErr *CatalogError
	if errors.As(err, &catErr) {
		return catErr.Code
	}
	return "INTERNAL_ERROR"
}

// GetErrorMessage lấy error message từ error
func GetErrorMessage(err error) string {
	var catErr *CatalogError
	if errors.As(err, &catErr) {
		return catErr.Message
	}
	return err.Error()
}

// MapErrorToHTTP converts a catalog error into status, message and code.
func MapErrorToHTTP(err error) (int, string, string) {
	if err == nil {
		return http.StatusOK, "Success", ""
	}

	switch {
	case IsValidation(err):
		return http.StatusBadRequest, GetErrorMessage(err), CodeValidation
	case IsConflict(err):
		return http.StatusConflict, GetErrorMessage(err), CodeConflict
	case IsNotFound(err):
		return http.StatusNotFound, GetErrorMessage(err), CodeNotFound
	case IsPermissionDenied(err):
		return http.StatusForbidden, GetErrorMessage(err), CodePermissionDenied
	case IsPersistence(err):
		return http.StatusInternalServerError, GetErrorMessage(err), CodePersistence
	default:
		return http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR"
	}
}
