package util

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Category   string
	Message    string
	HTTPStatus int
	Details    []string
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, category, message string, status int, details []string) *DomainError {
	return &DomainError{Code: code, Category: category, Message: message, HTTPStatus: status, Details: details}
}

// NewNotFound reports an absent resource, e.g. "User not found with id: '7'".
func NewNotFound(resource, field string, value any) error {
	return &DomainError{
		Code:       "NOT_FOUND",
		Category:   "Not Found",
		Message:    fmt.Sprintf("%s not found with %s: '%v'", resource, field, value),
		HTTPStatus: http.StatusNotFound,
	}
}

// NewInactiveResource reports a mutation attempted on a soft-deleted resource.
func NewInactiveResource(resource string, id any) error {
	return &DomainError{
		Code:       "INACTIVE_RESOURCE",
		Category:   "Bad Request",
		Message:    fmt.Sprintf("Cannot perform operation on inactive %s with id: '%v'", resource, id),
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewValidationError reports a malformed request body with per-field details.
func NewValidationError(details []string) error {
	return NewDomainError("VALIDATION_FAILED", "Validation Failed", "Input validation failed", http.StatusBadRequest, details)
}

// NewTypeMismatch reports a path/query parameter that cannot be coerced.
func NewTypeMismatch(value, name, expected string) error {
	message := fmt.Sprintf("Invalid value '%s' for parameter '%s'. Expected type: %s", value, name, expected)
	return NewDomainError("TYPE_MISMATCH", "Bad Request", message, http.StatusBadRequest, nil)
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Category:   "Internal Server Error",
		Message:    "An unexpected error occurred. Please try again later.",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return &DomainError{
			Code:       "NOT_FOUND",
			Category:   "Not Found",
			Message:    "Resource not found",
			HTTPStatus: http.StatusNotFound,
		}
	}
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Category:   "Internal Server Error",
		Message:    "An unexpected error occurred. Please try again later.",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}
