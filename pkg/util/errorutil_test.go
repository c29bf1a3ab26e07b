package util

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFoundMessageAndStatus(t *testing.T) {
	err := NewNotFound("User", "id", int64(7))
	domainErr := ToDomainError(err)

	assert.Equal(t, "NOT_FOUND", domainErr.Code)
	assert.Equal(t, "Not Found", domainErr.Category)
	assert.Equal(t, http.StatusNotFound, domainErr.HTTPStatus)
	assert.Equal(t, "User not found with id: '7'", domainErr.Message)
}

func TestInactiveResourceMessage(t *testing.T) {
	err := NewInactiveResource("Order", int64(3))
	domainErr := ToDomainError(err)

	assert.Equal(t, "INACTIVE_RESOURCE", domainErr.Code)
	assert.Equal(t, http.StatusBadRequest, domainErr.HTTPStatus)
	assert.Equal(t, "Cannot perform operation on inactive Order with id: '3'", domainErr.Message)
}

func TestValidationErrorCarriesDetails(t *testing.T) {
	err := NewValidationError([]string{"name: must not be blank", "email: must not be blank"})
	domainErr := ToDomainError(err)

	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	assert.Equal(t, "Validation Failed", domainErr.Category)
	assert.Len(t, domainErr.Details, 2)
}

func TestTypeMismatchMessage(t *testing.T) {
	err := NewTypeMismatch("abc", "id", "int64")
	domainErr := ToDomainError(err)

	assert.Equal(t, http.StatusBadRequest, domainErr.HTTPStatus)
	assert.Equal(t, "Invalid value 'abc' for parameter 'id'. Expected type: int64", domainErr.Message)
}

func TestNoRowsTranslatesToNotFound(t *testing.T) {
	domainErr := ToDomainError(pgx.ErrNoRows)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
	assert.Equal(t, http.StatusNotFound, domainErr.HTTPStatus)
}

func TestUnknownErrorStaysGeneric(t *testing.T) {
	cause := errors.New("connection refused")
	domainErr := ToDomainError(cause)

	require.Equal(t, "INTERNAL_ERROR", domainErr.Code)
	assert.Equal(t, http.StatusInternalServerError, domainErr.HTTPStatus)
	assert.Equal(t, "An unexpected error occurred. Please try again later.", domainErr.Message)
	assert.ErrorIs(t, domainErr, cause)
}

func TestNilErrorMapsToNil(t *testing.T) {
	assert.Nil(t, ToDomainError(nil))
}
