package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	err := New(ValidationError, "invalid input", "field required")
	assert.Equal(t, ValidationError, err.Type)
	assert.Equal(t, "invalid input", err.Message)
	assert.Equal(t, "field required", err.Detail)
	assert.Equal(t, 400, err.HTTPStatus)
}

func TestWrap(t *testing.T) {
	originalErr := fmt.Errorf("original error")
	wrappedErr := Wrap(originalErr, DispatchError, "notification send failed")

	assert.Equal(t, DispatchError, wrappedErr.Type)
	assert.Equal(t, "notification send failed", wrappedErr.Message)
	assert.Equal(t, originalErr.Error(), wrappedErr.Detail)
	assert.Equal(t, 500, wrappedErr.HTTPStatus)
	assert.Equal(t, originalErr, wrappedErr.Raw)
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, DispatchError, "ignored"))
}

func TestNotFound(t *testing.T) {
	err := NotFound("Project", "coffeeprince")
	assert.Equal(t, NotFoundError, err.Type)
	assert.Equal(t, "Project not found", err.Message)
	assert.Equal(t, "ID: coffeeprince", err.Detail)
	assert.Equal(t, 404, err.HTTPStatus)
}

func TestValidationFailed(t *testing.T) {
	err := ValidationFailed("Invalid email format", "missing @")
	assert.Equal(t, ValidationError, err.Type)
	assert.Equal(t, "Invalid email format", err.Message)
	assert.Equal(t, "missing @", err.Detail)
	assert.Equal(t, 400, err.HTTPStatus)
}

func TestNewDispatchError(t *testing.T) {
	originalErr := fmt.Errorf("provider unavailable")
	err := NewDispatchError(originalErr)
	assert.Equal(t, DispatchError, err.Type)
	assert.Equal(t, originalErr.Error(), err.Detail)
	assert.Equal(t, 500, err.HTTPStatus)
	assert.Equal(t, originalErr, err.Raw)
}

func TestRateLimitExceeded(t *testing.T) {
	err := RateLimitExceeded("Too many requests. Please try again later.", 60)
	assert.Equal(t, RateLimitError, err.Type)
	assert.Equal(t, 429, err.HTTPStatus)
	assert.Contains(t, err.Detail, "60 seconds")
}

func TestErrorString(t *testing.T) {
	err := New(ValidationError, "invalid input", "field required")
	assert.Equal(t, "VALIDATION_ERROR: invalid input (field required)", err.Error())

	err = InternalServerError("boom")
	assert.Equal(t, "SERVER_ERROR: boom", err.Error())
}

func TestGetHTTPStatusDefaults(t *testing.T) {
	err := &AppError{Type: ServerError}
	assert.Equal(t, 500, err.GetHTTPStatus())
}
