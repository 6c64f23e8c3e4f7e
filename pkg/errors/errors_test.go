package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundMapsTo404(t *testing.T) {
	err := NotFound("Basket not found")

	assert.Equal(t, http.StatusNotFound, GetStatusCode(err))
	assert.Equal(t, "Basket not found", Message(err))
	assert.True(t, IsNotFound(err))
	assert.True(t, IsNotFound(fmt.Errorf("lookup: %w", err)))
}

func TestProcessingIncludesCause(t *testing.T) {
	cause := stderrors.New("missing column DATE")
	err := Processing(cause, "Error reading Excel file")

	assert.Equal(t, http.StatusInternalServerError, GetStatusCode(err))
	assert.Equal(t, "Error reading Excel file: missing column DATE", Message(err))
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrProcessing)
	assert.False(t, IsNotFound(err))
}

func TestPlainErrorsDefaultToInternal(t *testing.T) {
	err := stderrors.New("boom")

	assert.Equal(t, http.StatusInternalServerError, GetStatusCode(err))
	assert.Equal(t, ErrorTypeInternal, GetType(err))
	assert.Equal(t, "UNKNOWN_ERROR", GetCode(err))
	assert.Equal(t, "boom", Message(err))
}

func TestValidationAndExternal(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, GetStatusCode(Validation("amount must be positive")))

	ext := WrapExternal(stderrors.New("dial tcp"), "redis", "Cart store unavailable")
	assert.Equal(t, http.StatusServiceUnavailable, GetStatusCode(ext))
	assert.Equal(t, "redis", ext.Details["service"])
}
