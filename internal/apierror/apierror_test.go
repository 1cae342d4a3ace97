package apierror

import (
	"errors"
	"net/http"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestAPIErrorMessage(t *testing.T) {
	err := NewAPIError(ErrInvalidInput, "card number failed checksum validation", nil)
	assert.Equal(t, "INVALID_INPUT: card number failed checksum validation", err.Error())
}

func TestMapErrorToHTTPStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", NewAPIError(ErrNotFound, "payment not found", nil), http.StatusNotFound},
		{"invalid input", NewAPIError(ErrInvalidInput, "bad card", nil), http.StatusBadRequest},
		{"gateway", NewAPIError(ErrGateway, "charge declined upstream", nil), http.StatusPaymentRequired},
		{"transport", NewAPIError(ErrTransport, "smtp dial failed", nil), http.StatusBadGateway},
		{"internal", NewAPIError(ErrInternalServer, "db down", nil), http.StatusInternalServerError},
		{"untagged", errors.New("plain"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, MapErrorToHTTPStatus(tt.err))
		})
	}
}

func TestIsCode(t *testing.T) {
	err := NewAPIError(ErrNotFound, "User with ID 99999 not found", nil)
	assert.True(t, IsCode(err, ErrNotFound))
	assert.False(t, IsCode(err, ErrInvalidInput))

	wrapped := pkgerrors.Wrap(err, "resolving payment references")
	assert.True(t, IsCode(wrapped, ErrNotFound))

	assert.False(t, IsCode(errors.New("plain"), ErrNotFound))
}
