package apierror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
)

type ErrorCode string

const (
	ErrNotFound       ErrorCode = "NOT_FOUND"
	ErrInvalidInput   ErrorCode = "INVALID_INPUT"
	ErrGateway        ErrorCode = "GATEWAY_ERROR"
	ErrTransport      ErrorCode = "TRANSPORT_ERROR"
	ErrInternalServer ErrorCode = "INTERNAL_SERVER_ERROR"
)

// APIError tags every error leaving the service layer with a taxonomy
// code. INVALID_INPUT and NOT_FOUND are caller faults raised before any
// durable side effect; GATEWAY_ERROR and TRANSPORT_ERROR are external
// faults raised after the failure record has been written.
type APIError struct {
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func (e APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewAPIError(code ErrorCode, message string, details interface{}) APIError {
	logrus.Error(details)
	return APIError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// IsCode reports whether err carries the given taxonomy code.
func IsCode(err error, code ErrorCode) bool {
	var apiErr APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == code
	}
	return false
}

func MapErrorToHTTPStatus(err error) int {
	var apiErr APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case ErrNotFound:
			return http.StatusNotFound
		case ErrInvalidInput:
			return http.StatusBadRequest
		case ErrGateway:
			return http.StatusPaymentRequired
		case ErrTransport:
			return http.StatusBadGateway
		case ErrInternalServer:
			return http.StatusInternalServerError
		default:
			return http.StatusInternalServerError
		}
	}
	return http.StatusInternalServerError
}
