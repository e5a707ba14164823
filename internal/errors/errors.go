package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrValidation is returned when required input is missing or malformed.
	ErrValidation = errors.New("missing or invalid fields")
	// ErrDuplicateEmail is returned when signing up with an email that is taken.
	ErrDuplicateEmail = errors.New("user already exists")
	// ErrInvalidCredentials is returned on login failure. The wording is
	// identical for unknown email and wrong password to resist enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthenticated is returned when a session token is missing, expired,
	// invalid, or its subject no longer exists.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrUpstreamFailure is returned when a geocoding or routing provider is
	// unreachable or errored.
	ErrUpstreamFailure = errors.New("upstream provider failure")
)

// validationError carries a field-specific message while still matching
// ErrValidation under errors.Is.
type validationError struct {
	message string
}

func (e *validationError) Error() string { return e.message }

func (e *validationError) Unwrap() error { return ErrValidation }

// NewValidationError builds a validation failure with a caller-facing message.
func NewValidationError(message string) error {
	return &validationError{message: message}
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// NewErrorResponse builds the error envelope returned by all handlers.
func NewErrorResponse(message, code string) ErrorResponse {
	return ErrorResponse{Success: false, Message: message, Code: code}
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return NewErrorResponse(e.Message, e.Code)
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unexpected errors collapse
// into a 500 with the detail suppressed.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrValidation):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "VALIDATION_ERROR")
	case errors.Is(err, ErrDuplicateEmail):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "DUPLICATE_EMAIL")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrUnauthenticated):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "UNAUTHENTICATED")
	case errors.Is(err, ErrUpstreamFailure):
		return NewHTTPError(http.StatusBadGateway, err.Error(), "UPSTREAM_FAILURE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "server error", "SERVER_ERROR")
	}
}
