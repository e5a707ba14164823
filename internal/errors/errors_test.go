package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("email is required")

	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "email is required", err.Error())
}

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedStatus  int
		expectedCode    string
		expectedMessage string
	}{
		{
			name:            "validation failure keeps its message",
			err:             NewValidationError("from_lat is required"),
			expectedStatus:  http.StatusBadRequest,
			expectedCode:    "VALIDATION_ERROR",
			expectedMessage: "from_lat is required",
		},
		{
			name:            "duplicate email",
			err:             ErrDuplicateEmail,
			expectedStatus:  http.StatusBadRequest,
			expectedCode:    "DUPLICATE_EMAIL",
			expectedMessage: "user already exists",
		},
		{
			name:            "invalid credentials",
			err:             ErrInvalidCredentials,
			expectedStatus:  http.StatusUnauthorized,
			expectedCode:    "INVALID_CREDENTIALS",
			expectedMessage: "invalid credentials",
		},
		{
			name:            "unauthenticated",
			err:             ErrUnauthenticated,
			expectedStatus:  http.StatusUnauthorized,
			expectedCode:    "UNAUTHENTICATED",
			expectedMessage: "unauthenticated",
		},
		{
			name:           "wrapped upstream failure",
			err:            fmt.Errorf("%w: geocoder status 503", ErrUpstreamFailure),
			expectedStatus: http.StatusBadGateway,
			expectedCode:   "UPSTREAM_FAILURE",
		},
		{
			name:            "unexpected error collapses to 500 without detail",
			err:             errors.New("dial tcp: connection refused"),
			expectedStatus:  http.StatusInternalServerError,
			expectedCode:    "SERVER_ERROR",
			expectedMessage: "server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)

			assert.Equal(t, tt.expectedStatus, httpErr.StatusCode)
			assert.Equal(t, tt.expectedCode, httpErr.Code)
			if tt.expectedMessage != "" {
				assert.Equal(t, tt.expectedMessage, httpErr.Message)
			}
		})
	}
}
