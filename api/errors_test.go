package api

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Error(t *testing.T) {
	err := NewError(ErrCodeInvalidData, "bad page number")
	assert.Equal(t, "INVALID_DATA: bad page number", err.Error())

	wrapped := NewErrorWithCause(ErrCodeAPIResponse, "decode failed", errors.New("boom"))
	assert.Equal(t, "API_ERROR: decode failed: boom", wrapped.Error())
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("underlying")
	err := NewErrorWithCause(ErrCodeInvalidData, "wrapper", cause)

	assert.ErrorIs(t, err, cause)
}

func TestErrorPredicates(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		invalidData  bool
		apiError     bool
		accessDenied bool
	}{
		{
			name:        "invalid data",
			err:         NewError(ErrCodeInvalidData, "nope"),
			invalidData: true,
		},
		{
			name:     "api error",
			err:      NewError(ErrCodeAPIResponse, "nope"),
			apiError: true,
		},
		{
			name:         "access denied",
			err:          NewError(ErrCodeAccessDenied, "nope"),
			accessDenied: true,
		},
		{
			name:        "wrapped invalid data",
			err:         fmt.Errorf("context: %w", NewError(ErrCodeInvalidData, "nope")),
			invalidData: true,
		},
		{
			name: "plain error",
			err:  errors.New("nope"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.invalidData, IsInvalidData(tt.err))
			assert.Equal(t, tt.apiError, IsAPIError(tt.err))
			assert.Equal(t, tt.accessDenied, IsAccessDenied(tt.err))
		})
	}
}
