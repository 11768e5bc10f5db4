package api

import (
	"errors"
	"fmt"
)

// Error represents a pushsub client error with categorization.
type Error struct {
	// Code is a machine-readable error code
	Code string

	// Message is a human-readable error message
	Message string

	// Err is the underlying error (if any)
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Error codes for client operations.
const (
	// ErrCodeInvalidData indicates locally-detected malformed input or a
	// malformed server payload: bad pagination arguments, an unrecognized
	// output type, a missing field during rehydration, or a mutation
	// attempted on a deleted subscription.
	ErrCodeInvalidData = "INVALID_DATA"

	// ErrCodeAPIResponse indicates the remote call succeeded at the
	// transport level but returned a response this client cannot interpret.
	ErrCodeAPIResponse = "API_ERROR"

	// ErrCodeAccessDenied indicates the session collaborator rejected the
	// credentials. The client never raises this itself; Caller
	// implementations use it so callers get one predicate for all three
	// kinds.
	ErrCodeAccessDenied = "ACCESS_DENIED"
)

// NewError creates a new Error with the given code and message.
func NewError(code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// NewErrorWithCause creates a new Error wrapping an underlying error.
func NewErrorWithCause(code, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     cause,
	}
}

func isCode(err error, code string) bool {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == code
	}
	return false
}

// IsInvalidData checks if an error carries ErrCodeInvalidData.
func IsInvalidData(err error) bool {
	return isCode(err, ErrCodeInvalidData)
}

// IsAPIError checks if an error carries ErrCodeAPIResponse.
func IsAPIError(err error) bool {
	return isCode(err, ErrCodeAPIResponse)
}

// IsAccessDenied checks if an error carries ErrCodeAccessDenied.
func IsAccessDenied(err error) bool {
	return isCode(err, ErrCodeAccessDenied)
}
