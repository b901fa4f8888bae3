package error

import (
	"errors"
	"fmt"
)

// Document store errors.
var (
	// ErrStoreUnavailable is returned when the document store cannot be reached.
	ErrStoreUnavailable = errors.New("document store unavailable")

	// ErrStoreRateLimited is returned when the document store rejects a call for rate limiting.
	ErrStoreRateLimited = errors.New("document store rate limited")

	// ErrStoreUnauthorized is returned when the integration token is rejected.
	ErrStoreUnauthorized = errors.New("document store rejected credentials")

	// ErrRecordNotFound is returned when the store has no page with the requested id.
	ErrRecordNotFound = errors.New("record not found in document store")
)

// StoreError represents a failed call to the document store. It carries the
// HTTP status and the store's own error code so callers can classify the
// failure without parsing message text.
type StoreError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("document store error %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("document store error %d: %s", e.StatusCode, e.Message)
}

// Unwrap returns the classified sentinel for the failure.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a StoreError, classifying the status code onto one
// of the store sentinels.
func NewStoreError(statusCode int, code, message string) *StoreError {
	var sentinel error
	switch {
	case statusCode == 401 || statusCode == 403:
		sentinel = ErrStoreUnauthorized
	case statusCode == 404:
		sentinel = ErrRecordNotFound
	case statusCode == 429:
		sentinel = ErrStoreRateLimited
	default:
		sentinel = ErrStoreUnavailable
	}
	return &StoreError{
		StatusCode: statusCode,
		Code:       code,
		Message:    message,
		Err:        sentinel,
	}
}
