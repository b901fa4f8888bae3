package error

import "errors"

// Insights domain errors.
var (
	// ErrInsightsUnavailable is returned when the insights summary cannot be
	// computed because every underlying list fetch failed.
	ErrInsightsUnavailable = errors.New("insights unavailable")
)

// InsightsErrorCode defines error codes for insights errors.
// Format: INS-XXYYYY where XX is category and YYYY is specific error.
type InsightsErrorCode string

const (
	// Upstream errors (02XXXX)
	ErrCodeInsightsUnavailable InsightsErrorCode = "INS-020001"
)

// InsightsError represents an insights error with code and message.
type InsightsError struct {
	Code    InsightsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *InsightsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *InsightsError) Unwrap() error {
	return e.Err
}

// NewInsightsError creates a new InsightsError with the given code and message.
func NewInsightsError(code InsightsErrorCode, message string, err error) *InsightsError {
	return &InsightsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
