package error

import "errors"

// Obligation (debt/loan) domain errors.
var (
	// ErrObligationNotFound is returned when a debt or loan record is not found.
	ErrObligationNotFound = errors.New("obligation not found")

	// ErrObligationTitleRequired is returned when an obligation has no title.
	ErrObligationTitleRequired = errors.New("obligation title is required")

	// ErrInvalidObligationTotal is returned when the principal is zero or negative.
	ErrInvalidObligationTotal = errors.New("obligation total must be greater than zero")

	// ErrInvalidPaidAmount is returned when the paid amount is negative or exceeds the total.
	ErrInvalidPaidAmount = errors.New("paid amount must be between zero and the total")

	// ErrInvalidPaymentDelta is returned when a recorded payment is zero or negative.
	ErrInvalidPaymentDelta = errors.New("payment amount must be greater than zero")

	// ErrObligationSettled is returned when recording a payment against a fully paid obligation.
	ErrObligationSettled = errors.New("obligation is already fully paid")
)

// ObligationErrorCode defines error codes for obligation errors.
// Format: OBL-XXYYYY where XX is category and YYYY is specific error.
type ObligationErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeObligationNotFound      ObligationErrorCode = "OBL-010001"
	ErrCodeObligationTitleRequired ObligationErrorCode = "OBL-010002"
	ErrCodeInvalidObligationTotal  ObligationErrorCode = "OBL-010003"
	ErrCodeInvalidPaidAmount       ObligationErrorCode = "OBL-010004"
	ErrCodeInvalidPaymentDelta     ObligationErrorCode = "OBL-010005"
	ErrCodeObligationSettled       ObligationErrorCode = "OBL-010006"
)

// ObligationError represents an obligation error with code and message.
type ObligationError struct {
	Code    ObligationErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ObligationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ObligationError) Unwrap() error {
	return e.Err
}

// NewObligationError creates a new ObligationError with the given code and message.
func NewObligationError(code ObligationErrorCode, message string, err error) *ObligationError {
	return &ObligationError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
