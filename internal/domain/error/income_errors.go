package error

import "errors"

// Income domain errors.
var (
	// ErrIncomeNotFound is returned when an income record is not found.
	ErrIncomeNotFound = errors.New("income not found")

	// ErrIncomeTitleRequired is returned when an income record has no title.
	ErrIncomeTitleRequired = errors.New("income title is required")

	// ErrInvalidIncomeAmount is returned when the income amount is zero or negative.
	ErrInvalidIncomeAmount = errors.New("income amount must be greater than zero")
)

// IncomeErrorCode defines error codes for income errors.
// Format: INC-XXYYYY where XX is category and YYYY is specific error.
type IncomeErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeIncomeNotFound      IncomeErrorCode = "INC-010001"
	ErrCodeIncomeTitleRequired IncomeErrorCode = "INC-010002"
	ErrCodeInvalidIncomeAmount IncomeErrorCode = "INC-010003"
)

// IncomeError represents an income error with code and message.
type IncomeError struct {
	Code    IncomeErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *IncomeError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *IncomeError) Unwrap() error {
	return e.Err
}

// NewIncomeError creates a new IncomeError with the given code and message.
func NewIncomeError(code IncomeErrorCode, message string, err error) *IncomeError {
	return &IncomeError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
