// Package error defines domain-specific errors for the duitku backend.
package error

import "errors"

// Expense domain errors.
var (
	// ErrExpenseNotFound is returned when an expense record is not found.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrExpenseTitleRequired is returned when an expense is created or updated without a title.
	ErrExpenseTitleRequired = errors.New("expense title is required")

	// ErrInvalidExpenseTotal is returned when the computed expense total is zero or negative.
	ErrInvalidExpenseTotal = errors.New("computed expense total must be greater than zero")

	// ErrNegativeExpenseComponent is returned when a component amount is negative.
	ErrNegativeExpenseComponent = errors.New("expense component amounts must not be negative")
)

// ExpenseErrorCode defines error codes for expense errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeExpenseNotFound          ExpenseErrorCode = "EXP-010001"
	ErrCodeExpenseTitleRequired     ExpenseErrorCode = "EXP-010002"
	ErrCodeInvalidExpenseTotal      ExpenseErrorCode = "EXP-010003"
	ErrCodeNegativeExpenseComponent ExpenseErrorCode = "EXP-010004"
)

// ExpenseError represents an expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
