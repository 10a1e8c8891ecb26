// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Ledger domain errors.
var (
	// ErrEmptyIncomeSource is returned when an income record has no source.
	ErrEmptyIncomeSource = errors.New("income source must not be empty")

	// ErrEmptyExpenseCategory is returned when an expense record has no category.
	ErrEmptyExpenseCategory = errors.New("expense category must not be empty")

	// ErrEmptySavingTitle is returned when a saving record has no title.
	ErrEmptySavingTitle = errors.New("saving title must not be empty")

	// ErrNegativeAmount is returned when a monetary amount is negative.
	ErrNegativeAmount = errors.New("amount must be a non-negative integer")

	// ErrUnrecognizedDateFormat is returned when a date string matches none of
	// the accepted formats, at write time or when reading stored records.
	ErrUnrecognizedDateFormat = errors.New("unrecognized date format")
)

// LedgerErrorCode defines error codes for ledger errors.
// Format: LGR-XXYYYY where XX is category and YYYY is specific error.
type LedgerErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEmptyIncomeSource      LedgerErrorCode = "LGR-010001"
	ErrCodeEmptyExpenseCategory   LedgerErrorCode = "LGR-010002"
	ErrCodeEmptySavingTitle       LedgerErrorCode = "LGR-010003"
	ErrCodeNegativeAmount         LedgerErrorCode = "LGR-010004"
	ErrCodeUnrecognizedDateFormat LedgerErrorCode = "LGR-010005"
	ErrCodeMissingLedgerFields    LedgerErrorCode = "LGR-010006"

	// Data integrity errors (02XXXX)
	ErrCodeStoredDateCorrupt LedgerErrorCode = "LGR-020001"
)

// LedgerError represents a ledger error with code and message.
type LedgerError struct {
	Code    LedgerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LedgerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// NewLedgerError creates a new LedgerError with the given code and message.
func NewLedgerError(code LedgerErrorCode, message string, err error) *LedgerError {
	return &LedgerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
