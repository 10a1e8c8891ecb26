// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Report domain errors.
var (
	// ErrReportWrite is returned when the external renderer fails to persist a report.
	ErrReportWrite = errors.New("failed to write report")

	// ErrReportDelivery is returned when the mailer fails to deliver a report.
	ErrReportDelivery = errors.New("failed to deliver report")

	// ErrInvalidReportPeriod is returned when the requested year/month is out of range.
	ErrInvalidReportPeriod = errors.New("invalid report period")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidReportPeriod ReportErrorCode = "RPT-010001"
	ErrCodeMissingReportFields ReportErrorCode = "RPT-010002"

	// IO errors (02XXXX)
	ErrCodeReportWrite    ReportErrorCode = "RPT-020001"
	ErrCodeReportDelivery ReportErrorCode = "RPT-020002"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
