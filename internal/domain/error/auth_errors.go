// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Authentication domain errors.
var (
	// ErrUsernameAlreadyExists is returned when registering a username that is taken.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrInvalidUsername is returned when the username is empty or malformed.
	ErrInvalidUsername = errors.New("invalid username")

	// ErrWeakPassword is returned when the password does not meet minimum requirements.
	ErrWeakPassword = errors.New("password does not meet minimum requirements")

	// ErrInvalidCredentials is returned when the username/password pair does not verify.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserNotFound is returned when a user is not found in the system.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidToken is returned when a token is invalid or expired.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrMissingToken is returned when no token is supplied on a protected route.
	ErrMissingToken = errors.New("missing authentication token")
)

// AuthErrorCode defines error codes for authentication errors.
// Format: ATH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidUsername AuthErrorCode = "ATH-010001"
	ErrCodeWeakPassword    AuthErrorCode = "ATH-010002"
	ErrCodeUsernameExists  AuthErrorCode = "ATH-010003"

	// Authentication errors (02XXXX)
	ErrCodeInvalidCredentials AuthErrorCode = "ATH-020001"
	ErrCodeInvalidToken       AuthErrorCode = "ATH-020002"
	ErrCodeMissingToken       AuthErrorCode = "ATH-020003"
	ErrCodeRateLimited        AuthErrorCode = "ATH-020004"
)

// AuthError represents an authentication error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
