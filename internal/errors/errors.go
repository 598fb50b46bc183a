// Package errors provides consistent error types for Lifedash.
// It defines three main categories: UserError (fixable by user), SystemError (system issues),
// and RecoverableError (transient, the caller may retry).
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Standard sentinel errors for common conditions.
var (
	ErrCredentialsRequired = errors.New("email and password are required")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrMalformedRequest    = errors.New("malformed request body")
	ErrNetworkUnavailable  = errors.New("network unavailable")
	ErrNotAuthenticated    = errors.New("not authenticated")
	ErrNotFound            = errors.New("not found")
	ErrTitleRequired       = errors.New("title is required")
	ErrNothingToSave       = errors.New("nothing to save")
	ErrEditorClosed        = errors.New("editor is not open")
	ErrInvalidClock        = errors.New("invalid clock time")
	ErrInvalidDate         = errors.New("invalid date")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrTimeout             = errors.New("operation timed out")
)

// Public messages returned by the auth endpoint. They are part of the wire contract.
const (
	MsgCredentialsRequired = "Email and password are required"
	MsgInvalidCredentials  = "Invalid email or password"
	MsgInternal            = "Internal server error"
	MsgNetwork             = "Unable to reach the server. Please try again."
)

// UserError represents an error that the user can fix.
// Examples: invalid input, missing required fields, wrong credentials.
type UserError struct {
	Message    string // What happened
	Reason     string // Why it happened (optional)
	Suggestion string // How to fix it
	Field      string // The field/input that caused the error (optional)
	Value      string // The invalid value (optional)
	Err        error  // Sentinel this error stands for (optional)
}

func (e *UserError) Error() string {
	msg := e.Message
	if e.Field != "" && e.Value != "" {
		msg = fmt.Sprintf("%s: '%s'", e.Message, e.Value)
	}
	return msg
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new UserError.
func NewUserError(message, suggestion string) *UserError {
	return &UserError{
		Message:    message,
		Suggestion: suggestion,
	}
}

// NewUserErrorWithField creates a new UserError with field context.
func NewUserErrorWithField(field, value, message, suggestion string) *UserError {
	return &UserError{
		Message:    message,
		Field:      field,
		Value:      value,
		Suggestion: suggestion,
	}
}

// NewUserErrorFor creates a UserError that matches sentinel with errors.Is.
func NewUserErrorFor(sentinel error, message, suggestion string) *UserError {
	return &UserError{
		Message:    message,
		Suggestion: suggestion,
		Err:        sentinel,
	}
}

// SystemError represents a system-level error that the user cannot directly fix.
// Examples: malformed request bodies, storage failures.
type SystemError struct {
	Message string // What happened
	Cause   error  // The underlying error
	Op      string // The operation that failed (optional)
}

func (e *SystemError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s during %s", e.Message, e.Op)
	}
	return e.Message
}

func (e *SystemError) Unwrap() error {
	return e.Cause
}

// NewSystemErrorWithOp creates a new SystemError with operation context.
func NewSystemErrorWithOp(op, message string, cause error) *SystemError {
	return &SystemError{
		Message: message,
		Cause:   cause,
		Op:      op,
	}
}

// RecoverableError represents an error that may succeed when retried.
// Examples: the auth endpoint is unreachable.
type RecoverableError struct {
	Message string // What happened
	Cause   error  // The underlying error
}

func (e *RecoverableError) Error() string {
	return e.Message
}

func (e *RecoverableError) Unwrap() error {
	return e.Cause
}

// NewRecoverableError creates a new RecoverableError.
func NewRecoverableError(message string, cause error) *RecoverableError {
	return &RecoverableError{
		Message: message,
		Cause:   cause,
	}
}

// IsUserError checks if an error is a UserError.
func IsUserError(err error) bool {
	var ue *UserError
	return errors.As(err, &ue)
}

// IsSystemError checks if an error is a SystemError.
func IsSystemError(err error) bool {
	var se *SystemError
	return errors.As(err, &se)
}

// IsRecoverableError checks if an error is a RecoverableError.
func IsRecoverableError(err error) bool {
	var re *RecoverableError
	return errors.As(err, &re)
}

// AsUserError extracts a UserError from an error chain.
func AsUserError(err error) (*UserError, bool) {
	var ue *UserError
	ok := errors.As(err, &ue)
	return ue, ok
}

// AsRecoverableError extracts a RecoverableError from an error chain.
func AsRecoverableError(err error) (*RecoverableError, bool) {
	var re *RecoverableError
	ok := errors.As(err, &re)
	return re, ok
}

// Auth error constructors. Each one carries the public message of the endpoint.

// CredentialsRequired is returned when email or password is missing.
func CredentialsRequired() *UserError {
	return NewUserErrorFor(ErrCredentialsRequired, MsgCredentialsRequired,
		"Enter both an email address and a password.")
}

// InvalidCredentials is returned when no allow-list entry matches.
// The message never says which field was wrong.
func InvalidCredentials() *UserError {
	return NewUserErrorFor(ErrInvalidCredentials, MsgInvalidCredentials,
		"Check your email and password and try again.")
}

// Internal wraps an unexpected failure as the generic internal error.
// The cause carries the stack of the caller for debug output.
func Internal(op string, cause error) *SystemError {
	return NewSystemErrorWithOp(op, MsgInternal, WithStack(cause))
}

// Network wraps a transport failure reaching a remote endpoint.
func Network(cause error) *RecoverableError {
	return NewRecoverableError(MsgNetwork, Join(ErrNetworkUnavailable, cause))
}

// HTTPStatus maps an error to the status code the auth endpoint reports.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	case IsUserError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the message that may be shown to an end user.
// Only user errors expose their own text; everything else is generic.
func PublicMessage(err error) string {
	if err == nil {
		return ""
	}
	if ue, ok := AsUserError(err); ok {
		return ue.Message
	}
	if re, ok := AsRecoverableError(err); ok {
		return re.Message
	}
	return MsgInternal
}

// Is is re-exported from the standard errors package for convenience.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is re-exported from the standard errors package for convenience.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Join is re-exported from the standard errors package for convenience.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// New is re-exported from the standard errors package for convenience.
func New(text string) error {
	return errors.New(text)
}
