package runtime

import (
	"errors"
	"fmt"
	"strings"
	"syscall"

	lderrors "github.com/manav03panchal/lifedash/internal/errors"
)

// ErrDiskFull is returned when the session store cannot be written.
var ErrDiskFull = errors.New("disk full: unable to write session")

// Suggestions provides command hints for errors the CLI commonly reports.
var Suggestions = map[error]string{
	lderrors.ErrNotAuthenticated:   "Use 'lifedash login' to sign in, or 'lifedash dashboard --guest'.",
	lderrors.ErrNetworkUnavailable: "Start the auth server with 'lifedash serve', or point --server at a running one.",
	lderrors.ErrInvalidCredentials: "Demo accounts: demo@example.com / password123, admin@example.com / admin123.",
	ErrDiskFull:                    "Free up disk space and try again.",
}

// GetSuggestion returns a suggestion for an error, if available.
// Command hints win over the suggestions of the errors package, which in
// turn win over the generic hint for the error's category.
func GetSuggestion(err error) string {
	for knownErr, suggestion := range Suggestions {
		if errors.Is(err, knownErr) {
			return suggestion
		}
	}
	if suggestion := lderrors.GetSuggestion(err); suggestion != "" {
		return suggestion
	}
	return lderrors.GetCategorySuggestion(err)
}

// FormatError formats an error with optional suggestion.
func FormatError(err error) string {
	msg := err.Error()
	if suggestion := GetSuggestion(err); suggestion != "" {
		msg += "\n" + suggestion
	}
	return msg
}

// DiskFullError represents a disk full condition with additional context.
type DiskFullError struct {
	Op      string // The operation that failed (e.g., "write", "sync")
	Path    string // The path involved, if known
	wrapped error  // The underlying error
}

func (e *DiskFullError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("disk full during %s on %s: %v", e.Op, e.Path, e.wrapped)
	}
	return fmt.Sprintf("disk full during %s: %v", e.Op, e.wrapped)
}

func (e *DiskFullError) Unwrap() error {
	return ErrDiskFull
}

// NewDiskFullError creates a new DiskFullError.
func NewDiskFullError(op, path string, err error) *DiskFullError {
	return &DiskFullError{
		Op:      op,
		Path:    path,
		wrapped: err,
	}
}

// IsDiskFullError checks if an error indicates a disk full condition.
// It checks for ENOSPC (Linux/macOS) and common disk full error patterns.
func IsDiskFullError(err error) bool {
	if err == nil {
		return false
	}

	// Check if it's already our DiskFullError
	var diskFullErr *DiskFullError
	if errors.As(err, &diskFullErr) {
		return true
	}

	// Check if it's our sentinel error
	if errors.Is(err, ErrDiskFull) {
		return true
	}

	// Check for ENOSPC (no space left on device)
	var errno syscall.Errno
	if errors.As(err, &errno) {
		if errno == syscall.ENOSPC {
			return true
		}
	}

	// Check error message for disk full patterns
	errStr := strings.ToLower(err.Error())
	diskFullPatterns := []string{
		"no space left on device",
		"disk full",
		"enospc",
		"not enough space",
		"insufficient disk space",
		"out of disk space",
	}

	for _, pattern := range diskFullPatterns {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}

	return false
}

// WrapDiskFullError wraps an error as a DiskFullError if it indicates disk full.
// If the error is not a disk full error, it returns the original error unchanged.
func WrapDiskFullError(err error, op, path string) error {
	if err == nil {
		return nil
	}
	if IsDiskFullError(err) {
		return NewDiskFullError(op, path, err)
	}
	return err
}
