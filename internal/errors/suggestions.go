package errors

import "errors"

// Suggestions maps common errors to helpful suggestions.
var Suggestions = map[error]string{
	// User input errors
	ErrCredentialsRequired: "Enter both an email address and a password.",
	ErrInvalidCredentials:  "Check your email and password and try again.",
	ErrNotAuthenticated:    "Run 'lifedash login' first, or start the dashboard with --guest.",
	ErrTitleRequired:       "Give the todo a title before saving.",
	ErrNothingToSave:       "Add a title or some content before saving.",
	ErrInvalidClock:        "Use 24-hour HH:MM format like '23:00' or '07:12'.",
	ErrInvalidDate:         "Try formats like 'tomorrow', 'next friday', or '2026-01-15'.",
	ErrInvalidAmount:       "Use a positive number like '42.50'.",

	// System errors
	ErrMalformedRequest:   "Send a JSON body with 'email' and 'password' fields.",
	ErrNetworkUnavailable: "Check that 'lifedash serve' is running and reachable, then try again.",
	ErrTimeout:            "The operation took too long. Try again or check your network connection.",
}

// GetSuggestion returns a suggestion for an error, if available.
// It walks the error chain to find matching suggestions.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	// Check if it's a UserError with a suggestion
	if ue, ok := AsUserError(err); ok && ue.Suggestion != "" {
		return ue.Suggestion
	}

	for knownErr, suggestion := range Suggestions {
		if errors.Is(err, knownErr) {
			return suggestion
		}
	}

	return ""
}

// GetCategorySuggestion returns a generic suggestion based on error category.
func GetCategorySuggestion(err error) string {
	switch Classify(err) {
	case CategoryUser:
		return "Check your input and try again. Use --help for usage information."
	case CategorySystem:
		return "This is a system error. Run again with --debug for details."
	case CategoryRecoverable:
		return "This error may resolve itself. Try again in a moment."
	}
	return ""
}
