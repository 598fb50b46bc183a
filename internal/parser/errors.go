// Package parser parses the free-form values typed into dashboard editors:
// due dates, HH:MM clock times and money amounts.
package parser

import (
	"fmt"
	"strings"
)

// ParseError represents a parsing error with helpful examples.
type ParseError struct {
	Input    string
	Field    string
	Message  string
	Examples []string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s '%s': %s", e.Field, e.Input, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new parse error that matches sentinel with errors.Is.
func NewParseError(sentinel error, field, input, message string, examples ...string) *ParseError {
	return &ParseError{
		Input:    input,
		Field:    field,
		Message:  message,
		Examples: examples,
		Err:      sentinel,
	}
}

// FormatWithExamples returns the error message with example suggestions.
func (e *ParseError) FormatWithExamples() string {
	var sb strings.Builder
	sb.WriteString(e.Error())

	if len(e.Examples) > 0 {
		sb.WriteString("\n\nValid examples:\n")
		for _, ex := range e.Examples {
			sb.WriteString("  - ")
			sb.WriteString(ex)
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// Example inputs shown with parse errors.
var (
	DateExamples   = []string{"tomorrow", "next friday", "in 3 days", "2026-01-15"}
	ClockExamples  = []string{"23:00", "07:12", "6:30"}
	AmountExamples = []string{"42", "42.50", "1,250.00"}
)
