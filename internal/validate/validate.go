// Package validate provides input validation helpers for Lifedash.
package validate

import (
	"net/mail"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/manav03panchal/lifedash/internal/errors"
	"github.com/manav03panchal/lifedash/internal/model"
)

const (
	// MaxEmailLength is the maximum length for an email address.
	MaxEmailLength = 254
	// MaxContentLength is the maximum length for note content.
	MaxContentLength = 64 * 1024
	// MaxItemTextLength is the maximum length for a checklist item.
	MaxItemTextLength = 500
)

// Title validates a title that must not be blank.
func Title(title string) error {
	if strings.TrimSpace(title) == "" {
		return errors.NewUserErrorFor(errors.ErrTitleRequired,
			"Title is required",
			"Type a title before saving")
	}
	if utf8.RuneCountInString(title) > model.MaxTitleLength {
		return errors.NewUserErrorWithField("title", title,
			"Title too long",
			"Titles must be 200 characters or fewer")
	}
	return nil
}

// Content validates free-form note content.
func Content(content string) error {
	if utf8.RuneCountInString(content) > MaxContentLength {
		return errors.NewUserError(
			"Content too long",
			"Notes must be 65536 characters or fewer")
	}
	return nil
}

// Email validates an email address for the login form.
func Email(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errors.CredentialsRequired()
	}
	if len(email) > MaxEmailLength {
		return errors.NewUserErrorWithField("email", email,
			"Email too long",
			"Email addresses must be 254 characters or fewer")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return errors.NewUserErrorWithField("email", email,
			"Invalid email format",
			"Use an address like demo@example.com")
	}
	return nil
}

// Credentials validates that both login fields are present.
func Credentials(email, password string) error {
	if email == "" || password == "" {
		return errors.CredentialsRequired()
	}
	return nil
}

// NonEmpty validates that a string is not empty.
func NonEmpty(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.NewUserError(
			field+" cannot be empty",
			"Provide a value for "+field)
	}
	return nil
}

// InRange validates that an integer is within a range.
func InRange(field string, value, min, max int) error {
	if value < min || value > max {
		return errors.NewUserErrorWithField(field, strconv.Itoa(value),
			"Value out of range",
			"Must be between "+strconv.Itoa(min)+" and "+strconv.Itoa(max))
	}
	return nil
}
