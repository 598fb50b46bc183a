package parser

import (
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"

	"github.com/manav03panchal/lifedash/internal/errors"
)

// isoDate is the layout accepted without natural language parsing.
const isoDate = "2006-01-02"

// ParseDueDate parses an optional due date relative to now.
// A blank input means "no due date" and returns nil. The result is the start
// of the parsed day in now's location; past dates are allowed.
func ParseDueDate(input string, now time.Time) (*time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil
	}

	if t, err := time.ParseInLocation(isoDate, input, now.Location()); err == nil {
		return &t, nil
	}

	cfg := &dateparser.Configuration{
		CurrentTime:     now,
		DefaultTimezone: now.Location(),
	}
	result, err := dateparser.Parse(cfg, input)
	if err != nil || result.Time.IsZero() {
		return nil, NewParseError(errors.ErrInvalidDate, "due date", input,
			"could not understand this date", DateExamples...)
	}

	day := StartOfDay(result.Time.In(now.Location()))
	return &day, nil
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// FormatDueDate renders a due date for editor fields; nil renders empty.
func FormatDueDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(isoDate)
}
