package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/manav03panchal/lifedash/internal/errors"
)

const day = 24 * time.Hour

// clockRegex matches 24-hour clock times with an optional leading zero.
var clockRegex = regexp.MustCompile(`^([01]?\d|2[0-3]):([0-5]\d)$`)

// ParseClock parses an "HH:MM" clock time into an offset from midnight.
func ParseClock(input string) (time.Duration, error) {
	input = strings.TrimSpace(input)
	match := clockRegex.FindStringSubmatch(input)
	if match == nil {
		return 0, NewParseError(errors.ErrInvalidClock, "time", input,
			"expected 24-hour HH:MM", ClockExamples...)
	}
	hours, _ := strconv.Atoi(match[1])
	minutes, _ := strconv.Atoi(match[2])
	return time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute, nil
}

// FormatClock renders an offset from midnight as "HH:MM", wrapping at 24h.
func FormatClock(offset time.Duration) string {
	offset = wrapDay(offset)
	return fmt.Sprintf("%02d:%02d", int(offset.Hours()), int(offset.Minutes())%60)
}

// AddClock shifts an "HH:MM" clock time by delta, wrapping around midnight.
func AddClock(clock string, delta time.Duration) (string, error) {
	offset, err := ParseClock(clock)
	if err != nil {
		return "", err
	}
	return FormatClock(offset + delta), nil
}

// SleepDuration returns the time between going to sleep and waking up.
// Wake times earlier than the sleep time are on the following day.
func SleepDuration(sleep, wake string) (time.Duration, error) {
	from, err := ParseClock(sleep)
	if err != nil {
		return 0, err
	}
	to, err := ParseClock(wake)
	if err != nil {
		return 0, err
	}
	return wrapDay(to - from), nil
}

func wrapDay(d time.Duration) time.Duration {
	d %= day
	if d < 0 {
		d += day
	}
	return d
}
