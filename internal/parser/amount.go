package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/manav03panchal/lifedash/internal/errors"
)

// ParseAmount parses a positive money amount such as "1,250.00" or "$42".
// The result is rounded to cents.
func ParseAmount(input string) (float64, error) {
	raw := strings.TrimSpace(input)
	cleaned := strings.TrimPrefix(raw, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || v <= 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, NewParseError(errors.ErrInvalidAmount, "amount", raw,
			"expected a positive number", AmountExamples...)
	}
	return math.Round(v*100) / 100, nil
}
