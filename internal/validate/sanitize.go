package validate

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/manav03panchal/lifedash/internal/model"
)

// SanitizeTitle removes control characters and caps the title length.
// Surrounding whitespace is kept; blank checks trim on their own.
func SanitizeTitle(title string) string {
	var sb strings.Builder
	for _, r := range title {
		if !unicode.IsControl(r) {
			sb.WriteRune(r)
		}
	}
	return TruncateRunes(sb.String(), model.MaxTitleLength)
}

// SanitizeText cleans multi-line text for safe storage.
func SanitizeText(text string) string {
	// Remove null bytes
	text = strings.ReplaceAll(text, "\x00", "")

	// Normalize line endings
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	return StripControlChars(text)
}

// StripControlChars removes all control characters from a string.
func StripControlChars(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if !unicode.IsControl(r) || r == '\n' || r == '\t' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// TruncateRunes cuts s to at most maxRunes runes.
func TruncateRunes(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxRunes {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxRunes])
}

// TruncateString truncates a string for display, adding "..." if truncated.
func TruncateString(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return TruncateRunes(s, maxLen)
	}
	return TruncateRunes(s, maxLen-3) + "..."
}
