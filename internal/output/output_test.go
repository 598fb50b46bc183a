package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/lifedash/internal/model"
)

func demoSession() *model.Session {
	return &model.Session{
		Token: "mock-jwt-token-1-1760000000000",
		User:  model.User{ID: "1", Email: "demo@example.com", Name: "Demo User", Role: model.RoleUser},
	}
}

func plainCLI() (*CLIFormatter, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewCLIFormatter(&Formatter{Writer: &buf, ColorMode: ColorNever}), &buf
}

// =============================================================================
// Formatter Tests
// =============================================================================

func TestNewFormatter(t *testing.T) {
	f := NewFormatter()
	assert.NotNil(t, f)
	assert.Equal(t, FormatCLI, f.Format)
	assert.Equal(t, ColorAuto, f.ColorMode)
	assert.False(t, f.NoNewline)
}

func TestFormatterIsColorEnabled(t *testing.T) {
	t.Run("color_always", func(t *testing.T) {
		f := &Formatter{ColorMode: ColorAlways}
		assert.True(t, f.IsColorEnabled())
	})

	t.Run("color_never", func(t *testing.T) {
		f := &Formatter{ColorMode: ColorNever}
		assert.False(t, f.IsColorEnabled())
	})

	t.Run("color_auto_non_terminal", func(t *testing.T) {
		var buf bytes.Buffer
		f := &Formatter{Writer: &buf, ColorMode: ColorAuto}
		// Buffer is not a terminal
		assert.False(t, f.IsColorEnabled())
	})
}

func TestFormatterPrinting(t *testing.T) {
	var buf bytes.Buffer
	f := &Formatter{Writer: &buf}

	f.Print("a")
	f.Println("b")
	f.Printf("%d", 3)
	assert.Equal(t, "ab\n3", buf.String())
}

func TestFormatterJSON(t *testing.T) {
	var buf bytes.Buffer
	f := &Formatter{Writer: &buf}

	require.NoError(t, f.PrintJSON(map[string]int{"n": 1}))
	assert.Equal(t, "{\n  \"n\": 1\n}\n", buf.String())
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		duration time.Duration
		expected string
	}{
		{0, "0s"},
		{30 * time.Second, "30s"},
		{90 * time.Second, "1m 30s"},
		{5 * time.Minute, "5m"},
		{60 * time.Minute, "1h"},
		{8*time.Hour + 12*time.Minute, "8h 12m"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDuration(tt.duration))
		})
	}
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount   float64
		expected string
	}{
		{0, "$0.00"},
		{18.75, "$18.75"},
		{92.159, "$92.16"},
		{1450, "$1,450.00"},
		{1234567.8, "$1,234,567.80"},
		{-42.5, "-$42.50"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatMoney(tt.amount))
		})
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2026, 1, 15, 12, 0, 0, 0, time.Local)
	assert.Equal(t, "2026-01-15", FormatDate(d))
	assert.Equal(t, "2026-01-15 12:00", FormatTimeShort(d))
}

// =============================================================================
// CLI Formatter Tests
// =============================================================================

func TestCLIFormatterMessages(t *testing.T) {
	c, buf := plainCLI()
	c.Title("Title")
	c.Success("ok")
	c.Warning("careful")
	c.Error("bad")
	c.Muted("quiet")

	assert.Equal(t, "Title\n✓ ok\n⚠ careful\n✗ bad\nquiet\n", buf.String())
}

func TestCLIFormatterColor(t *testing.T) {
	var buf bytes.Buffer
	c := NewCLIFormatter(&Formatter{Writer: &buf, ColorMode: ColorAlways})
	c.Success("ok")
	assert.Contains(t, buf.String(), "✓ ok")
}

func TestCLIFormatterPrintLoggedIn(t *testing.T) {
	c, buf := plainCLI()
	c.PrintLoggedIn(demoSession())

	out := buf.String()
	assert.Contains(t, out, "✓ Logged in as Demo User")
	assert.Contains(t, out, "Email: demo@example.com")
	assert.Contains(t, out, "Role:  user")
	assert.NotContains(t, out, "mock-jwt-token")
}

func TestCLIFormatterPrintWhoami(t *testing.T) {
	c, buf := plainCLI()
	c.PrintWhoami(nil, time.Time{})
	assert.Contains(t, buf.String(), "Not logged in.")

	buf.Reset()
	c.PrintWhoami(demoSession(), time.Time{})
	assert.True(t, strings.HasPrefix(buf.String(), "Demo User\n"))
	assert.NotContains(t, buf.String(), "Since:")

	buf.Reset()
	signedIn := time.Date(2026, 10, 18, 9, 30, 0, 0, time.Local)
	c.PrintWhoami(demoSession(), signedIn)
	assert.Contains(t, buf.String(), "  Since: 2026-10-18 09:30\n")
}

func TestCLIFormatterPrintLoggedOut(t *testing.T) {
	c, buf := plainCLI()
	c.PrintLoggedOut(true)
	c.PrintLoggedOut(false)
	assert.Equal(t, "✓ Logged out\nAlready logged out.\n", buf.String())
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		name       string
		percentage float64
		width      int
		filled     int
	}{
		{"zero", 0, 10, 0},
		{"half", 50, 10, 5},
		{"full", 100, 10, 10},
		{"over", 150, 10, 10},
		{"negative", -5, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := ProgressBar(tt.percentage, tt.width)
			assert.Equal(t, tt.filled, strings.Count(bar, "█"))
			assert.Equal(t, tt.width-tt.filled, strings.Count(bar, "░"))
		})
	}
}

func TestCLIFormatterPrintTable(t *testing.T) {
	c, buf := plainCLI()
	c.PrintTable([]string{"Date", "Amount"}, []TableRow{
		{Columns: []string{"2026-10-18", "$18.75"}},
		{Columns: []string{"2026-10-17", "$1,450.00"}},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Date        Amount", lines[0])
	assert.Equal(t, "2026-10-17  $1,450.00", lines[3])

	buf.Reset()
	c.PrintTable([]string{"x"}, nil)
	assert.Empty(t, buf.String())
}

// =============================================================================
// JSON Formatter Tests
// =============================================================================

func TestNewSessionResponse(t *testing.T) {
	resp := NewSessionResponse(nil)
	assert.Equal(t, "logged_out", resp.Status)
	assert.Nil(t, resp.User)

	resp = NewSessionResponse(demoSession())
	assert.Equal(t, "logged_in", resp.Status)
	assert.Equal(t, "1", resp.User.ID)
	assert.True(t, strings.HasPrefix(resp.Token, "mock-jwt-token-"))
	assert.NotContains(t, resp.Token, "1760000000000")
}

func TestJSONFormatterPrintSession(t *testing.T) {
	var buf bytes.Buffer
	j := NewJSONFormatter(&Formatter{Writer: &buf})
	require.NoError(t, j.PrintSession(demoSession()))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "logged_in", got["status"])
	user := got["user"].(map[string]any)
	assert.Equal(t, "Demo User", user["name"])
	assert.Equal(t, "user", user["role"])
}

func TestJSONFormatterPrintError(t *testing.T) {
	var buf bytes.Buffer
	j := NewJSONFormatter(&Formatter{Writer: &buf})
	require.NoError(t, j.PrintError("invalid email or password", "Invalid email or password", "Check your email and password and try again."))

	var got ErrorResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "error", got.Status)
	assert.Equal(t, "Invalid email or password", got.Message)
	assert.NotEmpty(t, got.Suggestion)
}

func TestJSONFormatterPrintVersion(t *testing.T) {
	var buf bytes.Buffer
	j := NewJSONFormatter(&Formatter{Writer: &buf})
	require.NoError(t, j.PrintVersion("1.2.3", ""))
	assert.JSONEq(t, `{"version":"1.2.3"}`, buf.String())
}
