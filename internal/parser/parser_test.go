package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/lifedash/internal/errors"
)

// =============================================================================
// Due date Tests
// =============================================================================

func TestParseDueDate(t *testing.T) {
	now := time.Date(2026, 10, 19, 14, 30, 0, 0, time.UTC)

	t.Run("blank_is_no_date", func(t *testing.T) {
		got, err := ParseDueDate("   ", now)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("iso", func(t *testing.T) {
		got, err := ParseDueDate("2026-11-02", now)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC), *got)
	})

	t.Run("tomorrow", func(t *testing.T) {
		got, err := ParseDueDate("tomorrow", now)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC), *got)
	})

	t.Run("past_allowed", func(t *testing.T) {
		got, err := ParseDueDate("2020-01-01", now)
		require.NoError(t, err)
		assert.True(t, got.Before(now))
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseDueDate("qwertyuiop", now)
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrInvalidDate)

		var pe *ParseError
		require.ErrorAs(t, err, &pe)
		assert.Contains(t, pe.FormatWithExamples(), "Valid examples:")
	})
}

func TestFormatDueDate(t *testing.T) {
	assert.Equal(t, "", FormatDueDate(nil))
	d := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-01-15", FormatDueDate(&d))
}

// =============================================================================
// Clock Tests
// =============================================================================

func TestParseClock(t *testing.T) {
	tests := []struct {
		input   string
		want    time.Duration
		wantErr bool
	}{
		{"23:00", 23 * time.Hour, false},
		{"07:12", 7*time.Hour + 12*time.Minute, false},
		{"6:30", 6*time.Hour + 30*time.Minute, false},
		{"00:00", 0, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"noon", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseClock(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, errors.ErrInvalidClock)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "07:12", FormatClock(7*time.Hour+12*time.Minute))
	assert.Equal(t, "00:15", FormatClock(24*time.Hour+15*time.Minute))
	assert.Equal(t, "23:45", FormatClock(-15*time.Minute))
}

func TestAddClock(t *testing.T) {
	got, err := AddClock("23:00", 90*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "00:30", got)

	got, err = AddClock("00:10", -15*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "23:55", got)

	_, err = AddClock("bad", time.Minute)
	assert.Error(t, err)
}

func TestSleepDuration(t *testing.T) {
	d, err := SleepDuration("23:00", "07:12")
	require.NoError(t, err)
	assert.Equal(t, 8*time.Hour+12*time.Minute, d)

	d, err = SleepDuration("01:00", "09:00")
	require.NoError(t, err)
	assert.Equal(t, 8*time.Hour, d)

	_, err = SleepDuration("23:00", "7am")
	assert.Error(t, err)
}

// =============================================================================
// Amount Tests
// =============================================================================

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{"42", 42, false},
		{"$42.50", 42.5, false},
		{"1,250.00", 1250, false},
		{"19.999", 20, false},
		{"0", 0, true},
		{"-5", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, errors.ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}
