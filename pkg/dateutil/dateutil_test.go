package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMonthsBetween tests calendar month arithmetic
func TestMonthsBetween(t *testing.T) {
	now := time.Date(2026, 10, 19, 15, 4, 5, 0, time.UTC)

	tests := []struct {
		name        string
		to          time.Time
		expected    int
		description string
	}{
		{
			name:        "Same month",
			to:          time.Date(2026, 10, 31, 0, 0, 0, 0, time.UTC),
			expected:    0,
			description: "Days are ignored within the current month",
		},
		{
			name:        "Next month first day",
			to:          time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC),
			expected:    1,
			description: "Counts calendar months, not 30-day periods",
		},
		{
			name:        "Two years ahead",
			to:          time.Date(2028, 10, 1, 0, 0, 0, 0, time.UTC),
			expected:    24,
			description: "yearDiff*12 + monthDiff",
		},
		{
			name:        "Across year boundary with negative month diff",
			to:          time.Date(2027, 2, 14, 0, 0, 0, 0, time.UTC),
			expected:    4,
			description: "12 + (2 - 10)",
		},
		{
			name:        "Past date",
			to:          time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
			expected:    -10,
			description: "Earlier months are negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MonthsBetween(now, tt.to), tt.description)
		})
	}
}

func TestYearsFromMonths(t *testing.T) {
	assert.InDelta(t, 2.0, YearsFromMonths(24), 1e-9)
	assert.InDelta(t, 0.5, YearsFromMonths(6), 1e-9)
	assert.InDelta(t, 0.0, YearsFromMonths(0), 1e-9)
}

func TestParseTargetDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"ISO date", "2028-10-19", time.Date(2028, 10, 19, 0, 0, 0, 0, time.UTC)},
		{"Year and month", "2028-10", time.Date(2028, 10, 1, 0, 0, 0, 0, time.UTC)},
		{"Day first", "19/10/2028", time.Date(2028, 10, 19, 0, 0, 0, 0, time.UTC)},
		{"RFC3339", "2028-10-19T00:00:00Z", time.Date(2028, 10, 19, 0, 0, 0, 0, time.UTC)},
		{"Surrounding spaces", "  2028-10  ", time.Date(2028, 10, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTargetDate(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}

	_, err := ParseTargetDate("")
	assert.Error(t, err)
	_, err = ParseTargetDate("next summer")
	assert.Error(t, err)
}

func TestMonthHelpers(t *testing.T) {
	d := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), BeginningOfMonth(d))
	assert.Equal(t, time.Date(2028, 10, 19, 12, 0, 0, 0, time.UTC), AddMonths(d, 24))
	assert.Equal(t, 24, MonthsBetween(d, AddMonths(d, 24)))
}
