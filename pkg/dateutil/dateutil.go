package dateutil

import (
	"fmt"
	"strings"
	"time"
)

// Layouts accepted for goal dates, most specific first.
var targetDateLayouts = []string{
	"2006-01-02",
	"2006-01",
	"02/01/2006",
	time.RFC3339,
}

// MonthsBetween returns the calendar month difference between two dates:
// (yearDiff*12 + monthDiff). Days are ignored, so any date in the current
// month is 0 and a date in an earlier month is negative.
func MonthsBetween(from, to time.Time) int {
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
}

// YearsFromMonths converts a month count to fractional years
func YearsFromMonths(months int) float64 {
	return float64(months) / 12
}

// ParseTargetDate parses a goal date. A bare year-month resolves to the
// first day of that month.
func ParseTargetDate(value string) (time.Time, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range targetDateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q (want YYYY-MM-DD or YYYY-MM)", value)
}

// AddMonths adds a specified number of months to a date
func AddMonths(date time.Time, months int) time.Time {
	return date.AddDate(0, months, 0)
}

// BeginningOfMonth returns the first day of the month for a given date
func BeginningOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}
