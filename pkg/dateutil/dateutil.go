package dateutil

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the stored calendar-date format. Dates are plain
	// YYYY-MM-DD strings with no timezone component, so range queries
	// compare them lexicographically.
	DateLayout = "2006-01-02"

	// TimeLayout is the stored appointment-time format (24-hour).
	TimeLayout = "15:04"
)

// Format returns t as a stored date string.
func Format(t time.Time) string {
	return t.Format(DateLayout)
}

// Tomorrow returns the date string for the day after t.
func Tomorrow(t time.Time) string {
	return t.AddDate(0, 0, 1).Format(DateLayout)
}

// MonthBounds returns the first and last calendar day of the given month as
// inclusive date strings. Month must be in 1..12.
func MonthBounds(year, month int) (string, string, error) {
	if month < 1 || month > 12 {
		return "", "", fmt.Errorf("month must be between 1 and 12, got %d", month)
	}
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first.Format(DateLayout), last.Format(DateLayout), nil
}

// IsValidDate reports whether s is a well-formed YYYY-MM-DD date string.
func IsValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// IsValidTime reports whether s is a well-formed HH:MM time string.
func IsValidTime(s string) bool {
	_, err := time.Parse(TimeLayout, s)
	return err == nil
}
