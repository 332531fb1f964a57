package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	ts := time.Date(2024, time.March, 7, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-07", Format(ts))
}

func TestTomorrow(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"mid-month", time.Date(2024, time.March, 7, 0, 0, 0, 0, time.UTC), "2024-03-08"},
		{"month boundary", time.Date(2024, time.March, 31, 23, 0, 0, 0, time.UTC), "2024-04-01"},
		{"year boundary", time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC), "2025-01-01"},
		{"leap day", time.Date(2024, time.February, 28, 0, 0, 0, 0, time.UTC), "2024-02-29"},
		{"non-leap february", time.Date(2023, time.February, 28, 0, 0, 0, 0, time.UTC), "2023-03-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tomorrow(tt.in))
		})
	}
}

func TestMonthBounds(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     int
		wantFirst string
		wantLast  string
	}{
		{"31-day month", 2024, 3, "2024-03-01", "2024-03-31"},
		{"30-day month", 2024, 4, "2024-04-01", "2024-04-30"},
		{"leap february", 2024, 2, "2024-02-01", "2024-02-29"},
		{"non-leap february", 2023, 2, "2023-02-01", "2023-02-28"},
		{"december", 2024, 12, "2024-12-01", "2024-12-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last, err := MonthBounds(tt.year, tt.month)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFirst, first)
			assert.Equal(t, tt.wantLast, last)
		})
	}
}

func TestMonthBoundsInvalidMonth(t *testing.T) {
	for _, month := range []int{0, 13, -1} {
		_, _, err := MonthBounds(2024, month)
		assert.Error(t, err)
	}
}

func TestIsValidDate(t *testing.T) {
	assert.True(t, IsValidDate("2024-03-07"))
	assert.True(t, IsValidDate("2024-02-29"))
	assert.False(t, IsValidDate("2023-02-29"))
	assert.False(t, IsValidDate("2024-13-01"))
	assert.False(t, IsValidDate("07-03-2024"))
	assert.False(t, IsValidDate("2024-3-7"))
	assert.False(t, IsValidDate(""))
}

func TestIsValidTime(t *testing.T) {
	assert.True(t, IsValidTime("09:30"))
	assert.True(t, IsValidTime("23:59"))
	assert.False(t, IsValidTime("24:00"))
	assert.False(t, IsValidTime("9:30"))
	assert.False(t, IsValidTime("09:60"))
	assert.False(t, IsValidTime(""))
}
