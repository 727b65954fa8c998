package utils

import (
	"time"

	"github.com/BinadaPasandul/pulse/internal/constants"
)

// Today returns today's date string (YYYY-MM-DD) in local wall-clock time.
func Today() string {
	return time.Now().Format(constants.DateFormat)
}

// DaysAgo returns the date string for n days before today. DaysAgo(0) is
// today.
func DaysAgo(n int) string {
	return time.Now().AddDate(0, 0, -n).Format(constants.DateFormat)
}

// TrailingDays returns the last n calendar days ending today, oldest
// first, today inclusive.
func TrailingDays(n int) []string {
	days := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		days = append(days, DaysAgo(i))
	}
	return days
}

// ValidDate reports whether the string is a well-formed YYYY-MM-DD date.
func ValidDate(date string) bool {
	_, err := time.Parse(constants.DateFormat, date)
	return err == nil
}

// ValidClock reports whether the string is a well-formed HH:mm time.
func ValidClock(clock string) bool {
	_, err := time.Parse(constants.TimeFormat, clock)
	return err == nil
}
