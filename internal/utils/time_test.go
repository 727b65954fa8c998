package utils

import (
	"testing"
	"time"

	"github.com/BinadaPasandul/pulse/internal/constants"
)

func TestToday(t *testing.T) {
	want := time.Now().Format(constants.DateFormat)
	if got := Today(); got != want {
		t.Errorf("Today() = %q, want %q", got, want)
	}
}

func TestDaysAgo(t *testing.T) {
	if got := DaysAgo(0); got != Today() {
		t.Errorf("DaysAgo(0) = %q, want today", got)
	}

	want := time.Now().AddDate(0, 0, -3).Format(constants.DateFormat)
	if got := DaysAgo(3); got != want {
		t.Errorf("DaysAgo(3) = %q, want %q", got, want)
	}
}

func TestTrailingDays(t *testing.T) {
	days := TrailingDays(7)
	if len(days) != 7 {
		t.Fatalf("TrailingDays(7) returned %d days", len(days))
	}
	if days[6] != Today() {
		t.Errorf("last day = %q, want today", days[6])
	}
	if days[0] != DaysAgo(6) {
		t.Errorf("first day = %q, want six days ago", days[0])
	}
	for i := 1; i < len(days); i++ {
		if days[i-1] >= days[i] {
			t.Errorf("not oldest first: %q before %q", days[i-1], days[i])
		}
	}
}

func TestValidDate(t *testing.T) {
	tests := []struct {
		date string
		want bool
	}{
		{"2026-08-29", true},
		{"2026-02-29", false},
		{"2024-02-29", true},
		{"2026-13-01", false},
		{"26-08-29", false},
		{"2026/08/29", false},
		{"", false},
		{"not a date", false},
	}
	for _, tt := range tests {
		if got := ValidDate(tt.date); got != tt.want {
			t.Errorf("ValidDate(%q) = %v, want %v", tt.date, got, tt.want)
		}
	}
}

func TestValidClock(t *testing.T) {
	tests := []struct {
		clock string
		want  bool
	}{
		{"00:00", true},
		{"23:59", true},
		{"09:05", true},
		{"24:00", false},
		{"12:60", false},
		{"12:00:00", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ValidClock(tt.clock); got != tt.want {
			t.Errorf("ValidClock(%q) = %v, want %v", tt.clock, got, tt.want)
		}
	}
}
