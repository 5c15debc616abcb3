package format

import (
	"testing"
	"time"
)

func TestAltitude(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{45, "45.00°"},
		{-0.833, "-0.83°"},
		{23.439, "23.44°"},
		{0, "0.00°"},
	}
	for _, tt := range tests {
		if got := Altitude(tt.in); got != tt.want {
			t.Errorf("Altitude(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestClockTime(t *testing.T) {
	tests := []struct {
		in   time.Time
		want string
	}{
		{time.Date(2024, 6, 21, 12, 30, 0, 0, time.UTC), "12:30 PM"},
		{time.Date(2024, 6, 21, 0, 5, 0, 0, time.UTC), "12:05 AM"},
		{time.Date(2024, 6, 21, 9, 0, 0, 0, time.UTC), "9:00 AM"},
		{time.Date(2024, 6, 21, 23, 59, 0, 0, time.UTC), "11:59 PM"},
	}
	for _, tt := range tests {
		if got := ClockTime(tt.in); got != tt.want {
			t.Errorf("ClockTime(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0h 0m"},
		{24 * time.Hour, "24h 0m"},
		{15*time.Hour + 42*time.Minute, "15h 42m"},
		{59 * time.Minute, "0h 59m"},
		{-time.Hour, "0h 0m"},
		{90*time.Minute + 29*time.Second, "1h 30m"},
	}
	for _, tt := range tests {
		if got := Duration(tt.in); got != tt.want {
			t.Errorf("Duration(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDayCount(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "today"},
		{1, "tomorrow"},
		{45, "in 45 days"},
	}
	for _, tt := range tests {
		if got := DayCount(tt.in); got != tt.want {
			t.Errorf("DayCount(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
