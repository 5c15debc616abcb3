package solar

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMidnightUTC(t *testing.T) {
	in := time.Date(2024, 6, 21, 18, 45, 12, 999, time.UTC)
	if got := MidnightUTC(in); !got.Equal(date(2024, 6, 21)) {
		t.Errorf("MidnightUTC() = %v, want 2024-06-21T00:00Z", got)
	}
}

func TestPlusDays(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		n    int
		want time.Time
	}{
		{"same day", date(2024, 1, 1), 0, date(2024, 1, 1)},
		{"across month", date(2024, 1, 31), 1, date(2024, 2, 1)},
		{"across leap day", date(2024, 2, 28), 2, date(2024, 3, 1)},
		{"across year", date(2024, 12, 31), 1, date(2025, 1, 1)},
		{"backwards", date(2024, 3, 1), -1, date(2024, 2, 29)},
		{"time of day dropped", time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC), 1, date(2024, 1, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PlusDays(tt.in, tt.n); !got.Equal(tt.want) {
				t.Errorf("PlusDays(%v, %d) = %v, want %v", tt.in, tt.n, got, tt.want)
			}
		})
	}
}

func TestPlusMonths(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		k    int
		want time.Time
	}{
		{"plain month", date(2024, 1, 15), 1, date(2024, 2, 15)},
		{"clamp to leap February", date(2024, 1, 31), 1, date(2024, 2, 29)},
		{"clamp to common February", date(2023, 1, 31), 1, date(2023, 2, 28)},
		{"clamp to 30-day month", date(2024, 3, 31), 1, date(2024, 4, 30)},
		{"no rollover past clamp", date(2024, 5, 31), 1, date(2024, 6, 30)},
		{"across year boundary", date(2024, 11, 30), 3, date(2025, 2, 28)},
		{"full year", date(2024, 7, 4), 12, date(2025, 7, 4)},
		{"negative offset", date(2024, 3, 31), -1, date(2024, 2, 29)},
		{"negative across year", date(2024, 1, 15), -2, date(2023, 11, 15)},
		{"zero offset", date(2024, 8, 9), 0, date(2024, 8, 9)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PlusMonths(tt.in, tt.k); !got.Equal(tt.want) {
				t.Errorf("PlusMonths(%v, %d) = %v, want %v", tt.in, tt.k, got, tt.want)
			}
		})
	}
}
