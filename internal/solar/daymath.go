// Package solar derives day-level sun facts: sunrise/sunset/solar noon,
// day length, the vitamin-D threshold window, and seasonal samples.
// All computation is UTC; day boundaries are UTC midnights.
package solar

import "time"

// MidnightUTC truncates an instant to the UTC midnight of its day.
func MidnightUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// PlusDays returns the UTC midnight n days after the day containing t.
func PlusDays(t time.Time, n int) time.Time {
	return MidnightUTC(t).AddDate(0, 0, n)
}

// PlusMonths returns the UTC midnight k calendar months after the day
// containing t, keeping the day-of-month. When the target month is shorter
// the day clamps to its last valid day (Jan 31 +1 month = Feb 29 or 28),
// never rolling over into the following month.
func PlusMonths(t time.Time, k int) time.Time {
	t = MidnightUTC(t)

	// Floor division so negative offsets land in the right year.
	months := int(t.Month()) - 1 + k
	yearShift := months / 12
	monthIdx := months % 12
	if monthIdx < 0 {
		monthIdx += 12
		yearShift--
	}
	year := t.Year() + yearShift
	month := time.Month(monthIdx + 1)

	day := t.Day()
	if last := daysInMonth(year, month); day > last {
		day = last
	}

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func daysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this month.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
