// Package format renders engine outputs as display strings: altitudes,
// clock times, durations and day counts.
package format

import (
	"fmt"
	"time"
)

// Altitude renders degrees with two decimals, e.g. "45.00°".
func Altitude(deg float64) string {
	return fmt.Sprintf("%.2f°", deg)
}

// ClockTime renders an instant as a 12-hour clock string, e.g. "12:30 PM".
// The instant is shown in UTC; local presentation is the caller's concern.
func ClockTime(t time.Time) string {
	return t.UTC().Format("3:04 PM")
}

// Duration renders a duration as "<h>h <m>m", e.g. "15h 42m". Negative
// durations clamp to "0h 0m".
func Duration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	mins := int(d.Round(time.Minute) / time.Minute)
	return fmt.Sprintf("%dh %dm", mins/60, mins%60)
}

// DayCount renders a day offset, e.g. "today", "tomorrow", "in 45 days".
func DayCount(days int) string {
	switch {
	case days <= 0:
		return "today"
	case days == 1:
		return "tomorrow"
	default:
		return fmt.Sprintf("in %d days", days)
	}
}
