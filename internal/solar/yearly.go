package solar

import (
	"math"
	"time"

	"github.com/litescript/sunband/internal/astro"
)

// MonthSample is one point of the seasonal trend: the noon altitude on a
// representative day of a calendar month, floored at zero.
type MonthSample struct {
	Month     time.Month
	Label     string  // "Jan" .. "Dec"
	MaxAltDeg float64 // noon altitude on the 15th, never negative
}

// YearlySeries samples the noon altitude on the 15th of each month of the
// given year, in calendar order. It feeds trend display only; threshold
// searches always evaluate exact dates.
func YearlySeries(obs astro.Observer, year int) []MonthSample {
	obs = obs.Normalized()
	series := make([]MonthSample, 0, 12)

	for m := time.January; m <= time.December; m++ {
		day := time.Date(year, m, 15, 0, 0, 0, 0, time.UTC)
		alt := NoonAltitude(day, obs)

		series = append(series, MonthSample{
			Month:     m,
			Label:     day.Format("Jan"),
			MaxAltDeg: math.Max(0, alt),
		})
	}

	return series
}
