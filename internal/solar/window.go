package solar

import (
	"time"

	"github.com/litescript/sunband/internal/astro"
)

// DefaultThresholdDeg is the altitude above which the UVB fraction of
// sunlight is taken to support vitamin-D synthesis.
const DefaultThresholdDeg = 45.0

// SearchHorizonDays bounds the day-by-day threshold scans.
const SearchHorizonDays = 366

// Window describes when the sun next exceeds an altitude threshold at a
// location. Comparisons are inclusive: a noon or minute altitude exactly at
// the threshold counts as reached.
type Window struct {
	// Reached is false when no day within the search horizon has a noon
	// altitude at or above the threshold; all other fields are then zero.
	Reached bool

	ThresholdDate  time.Time // UTC midnight of the first qualifying day
	DaysUntilStart int       // 0 when the threshold is already met on the start day

	WindowStart     time.Time // first minute at or above the threshold on ThresholdDate
	WindowEnd       time.Time // last minute at or above the threshold on ThresholdDate
	DurationMinutes int

	// HasEnd is set only when DaysUntilStart is 0 and a day within the
	// horizon fails to reach the threshold; DaysUntilEnd is its offset.
	// A location that never loses the threshold (e.g. the equator) reports
	// HasEnd false.
	HasEnd       bool
	DaysUntilEnd int
}

// FindWindow runs the two-phase threshold search from the UTC day containing
// start: a day-by-day scan of noon altitudes to find the first qualifying
// day, a minute-by-minute scan of that day to bound the clock window, and,
// when the threshold is already active, a recession scan for the day it is
// first lost.
func FindWindow(obs astro.Observer, start time.Time, thresholdDeg float64) Window {
	obs = obs.Normalized()
	startDay := MidnightUTC(start)

	firstDay := -1
	for i := 0; i < SearchHorizonDays; i++ {
		day := PlusDays(startDay, i)
		if NoonAltitude(day, obs) >= thresholdDeg {
			firstDay = i
			break
		}
	}
	if firstDay < 0 {
		return Window{}
	}

	w := Window{
		Reached:        true,
		ThresholdDate:  PlusDays(startDay, firstDay),
		DaysUntilStart: firstDay,
	}
	w.WindowStart, w.WindowEnd = minuteScan(obs, w.ThresholdDate, thresholdDeg)
	if !w.WindowStart.IsZero() {
		w.DurationMinutes = int(w.WindowEnd.Sub(w.WindowStart) / time.Minute)
	}

	if firstDay == 0 {
		for j := 1; j < SearchHorizonDays; j++ {
			if NoonAltitude(PlusDays(startDay, j), obs) < thresholdDeg {
				w.HasEnd = true
				w.DaysUntilEnd = j
				break
			}
		}
	}

	return w
}

// minuteScan walks every minute of the UTC day and returns the first and
// last minute whose altitude reaches the threshold. Both bounds stay zero
// when the noon peak only touches the threshold between minute samples.
func minuteScan(obs astro.Observer, day time.Time, thresholdDeg float64) (first, last time.Time) {
	for m := 0; m < 24*60; m++ {
		at := day.Add(time.Duration(m) * time.Minute)
		if astro.Altitude(at, obs) >= thresholdDeg {
			if first.IsZero() {
				first = at
			}
			last = at
		}
	}
	return first, last
}
