package solar

import (
	"math"
	"time"

	"github.com/litescript/sunband/internal/astro"
)

// HorizonAltitudeDeg is the altitude used for sunrise/sunset, folding
// atmospheric refraction and the solar disk radius into one constant.
const HorizonAltitudeDeg = -0.833

// DayEvents holds the solar events of one UTC day at a location.
// Sunrise and Sunset are either both set with Sunset after Sunrise, or both
// zero with exactly one of PolarDay/PolarNight set. SolarNoon is always set.
type DayEvents struct {
	SolarNoon  time.Time
	Sunrise    time.Time
	Sunset     time.Time
	PolarDay   bool // sun never sets this day
	PolarNight bool // sun never rises this day
}

// HasSunrise reports whether the sun crosses the horizon this day.
func (e DayEvents) HasSunrise() bool {
	return !e.PolarDay && !e.PolarNight
}

// DayLength returns the time the sun spends above the horizon. Polar days
// resolve to 24h and polar nights to 0, so the result is always defined.
func (e DayEvents) DayLength() time.Duration {
	switch {
	case e.PolarDay:
		return 24 * time.Hour
	case e.PolarNight:
		return 0
	default:
		return e.Sunset.Sub(e.Sunrise)
	}
}

// Events solves sunrise, sunset and solar noon for the UTC day containing
// date at the given location, via the closed-form hour-angle inversion at
// the fixed horizon altitude.
func Events(date time.Time, obs astro.Observer) DayEvents {
	obs = obs.Normalized()
	noon := SolarNoon(date, obs.LonDeg)

	lat := obs.LatDeg * math.Pi / 180
	dec := astro.Declination(noon) * math.Pi / 180
	horizon := HorizonAltitudeDeg * math.Pi / 180

	denom := math.Cos(lat) * math.Cos(dec)
	if math.Abs(denom) < 1e-12 {
		// Latitude at a pole: the horizon crossing degenerates, decide by
		// the sign of the noon altitude.
		if astro.Altitude(noon, obs) > HorizonAltitudeDeg {
			return DayEvents{SolarNoon: noon, PolarDay: true}
		}
		return DayEvents{SolarNoon: noon, PolarNight: true}
	}

	cosH := (math.Sin(horizon) - math.Sin(lat)*math.Sin(dec)) / denom
	switch {
	case cosH < -1:
		return DayEvents{SolarNoon: noon, PolarDay: true}
	case cosH > 1:
		return DayEvents{SolarNoon: noon, PolarNight: true}
	}

	// Half day arc in minutes of time (degrees of hour angle x 4).
	halfDay := time.Duration(math.Acos(cosH) * 180 / math.Pi * 4 * float64(time.Minute))

	return DayEvents{
		SolarNoon: noon,
		Sunrise:   noon.Add(-halfDay),
		Sunset:    noon.Add(halfDay),
	}
}

// SolarNoon returns the instant of the sun's meridian crossing at the given
// longitude on the UTC day containing date. A second equation-of-time pass
// at the first-pass noon absorbs the intraday drift.
func SolarNoon(date time.Time, lonDeg float64) time.Time {
	lonDeg = astro.NormalizeLon(lonDeg)
	midnight := MidnightUTC(date)

	noonMin := 720.0 - 4*lonDeg - astro.EquationOfTime(midnight.Add(12*time.Hour))
	noonMin = 720.0 - 4*lonDeg - astro.EquationOfTime(midnight.Add(time.Duration(noonMin*float64(time.Minute))))

	return midnight.Add(time.Duration(noonMin * float64(time.Minute)))
}

// NoonAltitude returns the sun's altitude at local solar noon for the UTC
// day containing date.
func NoonAltitude(date time.Time, obs astro.Observer) float64 {
	obs = obs.Normalized()
	return astro.Altitude(SolarNoon(date, obs.LonDeg), obs)
}
