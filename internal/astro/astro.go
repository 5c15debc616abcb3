// Package astro provides the solar ephemeris and sun-position math.
package astro

import (
	"math"
	"time"
)

// Observer represents a ground location.
type Observer struct {
	LatDeg float64 // Latitude in degrees (north positive)
	LonDeg float64 // Longitude in degrees (east positive)
	Name   string  // Optional name for the site
}

// Normalized returns the observer with latitude clamped to [-90, 90] and
// longitude wrapped into (-180, 180]. All angle math in this package assumes
// normalized coordinates.
func (o Observer) Normalized() Observer {
	o.LatDeg = clamp(o.LatDeg, -90, 90)
	o.LonDeg = NormalizeLon(o.LonDeg)
	return o
}

// NormalizeLon wraps a longitude into (-180, 180].
func NormalizeLon(lonDeg float64) float64 {
	lon := math.Mod(lonDeg, 360)
	if lon > 180 {
		lon -= 360
	} else if lon <= -180 {
		lon += 360
	}
	return lon
}

// julianDate calculates the Julian Date for a given time.
func julianDate(t time.Time) float64 {
	t = t.UTC()

	y := float64(t.Year())
	m := float64(t.Month())
	d := float64(t.Day())

	h := float64(t.Hour())
	min := float64(t.Minute())
	sec := float64(t.Second())
	ns := float64(t.Nanosecond())

	dayFrac := (h + min/60 + sec/3600 + ns/3600e9) / 24.0

	// Adjust for January/February (treat as months 13/14 of previous year)
	if m <= 2 {
		y--
		m += 12
	}

	// Gregorian calendar correction
	A := math.Floor(y / 100)
	B := 2 - A + math.Floor(A/4)

	jd := math.Floor(365.25*(y+4716)) +
		math.Floor(30.6001*(m+1)) +
		d + dayFrac + B - 1524.5

	return jd
}

// julianCenturies returns Julian centuries since J2000.0.
func julianCenturies(t time.Time) float64 {
	return (julianDate(t) - 2451545.0) / 36525.0
}

// degToRad converts degrees to radians.
func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// radToDeg converts radians to degrees.
func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// normalizeAngle360 normalizes an angle to 0-360 degrees.
func normalizeAngle360(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampUnit clamps a value to [-1, 1] before asin/acos to absorb
// floating point drift.
func clampUnit(v float64) float64 {
	return clamp(v, -1, 1)
}
