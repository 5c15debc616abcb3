package astro

import (
	"math"
	"time"
)

// SunPosition holds horizontal coordinates of the sun for one observer
// and instant.
type SunPosition struct {
	AltDeg float64 // Altitude in degrees (0=horizon, 90=zenith, negative below)
	AzDeg  float64 // Azimuth in degrees (0=N, 90=E, 180=S, 270=W)
}

// Altitude returns the sun's altitude in degrees for the given instant and
// observer. Always finite, in [-90, 90].
func Altitude(t time.Time, obs Observer) float64 {
	obs = obs.Normalized()
	sub := SubsolarPoint(t)
	return altitudeFromSubsolar(sub, obs)
}

// Position returns the sun's altitude and azimuth for the given instant
// and observer.
func Position(t time.Time, obs Observer) SunPosition {
	obs = obs.Normalized()
	sub := SubsolarPoint(t)

	lat := degToRad(obs.LatDeg)
	dec := degToRad(sub.DecDeg)
	ha := degToRad(hourAngleDeg(obs.LonDeg, sub.LonDeg))

	sinAlt := clampUnit(math.Sin(lat)*math.Sin(dec) + math.Cos(lat)*math.Cos(dec)*math.Cos(ha))
	alt := math.Asin(sinAlt)

	// Azimuth from the same spherical triangle. The denominator vanishes at
	// the zenith and the poles; substitute a small epsilon so the result
	// stays finite (the azimuth is arbitrary there anyway).
	denom := math.Cos(alt) * math.Cos(lat)
	if math.Abs(denom) < 1e-9 {
		denom = 1e-9
	}
	cosAz := clampUnit((math.Sin(dec) - math.Sin(alt)*math.Sin(lat)) / denom)
	az := math.Acos(cosAz)

	// Positive hour angle means the sun is west of the meridian.
	if math.Sin(ha) > 0 {
		az = 2*math.Pi - az
	}

	return SunPosition{AltDeg: radToDeg(alt), AzDeg: radToDeg(az)}
}

// AltitudeAt computes the altitude from an already-known subsolar point.
// Saves the ephemeris evaluation when sweeping many observers at one instant.
func AltitudeAt(sub Subsolar, obs Observer) float64 {
	return altitudeFromSubsolar(sub, obs.Normalized())
}

func altitudeFromSubsolar(sub Subsolar, obs Observer) float64 {
	lat := degToRad(obs.LatDeg)
	dec := degToRad(sub.DecDeg)
	ha := degToRad(hourAngleDeg(obs.LonDeg, sub.LonDeg))

	sinAlt := clampUnit(math.Sin(lat)*math.Sin(dec) + math.Cos(lat)*math.Cos(dec)*math.Cos(ha))
	return radToDeg(math.Asin(sinAlt))
}

// hourAngleDeg returns the local hour angle in degrees, positive after
// local solar noon.
func hourAngleDeg(obsLonDeg, subsolarLonDeg float64) float64 {
	return NormalizeLon(obsLonDeg - subsolarLonDeg)
}
