package astro

import (
	"math"
	"time"
)

// Subsolar is the point on Earth where the sun is directly overhead.
// The declination equals the subsolar latitude.
type Subsolar struct {
	DecDeg float64 // Declination in degrees (-23.45 to +23.45)
	LonDeg float64 // Subsolar longitude in degrees (-180 to +180)
}

// Declination calculates the sun's declination in degrees.
// Uses a simplified solar ephemeris based on the Astronomical Almanac.
// Accuracy: ~0.001 degrees, far better than the coarse altitude
// thresholds this engine serves.
func Declination(t time.Time) float64 {
	T := julianCenturies(t)

	// Apparent ecliptic longitude of the Sun (degrees)
	sunLonApp := apparentLongitude(T)

	// Mean obliquity of the ecliptic, corrected for nutation (degrees)
	eps0 := 23.439291 - 0.0130042*T - 0.00000016*T*T + 0.000000504*T*T*T
	omega := 125.04 - 1934.136*T
	eps := eps0 + 0.00256*math.Cos(degToRad(omega))

	dec := math.Asin(clampUnit(math.Sin(degToRad(eps)) * math.Sin(degToRad(sunLonApp))))
	return radToDeg(dec)
}

// apparentLongitude returns the sun's apparent ecliptic longitude in degrees
// for T Julian centuries since J2000.0, correcting for aberration and nutation.
func apparentLongitude(T float64) float64 {
	// Mean longitude of the Sun (degrees)
	L0 := normalizeAngle360(280.46646 + 36000.76983*T + 0.0003032*T*T)

	// Mean anomaly of the Sun (degrees)
	M := normalizeAngle360(357.52911 + 35999.05029*T - 0.0001537*T*T)
	Mrad := degToRad(M)

	// Sun's equation of center (degrees)
	C := (1.914602 - 0.004817*T - 0.000014*T*T) * math.Sin(Mrad)
	C += (0.019993 - 0.000101*T) * math.Sin(2*Mrad)
	C += 0.000289 * math.Sin(3*Mrad)

	omega := 125.04 - 1934.136*T
	return L0 + C - 0.00569 - 0.00478*math.Sin(degToRad(omega))
}

// EquationOfTime returns apparent minus mean solar time in minutes.
// Positive values mean the sundial runs ahead of the clock.
func EquationOfTime(t time.Time) float64 {
	T := julianCenturies(t)

	eps0 := 23.439291 - 0.0130042*T
	L0 := normalizeAngle360(280.46646 + 36000.76983*T + 0.0003032*T*T)
	M := normalizeAngle360(357.52911 + 35999.05029*T - 0.0001537*T*T)
	e := 0.016708634 - T*(0.000042037+0.0000001267*T)

	epsRad := degToRad(eps0)
	L0rad := degToRad(L0)
	Mrad := degToRad(M)

	y := math.Tan(epsRad / 2)
	y *= y

	sinM := math.Sin(Mrad)

	eot := y*math.Sin(2*L0rad) -
		2*e*sinM +
		4*e*y*sinM*math.Cos(2*L0rad) -
		0.5*y*y*math.Sin(4*L0rad) -
		1.25*e*e*math.Sin(2*Mrad)

	return radToDeg(eot) * 4 // degrees of hour angle -> minutes of time
}

// SolarNoonLon0 returns the instant of solar noon at longitude 0 on the
// UTC day containing t. The second pass re-evaluates the equation of time
// at the first-pass noon, which keeps subsolar longitudes continuous
// across day boundaries.
func SolarNoonLon0(t time.Time) time.Time {
	t = t.UTC()
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)

	noonMin := 720.0 - EquationOfTime(midnight.Add(12*time.Hour))
	noonMin = 720.0 - EquationOfTime(midnight.Add(time.Duration(noonMin*float64(time.Minute))))

	return midnight.Add(time.Duration(noonMin * float64(time.Minute)))
}

// SubsolarPoint returns the subsolar point for the given instant.
// The longitude derives from the offset between t and solar noon at
// longitude 0, so the equation of time is already folded in. If that
// noon cannot be resolved, the naive (12 - UTC hours) * 15 approximation
// is used instead.
func SubsolarPoint(t time.Time) Subsolar {
	t = t.UTC()
	dec := Declination(t)

	noon0 := SolarNoonLon0(t)
	var lon float64
	if noon0.IsZero() {
		utcHours := float64(t.Hour()) + float64(t.Minute())/60 + float64(t.Second())/3600
		lon = (12 - utcHours) * 15
	} else {
		hoursFromNoon := t.Sub(noon0).Hours()
		lon = -hoursFromNoon * 15
	}

	return Subsolar{DecDeg: dec, LonDeg: NormalizeLon(lon)}
}
