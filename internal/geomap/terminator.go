// Package geomap turns the solar engine's scalars into map geometry: the
// day/night terminator, the latitude band where an altitude threshold is
// exceeded at local noon, and multi-month trend boundaries of that band.
//
// All curves are sampled on a fixed longitude grid from -180 to +180 and
// assembled in longitude order. Exterior polygon rings are wound
// counter-clockwise (RFC 7946); assemblers enforce this rather than relying
// on loop direction.
package geomap

import (
	"math"
	"time"

	"github.com/paulmach/orb"

	"github.com/litescript/sunband/internal/astro"
)

// StepDeg is the longitude sampling resolution for all curve sweeps.
const StepDeg = 2.0

// decEpsilon guards the tan(dec) singularity at the equinox. A declination
// this close to zero is treated as the limiting polar terminator.
const decEpsilon = 1e-6

// Terminator is the day/night boundary at one instant: the open curve in
// longitude order plus the closed night-side polygon.
type Terminator struct {
	Line orb.LineString // terminator latitude per sampled longitude
	Fill orb.Polygon    // night hemisphere, closed over the dark pole
}

// ComputeTerminator samples the sunset great circle for the given instant.
// At each longitude the terminator latitude solves
// tan(lat) = -cos(hourAngle)/tan(dec) with the hour angle taken from the
// subsolar longitude.
func ComputeTerminator(t time.Time) Terminator {
	sub := astro.SubsolarPoint(t)

	dec := sub.DecDeg
	if math.Abs(dec) < decEpsilon {
		// Equinox: nudge off the singularity, keeping the hemisphere choice.
		dec = math.Copysign(decEpsilon, dec+decEpsilon)
	}
	tanDec := math.Tan(dec * math.Pi / 180)

	line := make(orb.LineString, 0, sampleCount())
	for _, lon := range sampleLons() {
		ha := (lon - sub.LonDeg) * math.Pi / 180
		lat := math.Atan(-math.Cos(ha)/tanDec) * 180 / math.Pi
		line = append(line, orb.Point{lon, lat})
	}

	// Close the fill over whichever pole is in darkness.
	darkPoleLat := -90.0
	if dec <= 0 {
		darkPoleLat = 90.0
	}

	ring := make(orb.Ring, 0, len(line)+3)
	ring = append(ring, line...)
	ring = append(ring, orb.Point{180, darkPoleLat}, orb.Point{-180, darkPoleLat})
	ring = append(ring, ring[0])

	return Terminator{Line: line, Fill: orb.Polygon{ensureCCW(ring)}}
}

// sampleLons returns the longitude grid -180..180 inclusive.
func sampleLons() []float64 {
	lons := make([]float64, 0, sampleCount())
	for lon := -180.0; lon <= 180.0; lon += StepDeg {
		lons = append(lons, lon)
	}
	return lons
}

func sampleCount() int {
	return int(360/StepDeg) + 1
}

// ensureCCW returns the ring wound counter-clockwise in lon/lat space.
func ensureCCW(r orb.Ring) orb.Ring {
	if signedArea(r) >= 0 {
		return r
	}
	rev := make(orb.Ring, len(r))
	for i, p := range r {
		rev[len(r)-1-i] = p
	}
	return rev
}

// signedArea is the shoelace sum; positive for counter-clockwise rings.
func signedArea(r orb.Ring) float64 {
	var sum float64
	for i := 0; i < len(r)-1; i++ {
		sum += r[i][0]*r[i+1][1] - r[i+1][0]*r[i][1]
	}
	return sum / 2
}

func clampLat(lat float64) float64 {
	if lat < -90 {
		return -90
	}
	if lat > 90 {
		return 90
	}
	return lat
}
