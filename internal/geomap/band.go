package geomap

import (
	"time"

	"github.com/paulmach/orb"

	"github.com/litescript/sunband/internal/astro"
	"github.com/litescript/sunband/internal/solar"
)

// Band is the latitude band in which the sun exceeds the altitude threshold
// at local solar noon on a given date. North and South are its edges in
// longitude order; Fill is the closed band polygon.
//
// The edges are not lines of constant latitude: each sampled longitude uses
// the declination at its own local solar noon, so longitudes whose noon
// falls at a different UTC instant get a slightly different band. That
// per-longitude correction is what makes the band wavy on a map.
type Band struct {
	North orb.LineString
	South orb.LineString
	Fill  orb.Polygon
}

// ComputeBand samples the threshold band for the UTC day containing date.
// The edges sit (90 - threshold) degrees either side of the local-noon
// subsolar latitude, clamped to the poles.
func ComputeBand(date time.Time, thresholdDeg float64) Band {
	halfWidth := 90 - thresholdDeg

	north := make(orb.LineString, 0, sampleCount())
	south := make(orb.LineString, 0, sampleCount())

	for _, lon := range sampleLons() {
		dec := localNoonDeclination(date, lon)
		north = append(north, orb.Point{lon, clampLat(dec + halfWidth)})
		south = append(south, orb.Point{lon, clampLat(dec - halfWidth)})
	}

	// Bottom edge west to east, top edge east to west, closed.
	ring := make(orb.Ring, 0, 2*len(north)+1)
	ring = append(ring, south...)
	for i := len(north) - 1; i >= 0; i-- {
		ring = append(ring, north[i])
	}
	ring = append(ring, ring[0])

	return Band{North: north, South: south, Fill: orb.Polygon{ensureCCW(ring)}}
}

// NorthernBoundaryLat returns the band's northern edge latitude at a single
// longitude, consistent with ComputeBand sampled at the same longitude.
func NorthernBoundaryLat(date time.Time, lonDeg, thresholdDeg float64) float64 {
	dec := localNoonDeclination(date, lonDeg)
	return clampLat(dec + (90 - thresholdDeg))
}

// localNoonDeclination is the sun's declination at the instant of local
// solar noon for the given longitude.
func localNoonDeclination(date time.Time, lonDeg float64) float64 {
	return astro.Declination(solar.SolarNoon(date, lonDeg))
}
