package geomap

import (
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// The layerType property distinguishes fill polygons from boundary lines.
// Renderers key their styling off this two-value contract.
const (
	LayerFill     = "fill"
	LayerBoundary = "boundary"
)

// TerminatorFeatures returns the terminator as a GeoJSON FeatureCollection:
// one night-side fill Polygon and one boundary LineString.
func TerminatorFeatures(t time.Time) *geojson.FeatureCollection {
	term := ComputeTerminator(t)

	fill := geojson.NewFeature(term.Fill)
	fill.Properties = geojson.Properties{"layerType": LayerFill}

	boundary := geojson.NewFeature(term.Line)
	boundary.Properties = geojson.Properties{"layerType": LayerBoundary}

	fc := geojson.NewFeatureCollection()
	fc.Append(fill)
	fc.Append(boundary)
	return fc
}

// BandFeatures returns the threshold band for a date: the band fill Polygon
// plus its two edges as one boundary MultiLineString.
func BandFeatures(date time.Time, thresholdDeg float64) *geojson.FeatureCollection {
	band := ComputeBand(date, thresholdDeg)

	fill := geojson.NewFeature(band.Fill)
	fill.Properties = geojson.Properties{"layerType": LayerFill}

	boundary := geojson.NewFeature(orb.MultiLineString{band.South, band.North})
	boundary.Properties = geojson.Properties{"layerType": LayerBoundary}

	fc := geojson.NewFeatureCollection()
	fc.Append(fill)
	fc.Append(boundary)
	return fc
}

// TrendBandFeatures returns the monthly projected band edges as boundary
// LineStrings tagged with their month label, side and trend direction.
func TrendBandFeatures(base time.Time, monthsAhead int, thresholdDeg float64) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for _, tb := range ComputeTrendBands(base, monthsAhead, thresholdDeg) {
		f := geojson.NewFeature(tb.Curve)
		f.Properties = geojson.Properties{
			"layerType":   LayerBoundary,
			"monthLabel":  tb.MonthLabel,
			"monthsAhead": tb.MonthsAhead,
			"side":        string(tb.Side),
			"isReceding":  tb.IsReceding,
		}
		fc.Append(f)
	}

	return fc
}
