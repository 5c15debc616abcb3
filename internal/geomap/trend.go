package geomap

import (
	"math"
	"time"

	"github.com/paulmach/orb"

	"github.com/litescript/sunband/internal/solar"
)

// DefaultMonthsAhead is how far the trend projection looks forward.
const DefaultMonthsAhead = 4

// Side labels a band edge.
type Side string

const (
	SideNorth Side = "north"
	SideSouth Side = "south"
)

// axialTiltDeg is the declination of the governing solstice for each side.
const axialTiltDeg = 23.44

// TrendBand is one band edge at one month offset from the base date.
// IsReceding is true when this edge's declination has moved away from its
// governing solstice since the previous step, i.e. the band is shrinking
// back toward the equinox position.
type TrendBand struct {
	MonthsAhead int
	Date        time.Time
	MonthLabel  string
	Side        Side
	Curve       orb.LineString
	IsReceding  bool
}

// ComputeTrendBands projects the threshold band forward month by month.
// Each offset k uses the base date's day-of-month in month +k (clamped to
// the last valid day when the target month is shorter), so the sequence is
// a true forward projection rather than a mid-month approximation.
func ComputeTrendBands(base time.Time, monthsAhead int, thresholdDeg float64) []TrendBand {
	base = solar.MidnightUTC(base)

	bands := make([]TrendBand, 0, 2*(monthsAhead+1))
	prevDec := referenceDeclination(solar.PlusMonths(base, -1))

	for k := 0; k <= monthsAhead; k++ {
		date := solar.PlusMonths(base, k)
		dec := referenceDeclination(date)
		band := ComputeBand(date, thresholdDeg)
		label := date.Format("Jan 2")

		bands = append(bands,
			TrendBand{
				MonthsAhead: k,
				Date:        date,
				MonthLabel:  label,
				Side:        SideNorth,
				Curve:       band.North,
				IsReceding:  receding(SideNorth, prevDec, dec),
			},
			TrendBand{
				MonthsAhead: k,
				Date:        date,
				MonthLabel:  label,
				Side:        SideSouth,
				Curve:       band.South,
				IsReceding:  receding(SideSouth, prevDec, dec),
			},
		)

		prevDec = dec
	}

	return bands
}

// referenceDeclination anchors a date's trend comparison at the Greenwich
// solar noon declination.
func referenceDeclination(date time.Time) float64 {
	return localNoonDeclination(date, 0)
}

// receding reports whether the declination moved away from the side's
// governing solstice between two steps. The north edge is governed by the
// June solstice (+23.44°), the south edge by the December solstice.
func receding(side Side, prevDec, dec float64) bool {
	solstice := axialTiltDeg
	if side == SideSouth {
		solstice = -axialTiltDeg
	}
	return math.Abs(solstice-dec) > math.Abs(solstice-prevDec)
}
