package solar

import (
	"testing"
	"time"

	"github.com/litescript/sunband/internal/astro"
)

func TestYearlySeries(t *testing.T) {
	series := YearlySeries(seattle, 2024)

	if len(series) != 12 {
		t.Fatalf("len = %d, want 12", len(series))
	}
	for i, s := range series {
		if s.Month != time.Month(i+1) {
			t.Errorf("series[%d].Month = %v, want calendar order", i, s.Month)
		}
		if s.MaxAltDeg < 0 || s.MaxAltDeg > 90 {
			t.Errorf("series[%d].MaxAltDeg = %.2f, out of range", i, s.MaxAltDeg)
		}
	}

	if series[0].Label != "Jan" || series[11].Label != "Dec" {
		t.Errorf("labels = %q..%q, want Jan..Dec", series[0].Label, series[11].Label)
	}

	// Seasonal shape: June outranks December by roughly twice the tilt.
	jun, dec := series[5].MaxAltDeg, series[11].MaxAltDeg
	if jun-dec < 40 {
		t.Errorf("June %.1f° vs December %.1f°, want a pronounced seasonal swing", jun, dec)
	}
}

func TestYearlySeriesPolarNightFloorsAtZero(t *testing.T) {
	pole := astro.Observer{LatDeg: 90, LonDeg: 0}
	series := YearlySeries(pole, 2024)

	if dec := series[11].MaxAltDeg; dec != 0 {
		t.Errorf("December at the pole = %.2f, want clamped to 0", dec)
	}
	if jun := series[5].MaxAltDeg; jun < 22.9 || jun > 23.9 {
		t.Errorf("June at the pole = %.2f, want near the axial tilt", jun)
	}
}
