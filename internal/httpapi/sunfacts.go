package httpapi

import (
	"time"

	"github.com/litescript/sunband/internal/astro"
	"github.com/litescript/sunband/internal/format"
	"github.com/litescript/sunband/internal/solar"
)

// SunFactsResponse is the sun-facts document for one location and instant.
// Instants are raw RFC 3339 UTC for machine consumers (calendar export);
// the *Text fields carry the display strings.
type SunFactsResponse struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	At        time.Time `json:"at"`

	AltitudeDeg  float64 `json:"altitudeDeg"`
	AltitudeText string  `json:"altitudeText"`
	AzimuthDeg   float64 `json:"azimuthDeg"`

	SolarNoon  time.Time  `json:"solarNoon"`
	Sunrise    *time.Time `json:"sunrise"`
	Sunset     *time.Time `json:"sunset"`
	PolarDay   bool       `json:"polarDay"`
	PolarNight bool       `json:"polarNight"`
	DayLength  string     `json:"dayLength"`

	Window WindowResponse  `json:"vitaminDWindow"`
	Yearly []MonthResponse `json:"yearlySeries"`
}

// WindowResponse mirrors solar.Window with JSON nulls for the absent states:
// thresholdDate is null when the threshold is never reached within the
// search horizon, daysUntilEnd is null unless the window is active today
// and known to close.
type WindowResponse struct {
	ThresholdDeg    float64    `json:"thresholdDeg"`
	ThresholdDate   *string    `json:"thresholdDate"`
	DaysUntilStart  int        `json:"daysUntilStart"`
	DaysUntilText   string     `json:"daysUntilText"`
	WindowStart     *time.Time `json:"windowStart"`
	WindowEnd       *time.Time `json:"windowEnd"`
	WindowStartText *string    `json:"windowStartText"`
	WindowEndText   *string    `json:"windowEndText"`
	DurationMinutes *int       `json:"durationMinutes"`
	DurationText    *string    `json:"durationText"`
	DaysUntilEnd    *int       `json:"daysUntilEnd"`
}

// MonthResponse is one yearly-series sample.
type MonthResponse struct {
	Month       string  `json:"month"`
	MaxAltitude float64 `json:"maxAltitudeDeg"`
}

func buildSunFacts(obs astro.Observer, at time.Time, thresholdDeg float64) SunFactsResponse {
	pos := astro.Position(at, obs)
	ev := solar.Events(at, obs)
	win := solar.FindWindow(obs, at, thresholdDeg)
	series := solar.YearlySeries(obs, at.UTC().Year())

	resp := SunFactsResponse{
		Latitude:     obs.LatDeg,
		Longitude:    obs.LonDeg,
		At:           at,
		AltitudeDeg:  pos.AltDeg,
		AltitudeText: format.Altitude(pos.AltDeg),
		AzimuthDeg:   pos.AzDeg,
		SolarNoon:    ev.SolarNoon,
		PolarDay:     ev.PolarDay,
		PolarNight:   ev.PolarNight,
		DayLength:    format.Duration(ev.DayLength()),
		Window:       buildWindow(win, thresholdDeg),
	}

	if ev.HasSunrise() {
		sunrise, sunset := ev.Sunrise, ev.Sunset
		resp.Sunrise = &sunrise
		resp.Sunset = &sunset
	}

	for _, s := range series {
		resp.Yearly = append(resp.Yearly, MonthResponse{Month: s.Label, MaxAltitude: s.MaxAltDeg})
	}

	return resp
}

func buildWindow(w solar.Window, thresholdDeg float64) WindowResponse {
	resp := WindowResponse{
		ThresholdDeg:  thresholdDeg,
		DaysUntilText: "not reached within a year",
	}
	if !w.Reached {
		return resp
	}

	dateText := w.ThresholdDate.Format("2006-01-02")
	resp.ThresholdDate = &dateText
	resp.DaysUntilStart = w.DaysUntilStart
	resp.DaysUntilText = format.DayCount(w.DaysUntilStart)

	if !w.WindowStart.IsZero() {
		start, end := w.WindowStart, w.WindowEnd
		duration := w.DurationMinutes
		durationText := format.Duration(time.Duration(w.DurationMinutes) * time.Minute)

		resp.WindowStart = &start
		resp.WindowEnd = &end
		resp.WindowStartText = formatClockPtr(start)
		resp.WindowEndText = formatClockPtr(end)
		resp.DurationMinutes = &duration
		resp.DurationText = &durationText
	}

	if w.HasEnd {
		days := w.DaysUntilEnd
		resp.DaysUntilEnd = &days
	}

	return resp
}
