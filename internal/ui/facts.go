// Package ui renders the terminal dashboard for one location's sun facts.
package ui

import (
	"time"

	"github.com/litescript/sunband/internal/astro"
	"github.com/litescript/sunband/internal/solar"
)

// Facts bundles everything the dashboard shows for one location and instant.
type Facts struct {
	Obs       astro.Observer
	At        time.Time
	Threshold float64

	Pos    astro.SunPosition
	Events solar.DayEvents
	Window solar.Window
	Series []solar.MonthSample
}

// ComputeFacts evaluates the engine for one location and instant.
func ComputeFacts(obs astro.Observer, at time.Time, thresholdDeg float64) Facts {
	obs = obs.Normalized()
	at = at.UTC()

	return Facts{
		Obs:       obs,
		At:        at,
		Threshold: thresholdDeg,
		Pos:       astro.Position(at, obs),
		Events:    solar.Events(at, obs),
		Window:    solar.FindWindow(obs, at, thresholdDeg),
		Series:    solar.YearlySeries(obs, at.Year()),
	}
}
