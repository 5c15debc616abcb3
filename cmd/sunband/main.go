// Command sunband is a terminal dashboard for a location's sun geometry:
// sunrise/sunset, the vitamin-D altitude window and its seasonal trend.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/sunband/internal/astro"
	"github.com/litescript/sunband/internal/format"
	"github.com/litescript/sunband/internal/logging"
	"github.com/litescript/sunband/internal/solar"
	"github.com/litescript/sunband/internal/ui"
	"github.com/litescript/sunband/internal/version"
)

// CLI flags for headless modes
var (
	summaryMode bool
	jsonMode    bool
	showVersion bool
)

func main() {
	lat := flag.Float64("lat", 47.6062, "Latitude in degrees (north positive)")
	lng := flag.Float64("lng", -122.3321, "Longitude in degrees (east positive)")
	name := flag.String("name", "", "Optional location name for display")
	atFlag := flag.String("at", "", "Instant as RFC 3339 (default: now)")
	threshold := flag.Float64("threshold", solar.DefaultThresholdDeg, "Vitamin-D altitude threshold in degrees")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&summaryMode, "summary", false, "Print text summary instead of TUI")
	flag.BoolVar(&jsonMode, "json", false, "Print machine-readable JSON instead of TUI")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println("sunband", version.Version)
		return
	}

	logger := logging.New(logging.ParseLevel(*logLevel))

	if *threshold <= 0 || *threshold >= 90 {
		logger.Error("threshold %v out of range (0, 90)", *threshold)
		os.Exit(2)
	}

	at := time.Now().UTC()
	if *atFlag != "" {
		parsed, err := time.Parse(time.RFC3339, *atFlag)
		if err != nil {
			logger.Error("invalid -at value %q: %v", *atFlag, err)
			os.Exit(2)
		}
		at = parsed.UTC()
	}

	obs := astro.Observer{LatDeg: *lat, LonDeg: *lng, Name: *name}.Normalized()
	facts := ui.ComputeFacts(obs, at, *threshold)

	if jsonMode {
		if err := writeJSON(os.Stdout, facts); err != nil {
			logger.Error("write JSON: %v", err)
			os.Exit(1)
		}
		return
	}
	if summaryMode {
		writeSummary(os.Stdout, facts)
		return
	}

	p := tea.NewProgram(ui.NewDashboardModel(facts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// writeSummary prints the plain-text rendition of the dashboard.
func writeSummary(w *os.File, f ui.Facts) {
	fmt.Fprintf(w, "Location   %.4f, %.4f\n", f.Obs.LatDeg, f.Obs.LonDeg)
	fmt.Fprintf(w, "At         %s\n", f.At.Format("2006-01-02 15:04 UTC"))
	fmt.Fprintf(w, "Altitude   %s\n", format.Altitude(f.Pos.AltDeg))
	fmt.Fprintf(w, "Azimuth    %s\n", format.Altitude(f.Pos.AzDeg))

	switch {
	case f.Events.PolarDay:
		fmt.Fprintln(w, "Sunrise    - (midnight sun)")
	case f.Events.PolarNight:
		fmt.Fprintln(w, "Sunrise    - (polar night)")
	default:
		fmt.Fprintf(w, "Sunrise    %s\n", format.ClockTime(f.Events.Sunrise))
		fmt.Fprintf(w, "Sunset     %s\n", format.ClockTime(f.Events.Sunset))
	}
	fmt.Fprintf(w, "Solar noon %s\n", format.ClockTime(f.Events.SolarNoon))
	fmt.Fprintf(w, "Day length %s\n", format.Duration(f.Events.DayLength()))

	win := f.Window
	switch {
	case !win.Reached:
		fmt.Fprintf(w, "Window     not reached within a year (%.0f°)\n", f.Threshold)
	case win.DaysUntilStart > 0:
		fmt.Fprintf(w, "Window     opens %s (%s)\n",
			format.DayCount(win.DaysUntilStart), win.ThresholdDate.Format("2006-01-02"))
	default:
		fmt.Fprintf(w, "Window     %s - %s (%s)\n",
			format.ClockTime(win.WindowStart), format.ClockTime(win.WindowEnd),
			format.Duration(time.Duration(win.DurationMinutes)*time.Minute))
		if win.HasEnd {
			fmt.Fprintf(w, "Closes     in %d days\n", win.DaysUntilEnd)
		}
	}
}

// writeJSON emits the facts for scripting.
func writeJSON(w *os.File, f ui.Facts) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(f)
}
