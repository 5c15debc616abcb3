package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/sunband/internal/format"
	"github.com/litescript/sunband/internal/solar"
)

// Styles for the dashboard
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	activeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46"))

	inactiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	barDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// DashboardModel is the sun-facts dashboard view.
type DashboardModel struct {
	width  int
	height int
	facts  Facts
}

// NewDashboardModel creates a dashboard for the given facts.
func NewDashboardModel(facts Facts) DashboardModel {
	return DashboardModel{facts: facts}
}

// Init implements the Bubble Tea model interface.
func (m DashboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages. Days shift with left/right, the threshold with
// t/T; every change recomputes the facts synchronously (the engine is
// bounded and fast enough per interaction).
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			m.facts = ComputeFacts(m.facts.Obs, m.facts.At.AddDate(0, 0, -1), m.facts.Threshold)
		case "right", "l":
			m.facts = ComputeFacts(m.facts.Obs, m.facts.At.AddDate(0, 0, 1), m.facts.Threshold)
		case "t":
			if m.facts.Threshold > 5 {
				m.facts = ComputeFacts(m.facts.Obs, m.facts.At, m.facts.Threshold-5)
			}
		case "T":
			if m.facts.Threshold < 85 {
				m.facts = ComputeFacts(m.facts.Obs, m.facts.At, m.facts.Threshold+5)
			}
		case "n":
			m.facts = ComputeFacts(m.facts.Obs, time.Now(), m.facts.Threshold)
		}
	}

	return m, nil
}

// View renders the dashboard.
func (m DashboardModel) View() string {
	var b strings.Builder

	f := m.facts

	name := f.Obs.Name
	if name == "" {
		name = fmt.Sprintf("%.4f, %.4f", f.Obs.LatDeg, f.Obs.LonDeg)
	}
	b.WriteString(titleStyle.Render("sunband"))
	b.WriteString("  ")
	b.WriteString(valueStyle.Render(name))
	b.WriteString("  ")
	b.WriteString(labelStyle.Render(f.At.Format("2006-01-02 15:04 UTC")))
	b.WriteString("\n\n")

	b.WriteString(headerStyle.Render("Sun"))
	b.WriteString("\n")
	writeRow(&b, "Altitude", format.Altitude(f.Pos.AltDeg))
	writeRow(&b, "Azimuth", format.Altitude(f.Pos.AzDeg))
	b.WriteString("\n")

	b.WriteString(headerStyle.Render("Day"))
	b.WriteString("\n")
	switch {
	case f.Events.PolarDay:
		writeRow(&b, "Sunrise", "— (midnight sun)")
		writeRow(&b, "Sunset", "— (midnight sun)")
	case f.Events.PolarNight:
		writeRow(&b, "Sunrise", "— (polar night)")
		writeRow(&b, "Sunset", "— (polar night)")
	default:
		writeRow(&b, "Sunrise", format.ClockTime(f.Events.Sunrise))
		writeRow(&b, "Sunset", format.ClockTime(f.Events.Sunset))
	}
	writeRow(&b, "Solar noon", format.ClockTime(f.Events.SolarNoon))
	writeRow(&b, "Day length", format.Duration(f.Events.DayLength()))
	b.WriteString("\n")

	b.WriteString(headerStyle.Render(fmt.Sprintf("Vitamin-D window (%.0f°)", f.Threshold)))
	b.WriteString("\n")
	b.WriteString(windowLine(f.Window))
	b.WriteString("\n\n")

	b.WriteString(headerStyle.Render("Noon altitude by month"))
	b.WriteString("\n")
	b.WriteString(seriesChart(f.Series, f.Threshold))
	b.WriteString("\n")

	b.WriteString(helpStyle.Render("←/→ day  t/T threshold  n now  q quit"))
	b.WriteString("\n")

	return b.String()
}

func writeRow(b *strings.Builder, label, value string) {
	b.WriteString(labelStyle.Render(fmt.Sprintf("  %-12s", label)))
	b.WriteString(valueStyle.Render(value))
	b.WriteString("\n")
}

// windowLine summarizes the threshold window in one line.
func windowLine(w solar.Window) string {
	if !w.Reached {
		return inactiveStyle.Render("  not reached within a year at this latitude")
	}

	if w.DaysUntilStart > 0 {
		return inactiveStyle.Render(fmt.Sprintf("  opens %s (%s)",
			format.DayCount(w.DaysUntilStart), w.ThresholdDate.Format("Jan 2")))
	}

	line := fmt.Sprintf("  active  %s – %s  (%s)",
		format.ClockTime(w.WindowStart),
		format.ClockTime(w.WindowEnd),
		format.Duration(time.Duration(w.DurationMinutes)*time.Minute))
	if w.HasEnd {
		line += fmt.Sprintf("  closes in %d days", w.DaysUntilEnd)
	}
	return activeStyle.Render(line)
}

// seriesChart renders the yearly series as horizontal bars, one per month,
// scaled to 90° and marked where the month clears the threshold.
func seriesChart(series []solar.MonthSample, thresholdDeg float64) string {
	const barWidth = 30

	var b strings.Builder
	for _, s := range series {
		n := int(s.MaxAltDeg / 90 * barWidth)
		if n > barWidth {
			n = barWidth
		}

		bar := strings.Repeat("█", n) + strings.Repeat("░", barWidth-n)
		style := barDimStyle
		if s.MaxAltDeg >= thresholdDeg {
			style = barStyle
		}

		b.WriteString(labelStyle.Render(fmt.Sprintf("  %s ", s.Label)))
		b.WriteString(style.Render(bar))
		b.WriteString(valueStyle.Render(fmt.Sprintf(" %5.1f°", s.MaxAltDeg)))
		b.WriteString("\n")
	}
	return b.String()
}
