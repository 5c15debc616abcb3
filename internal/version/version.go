// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Trend classifier, monthly band projection, HTTP GeoJSON API
// 0.2.0 - Terminator and threshold-band mapping, yearly trend sampler
// 0.1.0 - Initial release: ephemeris, day events, vitamin-D window, TUI
