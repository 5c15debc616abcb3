// Package httpapi serves the solar engine over HTTP for map front ends:
// sun facts as JSON, terminator and threshold-band layers as GeoJSON.
package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/litescript/sunband/internal/astro"
	"github.com/litescript/sunband/internal/config"
	"github.com/litescript/sunband/internal/format"
	"github.com/litescript/sunband/internal/geomap"
	"github.com/litescript/sunband/internal/logging"
	"github.com/litescript/sunband/internal/solar"
)

// Handler wires the HTTP transport to the engine packages.
type Handler struct {
	engine config.EngineConfig
	logger *logging.Logger
	now    func() time.Time
}

// NewHandler constructs the root HTTP handler. The now function exists so
// tests can pin the clock; pass nil for time.Now.
func NewHandler(engine config.EngineConfig, logger *logging.Logger, now func() time.Time) *Handler {
	if now == nil {
		now = time.Now
	}
	return &Handler{
		engine: engine,
		logger: logger.Named("httpapi"),
		now:    now,
	}
}

// SunFacts returns the full sun-facts document for one location and instant.
func (h *Handler) SunFacts(c *gin.Context) {
	obs, ok := parseLocation(c)
	if !ok {
		return
	}
	at, ok := parseInstant(c, "at", h.now())
	if !ok {
		return
	}
	threshold, ok := parseThreshold(c, h.engine.ThresholdDeg)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, buildSunFacts(obs, at, threshold))
}

// Terminator returns the day/night boundary layers for an instant.
func (h *Handler) Terminator(c *gin.Context) {
	at, ok := parseInstant(c, "at", h.now())
	if !ok {
		return
	}
	c.JSON(http.StatusOK, geomap.TerminatorFeatures(at))
}

// VitaminDArea returns the threshold band layers for a date.
func (h *Handler) VitaminDArea(c *gin.Context) {
	date, ok := parseDate(c, "date", h.now())
	if !ok {
		return
	}
	threshold, ok := parseThreshold(c, h.engine.ThresholdDeg)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, geomap.BandFeatures(date, threshold))
}

// VitaminDBands returns the monthly projected band boundaries.
func (h *Handler) VitaminDBands(c *gin.Context) {
	date, ok := parseDate(c, "date", h.now())
	if !ok {
		return
	}
	threshold, ok := parseThreshold(c, h.engine.ThresholdDeg)
	if !ok {
		return
	}

	months := h.engine.MonthsAhead
	if raw := c.Query("months"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 || n > 12 {
			abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_months", "months must be an integer 0..12", err))
			return
		}
		months = n
	}

	c.JSON(http.StatusOK, geomap.TrendBandFeatures(date, months, threshold))
}

// Health is the liveness endpoint.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func parseLocation(c *gin.Context) (astro.Observer, bool) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_lat", "lat must be a number", err))
		return astro.Observer{}, false
	}
	lng, err := strconv.ParseFloat(c.Query("lng"), 64)
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_lng", "lng must be a number", err))
		return astro.Observer{}, false
	}
	return astro.Observer{LatDeg: lat, LonDeg: lng}.Normalized(), true
}

func parseInstant(c *gin.Context, key string, fallback time.Time) (time.Time, bool) {
	raw := c.Query(key)
	if raw == "" {
		return fallback.UTC(), true
	}
	at, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_"+key, key+" must be RFC 3339", err))
		return time.Time{}, false
	}
	return at.UTC(), true
}

func parseDate(c *gin.Context, key string, fallback time.Time) (time.Time, bool) {
	raw := c.Query(key)
	if raw == "" {
		return solar.MidnightUTC(fallback), true
	}
	date, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_"+key, key+" must be YYYY-MM-DD", err))
		return time.Time{}, false
	}
	return date, true
}

func parseThreshold(c *gin.Context, fallback float64) (float64, bool) {
	raw := c.Query("threshold")
	if raw == "" {
		return fallback, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 || v >= 90 {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_threshold", "threshold must be a number in (0, 90)", err))
		return 0, false
	}
	return v, true
}

func formatClockPtr(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := format.ClockTime(t)
	return &s
}
