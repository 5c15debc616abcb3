package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/litescript/sunband/internal/config"
	"github.com/litescript/sunband/internal/logging"
)

func newServerUnderTest(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{
		HTTP:   config.HTTPConfig{Address: ":0", ReadTimeout: time.Second, WriteTimeout: time.Minute},
		Engine: config.EngineConfig{ThresholdDeg: 45, MonthsAhead: 4},
	}
	now := func() time.Time { return time.Date(2024, 6, 21, 12, 0, 0, 0, time.UTC) }
	handler := NewHandler(cfg.Engine, logging.Discard(), now)

	return NewRouter(cfg, handler, logging.Discard()).Handler
}

func performRequest(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	recorder := httptest.NewRecorder()
	newServerUnderTest(t).ServeHTTP(recorder, req)
	return recorder
}

func decodeErrorBody(t *testing.T, raw []byte) map[string]map[string]string {
	t.Helper()
	var body map[string]map[string]string
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestRouter_SunFactsEquatorEquinox(t *testing.T) {
	recorder := performRequest(t, "/api/v1/sun?lat=0&lng=0&at=2024-03-20T12:00:00Z")
	require.Equal(t, http.StatusOK, recorder.Code)

	var got SunFactsResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))

	require.Equal(t, 0.0, got.Latitude)
	require.NotNil(t, got.Sunrise)
	require.NotNil(t, got.Sunset)
	require.False(t, got.PolarDay)
	require.False(t, got.PolarNight)
	require.Len(t, got.Yearly, 12)

	// The equator is inside the 45° band year-round.
	require.NotNil(t, got.Window.ThresholdDate)
	require.Equal(t, 0, got.Window.DaysUntilStart)
	require.Equal(t, "today", got.Window.DaysUntilText)
	require.NotNil(t, got.Window.DurationMinutes)
	require.Greater(t, *got.Window.DurationMinutes, 300)
	require.Nil(t, got.Window.DaysUntilEnd)
}

func TestRouter_SunFactsPolarNight(t *testing.T) {
	recorder := performRequest(t, "/api/v1/sun?lat=78.22&lng=15.65&at=2024-12-21T12:00:00Z")
	require.Equal(t, http.StatusOK, recorder.Code)

	var got SunFactsResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))

	require.True(t, got.PolarNight)
	require.Nil(t, got.Sunrise)
	require.Nil(t, got.Sunset)
	require.Equal(t, "0h 0m", got.DayLength)
	require.False(t, got.SolarNoon.IsZero(), "solar noon is defined even in polar night")

	// 78°N never reaches 45°: a valid terminal result, not an error.
	require.Nil(t, got.Window.ThresholdDate)
	require.Equal(t, 0, got.Window.DaysUntilStart)
	require.Nil(t, got.Window.WindowStart)
	require.Nil(t, got.Window.DaysUntilEnd)
}

func TestRouter_SunFactsMissingLat(t *testing.T) {
	recorder := performRequest(t, "/api/v1/sun?lng=0")
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "invalid_lat", errBody["error"]["code"])
	require.NotEmpty(t, errBody["error"]["message"])
}

func TestRouter_SunFactsBadInstant(t *testing.T) {
	recorder := performRequest(t, "/api/v1/sun?lat=0&lng=0&at=yesterday")
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	require.Equal(t, "invalid_at", decodeErrorBody(t, recorder.Body.Bytes())["error"]["code"])
}

func TestRouter_Terminator(t *testing.T) {
	recorder := performRequest(t, "/api/v1/terminator?at=2024-06-21T12:00:00Z")
	require.Equal(t, http.StatusOK, recorder.Code)

	var doc struct {
		Type     string `json:"type"`
		Features []struct {
			Properties map[string]any `json:"properties"`
			Geometry   struct {
				Type string `json:"type"`
			} `json:"geometry"`
		} `json:"features"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &doc))
	require.Equal(t, "FeatureCollection", doc.Type)
	require.Len(t, doc.Features, 2)
	require.Equal(t, "fill", doc.Features[0].Properties["layerType"])
	require.Equal(t, "Polygon", doc.Features[0].Geometry.Type)
	require.Equal(t, "boundary", doc.Features[1].Properties["layerType"])
}

func TestRouter_VitaminDAreaBadThreshold(t *testing.T) {
	recorder := performRequest(t, "/api/v1/vitamind/area?date=2024-06-21&threshold=95")
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	require.Equal(t, "invalid_threshold", decodeErrorBody(t, recorder.Body.Bytes())["error"]["code"])
}

func TestRouter_VitaminDBands(t *testing.T) {
	recorder := performRequest(t, "/api/v1/vitamind/bands?date=2024-06-21&months=2")
	require.Equal(t, http.StatusOK, recorder.Code)

	var doc struct {
		Features []struct {
			Properties map[string]any `json:"properties"`
		} `json:"features"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &doc))
	require.Len(t, doc.Features, 6) // (2 months ahead + base) x two sides

	for _, f := range doc.Features {
		require.Equal(t, "boundary", f.Properties["layerType"])
		require.Contains(t, f.Properties, "monthLabel")
		require.Contains(t, f.Properties, "side")
		require.Contains(t, f.Properties, "isReceding")
	}
}

func TestRouter_Health(t *testing.T) {
	recorder := performRequest(t, "/healthz")
	require.Equal(t, http.StatusOK, recorder.Code)
}

func TestRouter_UnknownRoute(t *testing.T) {
	recorder := performRequest(t, "/api/v1/nope")
	require.Equal(t, http.StatusNotFound, recorder.Code)
	require.Equal(t, "not_found", decodeErrorBody(t, recorder.Body.Bytes())["error"]["code"])
}
