package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cromptexindia-ux/vedic-astrology-backend/internal/config"
)

func testConfig() config.Config {
	return config.Config{
		Port:              "5000",
		AllowedOrigins:    []string{"*"},
		MaxRequestsPerMin: 6000,
		RequestTimeoutSec: 5,
		LogBufferSize:     100,
		CacheTTLMin:       1,
		DefaultTimezone:   5.5,
	}
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

const j2000Request = `{
	"name": "Reference",
	"sex": "M",
	"birth_date": "2000-01-01",
	"birth_time": "12:00:00",
	"timezone": 0,
	"latitude": 13.0827,
	"longitude": 80.2707,
	"ayanamsa": "Chitra Paksha"
}`

func TestHealthEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := setupRouter(testConfig())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"Backend is running"}`, w.Body.String())
}

func TestBirthChartEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := setupRouter(testConfig())

	w := postJSON(t, r, "/api/calculate-birth-chart", j2000Request)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])

	data := body["data"].(map[string]any)
	assert.Equal(t, "Reference", data["name"])
	assert.Equal(t, "2000-01-01", data["birth_date"])
	assert.Equal(t, "Chitra Paksha", data["ayanamsa"])

	nakshatra := data["nakshatra"].(map[string]any)
	assert.Equal(t, "Swati", nakshatra["name"])
	assert.Equal(t, float64(15), nakshatra["number"])
	assert.Equal(t, float64(4), nakshatra["pada"])
	assert.Equal(t, "Rahu", nakshatra["lord"])

	rasi := data["rasi"].(map[string]any)
	assert.Equal(t, "Tula", rasi["sign"])
	assert.Equal(t, "Venus", rasi["lord"])

	tithi := data["tithi"].(map[string]any)
	assert.Equal(t, "Purnima", tithi["name"])
	assert.Equal(t, "Suklapaksha", tithi["paksha"])

	lagna := data["lagna"].(map[string]any)
	assert.Equal(t, "Mithuna", lagna["sign"])
	assert.Equal(t, "Mercury", lagna["lord"])

	yoga := data["yoga"].(map[string]any)
	assert.Equal(t, "Dhriti", yoga["name"])

	assert.Equal(t, "Bava", data["karanam"])

	planets := data["planets"].(map[string]any)
	sun := planets["sun"].(map[string]any)
	assert.Equal(t, "Dhanu", sun["sign"])
	assert.InDelta(t, 256.744, sun["longitude"].(float64), 0.01)

	logs := body["logs"].([]any)
	assert.NotEmpty(t, logs)
}

func TestBirthChartValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		body string
	}{
		{
			name: "missing birth_date",
			body: `{"birth_time": "12:00:00"}`,
		},
		{
			name: "missing birth_time",
			body: `{"birth_date": "2000-01-01"}`,
		},
		{
			name: "calendar-impossible date",
			body: `{"birth_date": "2000-02-30", "birth_time": "12:00:00"}`,
		},
		{
			name: "malformed time",
			body: `{"birth_date": "2000-01-01", "birth_time": "25:99:00"}`,
		},
		{
			name: "latitude out of range",
			body: `{"birth_date": "2000-01-01", "birth_time": "12:00:00", "latitude": 95}`,
		},
		{
			name: "longitude out of range",
			body: `{"birth_date": "2000-01-01", "birth_time": "12:00:00", "longitude": 181}`,
		},
		{
			name: "timezone out of range",
			body: `{"birth_date": "2000-01-01", "birth_time": "12:00:00", "timezone": 15}`,
		},
		{
			name: "not json",
			body: `birth of a chart`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(testConfig())
			w := postJSON(t, r, "/api/calculate-birth-chart", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			body := decodeBody(t, w)
			assert.Equal(t, false, body["success"])
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestBirthChartDefaults(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := setupRouter(testConfig())

	w := postJSON(t, r, "/api/calculate-birth-chart",
		`{"birth_date": "2000-01-01", "birth_time": "12:00:00"}`)
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeBody(t, w)["data"].(map[string]any)
	assert.InDelta(t, 5.5, data["timezone"].(float64), 1e-9)
	assert.Equal(t, "Chitra Paksha", data["ayanamsa"])
}

func TestTithiEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := setupRouter(testConfig())

	w := postJSON(t, r, "/api/calculate-tithi", j2000Request)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])

	data := body["data"].(map[string]any)
	assert.Equal(t, "Purnima", data["tithi_name"])
	assert.Equal(t, float64(15), data["tithi_number"])
	assert.Equal(t, "Suklapaksha", data["paksha"])
	assert.InDelta(t, 256.744, data["sun_longitude"].(float64), 0.01)
	assert.InDelta(t, 199.712, data["moon_longitude"].(float64), 0.06)
}

func TestLagnaEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := setupRouter(testConfig())

	w := postJSON(t, r, "/api/calculate-lagna", j2000Request)
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeBody(t, w)["data"].(map[string]any)
	assert.Equal(t, "Mithuna", data["lagna_sign"])
	assert.Equal(t, "Mercury", data["lagna_lord"])
	assert.InDelta(t, 76.744, data["lagna_degrees"].(float64), 0.01)
}

func TestLogsLifecycle(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := setupRouter(testConfig())

	// A chart computation leaves steps in the buffer.
	postJSON(t, r, "/api/calculate-birth-chart", j2000Request)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/get-logs", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decodeBody(t, w)["logs"].([]any))

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodPost, "/api/clear-logs", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"Logs cleared"}`, w.Body.String())

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/api/get-logs", nil)
	r.ServeHTTP(w, req)
	assert.Empty(t, decodeBody(t, w)["logs"])
}

func TestBirthChartCacheHit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := setupRouter(testConfig())

	first := postJSON(t, r, "/api/calculate-birth-chart", j2000Request)
	second := postJSON(t, r, "/api/calculate-birth-chart", j2000Request)
	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)

	// Identical request, identical chart.
	assert.Equal(t,
		decodeBody(t, first)["data"],
		decodeBody(t, second)["data"],
	)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/cache/stats", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	stats := decodeBody(t, w)
	assert.GreaterOrEqual(t, stats["hits"].(float64), float64(1))
}

func TestCORSHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := setupRouter(testConfig())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "https://astro.example")
	r.ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetricsEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := setupRouter(testConfig())

	// Generate at least one sample first.
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/health", nil)
	r.ServeHTTP(w, req)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/metrics", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "astro_http_requests_total"))
}

func BenchmarkBirthChartEndpoint(b *testing.B) {
	gin.SetMode(gin.TestMode)
	r := setupRouter(testConfig())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/api/calculate-birth-chart",
			bytes.NewBufferString(j2000Request))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
	}
}
