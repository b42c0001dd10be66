package serverhttp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vehicle-recommender/internal/catalog"
	"vehicle-recommender/internal/config"
	"vehicle-recommender/internal/recommend/model"
	"vehicle-recommender/internal/recommend/service"
)

func testRouter() http.Handler {
	store := catalog.New([]model.VehicleRecord{
		{Row: 2, Brand: model.Str("Audi"), EnginePower: model.Num(140)},
		{Row: 3, Brand: model.Str("BMW")},
	})
	cfg := config.Config{AllowOrigins: []string{"*"}, MaxBodyMB: 1}
	return NewRouter(cfg, store, service.NewRanker(nil, 1), 10, zerolog.Nop())
}

func TestRouter_Health(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.EqualValues(t, 2, body["records"])
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRouter_Recommend(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/recommend", strings.NewReader(`{"brand":"BMW"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var res model.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.Results, 2)
	assert.Equal(t, 3, res.Results[0].Vehicle.Row)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_Metrics(t *testing.T) {
	h := testRouter()
	req := httptest.NewRequest(http.MethodPost, "/recommend", strings.NewReader(`{}`))
	h.ServeHTTP(httptest.NewRecorder(), req)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "recommend_requests_total")
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/recommend", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
