package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vehicle-recommender/internal/catalog"
	"vehicle-recommender/internal/recommend/model"
	"vehicle-recommender/internal/recommend/service"
)

func testStore() *catalog.Store {
	return catalog.New([]model.VehicleRecord{
		{Row: 2, Brand: model.Str("BMW"), Color: model.Str("Black"), EnginePower: model.Num(150), ProductionYear: model.Num(2019)},
		{Row: 3, Brand: model.Str("Audi"), EnginePower: model.Num(140), ProductionYear: model.Num(2020), Mileage: model.Num(50000)},
		{Row: 4, Brand: model.Str("Audi"), Color: model.Str("Red")},
		{Row: 5, Color: model.Str("")},
	})
}

func newRouter() http.Handler {
	r := chi.NewRouter()
	r.Post("/recommend", Recommend(testStore(), service.NewRanker(nil, 1), 10, zerolog.Nop()))
	r.Get("/options", Options(testStore()))
	return r
}

func postJSON(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/recommend", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) model.Result {
	t.Helper()
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var res model.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	return res
}

func TestRecommend_JSON(t *testing.T) {
	h := newRouter()
	rec := postJSON(t, h, `{"brand":"Audi","enginePower":140,"productionYear":2020,"mileage":50000,"explain":true}`)
	res := decode(t, rec)

	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, 4, res.CatalogSize)
	require.Len(t, res.Results, 4)
	assert.Equal(t, 3, res.Results[0].Vehicle.Row)
	assert.InDelta(t, 0.60, res.Results[0].Score, 1e-9)
	assert.InDelta(t, 0.40, res.Results[0].Breakdown[model.AttrBrand], 1e-9)
	for i := 1; i < len(res.Results); i++ {
		assert.GreaterOrEqual(t, res.Results[i-1].Score, res.Results[i].Score)
	}
}

func TestRecommend_DefaultsAndTopN(t *testing.T) {
	res := decode(t, postJSON(t, newRouter(), `{"topN":2}`))

	assert.Equal(t, 2, res.TopN)
	assert.Len(t, res.Results, 2)
	assert.InDelta(t, 140, res.Config.EnginePower, 1e-9)
	assert.InDelta(t, 2020, res.Config.ProductionYear, 1e-9)
	assert.InDelta(t, 50000, res.Config.Mileage, 1e-9)
	assert.Nil(t, res.Results[0].Breakdown)
}

func TestRecommend_EmptyStringNeverMatchesBlankCell(t *testing.T) {
	res := decode(t, postJSON(t, newRouter(), `{"color":"","productionYear":1950,"enginePower":1000,"mileage":900000}`))

	assert.Nil(t, res.Config.Color)
	for _, r := range res.Results {
		assert.Zero(t, r.Score)
	}
	// ничья, порядок каталога
	assert.Equal(t, 2, res.Results[0].Vehicle.Row)
	assert.Equal(t, 5, res.Results[3].Vehicle.Row)
}

func TestRecommend_Form(t *testing.T) {
	form := url.Values{}
	form.Set("brand", "BMW")
	form.Set("color", "Black")
	form.Set("enginePower", "150")
	form.Set("productionYear", "2019")
	form.Set("topN", "1")

	req := httptest.NewRequest(http.MethodPost, "/recommend", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, req)

	res := decode(t, rec)
	require.Len(t, res.Results, 1)
	assert.Equal(t, 2, res.Results[0].Vehicle.Row)
	assert.InDelta(t, 0.40+0.10+0.05+0.10, res.Results[0].Score, 1e-9)
}

func TestRecommend_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"brand":`},
		{name: "unknown field", body: `{"price":1}`},
		{name: "wrong type", body: `{"enginePower":"fast"}`},
		{name: "year too old", body: `{"productionYear":1800}`},
		{name: "year too new", body: `{"productionYear":2051}`},
		{name: "negative power", body: `{"enginePower":-1}`},
		{name: "negative mileage", body: `{"mileage":-5}`},
		{name: "zero topN", body: `{"topN":0}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, newRouter(), tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestOptions(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/options", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var out optionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, []string{"Audi", "BMW"}, out.Options["brand"])
	assert.Equal(t, []string{"Black", "Red"}, out.Options["color"])
	assert.InDelta(t, 2020, out.Defaults["productionYear"], 1e-9)
	_, ok := out.Options["modelKey"]
	assert.False(t, ok)
}

func TestRecommend_TrimsCategoricalValuesOnBothPaths(t *testing.T) {
	fromJSON := decode(t, postJSON(t, newRouter(), `{"brand":" Audi ","topN":1}`))
	require.Len(t, fromJSON.Results, 1)
	assert.Equal(t, "Audi", *fromJSON.Config.Brand)

	form := url.Values{}
	form.Set("brand", " Audi ")
	form.Set("topN", "1")
	req := httptest.NewRequest(http.MethodPost, "/recommend", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, req)
	fromForm := decode(t, rec)
	require.Len(t, fromForm.Results, 1)

	assert.Equal(t, fromJSON.Results[0].Vehicle.Row, fromForm.Results[0].Vehicle.Row)
	assert.InDelta(t, fromJSON.Results[0].Score, fromForm.Results[0].Score, 1e-9)
	assert.GreaterOrEqual(t, fromJSON.Results[0].Score, service.DefaultWeights()[model.AttrBrand])
}
