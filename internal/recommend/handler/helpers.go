package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"vehicle-recommender/internal/recommend/model"
	"vehicle-recommender/internal/utils"
)

// допустимые значения полей конфигурации (как в форме подбора)
const (
	minYear = 1900
	maxYear = 2050
	maxTopN = 1000
)

var errValidation = errors.New("invalid request")

// recommendRequest — тело POST /recommend. Числа необязательны: без значения берём дефолт.
type recommendRequest struct {
	Brand          *string  `json:"brand"`
	ModelKey       *string  `json:"modelKey"`
	BodyworkType   *string  `json:"bodyworkType"`
	Color          *string  `json:"color"`
	Transmission   *string  `json:"transmission"`
	ModelID        *string  `json:"modelId"`
	TrimLine       *string  `json:"trimLine"`
	FuelType       *string  `json:"fuelType"`
	EnginePower    *float64 `json:"enginePower"`
	ProductionYear *float64 `json:"productionYear"`
	Mileage        *float64 `json:"mileage"`
	TopN           *int     `json:"topN"`
	Explain        bool     `json:"explain"`
}

// decodeRequest понимает JSON и обычную форму (application/x-www-form-urlencoded, multipart).
func decodeRequest(r *http.Request) (recommendRequest, error) {
	var req recommendRequest
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch ct {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		if err := r.ParseMultipartForm(1 << 20); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			return req, fmt.Errorf("bad form: %w", err)
		}
		req.Brand = formStr(r, "brand")
		req.ModelKey = formStr(r, "modelKey")
		req.BodyworkType = formStr(r, "bodyworkType")
		req.Color = formStr(r, "color")
		req.Transmission = formStr(r, "transmission")
		req.ModelID = formStr(r, "modelId")
		req.TrimLine = formStr(r, "trimLine")
		req.FuelType = formStr(r, "fuelType")
		var err error
		if req.EnginePower, err = formNum(r, "enginePower"); err != nil {
			return req, err
		}
		if req.ProductionYear, err = formNum(r, "productionYear"); err != nil {
			return req, err
		}
		if req.Mileage, err = formNum(r, "mileage"); err != nil {
			return req, err
		}
		if v := r.FormValue("topN"); v != "" {
			n := atoi(v, 0)
			req.TopN = &n
		}
		req.Explain = toBool(r.FormValue("explain"), false)
	default:
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			return req, fmt.Errorf("bad json: %w", err)
		}
	}
	return req, nil
}

// toConfig применяет дефолты и проверяет диапазоны.
func (req recommendRequest) toConfig() (model.Configuration, error) {
	cfg := model.DefaultConfiguration()
	cfg.Brand = req.Brand
	cfg.ModelKey = req.ModelKey
	cfg.BodyworkType = req.BodyworkType
	cfg.Color = req.Color
	cfg.Transmission = req.Transmission
	cfg.ModelID = req.ModelID
	cfg.TrimLine = req.TrimLine
	cfg.FuelType = req.FuelType
	if req.EnginePower != nil {
		cfg.EnginePower = *req.EnginePower
	}
	if req.ProductionYear != nil {
		cfg.ProductionYear = *req.ProductionYear
	}
	if req.Mileage != nil {
		cfg.Mileage = *req.Mileage
	}

	switch {
	case !finite(cfg.EnginePower) || cfg.EnginePower < 0:
		return cfg, fmt.Errorf("%w: enginePower must be >= 0", errValidation)
	case !finite(cfg.Mileage) || cfg.Mileage < 0:
		return cfg, fmt.Errorf("%w: mileage must be >= 0", errValidation)
	case !finite(cfg.ProductionYear) || cfg.ProductionYear < minYear || cfg.ProductionYear > maxYear:
		return cfg, fmt.Errorf("%w: productionYear must be within %d..%d", errValidation, minYear, maxYear)
	}
	if req.TopN != nil && (*req.TopN < 1 || *req.TopN > maxTopN) {
		return cfg, fmt.Errorf("%w: topN must be within 1..%d", errValidation, maxTopN)
	}
	return cfg.Normalize(), nil
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

func formStr(r *http.Request, key string) *string {
	if _, ok := r.Form[key]; !ok {
		return nil
	}
	v := r.FormValue(key)
	return &v
}

func formNum(r *http.Request, key string) (*float64, error) {
	v := strings.TrimSpace(r.FormValue(key))
	if v == "" {
		return nil, nil
	}
	f, ok := utils.ParseNumber(v)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a number", errValidation, key)
	}
	return &f, nil
}

func atoi(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return i
}

func toBool(s string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
