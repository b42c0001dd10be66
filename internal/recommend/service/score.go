package service

import (
	"math"

	"vehicle-recommender/internal/recommend/model"
)

// Пороги числовых признаков: при разнице >= порога вклад нулевой.
var thresholds = map[model.Attribute]float64{
	model.AttrEnginePower:    50,
	model.AttrProductionYear: 5,
	model.AttrMileage:        50000,
}

// Thresholds возвращает копию порогов числовых признаков.
func Thresholds() map[model.Attribute]float64 {
	out := make(map[model.Attribute]float64, len(thresholds))
	for a, t := range thresholds {
		out[a] = t
	}
	return out
}

// Score считает взвешенную схожесть записи с конфигурацией.
// Чистая функция: отсутствующие поля и признаки без веса дают 0.
func Score(rec model.VehicleRecord, cfg model.Configuration, weights model.WeightTable) float64 {
	score := 0.0
	for _, a := range model.CategoricalAttrs {
		score += categorical(a, rec, cfg, weights)
	}
	for _, a := range model.NumericAttrs {
		score += numeric(a, rec, cfg, weights)
	}
	return score
}

// Breakdown: вклад каждого признака по отдельности; сумма равна Score.
// Признаки с нулевым вкладом не попадают в результат.
func Breakdown(rec model.VehicleRecord, cfg model.Configuration, weights model.WeightTable) map[model.Attribute]float64 {
	out := make(map[model.Attribute]float64)
	for _, a := range model.CategoricalAttrs {
		if v := categorical(a, rec, cfg, weights); v > 0 {
			out[a] = v
		}
	}
	for _, a := range model.NumericAttrs {
		if v := numeric(a, rec, cfg, weights); v > 0 {
			out[a] = v
		}
	}
	return out
}

// точное совпадение даёт полный вес, иначе ничего
func categorical(a model.Attribute, rec model.VehicleRecord, cfg model.Configuration, weights model.WeightTable) float64 {
	w, ok := weights[a]
	if !ok {
		return 0
	}
	have, want := rec.Categorical(a), cfg.Categorical(a)
	if have == nil || want == nil || *have != *want {
		return 0
	}
	return w
}

// треугольное ядро: w при diff=0, линейно до 0 при diff=T
func numeric(a model.Attribute, rec model.VehicleRecord, cfg model.Configuration, weights model.WeightTable) float64 {
	w, ok := weights[a]
	if !ok {
		return 0
	}
	v := rec.Numeric(a)
	if v == nil || math.IsNaN(*v) {
		return 0
	}
	t := thresholds[a]
	diff := math.Abs(*v - cfg.Numeric(a))
	if diff < t {
		return w * (1 - diff/t)
	}
	return 0
}
