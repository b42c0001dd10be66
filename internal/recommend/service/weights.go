package service

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"vehicle-recommender/internal/recommend/model"
)

var ErrInvalidWeights = errors.New("invalid weights")

// DefaultWeights — исходная таблица весов. В сумме 1.10, не нормализуем.
func DefaultWeights() model.WeightTable {
	return model.WeightTable{
		model.AttrBrand:          0.40,
		model.AttrBodyworkType:   0.10,
		model.AttrColor:          0.10,
		model.AttrTransmission:   0.10,
		model.AttrModelID:        0.20,
		model.AttrTrimLine:       0.10,
		model.AttrEnginePower:    0.05,
		model.AttrFuelType:       0.05,
		model.AttrProductionYear: 0.10,
		model.AttrMileage:        0.05,
	}
}

// Sum: максимально возможная оценка для таблицы.
func Sum(w model.WeightTable) float64 {
	keys := make([]string, 0, len(w))
	for k := range w {
		keys = append(keys, string(k))
	}
	// фиксированный порядок сложения, чтобы сумма не «плавала» между вызовами
	sort.Strings(keys)
	s := 0.0
	for _, k := range keys {
		s += w[model.Attribute(k)]
	}
	return s
}

// ValidateWeights: только известные признаки и неотрицательные конечные веса.
func ValidateWeights(w model.WeightTable) error {
	for a, v := range w {
		if !model.IsKnown(a) {
			return fmt.Errorf("%w: unknown attribute %q", ErrInvalidWeights, a)
		}
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s=%v", ErrInvalidWeights, a, v)
		}
	}
	return nil
}

// MergeWeights накладывает переопределения поверх базовой таблицы.
func MergeWeights(base, override model.WeightTable) model.WeightTable {
	out := make(model.WeightTable, len(base)+len(override))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}
