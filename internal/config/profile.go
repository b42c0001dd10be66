package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"vehicle-recommender/internal/recommend/model"
	"vehicle-recommender/internal/recommend/service"
)

// Profile — настройки подбора из YAML:
//
//	weights:
//	  brand: 0.4
//	  modelKey: 0.1
//	replace_weights: false
//	columns:
//	  brand: "ey_brandname|Marke"
//	top_n: 10
type Profile struct {
	Weights        map[string]float64 `yaml:"weights,omitempty"`
	ReplaceWeights bool               `yaml:"replace_weights,omitempty"` // true: таблица целиком из файла
	Columns        map[string]string  `yaml:"columns,omitempty"`
	TopN           int                `yaml:"top_n,omitempty"`
}

// LoadProfile читает профиль; при пустом пути профиль по умолчанию.
func LoadProfile(path string) (*Profile, error) {
	if path == "" {
		return &Profile{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile %s: %w", path, err)
	}
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", path, err)
	}
	return &p, nil
}

// WeightTable собирает веса по умолчанию с наложенными значениями из профиля.
func (p *Profile) WeightTable() (model.WeightTable, error) {
	over := make(model.WeightTable, len(p.Weights))
	for k, v := range p.Weights {
		over[model.Attribute(k)] = v
	}
	w := over
	if !p.ReplaceWeights {
		w = service.MergeWeights(service.DefaultWeights(), over)
	}
	if err := service.ValidateWeights(w); err != nil {
		return nil, err
	}
	return w, nil
}

// ColumnOverrides: переименования колонок каталога по признакам.
func (p *Profile) ColumnOverrides() (map[model.Attribute]string, error) {
	out := make(map[model.Attribute]string, len(p.Columns))
	for k, v := range p.Columns {
		a := model.Attribute(k)
		if !model.IsKnown(a) {
			return nil, fmt.Errorf("profile: unknown attribute %q in columns", k)
		}
		out[a] = v
	}
	return out, nil
}
