// Package catalog держит каталог автомобилей: загружается один раз и дальше
// только читается. Перезагрузка = новый Store.
package catalog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"vehicle-recommender/internal/fileio"
	"vehicle-recommender/internal/metrics"
	"vehicle-recommender/internal/recommend/model"
	"vehicle-recommender/internal/utils"
)

type Store struct {
	records  []model.VehicleRecord
	source   string
	loadedAt time.Time
	columns  map[model.Attribute]string // признак -> найденный заголовок
	skipped  map[model.Attribute]int    // нечисловые значения в числовых колонках
}

// New оборачивает готовые записи (тесты, другие источники).
func New(records []model.VehicleRecord) *Store {
	return &Store{
		records:  slices.Clone(records),
		source:   "memory",
		loadedAt: time.Now(),
		columns:  map[model.Attribute]string{},
		skipped:  map[model.Attribute]int{},
	}
}

// LoadFile читает каталог с диска.
func LoadFile(path string, headerRow int, overrides map[model.Attribute]string, logger zerolog.Logger) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Load(f, filepath.Base(path), headerRow, overrides, logger)
}

// Load разбирает таблицу и сопоставляет колонки признакам.
// Колонки, которых нет в файле, оставляют признак пустым у всех записей.
func Load(r io.Reader, filename string, headerRow int, overrides map[model.Attribute]string, logger zerolog.Logger) (*Store, error) {
	tbl, err := fileio.ReadTable(r, filename, headerRow)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", filename, err)
	}

	want := DefaultColumns()
	for a, col := range overrides {
		want[a] = col
	}
	columns := make(map[model.Attribute]string, len(want))
	for a, col := range want {
		if h := resolveHeader(tbl.Headers, col); h != "" {
			columns[a] = h
		} else {
			logger.Debug().Str("attribute", string(a)).Str("want", col).Msg("catalog column not found")
		}
	}

	s := &Store{
		records:  make([]model.VehicleRecord, 0, len(tbl.Rows)),
		source:   filename,
		loadedAt: time.Now(),
		columns:  columns,
		skipped:  map[model.Attribute]int{},
	}
	for _, row := range tbl.Rows {
		s.records = append(s.records, s.toRecord(row))
	}

	for a, n := range s.skipped {
		metrics.CatalogSkippedCells.WithLabelValues(string(a)).Add(float64(n))
		logger.Warn().Str("attribute", string(a)).Int("cells", n).Msg("non-numeric values treated as absent")
	}
	logger.Info().
		Str("source", filename).
		Int("records", len(s.records)).
		Int("columns", len(columns)).
		Msg("catalog loaded")
	return s, nil
}

func (s *Store) toRecord(row fileio.Row) model.VehicleRecord {
	str := func(a model.Attribute) *string {
		h, ok := s.columns[a]
		if !ok {
			return nil
		}
		if v, ok := row.Get(h); ok {
			return &v
		}
		return nil
	}
	num := func(a model.Attribute) *float64 {
		h, ok := s.columns[a]
		if !ok {
			return nil
		}
		v, ok := row.Get(h)
		if !ok {
			return nil
		}
		f, ok := utils.ParseNumber(v)
		if !ok {
			s.skipped[a]++
			return nil
		}
		return &f
	}

	return model.VehicleRecord{
		Row:            row.Line,
		Brand:          str(model.AttrBrand),
		ModelKey:       str(model.AttrModelKey),
		BodyworkType:   str(model.AttrBodyworkType),
		Color:          str(model.AttrColor),
		Transmission:   str(model.AttrTransmission),
		ModelID:        str(model.AttrModelID),
		TrimLine:       str(model.AttrTrimLine),
		FuelType:       str(model.AttrFuelType),
		EnginePower:    num(model.AttrEnginePower),
		ProductionYear: num(model.AttrProductionYear),
		Mileage:        num(model.AttrMileage),
	}
}

// Records возвращает копию среза записей; сами записи не меняются.
func (s *Store) Records() []model.VehicleRecord { return slices.Clone(s.records) }

func (s *Store) Len() int { return len(s.records) }

func (s *Store) Source() string { return s.source }

func (s *Store) LoadedAt() time.Time { return s.loadedAt }

// Columns: какой заголовок файла используется для признака.
func (s *Store) Columns() map[model.Attribute]string {
	out := make(map[model.Attribute]string, len(s.columns))
	for k, v := range s.columns {
		out[k] = v
	}
	return out
}

// Skipped: сколько числовых ячеек не удалось разобрать, по признакам.
func (s *Store) Skipped() map[model.Attribute]int {
	out := make(map[model.Attribute]int, len(s.skipped))
	for k, v := range s.skipped {
		out[k] = v
	}
	return out
}

// Options возвращает отсортированные уникальные непустые значения категориального признака.
func (s *Store) Options(a model.Attribute) []string {
	seen := make(map[string]struct{})
	for _, r := range s.records {
		if v := model.NonBlank(r.Categorical(a)); v != nil {
			seen[*v] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// AllOptions считает Options для всех категориальных признаков, которые есть в каталоге.
func (s *Store) AllOptions() map[model.Attribute][]string {
	out := make(map[model.Attribute][]string, len(model.CategoricalAttrs))
	for _, a := range model.CategoricalAttrs {
		if opts := s.Options(a); len(opts) > 0 {
			out[a] = opts
		}
	}
	return out
}
