package service

import (
	"sort"

	"github.com/sourcegraph/conc/iter"

	"vehicle-recommender/internal/recommend/model"
)

// DefaultTopN: сколько рекомендаций отдаём, если не задано.
const DefaultTopN = 10

// Ranker считает схожесть для всего каталога и сортирует по убыванию.
// Workers > 1 включает параллельный подсчёт; результат совпадает с последовательным.
type Ranker struct {
	Weights model.WeightTable
	Workers int
}

func NewRanker(weights model.WeightTable, workers int) *Ranker {
	if weights == nil {
		weights = DefaultWeights()
	}
	return &Ranker{Weights: weights, Workers: workers}
}

// Rank: последовательная версия без состояния.
func Rank(catalog []model.VehicleRecord, cfg model.Configuration, weights model.WeightTable, topN int) []model.ScoredRecord {
	scored := make([]model.ScoredRecord, len(catalog))
	for i, rec := range catalog {
		scored[i] = model.ScoredRecord{VehicleRecord: rec, SimilarityScore: Score(rec, cfg, weights)}
	}
	return sortAndCut(scored, topN)
}

func (r *Ranker) Rank(catalog []model.VehicleRecord, cfg model.Configuration, topN int) []model.ScoredRecord {
	if r.Workers <= 1 || len(catalog) < 2 {
		return Rank(catalog, cfg, r.Weights, topN)
	}
	m := iter.Mapper[model.VehicleRecord, model.ScoredRecord]{MaxGoroutines: r.Workers}
	// Map сохраняет порядок входа, поэтому стабильная сортировка даёт тот же результат
	scored := m.Map(catalog, func(rec *model.VehicleRecord) model.ScoredRecord {
		return model.ScoredRecord{VehicleRecord: *rec, SimilarityScore: Score(*rec, cfg, r.Weights)}
	})
	return sortAndCut(scored, topN)
}

// равные оценки сохраняют порядок каталога
func sortAndCut(scored []model.ScoredRecord, topN int) []model.ScoredRecord {
	if scored == nil {
		scored = []model.ScoredRecord{}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].SimilarityScore > scored[j].SimilarityScore
	})
	if topN <= 0 {
		topN = DefaultTopN
	}
	if len(scored) > topN {
		scored = scored[:topN]
	}
	return scored
}
