package service

import "vehicle-recommender/internal/recommend/model"

// Recommend ранжирует каталог и собирает ответ для API и CLI.
// explain добавляет к каждой строке вклад признаков.
func (r *Ranker) Recommend(catalog []model.VehicleRecord, cfg model.Configuration, topN int, explain bool) model.Result {
	if topN <= 0 {
		topN = DefaultTopN
	}
	cfg = cfg.Normalize()
	ranked := r.Rank(catalog, cfg, topN)

	res := model.Result{
		Results:     make([]model.Recommendation, 0, len(ranked)),
		CatalogSize: len(catalog),
		TopN:        topN,
		MaxScore:    Sum(r.Weights),
		Config:      cfg,
		Weights:     r.Weights,
	}
	for i, sr := range ranked {
		rec := model.Recommendation{
			Rank:    i + 1,
			Score:   sr.SimilarityScore,
			Vehicle: sr.VehicleRecord,
		}
		if explain {
			rec.Breakdown = Breakdown(sr.VehicleRecord, cfg, r.Weights)
		}
		res.Results = append(res.Results, rec)
	}
	return res
}
