package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"vehicle-recommender/internal/catalog"
	"vehicle-recommender/internal/metrics"
	"vehicle-recommender/internal/middleware"
	"vehicle-recommender/internal/recommend/model"
	"vehicle-recommender/internal/recommend/service"
)

// Recommend возвращает http.HandlerFunc для
// r.Post("/recommend", recHnd.Recommend(store, ranker, topN, logger)).
func Recommend(store *catalog.Store, ranker *service.Ranker, defaultTopN int, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.With().Str("rid", middleware.GetRequestID(r)).Logger()
		defer r.Body.Close()

		req, err := decodeRequest(r)
		if err != nil {
			metrics.RecommendRequests.WithLabelValues("bad_request").Inc()
			status := http.StatusBadRequest
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				status = http.StatusRequestEntityTooLarge
			}
			http.Error(w, err.Error(), status)
			return
		}
		cfg, err := req.toConfig()
		if err != nil {
			metrics.RecommendRequests.WithLabelValues("invalid").Inc()
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		topN := defaultTopN
		if req.TopN != nil {
			topN = *req.TopN
		}

		start := time.Now()
		res := ranker.Recommend(store.Records(), cfg, topN, req.Explain)
		elapsed := time.Since(start)
		metrics.RankDuration.Observe(elapsed.Seconds())
		if len(res.Results) > 0 {
			metrics.TopScore.Observe(res.Results[0].Score)
		}

		if err := writeJSON(w, http.StatusOK, res); err != nil {
			metrics.RecommendRequests.WithLabelValues("write_error").Inc()
			log.Error().Err(err).Msg("write json")
			return
		}
		metrics.RecommendRequests.WithLabelValues("ok").Inc()

		ev := log.Info().
			Int("catalog", res.CatalogSize).
			Int("returned", len(res.Results)).
			Dur("elapsed", elapsed)
		if len(res.Results) > 0 {
			ev = ev.Float64("top_score", res.Results[0].Score)
		}
		ev.Msg("recommend done")
	}
}

type optionsResponse struct {
	Options  map[string][]string `json:"options"`
	Defaults map[string]float64  `json:"defaults"`
}

// Options отдаёт значения для выпадающих списков формы.
// «Без предпочтения» в списках нет: это null/отсутствующее поле в запросе.
func Options(store *catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out := optionsResponse{
			Options: map[string][]string{},
			Defaults: map[string]float64{
				string(model.AttrEnginePower):    model.DefaultEnginePower,
				string(model.AttrProductionYear): model.DefaultProductionYear,
				string(model.AttrMileage):        model.DefaultMileage,
			},
		}
		for a, vals := range store.AllOptions() {
			out.Options[string(a)] = vals
		}
		_ = writeJSON(w, http.StatusOK, out)
	}
}
