package serverhttp

import (
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"vehicle-recommender/internal/catalog"
	"vehicle-recommender/internal/config"
	"vehicle-recommender/internal/middleware"
	recHnd "vehicle-recommender/internal/recommend/handler"
	"vehicle-recommender/internal/recommend/service"
	"vehicle-recommender/server/http/handlers"
)

func NewRouter(cfg config.Config, store *catalog.Store, ranker *service.Ranker, topN int, logger zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// порядок важен: recover -> requestID -> logging -> cors -> limit
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(cfg.AllowOrigins))
	r.Use(middleware.LimitBytes(int64(cfg.MaxBodyMB) * 1024 * 1024))

	r.Get("/health", handlers.Health(store))
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/options", recHnd.Options(store))
	r.Post("/recommend", recHnd.Recommend(store, ranker, topN, logger))

	return r
}
