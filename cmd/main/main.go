package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"vehicle-recommender/internal/catalog"
	"vehicle-recommender/internal/config"
	"vehicle-recommender/internal/metrics"
	"vehicle-recommender/internal/recommend/service"
	serverhttp "vehicle-recommender/server/http"
)

func main() {
	cfg := config.Load()
	logger := config.SetupLogger(cfg)

	profile, err := config.LoadProfile(cfg.ProfileFile)
	if err != nil {
		logger.Fatal().Err(err).Msg("profile")
	}
	weights, err := profile.WeightTable()
	if err != nil {
		logger.Fatal().Err(err).Msg("weights")
	}
	columns, err := profile.ColumnOverrides()
	if err != nil {
		logger.Fatal().Err(err).Msg("columns")
	}
	topN := cfg.TopN
	if profile.TopN > 0 {
		topN = profile.TopN
	}

	// каталог читается один раз; для обновления нужен рестарт
	store, err := catalog.LoadFile(cfg.CatalogFile, cfg.HeaderRow, columns, logger)
	if err != nil {
		logger.Fatal().Err(err).Str("file", cfg.CatalogFile).Msg("catalog")
	}
	metrics.CatalogRecords.Set(float64(store.Len()))

	workers := cfg.RankWorkers
	if workers > runtime.NumCPU() {
		workers = runtime.NumCPU()
	}
	ranker := service.NewRanker(weights, workers)
	logger.Info().
		Float64("weights_sum", service.Sum(weights)).
		Int("top_n", topN).
		Int("workers", workers).
		Msg("ranker ready")

	r := serverhttp.NewRouter(cfg, store, ranker, topN, logger)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	logger.Info().Str("addr", cfg.Addr()).Msg("server starting")

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("listen")
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	logger.Info().Msg("bye")
}
