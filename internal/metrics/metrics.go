package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RecommendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_requests_total",
			Help: "Total number of recommendation requests by outcome",
		},
		[]string{"outcome"},
	)

	RankDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_rank_duration_seconds",
			Help:    "Time spent scoring and sorting the catalog",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14),
		},
	)

	TopScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_top_score",
			Help:    "Similarity score of the best match per request",
			Buckets: prometheus.LinearBuckets(0, 0.1, 12),
		},
	)

	CatalogRecords = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_records",
			Help: "Number of vehicle records in the loaded catalog",
		},
	)

	CatalogSkippedCells = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_skipped_cells_total",
			Help: "Numeric catalog cells that could not be parsed and were treated as absent",
		},
		[]string{"attribute"},
	)
)
