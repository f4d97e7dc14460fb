// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RecommendationsServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_served_total",
			Help: "Total number of recommendation requests served",
		},
		[]string{"status"},
	)

	CandidatesScored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "candidates_scored_total",
			Help: "Total number of candidate solutions scored per surface",
		},
		[]string{"surface"},
	)

	CandidatesSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "candidates_skipped_total",
			Help: "Candidates excluded from ranking due to per-candidate errors",
		},
		[]string{"surface", "error_code"},
	)

	ScoringDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "candidate_scoring_duration_seconds",
			Help: "Duration of per-surface candidate scoring in seconds",
		},
		[]string{"surface"},
	)

	CacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calc_cache_requests_total",
			Help: "Cache lookups by namespace and outcome",
		},
		[]string{"namespace", "outcome"},
	)
)
