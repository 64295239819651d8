package ranking

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RankingQueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ranking_queries_total",
			Help: "Count of ranking queries by outcome (ranked, no_match) and weight source.",
		},
		[]string{"outcome", "weight_source"},
	)

	ScoreClampedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ranking_score_clamped_total",
		Help: "Composite scores that fell outside [0,1] and were clamped.",
	})

	UniformFallbackTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ranking_uniform_weight_fallback_total",
		Help: "Queries whose weights summed to zero and fell back to a uniform distribution.",
	})
)

func init() {
	prometheus.MustRegister(RankingQueriesTotal, ScoreClampedTotal, UniformFallbackTotal)
}
