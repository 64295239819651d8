package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the recommendations HTTP handler
	RankingRecommendLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "ranking_recommend_latency_seconds",
		Help:    "Latency of the store recommendation handler",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of recommendation requests served
	RankingRecommendRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ranking_recommend_requests_total",
		Help: "Total number of store recommendation requests",
	})

	SessionsIssued = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ranking_sessions_issued_total",
		Help: "Total number of search sessions opened",
	})
)

func Init() {
	prometheus.MustRegister(
		RankingRecommendLatency,
		RankingRecommendRequests,
		SessionsIssued,
	)
}
