package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of building one stack report
	EvaluateLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "pricing_evaluate_latency_seconds",
		Help:    "Latency of contract set evaluation",
		Buckets: prometheus.DefBuckets,
	})

	ContractsEvaluated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pricing_contracts_evaluated_total",
		Help: "Total number of contracts scored",
	})

	ContractsRejected = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pricing_contracts_rejected_total",
		Help: "Total number of contract inputs declined by validation",
	})

	DealStatus = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pricing_deal_status_total",
		Help: "Contracts scored, by deal status",
	}, []string{"status"})

	AnalysesSaved = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "analyses_saved_total",
		Help: "Total number of analyses persisted",
	})
)

func Init() {
	prometheus.MustRegister(
		EvaluateLatency,
		ContractsEvaluated,
		ContractsRejected,
		DealStatus,
		AnalysesSaved,
	)
}
