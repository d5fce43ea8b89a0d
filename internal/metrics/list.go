package metrics

import "github.com/prometheus/client_golang/prometheus"

// List execution and editor form Prometheus metrics.
var (
	ListExecutionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "facetlist",
			Name:      "list_executions_total",
			Help:      "Total number of list lookups by outcome",
		},
		[]string{"outcome"}, // "executed" / "cached" / "absent" / "error"
	)

	ListQueryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "facetlist",
			Name:      "list_query_duration_seconds",
			Help:      "Backend query duration of list executions in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"search_id"},
	)

	PresetFilterPassesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "facetlist",
			Name:      "preset_filter_passes_total",
			Help:      "Total number of preset filter builder round trips",
		},
		[]string{"trigger", "mode"},
	)

	FormCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "facetlist",
			Name:      "form_cache_total",
			Help:      "Form storage cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)
)

// Outcomes of a list lookup.
const (
	OutcomeExecuted = "executed"
	OutcomeCached   = "cached"
	OutcomeAbsent   = "absent"
	OutcomeError    = "error"
)

var listMetricsRegistered bool

// RegisterListMetrics registers list and form metrics. Must be called once from main.
func RegisterListMetrics() {
	if listMetricsRegistered {
		return
	}
	prometheus.MustRegister(ListExecutionsTotal)
	prometheus.MustRegister(ListQueryDuration)
	prometheus.MustRegister(PresetFilterPassesTotal)
	prometheus.MustRegister(FormCacheTotal)
	listMetricsRegistered = true
}
