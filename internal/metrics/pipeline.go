package metrics

import "github.com/prometheus/client_golang/prometheus"

// Pipeline Prometheus metrics.
var (
	PhotosIndexedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "photodex",
			Name:      "photos_indexed_total",
			Help:      "Total number of photo documents written to the index",
		},
		[]string{"status"}, // "success" / "error"
	)

	KeywordFallbacksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "photodex",
			Name:      "keyword_fallbacks_total",
			Help:      "Searches that fell back to raw query text",
		},
	)

	IntentErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "photodex",
			Name:      "intent_errors_total",
			Help:      "Failed intent-service calls (recovered locally)",
		},
	)

	PresignFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "photodex",
			Name:      "presign_failures_total",
			Help:      "Hits dropped from search results due to presign failures",
		},
	)
)

var pipelineMetricsRegistered bool

// RegisterPipelineMetrics registers Prometheus pipeline metrics. Must be called once from main.
func RegisterPipelineMetrics() {
	if pipelineMetricsRegistered {
		return
	}
	prometheus.MustRegister(PhotosIndexedTotal)
	prometheus.MustRegister(KeywordFallbacksTotal)
	prometheus.MustRegister(IntentErrorsTotal)
	prometheus.MustRegister(PresignFailuresTotal)
	pipelineMetricsRegistered = true
}
