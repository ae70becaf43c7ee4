// Package metrics exposes the Prometheus collectors for the quiz service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "mindtest"

var (
	// SessionsScored counts successfully scored quiz submissions.
	SessionsScored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_scored_total",
			Help:      "Quiz sessions scored and persisted",
		},
		[]string{"category"},
	)

	// ReportsGenerated counts generated reports by variant.
	ReportsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_generated_total",
			Help:      "Reports generated, by variant",
		},
		[]string{"variant"},
	)

	// NarrativeFallbacks counts external narrative failures masked by the
	// deterministic template path.
	NarrativeFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "narrative_fallbacks_total",
			Help:      "External narrative failures handled by template fallback",
		},
	)

	// HTTPRequests counts handled requests by path and status class.
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Handled HTTP requests",
		},
		[]string{"method", "status"},
	)
)

// Handler serves the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
