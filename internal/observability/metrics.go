// Package observability holds the Prometheus collectors exported at /metrics.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "fittrack"

var (
	// HTTPRequestsTotal counts served requests by status code and method.
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests served, partitioned by status code and method.",
	}, []string{"code", "method"})

	// HTTPRequestDuration tracks request latency.
	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"code", "method"})

	webhookAttempts = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "webhook",
		Name:      "attempts_total",
		Help:      "Outbound webhook calls by kind (voice, chat) and outcome.",
	}, []string{"kind", "outcome"})

	webhookFallbacks = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "webhook",
		Name:      "fallbacks_total",
		Help:      "Interactions answered locally because every webhook URL failed.",
	}, []string{"kind"})

	exercisesRecorded = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "exercises",
		Name:      "recorded_total",
		Help:      "Exercise rows stored, by source.",
	}, []string{"source"})

	eventPublishFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "events",
		Name:      "publish_failures_total",
		Help:      "Exercise events that could not be published.",
	})
)

func init() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		webhookAttempts,
		webhookFallbacks,
		exercisesRecorded,
		eventPublishFailures,
	)
}

// Webhook outcomes
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// RecordWebhookAttempt counts a single outbound webhook call.
func RecordWebhookAttempt(kind, outcome string) {
	webhookAttempts.WithLabelValues(kind, outcome).Inc()
}

// RecordWebhookFallback counts an interaction answered without the webhook.
func RecordWebhookFallback(kind string) {
	webhookFallbacks.WithLabelValues(kind).Inc()
}

// RecordExercises counts stored exercise rows.
func RecordExercises(source string, n int) {
	if n <= 0 {
		return
	}
	exercisesRecorded.WithLabelValues(source).Add(float64(n))
}

// RecordEventPublishFailure counts a dropped event.
func RecordEventPublishFailure() {
	eventPublishFailures.Inc()
}
