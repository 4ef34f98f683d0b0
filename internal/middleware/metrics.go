package middleware

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"FITTRACK_BACK-END/internal/observability"
)

// Metrics records request counts and latencies
func Metrics(next http.Handler) http.Handler {
	return promhttp.InstrumentHandlerDuration(observability.HTTPRequestDuration,
		promhttp.InstrumentHandlerCounter(observability.HTTPRequestsTotal, next))
}
