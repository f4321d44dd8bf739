package httpbp

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/probekit/customprobe/internal/prometheusbpint"
)

const (
	methodLabel   = "http_method"
	successLabel  = "http_success"
	codeLabel     = "http_response_code"
	endpointLabel = "http_endpoint"
)

var (
	serverLabels = []string{
		methodLabel,
		successLabel,
		endpointLabel,
	}

	serverLatency = promauto.With(prometheusbpint.GlobalRegistry).NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_server_latency_seconds",
		Help:    "HTTP server request latencies",
		Buckets: prometheus.DefBuckets,
	}, serverLabels)

	serverTotalRequestLabels = []string{
		methodLabel,
		successLabel,
		codeLabel,
		endpointLabel,
	}

	serverTotalRequests = promauto.With(prometheusbpint.GlobalRegistry).NewCounterVec(prometheus.CounterOpts{
		Name: "http_server_requests_total",
		Help: "Total request count",
	}, serverTotalRequestLabels)

	serverActiveRequestsLabels = []string{
		methodLabel,
		endpointLabel,
	}

	serverActiveRequests = promauto.With(prometheusbpint.GlobalRegistry).NewGaugeVec(prometheus.GaugeOpts{
		Name: "http_server_active_requests",
		Help: "The number of in-flight requests being handled by the service",
	}, serverActiveRequestsLabels)
)

// ServerMetrics returns a middleware recording request count, latency and
// in-flight requests, labeled by the handler name.
//
// A request is a success when the handler returned no error and the status
// code written is below 500.
func ServerMetrics() Middleware {
	return func(name string, next HandlerFunc) HandlerFunc {
		return func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			method := r.Method
			active := serverActiveRequests.With(prometheus.Labels{
				methodLabel:   method,
				endpointLabel: name,
			})
			active.Inc()
			defer active.Dec()

			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w}
			err := next(ctx, rec, r)

			code := rec.statusCode(err)
			success := strconv.FormatBool(err == nil && code < http.StatusInternalServerError)
			serverLatency.With(prometheus.Labels{
				methodLabel:   method,
				successLabel:  success,
				endpointLabel: name,
			}).Observe(time.Since(start).Seconds())
			serverTotalRequests.With(prometheus.Labels{
				methodLabel:   method,
				successLabel:  success,
				codeLabel:     strconv.Itoa(code),
				endpointLabel: name,
			}).Inc()
			return err
		}
	}
}
