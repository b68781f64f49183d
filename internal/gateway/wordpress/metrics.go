package wordpress

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GatewayRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_retries_total",
			Help: "Total number of gateway retry attempts",
		},
		[]string{"service", "method", "http_code"},
	)

	GatewayRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gateway_request_duration_seconds",
			Help:    "Duration of gateway requests including retries",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"service", "method", "http_code"},
	)
)

func observeRequest(method string, statusCode int, start time.Time, err error) {
	GatewayRequestDuration.
		WithLabelValues(serviceName, method, httpCode(statusCode, err)).
		Observe(time.Since(start).Seconds())
}

func observeRetries(method string, statusCode int, err error) {
	GatewayRetriesTotal.
		WithLabelValues(serviceName, method, httpCode(statusCode, err)).
		Inc()
}

func httpCode(statusCode int, err error) string {
	if statusCode == 0 {
		if err != nil {
			return "transport_error"
		}
		return strconv.Itoa(http.StatusOK)
	}
	return strconv.Itoa(statusCode)
}
