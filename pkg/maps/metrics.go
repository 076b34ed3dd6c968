package maps

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/richxcame/mapsclient/pkg/httpclient"
	"github.com/richxcame/mapsclient/pkg/resilience"
)

const (
	outcomeOK          = "ok"
	outcomeAPIError    = "api_error"
	outcomeHTTPError   = "http_error"
	outcomeDecodeError = "decode_error"
	outcomeUnavailable = "circuit_open"
	outcomeError       = "error"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "maps",
		Name:      "requests_total",
		Help:      "Total number of dispatched Maps requests by family and outcome",
	}, []string{"family", "outcome"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "maps",
		Name:      "request_duration_seconds",
		Help:      "Duration of Maps requests including retries",
		Buckets:   prometheus.DefBuckets,
	}, []string{"family"})
)

func observeRequest(family string, err error, elapsed time.Duration) {
	requestDuration.WithLabelValues(family).Observe(elapsed.Seconds())
	requestsTotal.WithLabelValues(family, outcome(err)).Inc()
}

func outcome(err error) string {
	var (
		apiErr    *APIError
		httpErr   *httpclient.HTTPError
		decodeErr *DecodeError
	)
	switch {
	case err == nil:
		return outcomeOK
	case errors.As(err, &apiErr):
		return outcomeAPIError
	case errors.As(err, &decodeErr):
		return outcomeDecodeError
	case errors.As(err, &httpErr):
		return outcomeHTTPError
	case errors.Is(err, resilience.ErrCircuitOpen):
		return outcomeUnavailable
	default:
		return outcomeError
	}
}
