// Copyright 2025 NetApp, Inc. All Rights Reserved.

package logging

import (
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/netapp/multisvm/config"
)

var (
	outgoingAPIRequestSharedLabels = []string{"target", "address", "method"}
	// outgoingAPIRequestDurationSeconds tracks the duration of outgoing API requests.
	outgoingAPIRequestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: config.OrchestratorName,
			Subsystem: "outgoing_api",
			Name:      "request_duration_seconds",
			Help:      "Duration of calls to outgoing APIs from start to finish.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
		},
		append([]string{"status"}, outgoingAPIRequestSharedLabels...),
	)
	// outgoingAPIRequestsInFlight tracks the number of in-flight outgoing API requests.
	outgoingAPIRequestsInFlight = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: config.OrchestratorName,
			Subsystem: "outgoing_api",
			Name:      "requests_in_flight",
			Help:      "Number of in-flight outgoing API requests.",
		},
		outgoingAPIRequestSharedLabels,
	)
)

// MetricsTransport is an HTTP transport that records metrics for outgoing requests and, for request
// paths matching the trace pattern, logs each request and response line at debug level.
type MetricsTransport struct {
	base         http.RoundTripper
	target       string
	tracePattern *regexp.Regexp
}

type MetricsTransportOption func(*MetricsTransport)

func WithMetricsTransportTarget(target string) MetricsTransportOption {
	return func(m *MetricsTransport) {
		if target == "" {
			return
		}
		m.target = target
	}
}

// WithTracePattern enables request tracing for paths matching pattern. A nil pattern disables tracing.
func WithTracePattern(pattern *regexp.Regexp) MetricsTransportOption {
	return func(m *MetricsTransport) {
		m.tracePattern = pattern
	}
}

// NewMetricsTransport creates a new MetricsTransport with the given options.
func NewMetricsTransport(base http.RoundTripper, options ...MetricsTransportOption) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	transport := &MetricsTransport{
		base:   base,
		target: "unknown",
	}
	for _, option := range options {
		option(transport)
	}
	return transport
}

func (m *MetricsTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	labels := prometheus.Labels{"target": m.target, "address": req.URL.Host, "method": req.Method}
	inFlight := outgoingAPIRequestsInFlight.With(labels)
	inFlight.Inc()
	defer inFlight.Dec()

	trace := m.tracePattern != nil && m.tracePattern.MatchString(req.URL.Path)
	if trace {
		Logc(req.Context()).WithFields(LogFields{
			"method": req.Method,
			"url":    req.URL.String(),
		}).Debug("Sending cluster API request.")
	}

	start := time.Now()
	res, err := m.base.RoundTrip(req)
	elapsed := time.Since(start)

	status := "error"
	if err == nil && res != nil {
		status = strconv.Itoa(res.StatusCode/100) + "xx"
	}
	outgoingAPIRequestDurationSeconds.With(prometheus.Labels{
		"status": status, "target": m.target, "address": req.URL.Host, "method": req.Method,
	}).Observe(elapsed.Seconds())

	if trace {
		fields := LogFields{"method": req.Method, "url": req.URL.String(), "duration": elapsed}
		if err != nil {
			Logc(req.Context()).WithFields(fields).WithError(err).Debug("Cluster API request failed.")
		} else {
			fields["status"] = res.StatusCode
			Logc(req.Context()).WithFields(fields).Debug("Received cluster API response.")
		}
	}

	return res, err
}
