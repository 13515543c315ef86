// Package metrics exposes Prometheus instruments for the HTTP surface
// and the EOD submission pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	OutcomeAccepted  = "accepted"
	OutcomeRejected  = "rejected"
	OutcomeConflict  = "conflict"
	OutcomeOverwrite = "overwrite"
)

type Metrics struct {
	registry *prometheus.Registry

	submissions     *prometheus.CounterVec
	analyticsQuery  *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// New builds the registry and all instruments.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: registry,
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "salespulse",
			Name:      "eod_submissions_total",
			Help:      "EOD submissions by role and outcome.",
		}, []string{"role", "outcome"}),
		analyticsQuery: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "salespulse",
			Name:      "analytics_queries_total",
			Help:      "Analytics queries by role and range token.",
		}, []string{"role", "range"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "salespulse",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method", "status"}),
	}

	registry.MustRegister(m.submissions, m.analyticsQuery, m.requestDuration)
	return m
}

// Registry returns the underlying registry for the /metrics handler.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) RecordSubmission(role, outcome string) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(role, outcome).Inc()
}

func (m *Metrics) RecordAnalyticsQuery(role, rangeToken string) {
	if m == nil {
		return
	}
	m.analyticsQuery.WithLabelValues(role, rangeToken).Inc()
}

func (m *Metrics) ObserveRequest(route, method, status string, seconds float64) {
	if m == nil {
		return
	}
	m.requestDuration.WithLabelValues(route, method, status).Observe(seconds)
}
