// Package metrics holds the Prometheus collectors shared by the API server,
// the workers and the CLI.
package metrics

import (
	"context"
	"evdemand/pkg/domain"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "evdemand"

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// Search outcomes recorded in StationSearches.
const (
	SearchFound   = "found"
	SearchEmpty   = "empty"
	SearchFailure = "failure"
)

type Metrics struct {
	Events           *prometheus.CounterVec // labels: type
	Analyses         *prometheus.CounterVec // labels: priority
	StationSearches  *prometheus.CounterVec // labels: outcome
	AnalysisDuration prometheus.Histogram
}

func newMetrics() *Metrics {
	return &Metrics{
		Events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "domain_events_total",
			Help:      "Domain events published, by event type.",
		}, []string{"type"}),
		Analyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_total",
			Help:      "Demand analyses calculated, by resulting priority.",
		}, []string{"priority"}),
		StationSearches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "station_searches_total",
			Help:      "Station lookups by outcome.",
		}, []string{"outcome"}),
		AnalysisDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "analysis_duration_seconds",
			Help:      "Time spent computing one demand analysis, including lookups.",
			Buckets:   DefaultBuckets,
		}),
	}
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := newMetrics()
	for _, c := range []prometheus.Collector{m.Events, m.Analyses, m.StationSearches, m.AnalysisDuration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// NewForTesting creates unregistered collectors.
func NewForTesting() *Metrics {
	return newMetrics()
}

// ObserveAnalysis records the time elapsed since start.
func (m *Metrics) ObserveAnalysis(start time.Time) {
	m.AnalysisDuration.Observe(time.Since(start).Seconds())
}

// Handle counts e. It is meant to be subscribed to every event on the bus.
func (m *Metrics) Handle(_ context.Context, e domain.Event) error {
	m.Events.WithLabelValues(e.EventType()).Inc()

	switch ev := e.(type) {
	case domain.DemandAnalysisCalculated:
		m.Analyses.WithLabelValues(string(ev.DemandPriority)).Inc()
	case domain.StationSearchPerformed:
		outcome := SearchFound
		if ev.StationsFound == 0 {
			outcome = SearchEmpty
		}
		m.StationSearches.WithLabelValues(outcome).Inc()
	case domain.StationSearchFailed:
		m.StationSearches.WithLabelValues(SearchFailure).Inc()
	}

	return nil
}
