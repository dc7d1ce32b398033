package linter

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/jslint-dev/jslint/diagnostic"
)

// Metrics wraps three Prometheus collectors a Runner optionally updates:
// files linted, diagnostics by severity, and lint duration. A nil *Metrics
// (the default) disables all recording with zero overhead on the hot
// per-rule path, grounded on foxcpp-maddy's pervasive
// github.com/prometheus/client_golang use (internal/check, internal/smtpconn).
type Metrics struct {
	filesLinted       prometheus.Counter
	diagnosticsBySev  *prometheus.CounterVec
	lintDuration      prometheus.Histogram
}

// NewMetrics registers the three collectors on reg and returns a Metrics
// ready to pass to Runner.Metrics. Pass a nil *prometheus.Registry to get
// a nil *Metrics (metrics disabled) without registering anything.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		return nil
	}
	m := &Metrics{
		filesLinted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "jslint_files_linted_total",
			Help: "Total number of files linted.",
		}),
		diagnosticsBySev: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "jslint_diagnostics_total",
			Help: "Total diagnostics emitted, by severity.",
		}, []string{"severity"}),
		lintDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name: "jslint_lint_duration_seconds",
			Help: "Time spent linting a single file.",
		}),
	}
	reg.MustRegister(m.filesLinted, m.diagnosticsBySev, m.lintDuration)
	return m
}

// RecordFile updates the collectors for one completed file's diagnostics.
func (m *Metrics) RecordFile(diags []diagnostic.Diagnostic) {
	if m == nil {
		return
	}
	m.filesLinted.Inc()
	for _, d := range diags {
		m.diagnosticsBySev.WithLabelValues(d.Severity.String()).Inc()
	}
}

// ObserveDuration records how long one file's lint pass took, in seconds.
func (m *Metrics) ObserveDuration(seconds float64) {
	if m == nil {
		return
	}
	m.lintDuration.Observe(seconds)
}
