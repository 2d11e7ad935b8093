package footballdb

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "footballdb"

// Metrics holds the Prometheus metrics of a load run on a private registry.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	rowsWritten      *prometheus.CounterVec
	coercionFailures *prometheus.CounterVec
	runDuration      prometheus.Gauge
	lastSuccess      prometheus.Gauge
}

// NewMetrics creates the run metrics on a fresh registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	auto := promauto.With(registry)

	return &Metrics{
		registry: registry,
		rowsWritten: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "rows_written_total",
			Help:      "Rows written to the database by table",
		}, []string{"table"}),
		coercionFailures: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "coercion_failures_total",
			Help:      "Column coercion failures by table",
		}, []string{"table"}),
		runDuration: auto.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of the last load run",
		}),
		lastSuccess: auto.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last successful load run",
		}),
	}
}

// Registry returns the registry holding the run metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// RecordRowsWritten adds n rows written to table.
func (m *Metrics) RecordRowsWritten(table string, n int64) {
	if m == nil {
		return
	}
	m.rowsWritten.WithLabelValues(table).Add(float64(n))
}

// RecordCoercionFailure counts a failed coercion of table.
func (m *Metrics) RecordCoercionFailure(table string) {
	if m == nil {
		return
	}
	m.coercionFailures.WithLabelValues(table).Inc()
}

// RecordRun stores the run duration and, on success, the completion time.
func (m *Metrics) RecordRun(start time.Time, succeeded bool) {
	if m == nil {
		return
	}
	now := time.Now()
	m.runDuration.Set(now.Sub(start).Seconds())
	if succeeded {
		m.lastSuccess.Set(float64(now.Unix()))
	}
}

// WriteFile writes the metrics in Prometheus text format to path, suitable
// for the node_exporter textfile collector.
func (m *Metrics) WriteFile(path string) error {
	if m == nil || path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, m.registry)
}
