package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics contains all compiler-level metrics (not schema-specific)
type Metrics struct {
	// Compilation metrics
	ClassesCompiled *prometheus.CounterVec
	CompileErrors   *prometheus.CounterVec
	CompileDuration *prometheus.HistogramVec
	RunStatus       *prometheus.GaugeVec

	// Generated-operation metrics
	WriteOperations *prometheus.CounterVec
	ReadFailures    *prometheus.CounterVec
}

// NewMetrics creates a new Metrics instance with all compiler metrics
func NewMetrics() *Metrics {
	return &Metrics{
		ClassesCompiled: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "arvida",
				Subsystem: "compile",
				Name:      "classes_total",
				Help:      "Total number of classes processed per run, by outcome",
			},
			[]string{"run", "status"},
		),

		CompileErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "arvida",
				Subsystem: "compile",
				Name:      "errors_total",
				Help:      "Total number of compile failures, by error class",
			},
			[]string{"run", "error_class"},
		),

		CompileDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "arvida",
				Subsystem: "compile",
				Name:      "duration_seconds",
				Help:      "Per-class compile duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"run"},
		),

		RunStatus: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "arvida",
				Subsystem: "compile",
				Name:      "run_status",
				Help:      "Run status (0=failed, 1=complete, 2=partial)",
			},
			[]string{"run"},
		),

		WriteOperations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "arvida",
				Subsystem: "mapping",
				Name:      "writes_total",
				Help:      "Total number of toRDF invocations, by class",
			},
			[]string{"class"},
		),

		ReadFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "arvida",
				Subsystem: "mapping",
				Name:      "read_failures_total",
				Help:      "Total number of failed fromRDF reads, by class",
			},
			[]string{"class"},
		),
	}
}

// RecordClassCompiled increments the per-run class counter
func (c *Metrics) RecordClassCompiled(run, status string) {
	c.ClassesCompiled.WithLabelValues(run, status).Inc()
}

// RecordCompileError increments the compile failure counter
func (c *Metrics) RecordCompileError(run, errorClass string) {
	c.CompileErrors.WithLabelValues(run, errorClass).Inc()
}

// RecordCompileDuration records one class's compile time
func (c *Metrics) RecordCompileDuration(run string, duration time.Duration) {
	c.CompileDuration.WithLabelValues(run).Observe(duration.Seconds())
}

// RecordRunStatus updates the run status gauge
func (c *Metrics) RecordRunStatus(run string, status int) {
	c.RunStatus.WithLabelValues(run).Set(float64(status))
}

// RecordWrite increments the toRDF invocation counter
func (c *Metrics) RecordWrite(class string) {
	c.WriteOperations.WithLabelValues(class).Inc()
}

// RecordReadFailure increments the failed read counter
func (c *Metrics) RecordReadFailure(class string) {
	c.ReadFailures.WithLabelValues(class).Inc()
}
