package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for the per-task counter
const (
	OutcomeCompleted = "completed"
	OutcomeFailed    = "failed"
	OutcomeSkipped   = "skipped"
)

// Metrics bundles Prometheus collectors for the batch runner. All
// observation helpers are nil-safe so callers can run without metrics.
type Metrics struct {
	Registry        *prometheus.Registry
	TasksTotal      *prometheus.CounterVec
	FetchDuration   prometheus.Histogram
	InspectDuration prometheus.Histogram
	RunsTotal       prometheus.Counter
}

// NewMetrics constructs and registers all collectors on a dedicated registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	tasks := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "doccounter_tasks_total",
			Help: "Tasks handled per batch run, by outcome.",
		},
		[]string{"outcome"},
	)
	fetchDuration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "doccounter_fetch_duration_seconds",
			Help:    "Document download latency.",
			Buckets: prometheus.DefBuckets,
		},
	)
	inspectDuration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "doccounter_inspect_duration_seconds",
			Help:    "Page count inspection latency.",
			Buckets: prometheus.DefBuckets,
		},
	)
	runs := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "doccounter_runs_total",
			Help: "Number of batch runs started.",
		},
	)

	registry.MustRegister(tasks, fetchDuration, inspectDuration, runs)

	return &Metrics{
		Registry:        registry,
		TasksTotal:      tasks,
		FetchDuration:   fetchDuration,
		InspectDuration: inspectDuration,
		RunsTotal:       runs,
	}
}

// CountTask records the outcome of one task
func (m *Metrics) CountTask(outcome string) {
	if m == nil {
		return
	}
	m.TasksTotal.WithLabelValues(outcome).Inc()
}

// ObserveFetch records the duration of one download
func (m *Metrics) ObserveFetch(d time.Duration) {
	if m == nil {
		return
	}
	m.FetchDuration.Observe(d.Seconds())
}

// ObserveInspect records the duration of one inspection
func (m *Metrics) ObserveInspect(d time.Duration) {
	if m == nil {
		return
	}
	m.InspectDuration.Observe(d.Seconds())
}

// CountRun records the start of a batch run
func (m *Metrics) CountRun() {
	if m == nil {
		return
	}
	m.RunsTotal.Inc()
}
