package metric

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "listset"

// Outcome label values.
const (
	OutcomeHit  = "hit"
	OutcomeMiss = "miss"
)

// Check result label values.
const (
	CheckPassed = "passed"
	CheckFailed = "failed"
)

// Registry holds all benchmark metrics.
type Registry struct {
	registry *prometheus.Registry

	// OpsTotal counts completed operations by set, op and outcome.
	OpsTotal *prometheus.CounterVec
	// Throughput is the last round's throughput in operations per microsecond.
	Throughput *prometheus.GaugeVec
	// SetSize is the key count observed at the last consistency check.
	SetSize *prometheus.GaugeVec
	// RoundDuration observes the wall time of each timed trial.
	RoundDuration *prometheus.HistogramVec
	// ValidationRetries counts optimistic validation failures.
	ValidationRetries *prometheus.CounterVec
	// ConsistencyChecks counts post-round conservation checks by result.
	ConsistencyChecks *prometheus.CounterVec
}

// NewRegistry creates a new metrics registry with Go runtime and process
// collectors registered.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
		OpsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "bench",
			Name:      "operations_total",
			Help:      "Completed set operations by variant, operation and outcome",
		}, []string{"set", "op", "outcome"}),
		Throughput: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "bench",
			Name:      "throughput_ops_per_microsecond",
			Help:      "Throughput of the most recent round",
		}, []string{"set"}),
		SetSize: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "bench",
			Name:      "set_keys",
			Help:      "Key count at the most recent consistency check",
		}, []string{"set"}),
		RoundDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "bench",
			Name:      "round_duration_seconds",
			Help:      "Wall time of each timed trial",
			Buckets:   prometheus.ExponentialBuckets(0.1, 2, 10),
		}, []string{"set"}),
		ValidationRetries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "optimistic",
			Name:      "validation_retries_total",
			Help:      "Optimistic validations that failed and were retried",
		}, []string{"set"}),
		ConsistencyChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "bench",
			Name:      "consistency_checks_total",
			Help:      "Post-round conservation checks by result",
		}, []string{"set", "result"}),
	}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.OpsTotal,
		r.Throughput,
		r.SetSize,
		r.RoundDuration,
		r.ValidationRetries,
		r.ConsistencyChecks,
	)

	return r
}

// Gatherer returns the underlying gatherer, for tests and push exporters.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// Handler returns an HTTP handler for the /metrics endpoint.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{
		Registry: r.registry,
	})
}
