// Package metric provides Prometheus metrics for the benchmark driver.
//
// This package implements metrics collection and exposition:
//
//   - prometheus.go: Registry of benchmark metrics and HTTP handler
//
// Metrics include:
//
//   - Operation counters by set variant, operation and outcome
//   - Throughput and set size gauges
//   - Round duration histograms
//   - Optimistic validation retries and consistency check results
//
// Metrics are exposed at /metrics when a metrics address is configured.
package metric
