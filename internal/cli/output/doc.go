// Package output renders benchmark results for listset-bench.
//
//   - formatter.go: Formatter interface and factory
//   - table.go: Table rendering with wide mode support
//   - json.go: JSON output formatting
//   - yaml.go: YAML output formatting
//
// Table output is meant for terminals. JSON and YAML are for scripts that
// collect results across runs.
package output
