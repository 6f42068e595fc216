// Package logger provides structured logging for the benchmark driver.
//
// This package wraps log/slog:
//
//   - logger.go: Logger interface, configuration and the process default
//   - context.go: Context-aware logging with run and round IDs
//
// Features:
//
//   - JSON and text output formats
//   - Log level filtering, adjustable at runtime
//   - Durations rendered as human-readable strings
//   - Context propagation for correlating a benchmark run
//
// The set implementations in pkg/listset never log.
package logger
