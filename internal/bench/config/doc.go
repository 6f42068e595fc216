// Package config defines the benchmark driver configuration.
//
//   - spec.go: Config struct definition
//   - default.go: Default configuration values
//   - verify.go: Validation
//
// Configuration is loaded via internal/infra/confloader from a YAML file,
// LISTSET_* environment variables and command-line flags.
package config
