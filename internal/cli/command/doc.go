// Package command provides CLI command definitions for listset-bench.
//
// This package defines all CLI commands using urfave/cli/v2:
//
//   - root.go: Root command, global flags, config and logger setup
//   - run.go: Timed benchmark rounds
//   - sanity.go: Small insert/remove scenario with list dumps
//   - shell.go: Interactive shell over one set
//   - version.go: Build information
//   - metrics.go: Optional Prometheus /metrics server
//
// Every command resolves its configuration the same way: defaults, then the
// YAML file named by --config, then LISTSET_* environment variables, then
// flags given on the command line.
package command
