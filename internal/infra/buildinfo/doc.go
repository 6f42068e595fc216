// Package buildinfo exposes build-time information injected via ldflags:
//
//   - Version: Semantic version (e.g., "1.0.0")
//   - Commit: Git commit hash
//   - BuildTime: Build timestamp
//
// GoVersion is taken from the runtime.
//
// Usage:
//
//	go build -ldflags "-X github.com/yndnr/listset-go/internal/infra/buildinfo.Version=v1.0.0"
package buildinfo
