package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/yndnr/listset-go/pkg/listset"
)

// Verification errors.
var (
	ErrInvalidSize    = errors.New("bench.size must be at least 1")
	ErrInvalidRounds  = errors.New("bench.rounds must be at least 1")
	ErrInvalidWorkers = errors.New("bench.workers must not be negative")
	ErrInvalidTrial   = errors.New("bench.trial must be positive")
	ErrInvalidSamples = errors.New("bench.samples must cover every worker")
	ErrInvalidZipf    = errors.New("bench.zipf must be 0 or a positive value other than 1")
	ErrInvalidUpdates = errors.New("bench.updates must be between 0 and 100")
	ErrInvalidFormat  = errors.New("output.format must be table, json or yaml")
)

// Verify validates the configuration. workers is the resolved worker count.
func Verify(cfg *Config, workers int) error {
	if err := verifyBench(&cfg.Bench, workers); err != nil {
		return err
	}
	switch cfg.Output.Format {
	case "table", "json", "yaml":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, cfg.Output.Format)
	}
	return nil
}

func verifyBench(b *BenchSection, workers int) error {
	if _, err := listset.ParseVariant(b.Set); err != nil {
		return fmt.Errorf("bench.set: %w", err)
	}
	if b.Size < 1 {
		return ErrInvalidSize
	}
	if b.Rounds < 1 {
		return ErrInvalidRounds
	}
	if b.Workers < 0 {
		return ErrInvalidWorkers
	}
	if b.Trial <= 0 {
		return ErrInvalidTrial
	}
	if b.Samples < 0 || (b.Samples > 0 && b.Samples < workers) {
		return ErrInvalidSamples
	}
	if b.Zipf < 0 || b.Zipf == 1 || math.IsNaN(b.Zipf) || math.IsInf(b.Zipf, 0) {
		return ErrInvalidZipf
	}
	if b.Updates < 0 || b.Updates > 100 {
		return ErrInvalidUpdates
	}
	return nil
}
