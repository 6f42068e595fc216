package config

import "time"

// Default configuration values.
const (
	DefaultSet     = "olc"
	DefaultSize    = 100
	DefaultRounds  = 1
	DefaultTrial   = time.Second
	DefaultUpdates = 20

	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"

	DefaultOutputFormat = "table"

	// SamplesPerWorkerSecond matches the sample budget of the reference
	// benchmark: 5M operations per worker per trial second, for at most
	// MaxSampledWorkers workers.
	SamplesPerWorkerSecond = 5_000_000
	MaxSampledWorkers      = 100
)

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Bench: BenchSection{
			Set:     DefaultSet,
			Size:    DefaultSize,
			Rounds:  DefaultRounds,
			Trial:   DefaultTrial,
			Updates: DefaultUpdates,
		},
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Output: OutputSection{
			Format: DefaultOutputFormat,
		},
	}
}

// EffectiveSamples returns Samples, or the derived sample count when it is
// zero.
func (b *BenchSection) EffectiveSamples(workers int) int {
	if b.Samples > 0 {
		return b.Samples
	}
	return int(b.Trial.Seconds() * SamplesPerWorkerSecond * float64(min(workers, MaxSampledWorkers)))
}
