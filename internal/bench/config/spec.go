package config

import "time"

// Config is the root configuration for listset-bench.
type Config struct {
	Bench   BenchSection   `koanf:"bench"`
	Metrics MetricsSection `koanf:"metrics"`
	Log     LogSection     `koanf:"log"`
	Output  OutputSection  `koanf:"output"`
}

// BenchSection configures the workload.
type BenchSection struct {
	// Set is the set variant under test ("hoh" or "olc").
	Set string `koanf:"set"`

	// Size is the initial number of keys. Keys are drawn from [1, 2*Size].
	Size int `koanf:"size"`

	// Rounds is the number of timed trials.
	Rounds int `koanf:"rounds"`

	// Workers is the number of concurrent goroutines issuing operations.
	// Zero means GOMAXPROCS.
	Workers int `koanf:"workers"`

	// Trial is the duration of each timed trial.
	Trial time.Duration `koanf:"trial"`

	// Samples is the number of pre-generated operations shared between
	// workers. Zero derives it from Trial and Workers.
	Samples int `koanf:"samples"`

	// Zipf is the Zipfian skew parameter. Zero selects keys uniformly.
	Zipf float64 `koanf:"zipf"`

	// Updates is the percentage of operations that are updates, split
	// evenly between inserts and removes.
	Updates int `koanf:"updates"`

	// Seed seeds the key permutation and Zipfian sampling. Zero picks a
	// random seed.
	Seed uint64 `koanf:"seed"`
}

// MetricsSection configures Prometheus exposition.
type MetricsSection struct {
	// Addr is the listen address for /metrics. Empty disables the server.
	Addr string `koanf:"addr"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// OutputSection configures result rendering.
type OutputSection struct {
	Format string `koanf:"format"`
}
