package confloader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

type testConfig struct {
	Bench struct {
		Set     string        `koanf:"set"`
		Size    int           `koanf:"size"`
		Trial   time.Duration `koanf:"trial"`
		Zipf    float64       `koanf:"zipf"`
		Workers int           `koanf:"workers"`
	} `koanf:"bench"`
	Metrics struct {
		Addr string `koanf:"addr"`
	} `koanf:"metrics"`
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestNewLoader(t *testing.T) {
	l := NewLoader()
	if l == nil {
		t.Fatal("NewLoader() returned nil")
	}
	if l.envPrefix != DefaultEnvPrefix {
		t.Errorf("envPrefix = %q, want %q", l.envPrefix, DefaultEnvPrefix)
	}
}

func TestNewLoader_WithOptions(t *testing.T) {
	l := NewLoader(
		WithEnvPrefix("TEST_"),
		WithConfigFile("/path/to/config.yaml"),
		WithOverrides(map[string]any{"bench.size": 10}),
	)

	if l.envPrefix != "TEST_" {
		t.Errorf("envPrefix = %q, want %q", l.envPrefix, "TEST_")
	}
	if l.filePath != "/path/to/config.yaml" {
		t.Errorf("filePath = %q, want %q", l.filePath, "/path/to/config.yaml")
	}
	if len(l.overrides) != 1 {
		t.Errorf("overrides = %v, want one entry", l.overrides)
	}
}

func load(t *testing.T, l *Loader) testConfig {
	t.Helper()
	var cfg testConfig
	if err := l.Unmarshal(&cfg); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	return cfg
}

func TestLoader_LoadFile(t *testing.T) {
	path := writeConfig(t, `
bench:
  set: olc
  size: 1000
  trial: 2s
metrics:
  addr: "127.0.0.1:9100"
`)

	l := NewLoader()
	if err := l.LoadFile(path); err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	cfg := load(t, l)
	if cfg.Bench.Set != "olc" {
		t.Errorf("bench.set = %q, want %q", cfg.Bench.Set, "olc")
	}
	if cfg.Bench.Size != 1000 {
		t.Errorf("bench.size = %d, want 1000", cfg.Bench.Size)
	}
	if cfg.Metrics.Addr != "127.0.0.1:9100" {
		t.Errorf("metrics.addr = %q, want %q", cfg.Metrics.Addr, "127.0.0.1:9100")
	}
	if got := l.Sources(); len(got) != 1 || got[0] != SourceFile {
		t.Errorf("Sources() = %v, want [file]", got)
	}
}

func TestLoader_LoadFile_NotFound(t *testing.T) {
	l := NewLoader()
	if err := l.LoadFile("/nonexistent/config.yaml"); err == nil {
		t.Error("LoadFile() should return error for nonexistent file")
	}
}

func TestLoader_LoadFile_Empty(t *testing.T) {
	l := NewLoader()
	if err := l.LoadFile(""); err != nil {
		t.Errorf("LoadFile(\"\") should not error, got: %v", err)
	}
	if got := l.Sources(); len(got) != 0 {
		t.Errorf("Sources() = %v, want none", got)
	}
}

func TestLoader_LoadEnv(t *testing.T) {
	t.Setenv("LISTSET_BENCH_SET", "hoh")
	t.Setenv("LISTSET_BENCH_WORKERS", "4")

	l := NewLoader()
	if err := l.LoadEnv(); err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}

	cfg := load(t, l)
	if cfg.Bench.Set != "hoh" {
		t.Errorf("bench.set = %q, want %q", cfg.Bench.Set, "hoh")
	}
	if cfg.Bench.Workers != 4 {
		t.Errorf("bench.workers = %d, want 4", cfg.Bench.Workers)
	}
	if got := l.Sources(); len(got) != 1 || got[0] != SourceEnv {
		t.Errorf("Sources() = %v, want [env]", got)
	}
}

func TestLoader_LoadEnv_UnderscoreInKey(t *testing.T) {
	t.Setenv("LISTSET_BENCH_MAX_KEYS", "12")

	l := NewLoader()
	if err := l.LoadEnv(); err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}
	if got := l.Settings()["bench.max_keys"]; got != "12" {
		t.Errorf("bench.max_keys = %v, want \"12\"", got)
	}
}

func TestLoader_LoadEnv_CustomPrefix(t *testing.T) {
	t.Setenv("MYBENCH_BENCH_ZIPF", "0.99")

	l := NewLoader(WithEnvPrefix("MYBENCH_"))
	if err := l.LoadEnv(); err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}

	if cfg := load(t, l); cfg.Bench.Zipf != 0.99 {
		t.Errorf("bench.zipf = %v, want 0.99", cfg.Bench.Zipf)
	}
}

func TestLoader_LoadMap(t *testing.T) {
	l := NewLoader()
	if err := l.LoadMap(map[string]any{
		"bench.size": 64,
		"verbose":    true,
	}); err != nil {
		t.Fatalf("LoadMap() error = %v", err)
	}

	settings := l.Settings()
	if settings["bench.size"] != 64 {
		t.Errorf("bench.size = %v, want 64", settings["bench.size"])
	}
	if settings["verbose"] != true {
		t.Errorf("verbose = %v, want true", settings["verbose"])
	}
}

func TestLoader_LoadMap_Empty(t *testing.T) {
	l := NewLoader()
	if err := l.LoadMap(nil); err != nil {
		t.Fatalf("LoadMap(nil) error = %v", err)
	}
	if got := l.Sources(); len(got) != 0 {
		t.Errorf("Sources() = %v, want none", got)
	}
}

func TestLoader_Load_Priority(t *testing.T) {
	path := writeConfig(t, `
bench:
  set: hoh
  size: 100
  workers: 2
`)
	t.Setenv("LISTSET_BENCH_SIZE", "200")
	t.Setenv("LISTSET_BENCH_WORKERS", "3")

	l := NewLoader(
		WithConfigFile(path),
		WithOverrides(map[string]any{"bench.workers": 8}),
	)

	var cfg testConfig
	cfg.Bench.Zipf = 0.5 // default, untouched by any source
	if err := l.Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Bench.Set != "hoh" {
		t.Errorf("Set = %q, want %q (from file)", cfg.Bench.Set, "hoh")
	}
	if cfg.Bench.Size != 200 {
		t.Errorf("Size = %d, want 200 (env should override file)", cfg.Bench.Size)
	}
	if cfg.Bench.Workers != 8 {
		t.Errorf("Workers = %d, want 8 (overrides should win)", cfg.Bench.Workers)
	}
	if cfg.Bench.Zipf != 0.5 {
		t.Errorf("Zipf = %v, want 0.5 (default kept)", cfg.Bench.Zipf)
	}
}

func TestLoader_Unmarshal_Duration(t *testing.T) {
	path := writeConfig(t, `
bench:
  trial: 1500ms
`)

	l := NewLoader(WithConfigFile(path))

	var cfg testConfig
	if err := l.Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Bench.Trial != 1500*time.Millisecond {
		t.Errorf("Trial = %v, want 1.5s", cfg.Bench.Trial)
	}
}

func TestLoader_Sources_Order(t *testing.T) {
	path := writeConfig(t, "bench:\n  size: 5\n")
	t.Setenv("LISTSET_BENCH_ROUNDS", "2")

	l := NewLoader(
		WithConfigFile(path),
		WithOverrides(map[string]any{"bench.set": "hoh"}),
	)
	var cfg testConfig
	if err := l.Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := []Source{SourceFile, SourceEnv, SourceOverride}
	got := l.Sources()
	if len(got) != len(want) {
		t.Fatalf("Sources() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Sources()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	got[0] = "mutated"
	if l.Sources()[0] != SourceFile {
		t.Error("Sources() exposed internal slice")
	}
}

func TestMapProvider_ReadBytes(t *testing.T) {
	_, err := mapProvider{}.ReadBytes()
	if !errors.Is(err, ErrReadBytesNotSupported) {
		t.Errorf("ReadBytes() error = %v, want ErrReadBytesNotSupported", err)
	}
}
