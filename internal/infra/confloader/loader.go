package confloader

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DefaultEnvPrefix is the default environment variable prefix.
const DefaultEnvPrefix = "LISTSET_"

// Source names a configuration layer.
type Source string

// Layers in increasing priority.
const (
	SourceFile     Source = "file"
	SourceEnv      Source = "env"
	SourceOverride Source = "override"
)

// Loader merges configuration layers into a koanf tree.
type Loader struct {
	k         *koanf.Koanf
	envPrefix string
	filePath  string
	overrides map[string]any
	sources   []Source
}

// Option configures a Loader.
type Option func(*Loader)

// WithEnvPrefix sets the environment variable prefix.
func WithEnvPrefix(prefix string) Option {
	return func(l *Loader) {
		l.envPrefix = prefix
	}
}

// WithConfigFile sets the YAML file to load. Empty means none.
func WithConfigFile(path string) Option {
	return func(l *Loader) {
		l.filePath = path
	}
}

// WithOverrides sets dotted-key values that take precedence over every
// other source.
func WithOverrides(values map[string]any) Option {
	return func(l *Loader) {
		l.overrides = values
	}
}

// NewLoader creates a loader with the LISTSET_ env prefix.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		k:         koanf.New("."),
		envPrefix: DefaultEnvPrefix,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load merges file, environment and overrides, in that order, and
// unmarshals the result into target. Fields of target that no layer sets
// keep their current values, so target should arrive holding defaults.
func (l *Loader) Load(target any) error {
	if err := l.LoadFile(l.filePath); err != nil {
		return err
	}
	if err := l.LoadEnv(); err != nil {
		return err
	}
	if err := l.LoadMap(l.overrides); err != nil {
		return err
	}
	if err := l.Unmarshal(target); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	return nil
}

// LoadFile merges a YAML file. An empty path is a no-op.
func (l *Loader) LoadFile(path string) error {
	if path == "" {
		return nil
	}
	if err := l.k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("load config file %s: %w", path, err)
	}
	l.sources = append(l.sources, SourceFile)
	return nil
}

// LoadEnv merges prefixed environment variables. The first underscore after
// the prefix separates the section from the key, so LISTSET_BENCH_SIZE is
// bench.size and LISTSET_LOG_LEVEL is log.level.
func (l *Loader) LoadEnv() error {
	transform := func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, l.envPrefix))
		if section, key, ok := strings.Cut(s, "_"); ok {
			return section + "." + key
		}
		return s
	}
	if err := l.k.Load(env.Provider(l.envPrefix, ".", transform), nil); err != nil {
		return fmt.Errorf("load env: %w", err)
	}
	if l.envSet() {
		l.sources = append(l.sources, SourceEnv)
	}
	return nil
}

func (l *Loader) envSet() bool {
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, l.envPrefix) {
			return true
		}
	}
	return false
}

// LoadMap merges dotted-key overrides. An empty map is a no-op.
func (l *Loader) LoadMap(data map[string]any) error {
	if len(data) == 0 {
		return nil
	}
	if err := l.k.Load(mapProvider(data), nil); err != nil {
		return fmt.Errorf("load overrides: %w", err)
	}
	l.sources = append(l.sources, SourceOverride)
	return nil
}

// Unmarshal decodes the merged tree into target using koanf tags.
func (l *Loader) Unmarshal(target any) error {
	return l.k.UnmarshalWithConf("", target, koanf.UnmarshalConf{Tag: "koanf"})
}

// Sources reports the layers that were merged, in merge order.
func (l *Loader) Sources() []Source {
	return append([]Source(nil), l.sources...)
}

// Settings returns every merged key with its value, flattened to dotted
// keys.
func (l *Loader) Settings() map[string]any {
	return l.k.All()
}
