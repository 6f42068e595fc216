package command

import (
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/listset-go/internal/bench/config"
	"github.com/yndnr/listset-go/internal/cli/output"
	"github.com/yndnr/listset-go/internal/infra/buildinfo"
	"github.com/yndnr/listset-go/internal/infra/confloader"
	"github.com/yndnr/listset-go/internal/telemetry/logger"
)

// shutdownTimeout bounds the time shutdown hooks may take.
const shutdownTimeout = 5 * time.Second

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "listset-bench",
		Usage:   "Benchmark concurrent sorted linked-list sets",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			RunCommand(),
			SanityCommand(),
			ShellCommand(),
			VersionCommand(),
		},
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to a YAML configuration file",
			EnvVars: []string{"LISTSET_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: table, json, yaml",
			Value:   config.DefaultOutputFormat,
		},
		&cli.BoolFlag{
			Name:    "wide",
			Aliases: []string{"w"},
			Usage:   "Show wide output (more columns)",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level: debug, info, warn, error",
			Value: config.DefaultLogLevel,
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "Log format: text, json",
			Value: config.DefaultLogFormat,
		},
	}
}

// GlobalFlags defines flags available to all commands.
type GlobalFlags struct {
	Config string
	Output string // table, json, yaml
	Wide   bool
}

// ParseGlobalFlags extracts global flags from context.
func ParseGlobalFlags(c *cli.Context) *GlobalFlags {
	return &GlobalFlags{
		Config: c.String("config"),
		Output: c.String("output"),
		Wide:   c.Bool("wide"),
	}
}

// overrideKeys maps flag names to configuration keys.
var overrideKeys = map[string]string{
	"output":       "output.format",
	"log-level":    "log.level",
	"log-format":   "log.format",
	"set":          "bench.set",
	"size":         "bench.size",
	"rounds":       "bench.rounds",
	"workers":      "bench.workers",
	"trial":        "bench.trial",
	"samples":      "bench.samples",
	"zipf":         "bench.zipf",
	"updates":      "bench.updates",
	"seed":         "bench.seed",
	"metrics-addr": "metrics.addr",
}

// flagOverrides collects explicitly set flags as configuration overrides.
func flagOverrides(c *cli.Context) map[string]any {
	overrides := make(map[string]any)
	for name, key := range overrideKeys {
		if !c.IsSet(name) {
			continue
		}
		overrides[key] = c.Value(name)
	}
	return overrides
}

// loadConfig loads configuration from defaults, file, environment and
// overrides, in increasing priority.
// It also reports which layers contributed.
func loadConfig(configFile string, overrides map[string]any) (*config.Config, []confloader.Source, error) {
	cfg := config.Default()

	l := confloader.NewLoader(
		confloader.WithConfigFile(configFile),
		confloader.WithOverrides(overrides),
	)
	if err := l.Load(cfg); err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, l.Sources(), nil
}

// setup loads the configuration and installs the default logger.
func setup(c *cli.Context) (*config.Config, logger.Logger, error) {
	cfg, sources, err := loadConfig(c.String("config"), flagOverrides(c))
	if err != nil {
		return nil, nil, err
	}
	if _, err := output.ParseFormat(cfg.Output.Format); err != nil {
		return nil, nil, err
	}

	w := c.App.ErrWriter
	if w == nil {
		w = os.Stderr
	}
	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: w,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}
	logger.SetDefault(log)
	log.Debug("config loaded", "sources", sources)
	return cfg, log, nil
}

// render writes data to the app's writer in the configured format.
func render(c *cli.Context, format string, data any) error {
	w := c.App.Writer
	if w == nil {
		w = os.Stdout
	}
	return output.NewFormatter(output.Format(format), c.Bool("wide")).Format(w, data)
}
