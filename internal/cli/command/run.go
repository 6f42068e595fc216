package command

import (
	"context"
	"errors"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/listset-go/internal/bench"
	"github.com/yndnr/listset-go/internal/bench/config"
	"github.com/yndnr/listset-go/internal/infra/buildinfo"
	"github.com/yndnr/listset-go/internal/infra/shutdown"
	"github.com/yndnr/listset-go/internal/telemetry/metric"
)

// RunCommand returns the run command.
func RunCommand() *cli.Command {
	return &cli.Command{
		Name:    "run",
		Aliases: []string{"bench"},
		Usage:   "Run timed benchmark rounds",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "set",
				Usage: "Set variant: hoh (hand-over-hand) or olc (optimistic lock coupling)",
				Value: config.DefaultSet,
			},
			&cli.IntFlag{
				Name:    "size",
				Aliases: []string{"n"},
				Usage:   "Initial set size; keys are drawn from [1, 2n]",
				Value:   config.DefaultSize,
			},
			&cli.IntFlag{
				Name:    "rounds",
				Aliases: []string{"r"},
				Usage:   "Number of timed rounds",
				Value:   config.DefaultRounds,
			},
			&cli.IntFlag{
				Name:    "workers",
				Aliases: []string{"p"},
				Usage:   "Concurrent workers (0 = GOMAXPROCS)",
			},
			&cli.DurationFlag{
				Name:    "trial",
				Aliases: []string{"t"},
				Usage:   "Duration of each round",
				Value:   config.DefaultTrial,
			},
			&cli.IntFlag{
				Name:    "samples",
				Aliases: []string{"m"},
				Usage:   "Pre-generated operations (0 = derived from trial and workers)",
			},
			&cli.Float64Flag{
				Name:    "zipf",
				Aliases: []string{"z"},
				Usage:   "Zipfian skew (0 = uniform)",
			},
			&cli.IntFlag{
				Name:    "updates",
				Aliases: []string{"u"},
				Usage:   "Percent of operations that are updates",
				Value:   config.DefaultUpdates,
			},
			&cli.Uint64Flag{
				Name:  "seed",
				Usage: "Workload seed (0 = random)",
			},
			&cli.StringFlag{
				Name:  "metrics-addr",
				Usage: "Serve Prometheus metrics on this address (e.g., :9100)",
			},
		},
		Action: runBench,
	}
}

func runBench(c *cli.Context) error {
	cfg, log, err := setup(c)
	if err != nil {
		return err
	}

	reg := metric.NewRegistry()
	runner, err := bench.New(cfg, bench.WithLogger(log), bench.WithMetrics(reg))
	if err != nil {
		return err
	}

	sd := shutdown.NewHandler(shutdownTimeout)
	defer func() {
		if err := sd.Shutdown(); err != nil {
			log.Error("shutdown error", "error", err)
		}
	}()

	if cfg.Metrics.Addr != "" {
		srv, addr, err := startMetricsServer(cfg.Metrics.Addr, reg, log)
		if err != nil {
			return err
		}
		log.Info("metrics server listening", "addr", addr.String())
		sd.OnShutdown(func(ctx context.Context) error {
			log.Info("shutting down metrics server")
			return srv.Shutdown(ctx)
		})
	}

	ctx, stop := sd.Watch(c.Context)
	defer stop()

	log.Info("starting listset-bench",
		"version", buildinfo.Version,
		"set", string(runner.Variant()),
		"workers", runner.Workers())

	results, runErr := runner.Run(ctx)
	if len(results) > 0 {
		if err := render(c, cfg.Output.Format, results); err != nil {
			return err
		}
	}
	if errors.Is(runErr, context.Canceled) {
		log.Warn("interrupted", "rounds_completed", len(results))
		return nil
	}
	return runErr
}
