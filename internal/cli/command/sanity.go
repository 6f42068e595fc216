package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/listset-go/internal/bench"
	"github.com/yndnr/listset-go/internal/bench/config"
)

// SanityCommand returns the sanity command.
func SanityCommand() *cli.Command {
	return &cli.Command{
		Name:    "sanity",
		Aliases: []string{"check"},
		Usage:   "Insert and remove a few keys, printing the set after each step",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "set",
				Usage: "Set variant: hoh or olc",
				Value: config.DefaultSet,
			},
		},
		Action: runSanity,
	}
}

func runSanity(c *cli.Context) error {
	cfg, log, err := setup(c)
	if err != nil {
		return err
	}

	runner, err := bench.New(cfg, bench.WithLogger(log), bench.WithOutput(c.App.Writer))
	if err != nil {
		return err
	}
	if err := runner.Sanity(c.Context); err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, "sanity checks passed")
	return nil
}
