package command

import (
	"github.com/urfave/cli/v2"

	"github.com/yndnr/listset-go/internal/bench/config"
	"github.com/yndnr/listset-go/internal/cli/repl"
	"github.com/yndnr/listset-go/pkg/listset"
)

// ShellCommand returns the interactive shell command.
func ShellCommand() *cli.Command {
	return &cli.Command{
		Name:    "shell",
		Aliases: []string{"repl"},
		Usage:   "Interactive shell over an empty set",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "set",
				Usage: "Set variant: hoh or olc",
				Value: config.DefaultSet,
			},
			&cli.StringFlag{
				Name:  "history",
				Usage: "History file (empty string disables persistence)",
				Value: repl.DefaultHistoryFile(),
			},
		},
		Action: runShell,
	}
}

func runShell(c *cli.Context) error {
	cfg, log, err := setup(c)
	if err != nil {
		return err
	}
	variant, err := listset.ParseVariant(cfg.Bench.Set)
	if err != nil {
		return err
	}
	set, err := listset.New[int64, string](variant)
	if err != nil {
		return err
	}
	defer set.Close()

	log.Debug("starting shell", "set", string(variant))
	r := repl.New(set,
		repl.WithIO(c.App.Reader, c.App.Writer),
		repl.WithHistory(repl.NewHistory(c.String("history"))))
	return r.Run()
}
