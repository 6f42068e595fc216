package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/yndnr/listset-go/pkg/listset"
)

// Prompt is printed before every line.
const Prompt = "listset> "

// ErrUsage is returned for malformed commands.
var ErrUsage = errors.New("usage")

var commandHelp = map[string]string{
	"insert":  "insert <key> [value]  add key; reports exists if present",
	"remove":  "remove <key>          delete key",
	"find":    "find <key>            show the value stored for key",
	"print":   "print                 list every key in order",
	"count":   "count                 count keys and check ordering",
	"history": "history               show recent commands",
	"help":    "help                  show this help",
	"exit":    "exit                  leave the shell",
	"quit":    "quit                  leave the shell",
}

// REPL represents the Read-Eval-Print Loop.
type REPL struct {
	input     io.Reader
	output    io.Writer
	set       listset.Set[int64, string]
	completer *Completer
	history   *History
}

// Option configures a REPL.
type Option func(*REPL)

// WithIO sets the input and output streams.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(r *REPL) {
		r.input = in
		r.output = out
	}
}

// WithHistory sets the command history.
func WithHistory(h *History) Option {
	return func(r *REPL) { r.history = h }
}

// New creates a REPL over set. History is in memory unless WithHistory is
// given.
func New(set listset.Set[int64, string], opts ...Option) *REPL {
	r := &REPL{
		input:     os.Stdin,
		output:    os.Stdout,
		set:       set,
		completer: NewCompleter(),
		history:   NewHistory(""),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run starts the REPL loop. It returns at EOF or on exit, saving history.
func (r *REPL) Run() error {
	if err := r.history.Load(); err != nil {
		fmt.Fprintf(r.output, "Error: load history: %v\n", err)
	}
	defer func() {
		if err := r.history.Save(); err != nil {
			fmt.Fprintf(r.output, "Error: save history: %v\n", err)
		}
	}()

	reader := bufio.NewReader(r.input)
	for {
		fmt.Fprint(r.output, Prompt)

		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		eof := errors.Is(err, io.EOF)

		line = strings.TrimSpace(line)
		if line == "" {
			if eof {
				fmt.Fprintln(r.output)
				return nil
			}
			continue
		}
		r.history.Add(line)

		if line == "exit" || line == "quit" {
			return nil
		}
		if err := r.execute(line); err != nil {
			fmt.Fprintf(r.output, "Error: %v\n", err)
		}
		if eof {
			return nil
		}
	}
}

func (r *REPL) execute(line string) error {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "insert":
		if len(args) < 1 {
			return usage(cmd)
		}
		key, err := parseKey(args[0])
		if err != nil {
			return err
		}
		if r.set.Insert(key, strings.Join(args[1:], " ")) {
			fmt.Fprintln(r.output, "inserted")
		} else {
			fmt.Fprintln(r.output, "exists")
		}
	case "remove", "find":
		if len(args) != 1 {
			return usage(cmd)
		}
		key, err := parseKey(args[0])
		if err != nil {
			return err
		}
		if cmd == "remove" {
			if r.set.Remove(key) {
				fmt.Fprintln(r.output, "removed")
			} else {
				fmt.Fprintln(r.output, "not found")
			}
			return nil
		}
		if v, ok := r.set.Find(key); ok {
			fmt.Fprintf(r.output, "%d: %q\n", key, v)
		} else {
			fmt.Fprintln(r.output, "not found")
		}
	case "print":
		return r.set.Print(r.output)
	case "count":
		fmt.Fprintln(r.output, r.set.CountKeysAndCheckConsistency())
	case "history":
		for i := min(r.history.Len(), 20) - 1; i >= 0; i-- {
			fmt.Fprintln(r.output, r.history.Get(i))
		}
	case "help":
		for _, name := range r.completer.Commands() {
			fmt.Fprintln(r.output, commandHelp[name])
		}
	default:
		if s := r.completer.Complete(cmd); len(s) > 0 {
			return fmt.Errorf("unknown command %q (did you mean %s?)", cmd, strings.Join(s, ", "))
		}
		return fmt.Errorf("unknown command %q (try help)", cmd)
	}
	return nil
}

func usage(cmd string) error {
	return fmt.Errorf("%w: %s", ErrUsage, commandHelp[cmd])
}

func parseKey(s string) (int64, error) {
	k, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad key %q: must be an integer", s)
	}
	return k, nil
}
