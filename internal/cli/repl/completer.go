package repl

import (
	"slices"
	"strings"
)

// Completer provides command completion for the REPL.
type Completer struct {
	commands []string
}

// NewCompleter creates a Completer over the shell's commands.
func NewCompleter() *Completer {
	cmds := make([]string, 0, len(commandHelp))
	for name := range commandHelp {
		cmds = append(cmds, name)
	}
	slices.Sort(cmds)
	return &Completer{commands: cmds}
}

// Complete returns the commands starting with prefix, in sorted order.
func (c *Completer) Complete(prefix string) []string {
	var suggestions []string
	for _, cmd := range c.commands {
		if strings.HasPrefix(cmd, prefix) {
			suggestions = append(suggestions, cmd)
		}
	}
	return suggestions
}

// Commands returns every known command.
func (c *Completer) Commands() []string {
	return slices.Clone(c.commands)
}
