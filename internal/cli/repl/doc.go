// Package repl provides an interactive shell over a single listset set.
//
//   - repl.go: Main loop and command dispatch
//   - completer.go: Command name completion and suggestions
//   - history.go: Command history persistence
//
// The shell is meant for poking at a variant by hand:
//
//	listset> insert 5 five
//	inserted
//	listset> print
//	5
//
// All commands run on the shell goroutine, so print and count are safe.
package repl
