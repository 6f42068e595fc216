package listset

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownVariant is returned when a set variant name is not recognised.
	ErrUnknownVariant = errors.New("listset: unknown set variant")

	// ErrInconsistent is the root cause of every consistency check failure.
	ErrInconsistent = errors.New("listset: chain is inconsistent")

	// ErrReclaimedNode is the panic value raised when a hand-over-hand
	// traversal locks a node that has already been unlinked and reclaimed.
	ErrReclaimedNode = errors.New("listset: traversal reached a reclaimed node")
)

// ConsistencyError describes a pair of adjacent keys that are not strictly
// ascending. It is raised as a panic value, never returned.
type ConsistencyError struct {
	// Position is the zero-based index of Next in the chain.
	Position int
	Prev     any
	Next     any
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("listset: bad key at position %d: %v followed by %v", e.Position, e.Prev, e.Next)
}

func (e *ConsistencyError) Unwrap() error {
	return ErrInconsistent
}
