package listset

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/constraints"
)

// Set is a concurrent ordered key-value set.
type Set[K constraints.Ordered, V any] interface {
	// Insert adds key with value. It returns false, leaving the existing
	// value untouched, if key is already present.
	Insert(key K, value V) bool

	// Remove deletes key and reports whether it was present.
	Remove(key K) bool

	// Find returns the value stored for key.
	Find(key K) (V, bool)

	// CountKeysAndCheckConsistency returns the number of keys in the set.
	// It panics with a *ConsistencyError if the keys are not strictly
	// ascending. It must not run concurrently with any mutation.
	CountKeysAndCheckConsistency() int

	// Print writes the keys in order, comma separated, followed by a
	// newline. It must not run concurrently with any mutation.
	Print(w io.Writer) error

	// Close reclaims every node, sentinels included. The set must not be
	// used afterwards.
	Close()
}

// Variant names a synchronization discipline.
type Variant string

const (
	VariantHandOverHand Variant = "hoh"
	VariantOptimistic   Variant = "olc"
)

// Variants returns every supported variant.
func Variants() []Variant {
	return []Variant{VariantHandOverHand, VariantOptimistic}
}

// ParseVariant parses a variant name. Long names are accepted as aliases.
func ParseVariant(name string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "hoh", "hand-over-hand", "handoverhand":
		return VariantHandOverHand, nil
	case "olc", "optimistic", "optimistic-lock-coupling":
		return VariantOptimistic, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownVariant, name)
	}
}

// New creates an empty set of the given variant.
func New[K constraints.Ordered, V any](v Variant) (Set[K, V], error) {
	switch v {
	case VariantHandOverHand:
		return NewHandOverHand[K, V](), nil
	case VariantOptimistic:
		return NewOptimistic[K, V](), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, string(v))
	}
}

// RetryCounter is implemented by sets that retry failed validations.
type RetryCounter interface {
	Retries() uint64
}
