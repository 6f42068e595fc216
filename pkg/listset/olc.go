package listset

import (
	"io"
	"iter"
	"sync/atomic"

	"golang.org/x/exp/constraints"

	"github.com/yndnr/listset-go/pkg/spinlock"
)

type olcNode[K constraints.Ordered, V any] struct {
	mu      spinlock.Mutex
	next    atomic.Pointer[olcNode[K, V]]
	removed atomic.Bool
	key     K
	value   V
	end     bool
}

func newOLCNode[K constraints.Ordered, V any](key K, value V, next *olcNode[K, V]) *olcNode[K, V] {
	n := &olcNode[K, V]{key: key, value: value}
	n.next.Store(next)
	return n
}

// matches reports whether n holds key.
func (n *olcNode[K, V]) matches(key K) bool {
	return !n.end && n.key == key
}

// Optimistic is a Set using optimistic lock coupling.
//
// Traversal is lock-free. A mutation locks the predecessor at the splice
// point and validates that it is still live and still points at the node
// found by the traversal; if not, the whole operation is retried. Remove also
// locks the victim so that an insert directly after it cannot be lost.
//
// Find takes no locks at all and is not linearizable with respect to
// concurrent removals: it may return the value of a node that is being
// removed at that moment.
//
// Unlinked nodes keep their successor link, so a goroutine standing on one
// can always walk forward into the live chain. The garbage collector frees
// them once the last such goroutine has moved on.
type Optimistic[K constraints.Ordered, V any] struct {
	head    *olcNode[K, V]
	retries atomic.Uint64
}

var (
	_ Set[int, int] = (*Optimistic[int, int])(nil)
	_ RetryCounter  = (*Optimistic[int, int])(nil)
)

// NewOptimistic creates an empty optimistic lock-coupling set.
func NewOptimistic[K constraints.Ordered, V any]() *Optimistic[K, V] {
	tail := &olcNode[K, V]{end: true}
	head := &olcNode[K, V]{}
	head.next.Store(tail)
	return &Optimistic[K, V]{head: head}
}

// traverse returns the last node with a key below key and its successor.
// No locks are held and neither node is guaranteed to still be linked.
func (s *Optimistic[K, V]) traverse(key K) (pred, curr *olcNode[K, V]) {
	pred = s.head
	curr = pred.next.Load()
	for !curr.end && curr.key < key {
		pred = curr
		curr = curr.next.Load()
	}
	return pred, curr
}

// validate reports whether pred is live and still links to curr.
// The caller must hold pred's lock.
func validate[K constraints.Ordered, V any](pred, curr *olcNode[K, V]) bool {
	return !pred.removed.Load() && pred.next.Load() == curr
}

// Insert implements Set.
func (s *Optimistic[K, V]) Insert(key K, value V) bool {
	for {
		pred, curr := s.traverse(key)
		if curr.matches(key) && !curr.removed.Load() {
			return false
		}

		pred.mu.Lock()
		if validate(pred, curr) {
			pred.next.Store(newOLCNode(key, value, curr))
			pred.mu.Unlock()
			return true
		}
		pred.mu.Unlock()
		s.retries.Add(1)
	}
}

// Remove implements Set.
func (s *Optimistic[K, V]) Remove(key K) bool {
	for {
		pred, curr := s.traverse(key)
		if !curr.matches(key) {
			return false
		}

		pred.mu.Lock()
		curr.mu.Lock()
		if validate(pred, curr) {
			curr.removed.Store(true)
			pred.next.Store(curr.next.Load())
			curr.mu.Unlock()
			pred.mu.Unlock()
			return true
		}
		curr.mu.Unlock()
		pred.mu.Unlock()
		s.retries.Add(1)
	}
}

// Find implements Set.
func (s *Optimistic[K, V]) Find(key K) (V, bool) {
	_, curr := s.traverse(key)
	if curr.matches(key) && !curr.removed.Load() {
		return curr.value, true
	}
	var zero V
	return zero, false
}

// Retries returns the number of failed validations since the set was
// created.
func (s *Optimistic[K, V]) Retries() uint64 {
	return s.retries.Load()
}

func (s *Optimistic[K, V]) keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for n := s.head.next.Load(); !n.end; n = n.next.Load() {
			if !yield(n.key) {
				return
			}
		}
	}
}

// CountKeysAndCheckConsistency implements Set.
func (s *Optimistic[K, V]) CountKeysAndCheckConsistency() int {
	return countAndCheck(s.keys())
}

// Print implements Set.
func (s *Optimistic[K, V]) Print(w io.Writer) error {
	return printKeys(w, s.keys())
}

// Close implements Set.
func (s *Optimistic[K, V]) Close() {
	n := s.head
	for n != nil {
		next := n.next.Load()
		n.next.Store(nil)
		n.removed.Store(true)
		n = next
	}
	s.head = nil
}
