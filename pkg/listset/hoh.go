package listset

import (
	"io"
	"iter"

	"golang.org/x/exp/constraints"

	"github.com/yndnr/listset-go/pkg/spinlock"
)

type hohNode[K constraints.Ordered, V any] struct {
	mu    spinlock.Mutex
	next  *hohNode[K, V]
	key   K
	value V
	end   bool

	// reclaimed is set once the node has been unlinked and poisoned.
	reclaimed bool
}

// lock acquires n's lock and asserts n is still part of the chain.
func (n *hohNode[K, V]) lock() {
	n.mu.Lock()
	if n.reclaimed {
		panic(ErrReclaimedNode)
	}
}

func (n *hohNode[K, V]) unlock() {
	n.mu.Unlock()
}

// reclaim poisons an unlinked node so that any later use is detected.
func (n *hohNode[K, V]) reclaim() {
	var (
		k K
		v V
	)
	n.next = nil
	n.key = k
	n.value = v
	n.reclaimed = true
}

// HandOverHand is a Set using hand-over-hand (lock coupling) locking.
//
// Every traversal holds the locks of the predecessor and current node, and
// releases the predecessor only after the next node is locked. Reaching a
// node therefore always requires holding its predecessor's lock first, which
// is what makes it safe to reclaim a node the moment it is unlinked.
//
// Find takes both locks too, so reads serialize with writers on the same
// stretch of the chain.
type HandOverHand[K constraints.Ordered, V any] struct {
	head *hohNode[K, V]
}

var _ Set[int, int] = (*HandOverHand[int, int])(nil)

// NewHandOverHand creates an empty hand-over-hand set.
func NewHandOverHand[K constraints.Ordered, V any]() *HandOverHand[K, V] {
	tail := &hohNode[K, V]{end: true}
	return &HandOverHand[K, V]{
		head: &hohNode[K, V]{next: tail},
	}
}

// traverse returns the last node with a key below key and its successor,
// which is either the first node with a key >= key or the tail. Both are
// locked on return.
func (s *HandOverHand[K, V]) traverse(key K) (pred, curr *hohNode[K, V]) {
	pred = s.head
	pred.lock()
	curr = pred.next
	curr.lock()
	for !curr.end && curr.key < key {
		pred.unlock()
		pred = curr
		curr = curr.next
		curr.lock()
	}
	return pred, curr
}

// Insert implements Set.
func (s *HandOverHand[K, V]) Insert(key K, value V) bool {
	pred, curr := s.traverse(key)
	if !curr.end && curr.key == key {
		pred.unlock()
		curr.unlock()
		return false
	}

	pred.next = &hohNode[K, V]{next: curr, key: key, value: value}
	pred.unlock()
	curr.unlock()
	return true
}

// Remove implements Set.
func (s *HandOverHand[K, V]) Remove(key K) bool {
	pred, curr := s.traverse(key)
	if curr.end || curr.key != key {
		pred.unlock()
		curr.unlock()
		return false
	}

	pred.next = curr.next
	pred.unlock()
	curr.unlock()

	// No other goroutine can hold or wait on curr: they would need pred's
	// lock first, and pred no longer leads to curr.
	curr.reclaim()
	return true
}

// Find implements Set.
func (s *HandOverHand[K, V]) Find(key K) (V, bool) {
	pred, curr := s.traverse(key)
	defer pred.unlock()
	defer curr.unlock()

	if !curr.end && curr.key == key {
		return curr.value, true
	}
	var zero V
	return zero, false
}

// keys walks the chain without locking.
func (s *HandOverHand[K, V]) keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for n := s.head.next; !n.end; n = n.next {
			if !yield(n.key) {
				return
			}
		}
	}
}

// CountKeysAndCheckConsistency implements Set.
func (s *HandOverHand[K, V]) CountKeysAndCheckConsistency() int {
	return countAndCheck(s.keys())
}

// Print implements Set.
func (s *HandOverHand[K, V]) Print(w io.Writer) error {
	return printKeys(w, s.keys())
}

// Close implements Set.
func (s *HandOverHand[K, V]) Close() {
	n := s.head
	for n != nil {
		next := n.next
		n.reclaim()
		n = next
	}
	s.head = nil
}
