// Package spinlock provides a minimal busy-waiting mutual exclusion lock.
//
// The lock never parks the calling goroutine on an OS primitive. Contended
// callers spin on a compare-and-swap and yield the processor between bursts
// of attempts so that a lock holder preempted on the same P can make progress.
//
// Usage:
//
//	var mu spinlock.Mutex
//	mu.Lock()
//	defer mu.Unlock()
//
// Semantics:
//
//   - No reentrancy: locking twice from the same goroutine deadlocks.
//   - No ownership check: Unlock releases whoever holds the lock.
//   - No fairness: a waiter may starve under contention.
//
// All state transitions use sync/atomic, which is sequentially consistent in
// the Go memory model, so lock order alone establishes happens-before between
// critical sections.
package spinlock
