package spinlock

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// spinsBeforeYield is the number of failed acquisition attempts between
// calls to runtime.Gosched.
const spinsBeforeYield = 64

// Mutex is a spin lock. The zero value is an unlocked Mutex.
//
// A Mutex must not be copied after first use.
type Mutex struct {
	locked atomic.Bool
}

var _ sync.Locker = (*Mutex)(nil)

// Lock acquires the lock, spinning until it is available.
func (m *Mutex) Lock() {
	spins := 0
	for !m.locked.CompareAndSwap(false, true) {
		spins++
		if spins == spinsBeforeYield {
			spins = 0
			runtime.Gosched()
		}
	}
}

// TryLock makes a single attempt to acquire the lock and reports whether it
// succeeded.
func (m *Mutex) TryLock() bool {
	return m.locked.CompareAndSwap(false, true)
}

// Unlock releases the lock. The caller is assumed to hold it.
func (m *Mutex) Unlock() {
	m.locked.Store(false)
}
