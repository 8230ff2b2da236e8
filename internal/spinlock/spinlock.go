// Package spinlock provides a busy waiting mutex for short critical sections.
package spinlock

import (
	"runtime"
	"sync/atomic"
)

// Mutex is a spinlock. The zero value is unlocked.
type Mutex struct {
	locked atomic.Bool
}

// Lock acquires m, yielding the processor while it is held elsewhere.
func (m *Mutex) Lock() {
	for !m.TryLock() {
		runtime.Gosched()
	}
}

// TryLock acquires m if it is free and reports whether it did.
func (m *Mutex) TryLock() bool { return m.locked.CompareAndSwap(false, true) }

// Unlock releases m.
func (m *Mutex) Unlock() { m.locked.Store(false) }
