package internal

import (
	"runtime"
	"sync/atomic"
)

const maxBackoff = 16

// SpinLock is a sync.Locker that busy-waits with exponential backoff.
// It suits short critical sections such as free-list bookkeeping.
type SpinLock struct {
	state atomic.Int32
}

// TryLock acquires the lock if it is free and reports whether it did.
func (sl *SpinLock) TryLock() bool {
	return sl.state.CompareAndSwap(0, 1)
}

func (sl *SpinLock) Lock() {
	for backoff := 1; !sl.TryLock(); {
		for i := 0; i < backoff; i++ {
			runtime.Gosched()
		}
		if backoff < maxBackoff {
			backoff <<= 1
		}
	}
}

func (sl *SpinLock) Unlock() {
	sl.state.Store(0)
}
