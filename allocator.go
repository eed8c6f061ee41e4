/*
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      https://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package vector

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/limpo1989/vector/internal"
)

// Allocator hands out zeroed slot blocks to buffers and takes them back.
// Alloc must return a slice of exactly n zero-value elements (len == n).
type Allocator[T any] interface {
	Alloc(n int) ([]T, error)
	Free(s []T)
}

// HeapAllocator allocates straight from the Go heap. Free is a no-op and the GC reclaims the block.
type HeapAllocator[T any] struct{}

func (HeapAllocator[T]) Alloc(n int) ([]T, error) {
	if n < 0 {
		return nil, negativeSize(n)
	}
	return make([]T, n), nil
}

func (HeapAllocator[T]) Free([]T) {}

// poolOptions holds configuration settings for the Pool allocator
type poolOptions struct {
	poolSize int
	maxSlots int
	locker   sync.Locker
}

// PoolOption defines a function type for configuring Pool parameters
type PoolOption func(*poolOptions)

// WithPoolSize configures the maximum number of released blocks retained in the free list.
// Higher values improve reuse at the cost of increased memory retention.
func WithPoolSize(poolSize int) PoolOption {
	return func(o *poolOptions) {
		o.poolSize = poolSize
	}
}

// WithEnableLock guards the pool with a spinlock.
// Required when one Pool is shared by vectors living on different goroutines.
func WithEnableLock(enableLock bool) PoolOption {
	return func(o *poolOptions) {
		if enableLock {
			o.locker = new(internal.SpinLock)
		} else {
			o.locker = nopLocker{}
		}
	}
}

// WithMaxSlots caps the number of slots that may be outstanding at once (0 = unlimited).
// Requests beyond the cap fail with ErrAllocation.
func WithMaxSlots(maxSlots int) PoolOption {
	return func(o *poolOptions) {
		o.maxSlots = maxSlots
	}
}

// PoolStats is a snapshot of a Pool's bookkeeping.
type PoolStats struct {
	Outstanding int // slots handed out and not yet freed
	Pooled      int // slots parked in the free list
	Blocks      int // blocks parked in the free list
	Allocs      int // successful Alloc calls
	Reused      int // Alloc calls served from the free list
}

// Pool is a recycling Allocator. Freed blocks are parked in a bounded free list
// and handed out again, best fit first, to later requests.
type Pool[T any] struct {
	locker   sync.Locker
	poolSize int
	maxSlots int
	freelist [][]T
	stats    PoolStats
}

// NewPool creates a new Pool instance with customizable options.
func NewPool[T any](ops ...PoolOption) *Pool[T] {
	var opts = poolOptions{
		poolSize: 64,
		locker:   nopLocker{},
	}
	for _, op := range ops {
		op(&opts)
	}

	return &Pool[T]{
		locker:   opts.locker,
		poolSize: opts.poolSize,
		maxSlots: opts.maxSlots,
	}
}

// Alloc returns a block of n zeroed slots, reusing a parked block when one is large enough.
func (p *Pool[T]) Alloc(n int) ([]T, error) {
	if n < 0 {
		return nil, negativeSize(n)
	}

	p.locker.Lock()
	defer p.locker.Unlock()

	if p.maxSlots > 0 && p.stats.Outstanding+n > p.maxSlots {
		return nil, errors.Wrapf(ErrAllocation, "requested %d slots, %d of %d in use", n, p.stats.Outstanding, p.maxSlots)
	}

	var block []T
	if s := p.selectBlock(n); s != nil {
		block = s[:n]
		clear(block)
		p.stats.Reused++
	} else {
		block = make([]T, n)
	}

	p.stats.Outstanding += n
	p.stats.Allocs++
	return block, nil
}

// Free returns a block to the pool. Blocks beyond the pool size are dropped for the GC.
func (p *Pool[T]) Free(s []T) {
	if cap(s) == 0 {
		return
	}

	p.locker.Lock()
	defer p.locker.Unlock()

	p.stats.Outstanding -= len(s)
	if p.stats.Outstanding < 0 {
		p.stats.Outstanding = 0
	}

	// drop references so parked blocks do not pin garbage
	clear(s[:cap(s)])
	if len(p.freelist) < p.poolSize {
		p.freelist = append(p.freelist, s[:cap(s)])
		p.stats.Pooled += cap(s)
		p.stats.Blocks++
	}
}

// Reset drops every parked block. Outstanding blocks are unaffected.
func (p *Pool[T]) Reset() {
	p.locker.Lock()
	defer p.locker.Unlock()

	p.freelist = nil
	p.stats.Pooled = 0
	p.stats.Blocks = 0
}

// Stats returns a snapshot of the pool counters.
func (p *Pool[T]) Stats() PoolStats {
	p.locker.Lock()
	defer p.locker.Unlock()
	return p.stats
}

func (p *Pool[T]) selectBlock(n int) []T {
	if n == 0 || len(p.freelist) == 0 {
		return nil
	}

	// the free list is short, a linear best-fit scan is enough
	var idx = -1
	for i, block := range p.freelist {
		if cap(block) >= n && (idx == -1 || cap(block) < cap(p.freelist[idx])) {
			idx = i
		}
	}

	if idx == -1 {
		return nil
	}

	selected := p.freelist[idx]

	// fast-remove
	var lastIdx = len(p.freelist) - 1
	p.freelist[idx], p.freelist[lastIdx] = p.freelist[lastIdx], p.freelist[idx]
	p.freelist[lastIdx] = nil
	p.freelist = p.freelist[:lastIdx]

	p.stats.Pooled -= cap(selected)
	p.stats.Blocks--
	return selected
}

type nopLocker struct{}

func (n nopLocker) Lock() {
}

func (n nopLocker) Unlock() {
}
