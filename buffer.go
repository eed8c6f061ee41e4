package vector

// Buffer owns a fixed block of slots obtained from an Allocator.
// It never resizes; a different size means a new Buffer.
// Every slot holds a valid value of T while the buffer owns the block.
type Buffer[T any] struct {
	allocator Allocator[T]
	slots     []T
}

// NewBuffer allocates a buffer of n zero-value slots.
// For n == 0 no allocation is made and the buffer is empty.
func NewBuffer[T any](allocator Allocator[T], n int) (Buffer[T], error) {
	if n < 0 {
		return Buffer[T]{}, negativeSize(n)
	}
	if allocator == nil {
		allocator = HeapAllocator[T]{}
	}
	if n == 0 {
		return Buffer[T]{allocator: allocator}, nil
	}

	slots, err := allocator.Alloc(n)
	if err != nil {
		return Buffer[T]{}, err
	}
	return Buffer[T]{allocator: allocator, slots: slots[:n]}, nil
}

// Len returns the number of slots.
func (b *Buffer[T]) Len() int {
	return len(b.slots)
}

// Slots exposes the raw block. The slice must not outlive the buffer's ownership.
func (b *Buffer[T]) Slots() []T {
	return b.slots
}

// Load reads slot i.
func (b *Buffer[T]) Load(i int) T {
	return b.slots[i]
}

// Store writes slot i.
func (b *Buffer[T]) Store(i int, v T) {
	b.slots[i] = v
}

// Swap exchanges ownership of the blocks held by b and other.
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	b.allocator, other.allocator = other.allocator, b.allocator
	b.slots, other.slots = other.slots, b.slots
}

// Release gives up ownership of the block without freeing it and returns it.
func (b *Buffer[T]) Release() []T {
	s := b.slots
	b.slots = nil
	return s
}

// Free returns the block to its allocator and leaves the buffer empty.
func (b *Buffer[T]) Free() {
	if b.slots == nil {
		return
	}
	s := b.Release()
	if b.allocator != nil {
		b.allocator.Free(s)
	}
}
