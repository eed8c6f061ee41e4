package vector

import "github.com/pkg/errors"

// Iterator is a position in a Vector, tied to the buffer generation it was taken from.
//
// Any operation that reallocates or shifts elements (growth, Insert, Erase, Resize
// beyond capacity, Reserve, Swap, Move, Assign) starts a new generation. Using an
// iterator from an older generation reports ErrIteratorInvalidated instead of
// touching the wrong element. Note that after Swap an iterator is not carried over
// to the other vector's former contents; it is simply invalid.
type Iterator[T any] struct {
	v     *Vector[T]
	index int
	gen   uint64
}

// Begin returns an iterator to the first element.
func (v *Vector[T]) Begin() Iterator[T] {
	return v.iterAt(0)
}

// End returns an iterator one past the last element.
func (v *Vector[T]) End() Iterator[T] {
	return v.iterAt(v.size)
}

// Find returns an iterator to the first element equal to value, or End.
func (v *Vector[T]) Find(value T) Iterator[T] {
	if idx := v.Index(value); idx != -1 {
		return v.iterAt(idx)
	}
	return v.End()
}

func (v *Vector[T]) iterAt(index int) Iterator[T] {
	return Iterator[T]{v: v, index: index, gen: v.gen}
}

// position resolves an iterator passed to Insert or Erase.
func (v *Vector[T]) position(it Iterator[T]) (int, error) {
	if it.v != v {
		return 0, ErrForeignIterator
	}
	if it.gen != v.gen {
		return 0, errors.Wrapf(ErrIteratorInvalidated, "position %d", it.index)
	}
	return it.index, nil
}

// Index returns the element index the iterator points at.
func (it Iterator[T]) Index() int {
	return it.index
}

// Valid reports whether the iterator is current and within [Begin, End].
func (it Iterator[T]) Valid() bool {
	return it.check() == nil && it.index >= 0 && it.index <= it.v.size
}

// Next returns the iterator advanced by one.
func (it Iterator[T]) Next() Iterator[T] {
	it.index++
	return it
}

// Prev returns the iterator moved back by one.
func (it Iterator[T]) Prev() Iterator[T] {
	it.index--
	return it
}

// Advance returns the iterator moved by n, which may be negative.
func (it Iterator[T]) Advance(n int) Iterator[T] {
	it.index += n
	return it
}

// Equal reports whether both iterators denote the same position of the same generation.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.v == other.v && it.gen == other.gen && it.index == other.index
}

// Get reads the element under the iterator.
func (it Iterator[T]) Get() (T, error) {
	p, err := it.Ref()
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Set overwrites the element under the iterator.
func (it Iterator[T]) Set(value T) error {
	p, err := it.Ref()
	if err != nil {
		return err
	}
	*p = value
	return nil
}

// Ref returns a pointer to the element under the iterator.
func (it Iterator[T]) Ref() (*T, error) {
	if err := it.check(); err != nil {
		return nil, err
	}
	return it.v.RefAt(it.index)
}

func (it Iterator[T]) check() error {
	if it.v == nil {
		return ErrIteratorInvalidated
	}
	if it.gen != it.v.gen {
		return errors.Wrapf(ErrIteratorInvalidated, "generation %d, current %d", it.gen, it.v.gen)
	}
	return nil
}
