// Package vector provides Vector, a generic growable array backed by an owned buffer.
//
// A Vector keeps size and capacity apart: slots in [Len, Cap) are allocated spare
// capacity holding zero values. Growth doubles the capacity (0 becomes 1), and every
// reallocation builds the new buffer completely before swapping it in, so a failed
// allocation leaves the vector untouched.
//
// Precondition violations on mutating and checked operations are reported as errors
// (see ErrOutOfRange, ErrInvalidPosition, ErrEmpty). Unchecked access (Get, Set, Ref)
// panics on indices outside [0, Len).
//
// A Vector is not safe for concurrent use.
package vector

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// options holds the configuration of a Vector
type options[T any] struct {
	allocator Allocator[T]
	cloner    func(T) T
	equatable func(a, b T) bool
}

// Option defines a function type for configuring Vector parameters
type Option[T any] func(*options[T])

// WithAllocator sets the allocator buffers are obtained from.
// Default: HeapAllocator.
func WithAllocator[T any](allocator Allocator[T]) Option[T] {
	return func(o *options[T]) {
		o.allocator = allocator
	}
}

// WithCloner sets the function used to copy a value into a slot by NewFilled, NewFrom,
// Clone and Assign. Use it for element types holding references that must not be shared.
// Default: plain assignment.
func WithCloner[T any](cloner func(T) T) Option[T] {
	return func(o *options[T]) {
		o.cloner = cloner
	}
}

// WithEquality sets the equality used by Equals, Index, LastIndex and friends.
// Default: reflect.DeepEqual.
func WithEquality[T any](equatable func(a, b T) bool) Option[T] {
	return func(o *options[T]) {
		o.equatable = equatable
	}
}

// Vector is a dynamic array over an exclusively owned Buffer.
// The zero value is an empty vector ready to use.
type Vector[T any] struct {
	allocator Allocator[T]
	cloner    func(T) T
	equatable func(a, b T) bool
	buf       Buffer[T]
	size      int
	gen       uint64
}

// New creates an empty Vector. No buffer is allocated until the first growth.
func New[T any](ops ...Option[T]) *Vector[T] {
	var opts = options[T]{
		allocator: HeapAllocator[T]{},
		equatable: defaultEqual[T],
	}
	for _, op := range ops {
		op(&opts)
	}

	return &Vector[T]{
		allocator: opts.allocator,
		cloner:    opts.cloner,
		equatable: opts.equatable,
	}
}

// NewSized creates a Vector of n zero values with capacity n.
func NewSized[T any](n int, ops ...Option[T]) (*Vector[T], error) {
	if n < 0 {
		return nil, negativeSize(n)
	}

	v := New(ops...)
	if n == 0 {
		return v, nil
	}

	buf, err := NewBuffer(v.allocator, n)
	if err != nil {
		return nil, err
	}
	v.buf = buf
	v.size = n
	return v, nil
}

// NewFilled creates a Vector of n copies of value with capacity n.
// Each slot receives its own copy, made by the configured cloner.
func NewFilled[T any](n int, value T, ops ...Option[T]) (*Vector[T], error) {
	v, err := NewSized(n, ops...)
	if err != nil {
		return nil, err
	}

	for i := 0; i < v.size; i++ {
		v.buf.slots[i] = v.clone(value)
	}
	return v, nil
}

// NewFrom creates a Vector holding copies of values, with size and capacity len(values).
func NewFrom[T any](values []T, ops ...Option[T]) (*Vector[T], error) {
	v, err := NewSized(len(values), ops...)
	if err != nil {
		return nil, err
	}

	for i := range values {
		v.buf.slots[i] = v.clone(values[i])
	}
	return v, nil
}

// Of creates a heap-backed Vector from a literal list of values.
//
// Example:
//
//	v := vector.Of(1, 2, 3)
func Of[T any](values ...T) *Vector[T] {
	v, err := NewFrom(values)
	if err != nil {
		// the heap allocator does not fail
		panic(err)
	}
	return v
}

// NewReserved creates an empty Vector with hint.Capacity slots reserved.
func NewReserved[T any](hint ReserveHint, ops ...Option[T]) (*Vector[T], error) {
	v := New(ops...)
	if err := v.Reserve(hint.Capacity); err != nil {
		return nil, err
	}
	return v, nil
}

// Clone deep-copies the live elements into a new Vector with the same options.
// Spare capacity is not copied: the clone has Cap() == Len().
func (v *Vector[T]) Clone() (*Vector[T], error) {
	dst := &Vector[T]{
		allocator: v.allocator,
		cloner:    v.cloner,
		equatable: v.equatable,
	}

	buf, err := v.duplicate()
	if err != nil {
		return nil, err
	}
	dst.buf = buf
	dst.size = v.size
	return dst, nil
}

// Move transfers the buffer into a new Vector.
// The source is left empty with zero capacity, and its iterators are invalidated.
func (v *Vector[T]) Move() *Vector[T] {
	dst := &Vector[T]{
		allocator: v.allocator,
		cloner:    v.cloner,
		equatable: v.equatable,
		buf:       v.buf,
		size:      v.size,
	}

	v.buf = Buffer[T]{allocator: v.allocator}
	v.size = 0
	v.invalidate()
	return dst
}

// Assign replaces the contents of v with a copy of other's live elements.
// On error v is unchanged.
func (v *Vector[T]) Assign(other *Vector[T]) error {
	if v == other {
		return nil
	}

	buf, err := other.duplicateWith(v.allocator, v.cloner)
	if err != nil {
		return err
	}

	v.buf.Swap(&buf)
	buf.Free()
	v.size = other.size
	v.invalidate()
	return nil
}

// MoveAssign releases v's buffer and takes over other's. other is left empty.
func (v *Vector[T]) MoveAssign(other *Vector[T]) {
	if v == other {
		return
	}

	v.buf.Free()
	v.buf, other.buf = other.buf, Buffer[T]{allocator: other.allocator}
	v.size, other.size = other.size, 0
	v.invalidate()
	other.invalidate()
}

// Equatable sets a custom equality comparison function for element comparison.
func (v *Vector[T]) Equatable(equatable func(a, b T) bool) *Vector[T] {
	v.equatable = equatable
	return v
}

// Len returns the current number of elements in the vector.
func (v *Vector[T]) Len() int {
	if v == nil {
		return 0
	}
	return v.size
}

// Cap returns the current capacity of the vector.
func (v *Vector[T]) Cap() int {
	if v == nil {
		return 0
	}
	return v.buf.Len()
}

// IsEmpty reports whether the vector holds no elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.Len() == 0
}

// Get returns element i. It panics if i is not in [0, Len).
func (v *Vector[T]) Get(i int) T {
	return v.live()[i]
}

// Set overwrites element i. It panics if i is not in [0, Len).
func (v *Vector[T]) Set(i int, value T) {
	v.live()[i] = value
}

// Ref returns a pointer to element i, valid until the next reallocation.
// It panics if i is not in [0, Len).
func (v *Vector[T]) Ref(i int) *T {
	return &v.live()[i]
}

// At retrieves the element at the specified index.
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, outOfRange(i, v.size)
	}
	return v.buf.slots[i], nil
}

// SetAt overwrites the element at the specified index.
func (v *Vector[T]) SetAt(i int, value T) error {
	if i < 0 || i >= v.size {
		return outOfRange(i, v.size)
	}
	v.buf.slots[i] = value
	return nil
}

// RefAt returns a pointer to the element at the specified index.
func (v *Vector[T]) RefAt(i int) (*T, error) {
	if i < 0 || i >= v.size {
		return nil, outOfRange(i, v.size)
	}
	return &v.buf.slots[i], nil
}

// Front returns the first element.
func (v *Vector[T]) Front() (T, error) {
	if v.size == 0 {
		var zero T
		return zero, errors.Wrap(ErrEmpty, "front")
	}
	return v.buf.slots[0], nil
}

// Back returns the last element.
func (v *Vector[T]) Back() (T, error) {
	if v.size == 0 {
		var zero T
		return zero, errors.Wrap(ErrEmpty, "back")
	}
	return v.buf.slots[v.size-1], nil
}

// Slice returns the live elements as a slice sharing the vector's buffer.
// Its capacity is clipped to Len, and it is invalidated like an iterator.
func (v *Vector[T]) Slice() []T {
	if v == nil {
		return nil
	}
	return v.live()
}

// PushBack appends value, doubling the capacity when the buffer is full.
func (v *Vector[T]) PushBack(value T) error {
	if v.size < v.buf.Len() {
		v.buf.slots[v.size] = value
		v.size++
		return nil
	}

	newCap := max(v.buf.Len()*2, v.size+1)
	err := v.realloc(newCap, func(dst []T) {
		copy(dst, v.buf.slots[:v.size])
		dst[v.size] = value
	})
	if err != nil {
		return err
	}
	v.size++
	return nil
}

// Append adds elements to the end of the vector with at most one reallocation.
func (v *Vector[T]) Append(values ...T) error {
	required := v.size + len(values)
	if required <= v.buf.Len() {
		copy(v.buf.slots[v.size:required], values)
		v.size = required
		return nil
	}

	newCap := max(v.buf.Len()*2, required)
	err := v.realloc(newCap, func(dst []T) {
		copy(dst, v.buf.slots[:v.size])
		copy(dst[v.size:], values)
	})
	if err != nil {
		return err
	}
	v.size = required
	return nil
}

// Insert places value before pos and returns an iterator to it.
// pos must be a current iterator of v in [Begin, End].
func (v *Vector[T]) Insert(pos Iterator[T], value T) (Iterator[T], error) {
	index, err := v.position(pos)
	if err != nil {
		return Iterator[T]{}, err
	}
	return v.InsertAt(index, value)
}

// InsertAt places value at index, shifting later elements right. index must be in [0, Len].
func (v *Vector[T]) InsertAt(index int, value T) (Iterator[T], error) {
	if index < 0 || index > v.size {
		return Iterator[T]{}, invalidPosition(index, v.size)
	}

	if v.size < v.buf.Len() {
		s := v.buf.slots
		copy(s[index+1:v.size+1], s[index:v.size])
		s[index] = value
		v.invalidate()
	} else {
		newCap := max(v.buf.Len()*2, v.size+1)
		err := v.realloc(newCap, func(dst []T) {
			copy(dst, v.buf.slots[:index])
			dst[index] = value
			copy(dst[index+1:], v.buf.slots[index:v.size])
		})
		if err != nil {
			return Iterator[T]{}, err
		}
	}

	v.size++
	return v.iterAt(index), nil
}

// Erase removes the element at pos and returns an iterator to the element that followed it.
func (v *Vector[T]) Erase(pos Iterator[T]) (Iterator[T], error) {
	index, err := v.position(pos)
	if err != nil {
		return Iterator[T]{}, err
	}
	return v.EraseAt(index)
}

// EraseAt removes the element at index, shifting later elements left.
// Capacity is unchanged. The returned iterator points at the element that followed
// the removed one, or End when the last element was removed.
func (v *Vector[T]) EraseAt(index int) (Iterator[T], error) {
	if v.size == 0 {
		return Iterator[T]{}, errors.Wrapf(ErrEmpty, "erase at %d", index)
	}
	if index < 0 || index >= v.size {
		return Iterator[T]{}, invalidPosition(index, v.size-1)
	}

	s := v.buf.slots
	copy(s[index:], s[index+1:v.size])
	v.size--

	var zero T
	s[v.size] = zero
	v.invalidate()
	return v.iterAt(index), nil
}

// PopBack removes and returns the last element. The slot becomes spare capacity.
func (v *Vector[T]) PopBack() (T, error) {
	var zero T
	if v.size == 0 {
		return zero, errors.Wrap(ErrEmpty, "pop back")
	}

	v.size--
	value := v.buf.slots[v.size]
	v.buf.slots[v.size] = zero
	return value, nil
}

// Resize sets the number of elements to n.
// Elements beyond n are cleared; new elements hold the zero value.
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		return negativeSize(n)
	}

	if n <= v.size {
		clear(v.buf.slots[n:v.size])
		v.size = n
		return nil
	}

	if n <= v.buf.Len() {
		// spare slots are kept zeroed, reset anyway so stale values can never surface
		clear(v.buf.slots[v.size:n])
		v.size = n
		return nil
	}

	newCap := max(v.buf.Len()*2, n)
	err := v.realloc(newCap, func(dst []T) {
		copy(dst, v.buf.slots[:v.size])
	})
	if err != nil {
		return err
	}
	v.size = n
	return nil
}

// Clear removes all elements and keeps the capacity.
func (v *Vector[T]) Clear() {
	clear(v.buf.slots[:v.size])
	v.size = 0
}

// Reserve grows the capacity to exactly n if it is below n. The size is unchanged.
func (v *Vector[T]) Reserve(n int) error {
	if n < 0 {
		return negativeSize(n)
	}
	if n <= v.buf.Len() {
		return nil
	}

	return v.realloc(n, func(dst []T) {
		copy(dst, v.buf.slots[:v.size])
	})
}

// Swap exchanges contents with other in O(1) without allocating.
// Iterators into either vector are invalidated.
func (v *Vector[T]) Swap(other *Vector[T]) {
	if v == other {
		return
	}

	v.buf.Swap(&other.buf)
	v.size, other.size = other.size, v.size
	v.invalidate()
	other.invalidate()
}

// Free returns the buffer to its allocator. The vector becomes empty with zero capacity.
func (v *Vector[T]) Free() {
	v.buf.Free()
	v.size = 0
	v.invalidate()
}

// Equals reports whether other holds the same elements in the same order, using v's equality.
func (v *Vector[T]) Equals(other *Vector[T]) bool {
	return EqualFunc(v, other, v.equal)
}

// AddIfAbsent adds an element only if it doesn't already exist in the vector.
func (v *Vector[T]) AddIfAbsent(value T) (bool, error) {
	if v.Contains(value) {
		return false, nil
	}
	if err := v.PushBack(value); err != nil {
		return false, err
	}
	return true, nil
}

// Remove deletes the first occurrence of the specified element.
func (v *Vector[T]) Remove(value T) bool {
	if idx := v.Index(value); idx != -1 {
		_, err := v.EraseAt(idx)
		return err == nil
	}
	return false
}

// RemoveBy removes elements matching a condition with quantity control.
// use limit param to control maximum number of elements to remove (0 = unlimited)
func (v *Vector[T]) RemoveBy(limit int, fn func(index int, v T) bool) int {
	var removed int
	for i := v.size - 1; i >= 0; i-- {
		if fn(i, v.buf.slots[i]) {
			if _, err := v.EraseAt(i); err != nil {
				return removed
			}
			if removed++; removed >= limit && limit > 0 {
				return removed
			}
		}
	}
	return removed
}

// Index finds the first occurrence of an element.
// Index of first match, or -1 if not found
func (v *Vector[T]) Index(value T) int {
	return slices.IndexFunc(v.live(), func(e T) bool {
		return v.equal(e, value)
	})
}

// LastIndex finds the last occurrence of an element.
// Index of last match, or -1 if not found
func (v *Vector[T]) LastIndex(value T) int {
	for i := v.size - 1; i >= 0; i-- {
		if v.equal(v.buf.slots[i], value) {
			return i
		}
	}
	return -1
}

// Contains reports whether value is present.
func (v *Vector[T]) Contains(value T) bool {
	return v.Index(value) != -1
}

// Range iterates over elements using a callback function.
func (v *Vector[T]) Range(fn func(index int, v T) bool) {
	for i := 0; i < v.size; i++ {
		if !fn(i, v.buf.slots[i]) {
			return
		}
	}
}

// Iter provides an iterator function compatible with range loops.
//
// Example:
//
//	for index, v := range v.Iter() {
//		// do something
//	}
func (v *Vector[T]) Iter() iter.Seq2[int, T] {
	return v.Range
}

// Values yields the elements in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.buf.slots[i]) {
				return
			}
		}
	}
}

// Backward yields index/element pairs from the last element to the first.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, v.buf.slots[i]) {
				return
			}
		}
	}
}

// Pointers yields a pointer to each element for in-place updates.
// The vector must not be reallocated while iterating.
func (v *Vector[T]) Pointers() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, &v.buf.slots[i]) {
				return
			}
		}
	}
}

// String formats the live elements like a slice.
func (v *Vector[T]) String() string {
	return fmt.Sprint(v.Slice())
}

// realloc allocates newCap slots, lets fill lay out the contents and only then swaps
// the new buffer in. The old buffer goes back to its allocator.
func (v *Vector[T]) realloc(newCap int, fill func(dst []T)) error {
	nb, err := NewBuffer(v.allocator, newCap)
	if err != nil {
		return err
	}

	fill(nb.slots)
	v.buf.Swap(&nb)
	nb.Free()
	v.invalidate()
	return nil
}

func (v *Vector[T]) duplicate() (Buffer[T], error) {
	return v.duplicateWith(v.allocator, v.cloner)
}

func (v *Vector[T]) duplicateWith(allocator Allocator[T], cloner func(T) T) (Buffer[T], error) {
	buf, err := NewBuffer(allocator, v.size)
	if err != nil {
		return Buffer[T]{}, err
	}
	for i := 0; i < v.size; i++ {
		if cloner != nil {
			buf.slots[i] = cloner(v.buf.slots[i])
		} else {
			buf.slots[i] = v.buf.slots[i]
		}
	}
	return buf, nil
}

func (v *Vector[T]) live() []T {
	return v.buf.slots[:v.size:v.size]
}

func (v *Vector[T]) clone(value T) T {
	if v.cloner == nil {
		return value
	}
	return v.cloner(value)
}

func (v *Vector[T]) equal(a, b T) bool {
	if v.equatable == nil {
		return defaultEqual(a, b)
	}
	return v.equatable(a, b)
}

func (v *Vector[T]) invalidate() {
	v.gen++
}

func defaultEqual[T any](a, b T) bool {
	return reflect.DeepEqual(a, b)
}
