package vector

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Equal reports whether a and b have the same length and equal elements in order.
// A nil vector equals an empty one.
func Equal[T comparable](a, b *Vector[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// NotEqual is !Equal.
func NotEqual[T comparable](a, b *Vector[T]) bool {
	return !Equal(a, b)
}

// EqualFunc is Equal with a custom element comparison.
func EqualFunc[T, U any](a *Vector[T], b *Vector[U], eq func(T, U) bool) bool {
	return a.Len() == b.Len() && slices.EqualFunc(a.Slice(), b.Slice(), eq)
}

// Compare orders a and b lexicographically. The result is -1, 0 or +1.
// A vector that is a strict prefix of the other orders first.
func Compare[T constraints.Ordered](a, b *Vector[T]) int {
	return CompareFunc(a, b, compareOrdered[T])
}

// CompareFunc is Compare with a custom element comparison.
func CompareFunc[T, U any](a *Vector[T], b *Vector[U], cmp func(T, U) int) int {
	return slices.CompareFunc(a.Slice(), b.Slice(), cmp)
}

// Less reports a < b.
func Less[T constraints.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) < 0
}

// LessOrEqual reports a <= b.
func LessOrEqual[T constraints.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) <= 0
}

// Greater reports a > b.
func Greater[T constraints.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) > 0
}

// GreaterOrEqual reports a >= b.
func GreaterOrEqual[T constraints.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) >= 0
}

func compareOrdered[T constraints.Ordered](x, y T) int {
	switch {
	case x < y:
		return -1
	case y < x:
		return 1
	}
	return 0
}
