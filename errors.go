package vector

import "github.com/pkg/errors"

var (
	// ErrOutOfRange is returned by checked element access when the index is not a live element.
	ErrOutOfRange = errors.New("index out of range")

	// ErrInvalidPosition is returned by Insert and Erase for positions outside the valid window.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrEmpty is returned when removing from an empty vector.
	ErrEmpty = errors.New("vector is empty")

	// ErrNegativeSize is returned for negative sizes and capacities.
	ErrNegativeSize = errors.New("negative size")

	// ErrIteratorInvalidated is returned when an iterator outlived the buffer generation it was taken from.
	ErrIteratorInvalidated = errors.New("iterator invalidated")

	// ErrForeignIterator is returned when an iterator of another vector is passed as a position.
	ErrForeignIterator = errors.New("iterator belongs to another vector")

	// ErrAllocation is returned by an Allocator that cannot serve a request.
	ErrAllocation = errors.New("allocation failed")
)

func outOfRange(index, size int) error {
	return errors.Wrapf(ErrOutOfRange, "index %d, size %d", index, size)
}

func invalidPosition(pos, limit int) error {
	return errors.Wrapf(ErrInvalidPosition, "position %d, valid range [0, %d]", pos, limit)
}

func negativeSize(n int) error {
	return errors.Wrapf(ErrNegativeSize, "%d", n)
}
