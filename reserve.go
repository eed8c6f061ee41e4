package vector

// ReserveHint carries a capacity to pre-size a vector with NewReserved.
type ReserveHint struct {
	Capacity int
}

// Reserve builds a ReserveHint.
//
// Example:
//
//	v, err := vector.NewReserved[int](vector.Reserve(64))
func Reserve(capacity int) ReserveHint {
	return ReserveHint{Capacity: capacity}
}
