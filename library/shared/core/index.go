package core

import (
	"strconv"
)

// Index is a one-based position in a displayed list of books or persons.
type Index struct {
	zeroBased int
}

// IndexFromOneBased builds an Index from a user-facing position (1, 2, 3, ...).
func IndexFromOneBased(oneBased int) (Index, error) {
	if oneBased < 1 {
		return Index{}, IllegalValue(FieldIndex, "index must be a positive integer, got "+strconv.Itoa(oneBased))
	}

	return Index{zeroBased: oneBased - 1}, nil
}

// IndexFromZeroBased builds an Index from a slice position.
func IndexFromZeroBased(zeroBased int) (Index, error) {
	return IndexFromOneBased(zeroBased + 1)
}

// ZeroBased returns the slice position.
func (i Index) ZeroBased() int {
	return i.zeroBased
}

// OneBased returns the user-facing position.
func (i Index) OneBased() int {
	return i.zeroBased + 1
}
