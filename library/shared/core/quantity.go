package core

import (
	"strconv"
)

// Quantity is a non-negative number of book copies.
type Quantity struct {
	value int
}

// BuildQuantity validates n and returns it as a Quantity.
func BuildQuantity(n int) (Quantity, error) {
	if n < 0 {
		return Quantity{}, IllegalValue(FieldQuantity, "quantity must not be negative, got "+strconv.Itoa(n))
	}

	return Quantity{value: n}, nil
}

// Int returns the number of copies.
func (q Quantity) Int() int {
	return q.value
}

// IsZero reports whether no copy is counted.
func (q Quantity) IsZero() bool {
	return q.value == 0
}

func (q Quantity) String() string {
	return strconv.Itoa(q.value)
}
