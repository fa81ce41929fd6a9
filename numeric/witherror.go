package numeric

import "math"

// WithError pairs a value with a non-negative error estimate.
//
// Pieces combine by summing values and keeping the largest error, so the zero
// value is the identity.
type WithError[T Scalar] struct {
	Value T
	Error float64
}

// Add combines w with other.
func (w WithError[T]) Add(other WithError[T]) WithError[T] {
	return WithError[T]{
		Value: w.Value + other.Value,
		Error: math.Max(w.Error, other.Error),
	}
}

// Combine folds any number of pieces with Add.
func Combine[T Scalar](pieces ...WithError[T]) (total WithError[T]) {
	for _, p := range pieces {
		total = total.Add(p)
	}
	return
}
