package util

import "math"

// EpsEqual reports whether x and y differ by less than eps.
func EpsEqual(x, y, eps float64) bool {
	return math.Abs(x-y) < eps
}

// SliceEpsEqual reports whether x and y have the same length and agree
// entrywise to within eps. The index of the first mismatch is returned, or -1.
func SliceEpsEqual(x, y []float64, eps float64) (equal bool, index int) {
	if len(x) != len(y) {
		return false, min(len(x), len(y))
	}
	for i := range x {
		if !EpsEqual(x[i], y[i], eps) {
			return false, i
		}
	}
	return true, -1
}
