package util

// MakeRectangular allocates a rows x cols matrix backed by one contiguous
// slice, so rect[i] and rect[i+1] are adjacent in memory.
func MakeRectangular[T any](rows, cols int) (rect [][]T) {
	arr := make([]T, rows*cols)
	rect = make([][]T, rows)
	for i := range rect {
		rect[i] = arr[:cols:cols]
		arr = arr[cols:]
	}
	return
}
