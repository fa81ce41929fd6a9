package numeric

import (
	"math"
	"math/cmplx"
)

// Elementary functions over Scalar. The real branch always uses the math
// package so real inputs never pick up a spurious imaginary part.

func Sin[T Scalar](v T) T {
	switch x := any(v).(type) {
	case float64:
		return any(math.Sin(x)).(T)
	case complex128:
		return any(cmplx.Sin(x)).(T)
	}
	panic("numeric: unreachable scalar type")
}

func Cos[T Scalar](v T) T {
	switch x := any(v).(type) {
	case float64:
		return any(math.Cos(x)).(T)
	case complex128:
		return any(cmplx.Cos(x)).(T)
	}
	panic("numeric: unreachable scalar type")
}

func Exp[T Scalar](v T) T {
	switch x := any(v).(type) {
	case float64:
		return any(math.Exp(x)).(T)
	case complex128:
		return any(cmplx.Exp(x)).(T)
	}
	panic("numeric: unreachable scalar type")
}

// Log is the natural logarithm. For a negative real argument it returns NaN,
// matching math.Log; pass a complex128 to get the principal branch.
func Log[T Scalar](v T) T {
	switch x := any(v).(type) {
	case float64:
		return any(math.Log(x)).(T)
	case complex128:
		return any(cmplx.Log(x)).(T)
	}
	panic("numeric: unreachable scalar type")
}
