// Package numeric holds the building blocks shared by the integrators and the
// special functions: a scalar capability that lets one algorithm body run over
// real and complex values, a convergent series accumulator, a rational
// polynomial evaluator and a value-with-error pair.
package numeric

import (
	"math"
	"math/cmplx"
)

// Scalar is the closed set of field types the algorithms are written for.
// Both support + - * / natively; everything else goes through the helpers
// below.
type Scalar interface {
	float64 | complex128
}

// Coefficient is any numeric type a coefficient table may be stored in.
type Coefficient interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// NormSquared returns x*x for reals and |z|^2 for complex values.
func NormSquared[T Scalar](v T) float64 {
	switch x := any(v).(type) {
	case float64:
		return x * x
	case complex128:
		return real(x)*real(x) + imag(x)*imag(x)
	}
	panic("numeric: unreachable scalar type")
}

// Abs returns |v|.
func Abs[T Scalar](v T) float64 {
	switch x := any(v).(type) {
	case float64:
		return math.Abs(x)
	case complex128:
		return cmplx.Abs(x)
	}
	panic("numeric: unreachable scalar type")
}

// Real returns the real part of v.
func Real[T Scalar](v T) float64 {
	switch x := any(v).(type) {
	case float64:
		return x
	case complex128:
		return real(x)
	}
	panic("numeric: unreachable scalar type")
}

// FromFloat converts a real number into T.
func FromFloat[T Scalar](f float64) T {
	var zero T
	switch any(zero).(type) {
	case float64:
		return any(f).(T)
	case complex128:
		return any(complex(f, 0)).(T)
	}
	panic("numeric: unreachable scalar type")
}

// FromInt converts a small integer into T.
func FromInt[T Scalar](n int) T {
	return FromFloat[T](float64(n))
}

// IsFinite reports whether every component of v is finite.
func IsFinite[T Scalar](v T) bool {
	switch x := any(v).(type) {
	case float64:
		return !math.IsNaN(x) && !math.IsInf(x, 0)
	case complex128:
		return !cmplx.IsNaN(x) && !cmplx.IsInf(x)
	}
	panic("numeric: unreachable scalar type")
}
