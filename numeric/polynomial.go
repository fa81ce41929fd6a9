package numeric

import "fmt"

// PolynomialRatio evaluates P(x)/Q(x) where numerator[i] and denominator[i]
// multiply x^i. Both polynomials are accumulated in a single pass sharing the
// running power of x, which is returned as the second value (x^(len-1)).
//
// The two tables must have the same non-zero length; a mismatch is a
// programming error and panics.
func PolynomialRatio[C Coefficient, T Scalar](numerator, denominator []C, x T) (ratio, highestPower T) {
	if len(numerator) != len(denominator) || len(numerator) == 0 {
		panic(fmt.Sprintf("numeric: coefficient tables of length %d and %d", len(numerator), len(denominator)))
	}

	p := FromFloat[T](float64(numerator[0]))
	q := FromFloat[T](float64(denominator[0]))
	power := FromInt[T](1)
	for i := 1; i < len(numerator); i++ {
		power *= x
		p += power * FromFloat[T](float64(numerator[i]))
		q += power * FromFloat[T](float64(denominator[i]))
	}

	return p / q, power
}
