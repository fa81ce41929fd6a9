package special

import (
	"fmt"
	"math"

	"github.com/rollingthunder/specfun/numeric"
)

const ellipticTolerance = 1e-14

// K is the complete elliptic integral of the first kind in terms of the
// modulus (DLMF 19.2.8), summed as the power series
//
//	K(k) = π/2 Σ [(1/2)_n / n!]² k^(2n)    (DLMF 19.5.1)
//
// The series only converges inside the unit disc; K panics for |k| >= 1.
func K[T numeric.Scalar](k T) T {
	if numeric.Abs(k) >= 1 {
		panic(fmt.Sprintf("special: elliptic K outside the unit disc, |k| = %g", numeric.Abs(k)))
	}

	k2 := k * k
	coefficient := 1.0
	power := numeric.FromInt[T](1)
	sum := numeric.SumSeries(ellipticTolerance, 0, 1, func(n int) T {
		if n > 0 {
			ratio := float64(2*n-1) / float64(2*n)
			coefficient *= ratio * ratio
			power *= k2
		}
		return numeric.FromFloat[T](coefficient) * power
	})
	return numeric.FromFloat[T](math.Pi/2) * sum
}
