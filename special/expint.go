package special

import (
	"math/cmplx"

	"github.com/rollingthunder/specfun/numeric"
)

const (
	// einRationalLimit bounds the rational approximation of Ein around zero
	einRationalLimit = 4.0
	// einSeriesTolerance ends the power series once terms stop contributing
	einSeriesTolerance = epsilon
	// einSeriesReach bounds |z| + Re z for the power series in the left half
	// plane. Its largest terms exceed the sum by about exp(|z| + Re z).
	einSeriesReach = 20.0
)

// Ein is the complementary exponential integral (DLMF 6.2.3), an entire
// function with Ein(z) = E1(z) + ln z + γ.
//
// Near zero a rational approximation is used, away from it the E1 continued
// fraction in 1/z. The truncated fraction is poor close to the negative real
// axis, so there the power series (DLMF 6.6.4) is summed instead: for
// Re z < 0 and |z| + Re z < 20, where its terms cancel little.
func Ein(z complex128) complex128 {
	switch {
	case real(z) < 0 && cmplx.Abs(z)+real(z) < einSeriesReach:
		return einSeries(z)
	case cmplx.Abs(z) < einRationalLimit:
		r, _ := numeric.PolynomialRatio(einNumerator[:], einDenominator[:], z)
		return z * r
	}
	return e1(z) + cmplx.Log(z) + EulerGamma
}

// e1 is the exponential integral E1 (DLMF 6.2.1) for |z| >= 4 away from the
// negative real axis.
func e1(z complex128) complex128 {
	r, _ := numeric.PolynomialRatio(e1Numerator[:], e1Denominator[:], 1/z)
	return cmplx.Exp(-z) / z * r
}

// einSeries sums Σ_{k>=1} (-1)^{k+1} z^k / (k k!).
func einSeries(z complex128) complex128 {
	power := complex(-1, 0)
	return numeric.SumSeries(einSeriesTolerance, 1, 1, func(k int) complex128 {
		power *= -z / complex(float64(k), 0)
		return power / complex(float64(k), 0)
	})
}

var einNumerator = [...]float64{
	0.10000000000000000000e1,
	0.20502084567791706628e0,
	0.39390751931629655245e-1,
	0.34858236552923791179e-2,
	0.29317755061426648946e-3,
	0.13754735702992239386e-4,
	0.60964461747745580030e-6,
	0.14447186550089174805e-7,
	0.30430043273133224684e-9,
	0.22059389087476526250e-11,
	0.49848280581687288340e-14,
}

var einDenominator = [...]float64{
	0.10000000000000000000e1,
	0.45502084567791806628e0,
	0.97590407795553366258e-1,
	0.13021156399851994778e-1,
	0.11999111377470476100e-2,
	0.80015095592166145984e-4,
	0.39222830738857592254e-5,
	0.14003621189603245150e-6,
	0.55465894537386945817e-10,
	0.42591339012402143020e-12,
	0,
}

// E1 continued fraction convergent, ascending powers of 1/z
var e1Numerator = [...]int32{
	1,
	109,
	4842,
	114064,
	1553663,
	12518100,
	58603440,
	150023520,
	184386240,
	80627040,
	3628800,
}

var e1Denominator = [...]int32{
	1,
	110,
	4950,
	118800,
	1663200,
	13970880,
	69854400,
	199584000,
	299376000,
	199584000,
	39916800,
}
