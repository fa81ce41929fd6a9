package special

import (
	"math"
	"math/cmplx"
)

// Lanczos approximation with g = 7 and nine coefficients.
const lanczosG = 7

var lanczosCoefficients = [...]float64{
	0.99999999999980993,
	676.5203681218851,
	-1259.1392167224028,
	771.32342877765313,
	-176.61502916214059,
	12.507343278686905,
	-0.13857109526572012,
	9.9843695780195716e-6,
	1.5056327351493116e-7,
}

// Gamma is the gamma function (DLMF 5.2.1) on the complex plane. The left
// half plane is reached by reflection (DLMF 5.5.3). For real arguments
// math.Gamma is exact to the last bit and should be preferred.
func Gamma(z complex128) complex128 {
	if real(z) < 0.5 {
		return math.Pi / (cmplx.Sin(math.Pi*z) * Gamma(1-z))
	}

	z -= 1
	sum := complex(lanczosCoefficients[0], 0)
	for i := 1; i < len(lanczosCoefficients); i++ {
		sum += complex(lanczosCoefficients[i], 0) / (z + complex(float64(i), 0))
	}

	t := z + lanczosG + 0.5
	return complex(math.Sqrt(2*math.Pi), 0) * cmplx.Pow(t, z+0.5) * cmplx.Exp(-t) * sum
}
