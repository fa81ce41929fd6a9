package special

import (
	"math"

	"github.com/rollingthunder/specfun/numeric"
	"github.com/rollingthunder/specfun/quad"
)

// BesselIntegral evaluates J_n(x) through Bessel's integral (DLMF 10.9.2)
//
//	J_n(x) = 1/π ∫_0^π cos(nt - x sin t) dt
//
// with double exponential quadrature. It is independent of every regime Jn
// uses and reports its own error estimate.
//
// The interval is split at π/2, where cos(nt - x sin t) is stationary in x,
// and the halves are integrated to half the tolerance each.
func BesselIntegral(n int, x, tolerance float64) numeric.WithError[float64] {
	order := float64(n)
	integrand := func(t float64) complex128 {
		return complex(math.Cos(order*t-x*math.Sin(t)), 0)
	}

	return numeric.Combine(
		besselPiece(integrand, 0, math.Pi/2, tolerance),
		besselPiece(integrand, math.Pi/2, math.Pi, tolerance),
	)
}

// besselPiece is 1/π ∫_a^b f with an absolute target of tolerance/2.
func besselPiece(f quad.Function, a, b, tolerance float64) numeric.WithError[float64] {
	o := quad.DoubleExponentialIntegrate(f, a, b, tolerance*math.Pi/2)
	return numeric.WithError[float64]{
		Value: real(o.Integral) / math.Pi,
		Error: o.ErrorEstimate / math.Pi,
	}
}
