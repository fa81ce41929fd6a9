package quad

import (
	"math"
	"math/cmplx"

	"github.com/rollingthunder/specfun/numeric"
)

type doubleExponential struct {
	IntegratorInfo
}

func (d *doubleExponential) Integrate(f Function, a, b, targetError float64) Output {
	return DoubleExponentialIntegrate(f, a, b, targetError)
}

// DoubleExponentialIntegrate integrates f over [a, b] with the tanh-sinh rule.
//
// The integrand is never evaluated at a or b, so integrable endpoint
// singularities need no special treatment. Non-finite values of f are
// replaced by zero. At most MaxEvaluations calls are made; the error estimate
// decreases roughly like exp(-cN/log N) in the number of calls N.
func DoubleExponentialIntegrate(f Function, a, b, targetError float64) Output {
	// x = c t + d maps [-1, 1] onto [a, b]
	c := 0.5 * (b - a)
	d := 0.5 * (a + b)

	g := func(t float64) complex128 {
		v := f(c*t + d)
		if !numeric.IsFinite(v) {
			return 0
		}
		return v
	}

	return integrateCore(g, 0.25*targetError/math.Abs(c)).Scale(c)
}

// integrateCore integrates f over [-1, 1].
func integrateCore(f Function, targetError float64) (out Output) {
	out.ErrorEstimate = math.MaxFloat64
	currentDelta := math.MaxFloat64

	// seeded with twice the centre term so that halving on the first level
	// leaves weight π/2 at t = 0
	integral := complex(math.Pi, 0) * f(0)
	out.Evaluations = 1

	for level, nodes := range levels {
		var contribution complex128
		for _, n := range nodes {
			contribution += complex(n.weight, 0) * (f(n.abscissa) + f(-n.abscissa))
		}
		out.Evaluations += 2 * uint(len(nodes))

		previousDeltaLog := math.Log(currentDelta)
		currentDelta = cmplx.Abs(0.5*integral - contribution)
		integral = 0.5*integral + contribution

		// the first two deltas say nothing about the convergence rate
		if level <= 1 {
			continue
		}

		// exact agreement; also keeps log(0) out of the ratio below
		if currentDelta == 0 {
			out.ErrorEstimate = 0
			break
		}

		// in the convergent region each level roughly squares the error
		r := math.Log(currentDelta) / previousDeltaLog
		if r > 1.9 && r < 2.1 {
			out.ErrorEstimate = currentDelta * currentDelta
		} else {
			out.ErrorEstimate = currentDelta
		}

		if out.ErrorEstimate < targetError {
			break
		}
	}

	out.Integral = integral
	return
}
