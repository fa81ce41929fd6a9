// Package quad integrates complex valued functions of a real argument over a
// finite interval with adaptive termination.
//
// Neither integrator fails: both always return an Output, and an
// ErrorEstimate above the requested target tells the caller the integrand
// needs help (splitting at singularities, a change of variables) rather than
// a smaller tolerance.
package quad

import "math"

type Function func(x float64) complex128

type Output struct {
	// Integral is the estimate of the definite integral
	Integral complex128
	// ErrorEstimate is a best effort bound on the absolute error of Integral.
	// It is not guaranteed.
	ErrorEstimate float64
	// Evaluations is the exact number of times the integrand was called
	Evaluations uint
}

// Scale multiplies the integral by c and the error estimate by |c|.
func (o Output) Scale(c float64) Output {
	return Output{
		Integral:      complex(c*real(o.Integral), c*imag(o.Integral)),
		ErrorEstimate: math.Abs(c) * o.ErrorEstimate,
		Evaluations:   o.Evaluations,
	}
}

// Converged reports whether the error estimate met target.
func (o Output) Converged(target float64) bool {
	return o.ErrorEstimate <= target
}

type Integrator interface {
	Info() IntegratorInfo
	Integrate(f Function, a, b, targetError float64) Output
}

type IntegratorInfo struct {
	Name string
	// MaxEvaluations is the hard upper bound on integrand calls
	MaxEvaluations uint
}

func (i *IntegratorInfo) Info() IntegratorInfo {
	return *i
}
