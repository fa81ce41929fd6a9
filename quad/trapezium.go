package quad

import (
	"math/cmplx"

	"github.com/rs/zerolog/log"
)

const (
	// minSubdivisions before any convergence signal is trusted
	minSubdivisions = 16
	// maxSubdivisions caps the doubling; reaching it is logged, not failed
	maxSubdivisions = 1 << 16
	// negligibleMagnitude below which an estimate counts as zero
	negligibleMagnitude = 1e-8
)

type trapezium struct {
	IntegratorInfo
}

func (t *trapezium) Integrate(f Function, a, b, targetError float64) Output {
	return TrapeziumIntegrate(f, a, b, targetError)
}

// TrapeziumIntegrate integrates f over [a, b] with the composite trapezoidal
// rule, doubling the number of subdivisions until the relative change between
// consecutive estimates is below targetError (or the estimate is
// negligible), but never with fewer than 16 subdivisions.
//
// Each doubling evaluates only the new midpoints. ErrorEstimate is the
// absolute change between the last two estimates. If 2^16 subdivisions are
// reached the loop stops with a warning and whatever error it has.
func TrapeziumIntegrate(f Function, a, b, targetError float64) (out Output) {
	ends := (f(a) + f(b)) / 2
	out.Evaluations = 2

	var interior, previous complex128
	length := b - a
	for n := 2; ; n *= 2 {
		step := length / float64(n)
		for k := 1; k < n; k += 2 {
			interior += f(a + float64(k)*step)
			out.Evaluations++
		}
		out.Integral = (ends + interior) * complex(step, 0)

		if n == 2 {
			out.ErrorEstimate = cmplx.Abs(out.Integral)
			previous = out.Integral
			continue
		}

		change := cmplx.Abs(out.Integral - previous)
		magnitude := cmplx.Abs(out.Integral)
		out.ErrorEstimate = change
		previous = out.Integral

		if n >= minSubdivisions && (change <= targetError*magnitude || magnitude <= negligibleMagnitude) {
			break
		}
		if n >= maxSubdivisions {
			log.Warn().
				Int("subdivisions", n).
				Float64("error", change).
				Float64("target", targetError).
				Msg("trapezium: subdivision cap reached")
			break
		}
	}

	return
}
