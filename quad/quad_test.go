package quad_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rollingthunder/specfun/problems"
	"github.com/rollingthunder/specfun/quad"
	. "github.com/rollingthunder/specfun/quad/testing"
)

func testIntegrators(t *testing.T) (integrators []quad.Integrator) {
	integrators = make([]quad.Integrator, quad.NumberOfMethods)
	for j := 0; j < int(quad.NumberOfMethods); j++ {
		m, err := quad.New(quad.Method(j))
		if err != nil {
			t.Errorf("Couldn't create quadrature method %d: %s", j, err.Error())
		} else {
			integrators[j] = m
		}
	}
	return
}

func TestAllIntegrators(t *testing.T) {
	RunIntegratorTests(t, testIntegrators(t), []IntegrationTest{
		{Name: "constant", Problem: problems.NewConstant(0.5), Target: 1e-12, Tolerance: 1e-10},
		{Name: "square", Problem: problems.NewSquare(), Target: 1e-8, Tolerance: 1e-6},
		{Name: "sine", Problem: problems.NewSine(), Target: 1e-8, Tolerance: 1e-6},
		{Name: "oscillatory", Problem: problems.NewOscillatory(), Target: 1e-8, Tolerance: 1e-6},
		{Name: "bessel", Problem: problems.NewBesselIntegral(3, 2.5), Target: 1e-8, Tolerance: 1e-6},
		{Name: "expcuberoot", Problem: problems.NewExpCubeRoot(), Target: 1e-6, Tolerance: 1e-6},
	})
}

func TestDoubleExponential(t *testing.T) {
	de, err := quad.New(quad.DoubleExponential)
	require.NoError(t, err)

	RunIntegratorTests(t, []quad.Integrator{de}, []IntegrationTest{
		{Name: "constant", Problem: problems.NewConstant(0.5), Target: 1e-14, Tolerance: 1e-12},
		{Name: "square", Problem: problems.NewSquare(), Target: 1e-10, Tolerance: 1e-8},
		{Name: "oscillatory", Problem: problems.NewOscillatory(), Target: 1e-10, Tolerance: 1e-8},
		{Name: "bessel", Problem: problems.NewBesselIntegral(3, 2.5), Target: 1e-10, Tolerance: 1e-8},
		{Name: "betalike", Problem: problems.NewBetaLike(), Target: 1e-6, Tolerance: 1e-6, WithinEstimate: true},
		{Name: "nearlylinear", Problem: problems.NewNearlyLinear(), Target: 1e-6, Tolerance: 1e-6, WithinEstimate: true},
		{Name: "abs", Problem: problems.NewAbs(), Target: 1e-6, Tolerance: 1e-2, WithinEstimate: true},
		{Name: "doublekink", Problem: problems.NewDoubleKink(), Target: 1e-6, Tolerance: 1e-2, WithinEstimate: true},
	})
}

func TestTrapeziumCatalogue(t *testing.T) {
	tr, err := quad.New(quad.Trapezium)
	require.NoError(t, err)

	RunIntegratorTests(t, []quad.Integrator{tr}, CatalogueTests(1e-8, 1e-6))
}

func TestDoubleExponentialConstant(t *testing.T) {
	o := quad.DoubleExponentialIntegrate(func(float64) complex128 { return 0.5 }, -1, 1, 1e-14)
	assert.LessOrEqual(t, o.ErrorEstimate, 1e-14, "error estimate larger than asked")
	assert.InDelta(t, 1.0, real(o.Integral), 1e-13)
}

func TestDoubleExponentialSingularEndpoint(t *testing.T) {
	o := quad.DoubleExponentialIntegrate(func(x float64) complex128 {
		return complex(math.Exp(-x/5)*math.Pow(x, -1.0/3), 0)
	}, 0, 10, 1e-6)
	assert.LessOrEqual(t, o.ErrorEstimate, 1e-6, "error estimate larger than asked")
	assert.InDelta(t, 0.0, cmplx.Abs(o.Integral-3.6798142583691758), 1e-6)
}

func TestDoubleExponentialLargeInterval(t *testing.T) {
	o := quad.DoubleExponentialIntegrate(func(x float64) complex128 {
		return complex(math.Exp(-x/5000)*math.Pow(x/1000, -1.0/3), 0)
	}, 0, 10000, 1e-6)
	assert.LessOrEqual(t, o.ErrorEstimate, 1e-6)
}

func TestDoubleExponentialReversedLimits(t *testing.T) {
	forward := quad.DoubleExponentialIntegrate(func(x float64) complex128 { return complex(x*x, 0) }, 0, 3, 1e-10)
	backward := quad.DoubleExponentialIntegrate(func(x float64) complex128 { return complex(x*x, 0) }, 3, 0, 1e-10)

	assert.InDelta(t, -real(forward.Integral), real(backward.Integral), 1e-10)
	assert.GreaterOrEqual(t, backward.ErrorEstimate, 0.0)
}

func TestDoubleExponentialNonFinite(t *testing.T) {
	// 1/x is infinite at the centre abscissa; the pairs cancel exactly
	o := quad.DoubleExponentialIntegrate(func(x float64) complex128 { return complex(1/x, 0) }, -1, 1, 1e-10)
	assert.Equal(t, complex(0, 0), o.Integral)
	assert.Equal(t, 0.0, o.ErrorEstimate)

	nan := quad.DoubleExponentialIntegrate(func(x float64) complex128 { return complex(math.NaN(), 0) }, 0, 1, 1e-10)
	assert.Equal(t, complex(0, 0), nan.Integral)

	// an infinite imaginary part alone is enough to drop the value
	imaginary := quad.DoubleExponentialIntegrate(func(x float64) complex128 { return complex(0, 1/x) }, -1, 1, 1e-10)
	assert.Equal(t, complex(0, 0), imaginary.Integral)
}

func TestDoubleExponentialEvaluationCap(t *testing.T) {
	calls := uint(0)
	step := func(x float64) complex128 {
		calls++
		if x < 0.3 {
			return 1
		}
		return 0
	}

	// a discontinuity away from any node never reaches a target of zero
	o := quad.DoubleExponentialIntegrate(step, 0, 1, 0)
	assert.Equal(t, uint(quad.MaxEvaluations), o.Evaluations)
	assert.Equal(t, calls, o.Evaluations)
	assert.False(t, o.Converged(0))
	assert.InDelta(t, 0.3, real(o.Integral), 1e-2)
}

func TestTrapeziumSine(t *testing.T) {
	o := quad.TrapeziumIntegrate(func(x float64) complex128 { return complex(math.Sin(x), 0) }, 0, 2*math.Pi, 0.01)
	assert.Less(t, cmplx.Abs(o.Integral), 0.1)
}

func TestTrapeziumSquare(t *testing.T) {
	o := quad.TrapeziumIntegrate(func(x float64) complex128 { return complex(x*x, 0) }, 0, 3, 0.01)
	assert.InDelta(t, 9.0, real(o.Integral), 0.05)
}

func TestTrapeziumShiftedInterval(t *testing.T) {
	o := quad.TrapeziumIntegrate(func(x float64) complex128 { return complex(x, 0) }, 2, 4, 1e-10)
	assert.InDelta(t, 6.0, real(o.Integral), 1e-12)
}

func TestTrapeziumMinimumSubdivisions(t *testing.T) {
	// a linear integrand is exact from the start but 16 subdivisions are
	// still required: 2 endpoints + 15 interior points
	calls := uint(0)
	o := quad.TrapeziumIntegrate(func(x float64) complex128 {
		calls++
		return complex(x, 0)
	}, 0, 1, 1e-6)
	assert.Equal(t, uint(17), o.Evaluations)
	assert.Equal(t, calls, o.Evaluations)
}

func TestTrapeziumCap(t *testing.T) {
	calls := uint(0)
	o := quad.TrapeziumIntegrate(func(x float64) complex128 {
		calls++
		return complex(x*x, 0)
	}, 0, 3, 0)

	assert.Equal(t, uint(1<<16+1), o.Evaluations)
	assert.Equal(t, calls, o.Evaluations)
	assert.Greater(t, o.ErrorEstimate, 0.0)
	assert.InDelta(t, 9.0, real(o.Integral), 1e-6)
}

func TestOutputScale(t *testing.T) {
	o := quad.Output{Integral: complex(1, -2), ErrorEstimate: 1e-3, Evaluations: 7}
	s := o.Scale(-2)
	assert.Equal(t, complex(-2, 4), s.Integral)
	assert.Equal(t, 2e-3, s.ErrorEstimate)
	assert.Equal(t, uint(7), s.Evaluations)
}

func TestParseMethod(t *testing.T) {
	for j := 0; j < int(quad.NumberOfMethods); j++ {
		m := quad.Method(j)
		parsed, err := quad.ParseMethod(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}
	_, err := quad.ParseMethod("simpson")
	assert.Error(t, err)
	_, err = quad.New(quad.Method(42))
	assert.Error(t, err)
}

func BenchmarkDoubleExponential(b *testing.B) {
	p := problems.NewExpCubeRoot()
	lo, hi := p.Limits()
	for i := 0; i < b.N; i++ {
		quad.DoubleExponentialIntegrate(p.Integrand, lo, hi, 1e-6)
	}
}

func BenchmarkTrapezium(b *testing.B) {
	p := problems.NewSquare()
	lo, hi := p.Limits()
	for i := 0; i < b.N; i++ {
		quad.TrapeziumIntegrate(p.Integrand, lo, hi, 1e-8)
	}
}
