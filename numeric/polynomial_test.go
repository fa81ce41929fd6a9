package numeric

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestPolynomialRatioLinear(t *testing.T) {
	// (1 + 2x) / (3 + 4x) at x = 2
	ratio, power := PolynomialRatio([]float64{1, 2}, []float64{3, 4}, 2.0)
	assert.InDelta(t, 5.0/11.0, ratio, 1e-15)
	assert.Equal(t, 2.0, power)
}

func TestPolynomialRatioIntegerCoefficients(t *testing.T) {
	ratio, power := PolynomialRatio([]int32{1, 0, 1}, []int32{2, 0, 0}, complex(0, 1))
	assert.Equal(t, complex(0, 0), ratio)
	assert.Equal(t, complex(-1, 0), power)
}

func TestPolynomialRatioConstant(t *testing.T) {
	ratio, power := PolynomialRatio([]float64{6}, []float64{3}, 123.0)
	assert.Equal(t, 2.0, ratio)
	assert.Equal(t, 1.0, power)
}

func TestPolynomialRatioMismatchPanics(t *testing.T) {
	assert.Panics(t, func() {
		PolynomialRatio([]float64{1, 2}, []float64{1}, 1.0)
	})
}

func evaluate(coefficients []float64, x float64) float64 {
	sum := 0.0
	for i, c := range coefficients {
		sum += c * math.Pow(x, float64(i))
	}
	return sum
}

func TestPolynomialRatioProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 12).Draw(t, "n")
		numerator := rapid.SliceOfN(rapid.Float64Range(-10, 10), n, n).Draw(t, "numerator")
		denominator := rapid.SliceOfN(rapid.Float64Range(0.1, 10), n, n).Draw(t, "denominator")
		x := rapid.Float64Range(0, 2).Draw(t, "x")

		ratio, power := PolynomialRatio(numerator, denominator, x)

		product := 1.0
		for i := 1; i < n; i++ {
			product *= x
		}
		if power != product {
			t.Fatalf("highest power %v, want %v", power, product)
		}
		if want := math.Pow(x, float64(n-1)); math.Abs(power-want) > 1e-12*math.Max(1, want) {
			t.Fatalf("highest power %v, want x^%d = %v", power, n-1, want)
		}

		want := evaluate(numerator, x) / evaluate(denominator, x)
		if math.Abs(ratio-want) > 1e-9*math.Max(1, math.Abs(want)) {
			t.Fatalf("ratio %v, want %v", ratio, want)
		}
	})
}

func TestPolynomialRatioComplexMatchesReal(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		numerator := rapid.SliceOfN(rapid.Float64Range(-5, 5), 6, 6).Draw(t, "numerator")
		denominator := rapid.SliceOfN(rapid.Float64Range(0.5, 5), 6, 6).Draw(t, "denominator")
		x := rapid.Float64Range(0, 1).Draw(t, "x")

		realRatio, _ := PolynomialRatio(numerator, denominator, x)
		complexRatio, _ := PolynomialRatio(numerator, denominator, complex(x, 0))
		if cmplx.Abs(complexRatio-complex(realRatio, 0)) > 1e-12*math.Max(1, math.Abs(realRatio)) {
			t.Fatalf("complex evaluation %v differs from real %v", complexRatio, realRatio)
		}
	})
}
