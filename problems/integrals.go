package problems

import (
	"fmt"
	"math"
	"math/cmplx"
)

type integral struct {
	description string
	a, b        float64
	f           func(float64) complex128
	value       complex128
	singular    bool
}

func (i *integral) Description() string            { return i.description }
func (i *integral) Limits() (a, b float64)         { return i.a, i.b }
func (i *integral) Integrand(x float64) complex128 { return i.f(x) }
func (i *integral) Value() complex128              { return i.value }
func (i *integral) Singular() bool                 { return i.singular }

func realValued(f func(float64) float64) func(float64) complex128 {
	return func(x float64) complex128 { return complex(f(x), 0) }
}

// NewConstant is ∫_{-1}^{1} alpha dx.
func NewConstant(alpha float64) Problem {
	return &integral{
		description: fmt.Sprintf("∫_{-1}^{1} %v dx", alpha),
		a:           -1,
		b:           1,
		f:           func(float64) complex128 { return complex(alpha, 0) },
		value:       complex(2*alpha, 0),
	}
}

// NewSquare is ∫_0^3 x² dx.
func NewSquare() Problem {
	return &integral{
		description: "∫_0^3 x² dx",
		a:           0,
		b:           3,
		f:           realValued(func(x float64) float64 { return x * x }),
		value:       9,
	}
}

// NewSine is ∫_0^{2π} sin x dx.
func NewSine() Problem {
	return &integral{
		description: "∫_0^{2π} sin x dx",
		a:           0,
		b:           2 * math.Pi,
		f:           realValued(math.Sin),
		value:       0,
	}
}

// NewExpCubeRoot is ∫_0^{10} exp(-x/5) x^{-1/3} dx, singular at 0.
func NewExpCubeRoot() Problem {
	return &integral{
		description: "∫_0^{10} exp(-x/5) x^{-1/3} dx",
		a:           0,
		b:           10,
		f: realValued(func(x float64) float64 {
			return math.Exp(-x/5) * math.Pow(x, -1.0/3)
		}),
		value:    3.6798142583691758,
		singular: true,
	}
}

// NewBetaLike is ∫_0^1 (1-x)^5 x^{-1/3} dx, singular at 0.
func NewBetaLike() Problem {
	return &integral{
		description: "∫_0^1 (1-x)^5 x^{-1/3} dx",
		a:           0,
		b:           1,
		f: realValued(func(x float64) float64 {
			return math.Pow(1-x, 5) * math.Pow(x, -1.0/3)
		}),
		value:    0.41768525592055004,
		singular: true,
	}
}

// NewNearlyLinear is ∫_0^1 (1-x)^0.99 dx, whose derivative is singular at 1.
func NewNearlyLinear() Problem {
	return &integral{
		description: "∫_0^1 (1-x)^0.99 dx",
		a:           0,
		b:           1,
		f: realValued(func(x float64) float64 {
			return math.Pow(1-x, 0.99)
		}),
		value: 1 / 1.99,
	}
}

// NewAbs is ∫_{-1}^{1} |x| dx, with a kink at the centre.
func NewAbs() Problem {
	return &integral{
		description: "∫_{-1}^{1} |x| dx",
		a:           -1,
		b:           1,
		f:           realValued(math.Abs),
		value:       1,
	}
}

// NewDoubleKink is ∫_{-1}^{1} |1/2 - |x|| dx, with kinks away from the centre.
func NewDoubleKink() Problem {
	return &integral{
		description: "∫_{-1}^{1} |1/2 - |x|| dx",
		a:           -1,
		b:           1,
		f: realValued(func(x float64) float64 {
			return math.Abs(0.5 - math.Abs(x))
		}),
		value: 0.5,
	}
}

// NewOscillatory is ∫_0^π e^{ix} dx = 2i.
func NewOscillatory() Problem {
	return &integral{
		description: "∫_0^π e^{ix} dx",
		a:           0,
		b:           math.Pi,
		f: func(x float64) complex128 {
			return cmplx.Exp(complex(0, x))
		},
		value: 2i,
	}
}

// NewBesselIntegral is Bessel's integral (DLMF 10.9.2)
// (1/π) ∫_0^π cos(nτ - x sin τ) dτ = J_n(x).
func NewBesselIntegral(n int, x float64) Problem {
	return &integral{
		description: fmt.Sprintf("(1/π) ∫_0^π cos(%dτ - %v sin τ) dτ", n, x),
		a:           0,
		b:           math.Pi,
		f: realValued(func(tau float64) float64 {
			return math.Cos(float64(n)*tau-x*math.Sin(tau)) / math.Pi
		}),
		value: complex(math.Jn(n, x), 0),
	}
}

// Catalogue returns the named problems used by the CLI and the integrator
// tests.
func Catalogue() map[string]Problem {
	return map[string]Problem{
		"constant":     NewConstant(0.5),
		"square":       NewSquare(),
		"sine":         NewSine(),
		"expcuberoot":  NewExpCubeRoot(),
		"betalike":     NewBetaLike(),
		"nearlylinear": NewNearlyLinear(),
		"abs":          NewAbs(),
		"doublekink":   NewDoubleKink(),
		"oscillatory":  NewOscillatory(),
		"bessel":       NewBesselIntegral(3, 2.5),
	}
}
