package special

import (
	"math"

	"github.com/rollingthunder/specfun/numeric"
)

const (
	// seriesTolerance is the relative size below which a power series term is
	// negligible (two in a row end the sum)
	seriesTolerance = 0.008
	seriesStreak    = 2

	// asymptoticOrderRatio is the eighth root of seriesTolerance. The McMahon
	// expansion carries terms up to x^-7, so its error is of that size once the
	// order is below this fraction of the argument.
	asymptoticOrderRatio = 0.54687

	// forward recurrence in the order is stable only while order < argument

	// seriesArgumentLimit and seriesOrderFactor bound the power series:
	// it is used for small arguments or when order > seriesOrderFactor * x².
	// Outside of these its alternating terms cancel catastrophically.
	seriesArgumentLimit = 10.0
	seriesOrderFactor   = 0.1 / 4

	// factorialOverflowOrder is the first n for which n! overflows float64
	factorialOverflowOrder = 171
)

// BesselRegime names the method Jn uses for an (order, argument) pair.
type BesselRegime int

const (
	// Reference evaluates orders 0 and 1 directly
	Reference BesselRegime = iota
	// Asymptotic is the McMahon large argument expansion
	Asymptotic
	// ForwardRecurrence climbs from J0 and J1
	ForwardRecurrence
	// PowerSeries is the small argument expansion (DLMF 10.2.2)
	PowerSeries
	// BackwardRecurrence delegates to math.Jn, which recurs downwards
	BackwardRecurrence
)

func (r BesselRegime) String() string {
	if r < 0 || int(r) >= len(regimes) {
		return "unknown"
	}
	return regimes[r].name
}

type regime struct {
	name    string
	applies func(n int, x float64) bool
	eval    func(n int, x float64) float64
}

// regimes are tried in order and the first that applies wins; the order is
// part of the stability argument, each guard assumes the earlier ones failed.
// n >= 0 and x >= 0 here.
var regimes = [...]regime{
	Reference: {
		name:    "reference",
		applies: func(n int, x float64) bool { return n <= 1 },
		eval:    referenceBessel,
	},
	Asymptotic: {
		name:    "asymptotic",
		applies: func(n int, x float64) bool { return float64(n) < x*asymptoticOrderRatio },
		eval:    largeArgumentExpansion,
	},
	ForwardRecurrence: {
		name:    "forward recurrence",
		applies: func(n int, x float64) bool { return float64(n) < x },
		eval:    forwardRecurrence,
	},
	PowerSeries: {
		name: "power series",
		applies: func(n int, x float64) bool {
			return x < seriesArgumentLimit || seriesOrderFactor*x*x < float64(n)
		},
		eval: smallArgumentExpansion,
	},
	BackwardRecurrence: {
		name:    "backward recurrence",
		applies: func(int, float64) bool { return true },
		eval:    math.Jn,
	},
}

// Jn is the Bessel function of the first kind J_n(x) (DLMF 10.2.2) for any
// integer order and real argument.
//
// Negative orders and arguments are reduced with J_{-n}(x) = (-1)^n J_n(x) and
// J_n(-x) = (-1)^n J_n(x), so both symmetries hold exactly.
func Jn(n int, x float64) float64 {
	n, x, sign := reduce(n, x)
	return sign * regimes[selectRegime(n, x)].eval(n, x)
}

// Regime reports which method Jn(n, x) uses.
func Regime(n int, x float64) BesselRegime {
	n, x, _ = reduce(n, x)
	return selectRegime(n, x)
}

func reduce(n int, x float64) (int, float64, float64) {
	sign := 1.0
	if n < 0 {
		n = -n
		if n%2 == 1 {
			sign = -sign
		}
	}
	if x < 0 {
		x = -x
		if n%2 == 1 {
			sign = -sign
		}
	}
	return n, x, sign
}

func selectRegime(n int, x float64) BesselRegime {
	for r := range regimes {
		if regimes[r].applies(n, x) {
			return BesselRegime(r)
		}
	}
	return BackwardRecurrence
}

func referenceBessel(n int, x float64) float64 {
	if n == 0 {
		return j0(x)
	}
	return j1(x)
}

func j0(x float64) float64 {
	if x == 0 {
		return 1
	}
	return math.J0(x)
}

func j1(x float64) float64 {
	if x == 0 {
		return 0
	}
	return math.J1(x)
}

// largeArgumentExpansion is the McMahon expansion with amplitude and phase
// corrections through x^-7 (Abramowitz & Stegun 9.2.28, 9.2.29).
func largeArgumentExpansion(n int, x float64) float64 {
	mu := 4 * float64(n) * float64(n)

	x3 := x * x * x
	x5 := x3 * x * x
	x7 := x5 * x * x

	d := 4 * x * x
	d2 := d * d
	d3 := d2 * d

	amplitude := math.Sqrt(1 +
		0.5*(mu-1)/d +
		0.375*(mu-1)*(mu-9)/d2 +
		0.3125*(mu-1)*(mu-9)*(mu-25)/d3)

	phase := x - (0.5*float64(n)+0.25)*math.Pi +
		(mu-1)/(8*x) +
		(mu-1)*(mu-25)/(384*x3) +
		(mu-1)*(mu*mu-114*mu+1073)/(5120*x5) +
		(mu-1)*(5*mu*mu*mu-1535*mu*mu+54703*mu-375733)/(229376*x7)

	return math.Sqrt(2/(math.Pi*x)) * amplitude * math.Cos(phase)
}

// forwardRecurrence applies J_{k+1} = (2k/x) J_k - J_{k-1} starting from J0, J1.
func forwardRecurrence(n int, x float64) float64 {
	factor := 2 / x
	previous, current := j0(x), j1(x)
	for k := 1; k < n; k++ {
		previous, current = current, float64(k)*factor*current-previous
	}
	return current
}

// smallArgumentExpansion sums (x/2)^n / n! Σ_k (-x²/4)^k / (k! (n+1)_k).
func smallArgumentExpansion(n int, x float64) float64 {
	q := -x * x / 4
	term := 1.0
	sum := numeric.SumWithStreak(seriesTolerance, seriesStreak, 0, 1, func(k int) float64 {
		if k > 0 {
			term *= q / float64(k*(k+n))
		}
		return term
	})

	if n < factorialOverflowOrder {
		return sum * math.Pow(x/2, float64(n)) / math.Gamma(float64(n)+1)
	}
	lgamma, _ := math.Lgamma(float64(n) + 1)
	return sum * math.Exp(float64(n)*math.Log(x/2)-lgamma)
}
