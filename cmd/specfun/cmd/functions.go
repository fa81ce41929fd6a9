package cmd

import (
	"fmt"
	"math/cmplx"
	"sort"

	"github.com/rollingthunder/specfun/numeric"
	"github.com/rollingthunder/specfun/special"
)

// evaluator computes one function value. order and tolerance are ignored by
// functions that take neither.
type evaluator func(z complex128, order int, tolerance float64) numeric.WithError[complex128]

func exact(f func(complex128) complex128) evaluator {
	return func(z complex128, _ int, _ float64) numeric.WithError[complex128] {
		return numeric.WithError[complex128]{Value: f(z)}
	}
}

var functions = map[string]evaluator{
	"jn": func(z complex128, n int, _ float64) numeric.WithError[complex128] {
		return numeric.WithError[complex128]{Value: complex(special.Jn(n, real(z)), 0)}
	},
	"besselintegral": func(z complex128, n int, tolerance float64) numeric.WithError[complex128] {
		w := special.BesselIntegral(n, real(z), tolerance)
		return numeric.WithError[complex128]{Value: complex(w.Value, 0), Error: w.Error}
	},
	"si":    exact(special.Si[complex128]),
	"ci":    exact(special.Ci[complex128]),
	"cin":   exact(special.Cin[complex128]),
	"f":     exact(special.F[complex128]),
	"g":     exact(special.G[complex128]),
	"ein":   exact(special.Ein),
	"gamma": exact(special.Gamma),
	"k":     exact(special.K[complex128]),
}

// lookup finds a function and rejects arguments it is not defined for.
func lookup(name string, z complex128) (evaluator, error) {
	f, ok := functions[name]
	if !ok {
		return nil, fmt.Errorf("unknown function %q, expected one of %v", name, functionNames())
	}
	if name == "k" && cmplx.Abs(z) >= 1 {
		return nil, fmt.Errorf("k is only defined for |x| < 1, got %v", z)
	}
	return f, nil
}

// usesOrder reports whether name is parameterised by an integer order.
func usesOrder(name string) bool {
	return name == "jn" || name == "besselintegral"
}

func functionNames() []string {
	names := make([]string, 0, len(functions))
	for name := range functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
