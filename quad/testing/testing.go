// Package testing runs quadrature integrators against problems with known
// values.
package testing

import (
	"math/cmplx"
	"sort"
	"testing"

	"github.com/rollingthunder/specfun/problems"
	"github.com/rollingthunder/specfun/quad"
)

type IntegrationTest struct {
	Name    string
	Problem problems.Problem
	// Target is passed to the integrator
	Target float64
	// Tolerance is the largest accepted |integral - value|
	Tolerance float64
	// WithinEstimate additionally requires |integral - value| <= ErrorEstimate
	WithinEstimate bool
}

// CatalogueTests builds one test per catalogue problem with a common target
// and tolerance, sorted by name.
func CatalogueTests(target, tolerance float64) []IntegrationTest {
	catalogue := problems.Catalogue()
	names := make([]string, 0, len(catalogue))
	for name := range catalogue {
		names = append(names, name)
	}
	sort.Strings(names)

	tests := make([]IntegrationTest, 0, len(names))
	for _, name := range names {
		tests = append(tests, IntegrationTest{
			Name:      name,
			Problem:   catalogue[name],
			Target:    target,
			Tolerance: tolerance,
		})
	}
	return tests
}

// RunIntegratorTests integrates every test with every integrator. Problems
// with endpoint singularities are skipped for integrators that evaluate the
// endpoints (the trapezium).
func RunIntegratorTests(t *testing.T, integrators []quad.Integrator, tests []IntegrationTest) {
	for _, m := range integrators {
		if m == nil {
			continue
		}

		info := m.Info()

		if testing.Verbose() {
			t.Logf("%s\tTest\tIntegral\tError\tEval", info.Name)
		}

		for _, v := range tests {
			if problems.IsSingular(v.Problem) && info.Name == "Trapezium" {
				t.Logf("Skipped Test %s for %s, singular endpoint", v.Name, info.Name)
				continue
			}

			calls := uint(0)
			f := func(x float64) complex128 {
				calls++
				return v.Problem.Integrand(x)
			}
			a, b := v.Problem.Limits()

			out := m.Integrate(f, a, b, v.Target)
			diff := cmplx.Abs(out.Integral - v.Problem.Value())

			if diff > v.Tolerance {
				t.Errorf("%s %s: expected %v but result was %v (error estimate %g)",
					info.Name, v.Name, v.Problem.Value(), out.Integral, out.ErrorEstimate)
			}
			if v.WithinEstimate && diff > out.ErrorEstimate {
				t.Errorf("%s %s: actual error %g larger than estimate %g",
					info.Name, v.Name, diff, out.ErrorEstimate)
			}
			if out.Evaluations != calls {
				t.Errorf("%s %s: reported %d evaluations but integrand was called %d times",
					info.Name, v.Name, out.Evaluations, calls)
			}
			if out.Evaluations > info.MaxEvaluations {
				t.Errorf("%s %s: %d evaluations exceed the cap of %d",
					info.Name, v.Name, out.Evaluations, info.MaxEvaluations)
			}
			if testing.Verbose() {
				t.Logf(" \t%s\t%.10g\t%.2g\t%d", v.Name, out.Integral, out.ErrorEstimate, out.Evaluations)
			}
		}
	}
}
