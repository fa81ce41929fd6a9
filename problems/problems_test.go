package problems

import (
	"math/cmplx"
	"testing"
)

// midpoint never evaluates the endpoints, so it also handles the singular
// problems, if slowly.
func midpoint(p Problem, n int) complex128 {
	a, b := p.Limits()
	h := (b - a) / float64(n)
	var sum complex128
	for i := 0; i < n; i++ {
		sum += p.Integrand(a + (float64(i)+0.5)*h)
	}
	return sum * complex(h, 0)
}

func TestCatalogueValues(t *testing.T) {
	for name, p := range Catalogue() {
		tolerance := 1e-8
		if IsSingular(p) {
			tolerance = 1e-2
		}
		got := midpoint(p, 1000000)
		if testing.Verbose() {
			t.Log(name, p.Description(), got, p.Value())
		}
		if cmplx.Abs(got-p.Value()) > tolerance {
			t.Errorf("%s: midpoint sum %v, recorded value %v", name, got, p.Value())
		}
	}
}

func TestSingular(t *testing.T) {
	if !IsSingular(NewExpCubeRoot()) || !IsSingular(NewBetaLike()) {
		t.Error("endpoint singularities not declared")
	}
	if IsSingular(NewSquare()) || IsSingular(NewNearlyLinear()) {
		t.Error("regular problem declared singular")
	}
}

func TestLimits(t *testing.T) {
	for name, p := range Catalogue() {
		if a, b := p.Limits(); !(a < b) {
			t.Errorf("%s: limits %v, %v out of order", name, a, b)
		}
		if p.Description() == "" {
			t.Errorf("%s: no description", name)
		}
	}
}
