package quad

import "math"

// node is one symmetric pair of tanh-sinh abscissas ±x together with its
// weight. The weight already includes the step size of its level.
type node struct {
	weight, abscissa float64
}

const (
	// levelCount refinement levels, each halving the step in t
	levelCount = 7
	// tMax truncates the transformed variable; at t = 3 the weights are ~1e-12
	tMax = 3.0

	// MaxEvaluations is the number of integrand calls once every level is
	// used: the centre plus both sides of 192 nodes.
	MaxEvaluations = 385
)

// levels holds the abscissa/weight pairs per refinement level.
// Level 0 uses step 1 and t = 1, 2, 3; level k >= 1 adds the midpoints
// t = (2j-1)/2^k that were not part of any coarser level.
// The centre node t = 0 is handled separately by the integrator.
var levels = makeLevels()

func makeLevels() [][]node {
	out := make([][]node, levelCount)

	out[0] = make([]node, 0, int(tMax))
	for t := 1.0; t <= tMax; t++ {
		out[0] = append(out[0], tanhSinh(t, 1))
	}

	h := 1.0
	for level := 1; level < levelCount; level++ {
		h /= 2
		n := int(tMax/h) / 2
		nodes := make([]node, 0, n)
		for j := 1; j <= n; j++ {
			nodes = append(nodes, tanhSinh(float64(2*j-1)*h, h))
		}
		out[level] = nodes
	}
	return out
}

// tanhSinh maps t to x = tanh(π/2 sinh t) with weight
// h * (π/2) cosh t / cosh²(π/2 sinh t).
func tanhSinh(t, h float64) node {
	u := math.Pi / 2 * math.Sinh(t)
	coshU := math.Cosh(u)
	return node{
		weight:   h * math.Pi / 2 * math.Cosh(t) / (coshU * coshU),
		abscissa: math.Tanh(u),
	}
}

func countEvaluations(l [][]node) uint {
	count := uint(1)
	for _, nodes := range l {
		count += 2 * uint(len(nodes))
	}
	return count
}
