package quad

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelSizes(t *testing.T) {
	require.Len(t, levels, levelCount)

	sizes := make([]int, len(levels))
	for i, l := range levels {
		sizes[i] = len(l)
	}
	assert.Equal(t, []int{3, 3, 6, 12, 24, 48, 96}, sizes)
	assert.Equal(t, uint(MaxEvaluations), countEvaluations(levels))
}

func TestLevelNodes(t *testing.T) {
	for i, l := range levels {
		for _, n := range l {
			assert.Greater(t, n.abscissa, 0.0, "level %d", i)
			assert.Less(t, n.abscissa, 1.0, "level %d", i)
			assert.Greater(t, n.weight, 0.0, "level %d", i)
		}
	}

	// level 0, t = 1
	u := math.Pi / 2 * math.Sinh(1)
	assert.InDelta(t, math.Tanh(u), levels[0][0].abscissa, 1e-16)
	assert.InDelta(t, math.Pi/2*math.Cosh(1)/(math.Cosh(u)*math.Cosh(u)), levels[0][0].weight, 1e-16)
}

func TestWeightsSumToTwo(t *testing.T) {
	// the finest trapezoidal sum of the transformed weights integrates 1 over
	// [-1, 1]; only the truncation at t = 3 is missing
	h := 1.0
	for level := 1; level < levelCount; level++ {
		h /= 2
	}

	sum := math.Pi / 2 * h
	for level, l := range levels {
		// weights of coarser levels carry their own step; rescale to the finest
		scale := h / math.Pow(2, -float64(level))
		for _, n := range l {
			sum += 2 * n.weight * scale
		}
	}
	assert.InDelta(t, 2.0, sum, 1e-12)
}
