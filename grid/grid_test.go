package grid

import (
	"context"
	"errors"
	"math"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rollingthunder/specfun/util"
)

func TestOneD(t *testing.T) {
	d, err := NewOneD(1, 3, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, d.Values)

	d, err = NewOneD(0, 0.3, 4)
	require.NoError(t, err)
	eq, i := util.SliceEpsEqual([]float64{0, 0.1, 0.2, 0.3}, d.Values, 1e-15)
	assert.True(t, eq, "mismatch at %d", i)
	assert.Equal(t, 0.3, d.Values[3])
}

func TestTwoD(t *testing.T) {
	d, err := NewTwoD([2]float64{1, 3}, [2]float64{4, 6}, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, d.X)
	assert.Equal(t, []float64{4, 5, 6}, d.Y)
	assert.Equal(t, 3, d.Resolution())
}

func TestResolution(t *testing.T) {
	_, err := NewOneD(0, 1, 1)
	assert.True(t, errors.Is(err, ErrResolution))
	_, err = NewTwoD([2]float64{0, 1}, [2]float64{0, 1}, 0)
	assert.True(t, errors.Is(err, ErrResolution))
}

func TestMap1D(t *testing.T) {
	d, err := NewOneD(-1, 1, 1001)
	require.NoError(t, err)

	var calls atomic.Int64
	out, err := Map1D(context.Background(), d, func(x float64, p float64) float64 {
		calls.Add(1)
		return p * x * x
	}, 3.0)
	require.NoError(t, err)

	assert.Equal(t, int64(d.Len()), calls.Load())
	for i, x := range d.Values {
		assert.Equal(t, 3*x*x, out[i])
	}
}

func TestMap2DOrientation(t *testing.T) {
	d, err := NewTwoD([2]float64{0, 1}, [2]float64{10, 30}, 3)
	require.NoError(t, err)

	out, err := Map2D(context.Background(), d, func(x, y float64, _ struct{}) complex128 {
		return complex(x, y)
	}, struct{}{})
	require.NoError(t, err)

	require.Len(t, out, 3)
	for j, row := range out {
		require.Len(t, row, 3)
		for i, z := range row {
			assert.Equal(t, complex(d.X[i], d.Y[j]), z)
		}
	}
}

func TestMapCancelled(t *testing.T) {
	d, err := NewOneD(0, 1, 100)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Map1D(ctx, d, func(x float64, _ int) float64 { return x }, 0)
	assert.ErrorIs(t, err, context.Canceled)
}

type bessel struct {
	Order int
	Scale float64
}

func TestVary(t *testing.T) {
	params := Vary("order = %d", bessel{Scale: 2}, func(b *bessel, n int) { b.Order = n }, 0, 1, 5)

	require.Len(t, params, 3)
	assert.Equal(t, "order = 5", params[2].Name)
	assert.Equal(t, bessel{Order: 5, Scale: 2}, params[2].Params)
	assert.Equal(t, bessel{Order: 0, Scale: 2}, params[0].Params)
}

func TestMultiMap(t *testing.T) {
	d, err := NewOneD(0, math.Pi, 5)
	require.NoError(t, err)

	params := Vary("n = %d", bessel{}, func(b *bessel, n int) { b.Order = n }, 1, 2)
	r, err := MultiMap1D(context.Background(), d, func(x float64, b bessel) float64 {
		return math.Sin(float64(b.Order) * x)
	}, params)
	require.NoError(t, err)

	assert.Equal(t, []string{"n = 1", "n = 2"}, r.Names)
	assert.Equal(t, 2, r.Len())
	assert.InDelta(t, 1.0, r.Values[0][2], 1e-15)
	assert.InDelta(t, 0.0, r.Values[1][2], 1e-15)

	doubled := MapResults(r, Elementwise1D(func(v float64) float64 { return 2 * v }))
	assert.Equal(t, r.Names, doubled.Names)
	assert.InDelta(t, 2.0, doubled.Values[0][2], 1e-15)
}

func TestMultiMap2D(t *testing.T) {
	d, err := NewTwoD([2]float64{0, 1}, [2]float64{0, 2}, 2)
	require.NoError(t, err)

	r, err := MultiMap2D(context.Background(), d, func(x, y float64, s float64) float64 {
		return s * (x + y)
	}, []Named[float64]{{Name: "one", Params: 1}, {Name: "ten", Params: 10}})
	require.NoError(t, err)

	assert.Equal(t, [][]float64{{0, 1}, {2, 3}}, r.Values[0])
	assert.Equal(t, [][]float64{{0, 10}, {20, 30}}, r.Values[1])

	negated := MapResults(r, Elementwise2D(func(v float64) float64 { return -v }))
	assert.Equal(t, -30.0, negated.Values[1][1][1])
}
