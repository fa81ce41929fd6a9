// Package grid evaluates pure functions over evenly spaced one- and
// two-dimensional domains, concurrently and for several parameter sets.
package grid

import (
	"errors"
	"fmt"
)

var ErrResolution = errors.New("grid: resolution must be at least 2")

// OneD is an evenly spaced set of points including both limits.
type OneD struct {
	Values []float64
}

func NewOneD(lower, upper float64, resolution int) (OneD, error) {
	values, err := linspace(lower, upper, resolution)
	if err != nil {
		return OneD{}, err
	}
	return OneD{Values: values}, nil
}

func (d OneD) Len() int { return len(d.Values) }

// TwoD is the product of two evenly spaced axes with the same resolution.
// Results over it are indexed [y][x].
type TwoD struct {
	XLimits, YLimits [2]float64
	X, Y             []float64
}

func NewTwoD(xLimits, yLimits [2]float64, resolution int) (d TwoD, err error) {
	d.XLimits, d.YLimits = xLimits, yLimits
	if d.X, err = linspace(xLimits[0], xLimits[1], resolution); err != nil {
		return TwoD{}, err
	}
	if d.Y, err = linspace(yLimits[0], yLimits[1], resolution); err != nil {
		return TwoD{}, err
	}
	return
}

func (d TwoD) Resolution() int { return len(d.X) }

func linspace(lower, upper float64, resolution int) ([]float64, error) {
	if resolution < 2 {
		return nil, fmt.Errorf("%w, got %d", ErrResolution, resolution)
	}
	values := make([]float64, resolution)
	step := (upper - lower) / float64(resolution-1)
	for i := range values {
		values[i] = lower + float64(i)*step
	}
	// hit the upper limit exactly
	values[resolution-1] = upper
	return values, nil
}
