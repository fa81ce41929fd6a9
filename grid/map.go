package grid

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/rollingthunder/specfun/util"
)

// Map1D evaluates f(x, p) at every point of d. Points are split into one
// chunk per available CPU; the order of the result matches d.Values.
func Map1D[P, O any](ctx context.Context, d OneD, f func(x float64, p P) O, p P) ([]O, error) {
	out := make([]O, d.Len())
	err := parallel(ctx, d.Len(), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			out[i] = f(d.Values[i], p)
		}
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Map2D evaluates f(x, y, p) at every point of d. The result is indexed
// [y][x].
func Map2D[P, O any](ctx context.Context, d TwoD, f func(x, y float64, p P) O, p P) ([][]O, error) {
	n := d.Resolution()
	out := util.MakeRectangular[O](n, n)
	err := parallel(ctx, n*n, func(lo, hi int) {
		for k := lo; k < hi; k++ {
			j, i := k/n, k%n
			out[j][i] = f(d.X[i], d.Y[j], p)
		}
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// parallel runs work over [0, n) in contiguous chunks, stopping early when ctx
// is cancelled. work must only touch its own index range.
func parallel(ctx context.Context, n int, work func(lo, hi int)) error {
	workers := runtime.GOMAXPROCS(0)
	chunk := (n + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += chunk {
		lo, hi := lo, min(lo+chunk, n)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			work(lo, hi)
			return nil
		})
	}
	return g.Wait()
}

// Named is one parameter set of a multi map together with the name its
// results are saved under.
type Named[P any] struct {
	Name   string
	Params P
}

// Results holds one value per parameter set, in parameter order.
type Results[O any] struct {
	Names  []string
	Values []O
}

func (r Results[O]) Len() int { return len(r.Names) }

// MultiMap1D runs Map1D once per parameter set.
func MultiMap1D[P, O any](ctx context.Context, d OneD, f func(x float64, p P) O, params []Named[P]) (Results[[]O], error) {
	return multiMap(params, func(p P) ([]O, error) { return Map1D(ctx, d, f, p) })
}

// MultiMap2D runs Map2D once per parameter set.
func MultiMap2D[P, O any](ctx context.Context, d TwoD, f func(x, y float64, p P) O, params []Named[P]) (Results[[][]O], error) {
	return multiMap(params, func(p P) ([][]O, error) { return Map2D(ctx, d, f, p) })
}

func multiMap[P, R any](params []Named[P], run func(P) (R, error)) (Results[R], error) {
	r := Results[R]{
		Names:  make([]string, 0, len(params)),
		Values: make([]R, 0, len(params)),
	}
	for _, p := range params {
		start := time.Now()
		v, err := run(p.Params)
		if err != nil {
			return Results[R]{}, err
		}
		log.Info().Str("name", p.Name).Dur("elapsed", time.Since(start)).Msg("grid: calculation complete")

		r.Names = append(r.Names, p.Name)
		r.Values = append(r.Values, v)
	}
	return r, nil
}

// MapResults applies f to every result, keeping the names.
func MapResults[I, O any](r Results[I], f func(I) O) Results[O] {
	out := Results[O]{
		Names:  append([]string(nil), r.Names...),
		Values: make([]O, len(r.Values)),
	}
	for i, v := range r.Values {
		out.Values[i] = f(v)
	}
	return out
}

// Elementwise1D lifts f to a one-dimensional result, for use with MapResults.
func Elementwise1D[I, O any](f func(I) O) func([]I) []O {
	return func(in []I) []O {
		out := make([]O, len(in))
		for i, v := range in {
			out[i] = f(v)
		}
		return out
	}
}

// Elementwise2D lifts f to a two-dimensional result.
func Elementwise2D[I, O any](f func(I) O) func([][]I) [][]O {
	row := Elementwise1D(f)
	return func(in [][]I) [][]O {
		out := make([][]O, len(in))
		for j, r := range in {
			out[j] = row(r)
		}
		return out
	}
}

// Vary builds one parameter set per value, each a copy of base with set
// applied. Names are fmt.Sprintf(format, value).
func Vary[P, V any](format string, base P, set func(*P, V), values ...V) []Named[P] {
	out := make([]Named[P], len(values))
	for i, v := range values {
		p := base
		set(&p, v)
		out[i] = Named[P]{Name: fmt.Sprintf(format, v), Params: p}
	}
	return out
}
