package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rollingthunder/specfun/grid"
	"github.com/rollingthunder/specfun/numeric"
)

// ErrorSuffix is appended to the name of the file holding error estimates.
const ErrorSuffix = " - ERROR"

// DomainName is the file the domain coordinates are saved under.
const DomainName = "Domain"

// SaveOneD writes the domain values and one array per result into dir.
func SaveOneD[T numeric.Scalar](dir string, d grid.OneD, r grid.Results[[]T]) error {
	if err := prepare(dir); err != nil {
		return err
	}
	if err := SaveNPY(filepath.Join(dir, DomainName), d.Values); err != nil {
		return err
	}
	for i, name := range r.Names {
		if err := SaveNPY(filepath.Join(dir, name), any(r.Values[i])); err != nil {
			return fmt.Errorf("export %q: %w", name, err)
		}
	}
	return nil
}

// SaveTwoD writes the axes as a 2 x resolution array and one array per
// result, indexed [y][x], into dir.
func SaveTwoD[T numeric.Scalar](dir string, d grid.TwoD, r grid.Results[[][]T]) error {
	if err := prepare(dir); err != nil {
		return err
	}
	if err := SaveNPY(filepath.Join(dir, DomainName), [][]float64{d.X, d.Y}); err != nil {
		return err
	}
	for i, name := range r.Names {
		if err := SaveNPY(filepath.Join(dir, name), any(r.Values[i])); err != nil {
			return fmt.Errorf("export %q: %w", name, err)
		}
	}
	return nil
}

// SaveOneDWithError saves values under their names and error estimates
// under the names with ErrorSuffix.
func SaveOneDWithError[T numeric.Scalar](dir string, d grid.OneD, r grid.Results[[]numeric.WithError[T]]) error {
	values, errs := SplitOneD(r)
	if err := SaveOneD(dir, d, values); err != nil {
		return err
	}
	return SaveOneD(dir, d, errs)
}

// SaveTwoDWithError is SaveOneDWithError over a two-dimensional domain.
func SaveTwoDWithError[T numeric.Scalar](dir string, d grid.TwoD, r grid.Results[[][]numeric.WithError[T]]) error {
	values, errs := SplitTwoD(r)
	if err := SaveTwoD(dir, d, values); err != nil {
		return err
	}
	return SaveTwoD(dir, d, errs)
}

// SplitOneD separates values from error estimates. The error results are
// named with ErrorSuffix.
func SplitOneD[T numeric.Scalar](r grid.Results[[]numeric.WithError[T]]) (grid.Results[[]T], grid.Results[[]float64]) {
	values := grid.MapResults(r, grid.Elementwise1D(valueOf[T]))
	errs := grid.MapResults(r, grid.Elementwise1D(errorOf[T]))
	suffixErrors(errs.Names)
	return values, errs
}

// SplitTwoD is SplitOneD for two-dimensional results.
func SplitTwoD[T numeric.Scalar](r grid.Results[[][]numeric.WithError[T]]) (grid.Results[[][]T], grid.Results[[][]float64]) {
	values := grid.MapResults(r, grid.Elementwise2D(valueOf[T]))
	errs := grid.MapResults(r, grid.Elementwise2D(errorOf[T]))
	suffixErrors(errs.Names)
	return values, errs
}

func valueOf[T numeric.Scalar](w numeric.WithError[T]) T       { return w.Value }
func errorOf[T numeric.Scalar](w numeric.WithError[T]) float64 { return w.Error }

func suffixErrors(names []string) {
	for i := range names {
		names[i] += ErrorSuffix
	}
}

func prepare(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}
