// Package lens builds filter-function matrices (FilterSpace) from raw
// coordinates or from a distance provider.
//
// Each helper returns an n x d matrix of filter coordinates, one row per
// point, ready to hand to the pipeline. Helpers can be combined by
// concatenating columns with Stack.
package lens

import (
	"errors"
	"fmt"

	"github.com/hupe1980/mappergo/distance"
)

var (
	// ErrEmptyInput is returned when no points are supplied.
	ErrEmptyInput = errors.New("lens: no points supplied")

	// ErrColumnOutOfRange is returned for a projection column outside the data.
	ErrColumnOutOfRange = errors.New("lens: projection column out of range")

	// ErrPointOutOfRange is returned for a reference point outside the provider.
	ErrPointOutOfRange = errors.New("lens: reference point out of range")

	// ErrShapeMismatch is returned when stacked filters disagree on point count.
	ErrShapeMismatch = errors.New("lens: filters have differing point counts")
)

// Projection selects coordinate columns of the raw data as filter dimensions.
func Projection(points [][]float64, cols ...int) ([][]float64, error) {
	if len(points) == 0 {
		return nil, ErrEmptyInput
	}
	if len(cols) == 0 {
		cols = []int{0}
	}
	dim := len(points[0])
	for _, c := range cols {
		if c < 0 || c >= dim {
			return nil, fmt.Errorf("%w: column %d of %d", ErrColumnOutOfRange, c, dim)
		}
	}

	out := make([][]float64, len(points))
	for i, p := range points {
		row := make([]float64, len(cols))
		for k, c := range cols {
			row[k] = p[c]
		}
		out[i] = row
	}
	return out, nil
}

// Norm maps each point to its distance from the origin under the given
// metric, yielding a 1-D filter.
func Norm(points [][]float64, m distance.Metric) ([][]float64, error) {
	if len(points) == 0 {
		return nil, ErrEmptyInput
	}
	fn, err := distance.FuncFor(m)
	if err != nil {
		return nil, err
	}

	origin := make([]float64, len(points[0]))
	out := make([][]float64, len(points))
	for i, p := range points {
		out[i] = []float64{fn(p, origin)}
	}
	return out, nil
}

// DistanceToPoint maps each point to its distance from the reference point
// ref, yielding a 1-D filter.
func DistanceToPoint(p distance.Provider, ref int) ([][]float64, error) {
	n := p.Len()
	if ref < 0 || ref >= n {
		return nil, fmt.Errorf("%w: point %d of %d", ErrPointOutOfRange, ref, n)
	}
	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		out[i] = []float64{p.Distance(i, ref)}
	}
	return out, nil
}

// Eccentricity maps each point to its mean distance to all other points,
// yielding a 1-D filter. Points near the data's "center" score low.
func Eccentricity(p distance.Provider) [][]float64 {
	n := p.Len()
	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		var sum float64
		for j := 0; j < n; j++ {
			sum += p.Distance(i, j)
		}
		if n > 1 {
			sum /= float64(n - 1)
		}
		out[i] = []float64{sum}
	}
	return out
}

// Stack concatenates filter matrices column-wise into one FilterSpace.
func Stack(filters ...[][]float64) ([][]float64, error) {
	if len(filters) == 0 {
		return nil, ErrEmptyInput
	}
	n := len(filters[0])
	if n == 0 {
		return nil, ErrEmptyInput
	}
	for _, f := range filters[1:] {
		if len(f) != n {
			return nil, fmt.Errorf("%w: %d vs %d", ErrShapeMismatch, len(f), n)
		}
	}

	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		var row []float64
		for _, f := range filters {
			row = append(row, f[i]...)
		}
		out[i] = row
	}
	return out, nil
}
