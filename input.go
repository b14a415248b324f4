package mapper

import (
	"github.com/hupe1980/mappergo/distance"
)

// Input is the point representation handed to Map: raw coordinates or a
// precomputed pairwise distance matrix, exactly one of the two.
type Input struct {
	coords [][]float64
	dmat   [][]float64
}

// Coordinates supplies points as an n x k coordinate matrix. Pairwise
// distances are computed lazily under the configured metric and memoized.
func Coordinates(points [][]float64) Input {
	return Input{coords: points}
}

// Distances supplies points as a precomputed n x n pairwise distance matrix
// (symmetric, zero diagonal).
func Distances(dm [][]float64) Input {
	return Input{dmat: dm}
}

// provider validates the exclusivity rule and builds the distance provider.
func (in Input) provider(m distance.Metric) (distance.Provider, error) {
	switch {
	case in.coords == nil && in.dmat == nil:
		return nil, configErr("input", "either coordinates or a distance matrix must be supplied")
	case in.coords != nil && in.dmat != nil:
		return nil, configErr("input", "coordinates and a distance matrix are mutually exclusive")
	case in.dmat != nil:
		p, err := distance.NewMatrix(in.dmat)
		if err != nil {
			return nil, translateError(err)
		}
		return p, nil
	default:
		p, err := distance.FromCoordinates(in.coords, m)
		if err != nil {
			return nil, translateError(err)
		}
		return p, nil
	}
}
