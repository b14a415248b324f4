package cluster

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownStrategy is returned when ByName is given an unregistered name.
	ErrUnknownStrategy = errors.New("cluster: unknown strategy")

	// ErrInvalidBins is returned when the histogram bin count is not positive.
	ErrInvalidBins = errors.New("cluster: bin count must be positive")

	// ErrInvalidRadius is returned when a fixed cut height is not positive.
	ErrInvalidRadius = errors.New("cluster: radius must be positive")
)

// DistanceFunc returns the distance between two point indices.
type DistanceFunc func(i, j int) float64

// Clusterer partitions a set of point indices into disjoint nonempty
// clusters.
//
// members is sorted ascending and nonempty. The returned clusters must cover
// members exactly: every index appears in exactly one cluster and no cluster
// is empty. The order of returned clusters is preserved by the pipeline when
// assigning node ids, so deterministic implementations yield deterministic
// graphs.
type Clusterer interface {
	Cluster(members []int, dist DistanceFunc) ([][]int, error)
}

// Func adapts a plain function to the Clusterer interface.
type Func func(members []int, dist DistanceFunc) ([][]int, error)

// Cluster calls f.
func (f Func) Cluster(members []int, dist DistanceFunc) ([][]int, error) {
	return f(members, dist)
}

// ByName returns a builtin strategy by its stable name.
//
// Registered names: "single-linkage" (bins feeds the histogram heuristic)
// and "trivial". Strategies needing extra parameters, such as Epsilon, are
// constructed directly.
func ByName(name string, bins int) (Clusterer, error) {
	switch name {
	case "single-linkage":
		return NewSingleLinkage(bins)
	case "trivial":
		return Trivial{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Trivial returns the whole level set as a single cluster. Useful for tests
// and for callers that want the cover structure without any clustering.
type Trivial struct{}

// Cluster returns members as one cluster.
func (Trivial) Cluster(members []int, _ DistanceFunc) ([][]int, error) {
	if len(members) == 0 {
		return nil, nil
	}
	out := make([]int, len(members))
	copy(out, members)
	return [][]int{out}, nil
}
