package cluster

import "fmt"

// Epsilon clusters a level set into connected components of the
// "distance <= Radius" graph, i.e. single-linkage with a fixed cut height
// instead of the histogram heuristic.
type Epsilon struct {
	radius float64
}

// NewEpsilon creates a fixed-cut-height clusterer.
func NewEpsilon(radius float64) (*Epsilon, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidRadius, radius)
	}
	return &Epsilon{radius: radius}, nil
}

// Radius returns the configured cut height.
func (e *Epsilon) Radius() float64 { return e.radius }

// Cluster partitions members into epsilon-connected components.
func (e *Epsilon) Cluster(members []int, dist DistanceFunc) ([][]int, error) {
	if len(members) == 0 {
		return nil, nil
	}
	return components(members, dist, e.radius), nil
}
