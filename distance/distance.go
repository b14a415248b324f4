package distance

import (
	"fmt"
	"math"
)

// Euclidean calculates the L2 distance between two vectors.
// Assumes vectors are the same length (caller's responsibility).
func Euclidean(a, b []float64) float64 {
	return math.Sqrt(SquaredL2(a, b))
}

// SquaredL2 calculates the squared L2 distance between two vectors.
// Assumes vectors are the same length (caller's responsibility).
func SquaredL2(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// Manhattan calculates the L1 distance between two vectors.
// Assumes vectors are the same length (caller's responsibility).
func Manhattan(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += math.Abs(a[i] - b[i])
	}
	return sum
}

// Chebyshev calculates the L-infinity distance between two vectors.
// Assumes vectors are the same length (caller's responsibility).
func Chebyshev(a, b []float64) float64 {
	var maxd float64
	for i := range a {
		if d := math.Abs(a[i] - b[i]); d > maxd {
			maxd = d
		}
	}
	return maxd
}

// Cosine calculates the cosine distance (1 - cosine similarity) between two
// vectors. Zero-norm vectors are at distance 1 from everything except other
// zero-norm vectors.
func Cosine(a, b []float64) float64 {
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 && nb == 0 {
		return 0
	}
	if na == 0 || nb == 0 {
		return 1
	}
	return 1 - dot/(math.Sqrt(na)*math.Sqrt(nb))
}

// Metric represents the distance metric used for point comparison.
type Metric int

const (
	MetricEuclidean Metric = iota
	MetricSquaredL2
	MetricManhattan
	MetricChebyshev
	MetricCosine
)

func (m Metric) String() string {
	switch m {
	case MetricEuclidean:
		return "Euclidean"
	case MetricSquaredL2:
		return "SquaredL2"
	case MetricManhattan:
		return "Manhattan"
	case MetricChebyshev:
		return "Chebyshev"
	case MetricCosine:
		return "Cosine"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// Func is a function type for distance calculation between two vectors.
type Func func(a, b []float64) float64

// FuncFor returns the distance function for the given metric.
func FuncFor(m Metric) (Func, error) {
	switch m {
	case MetricEuclidean:
		return Euclidean, nil
	case MetricSquaredL2:
		return SquaredL2, nil
	case MetricManhattan:
		return Manhattan, nil
	case MetricChebyshev:
		return Chebyshev, nil
	case MetricCosine:
		return Cosine, nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}
