package distance

import (
	"errors"
	"fmt"
	"math"
	"sync/atomic"
)

var (
	// ErrEmptyInput is returned when no points are supplied.
	ErrEmptyInput = errors.New("distance: no points supplied")

	// ErrNotSquare is returned when a distance matrix is not square.
	ErrNotSquare = errors.New("distance: matrix is not square")

	// ErrNotSymmetric is returned when a distance matrix is not symmetric.
	ErrNotSymmetric = errors.New("distance: matrix is not symmetric")

	// ErrNonZeroDiagonal is returned when a distance matrix has a non-zero diagonal.
	ErrNonZeroDiagonal = errors.New("distance: matrix diagonal is not zero")

	// ErrRaggedCoordinates is returned when coordinate rows have differing lengths.
	ErrRaggedCoordinates = errors.New("distance: coordinate rows have differing lengths")
)

// Provider supplies pairwise distances between point indices.
//
// Implementations never mutate after construction and must be safe for
// concurrent reads.
type Provider interface {
	// Distance returns the distance between points i and j.
	// Indices outside [0, Len()) are the caller's contract violation.
	Distance(i, j int) float64

	// Len returns the number of points.
	Len() int
}

// Matrix is a Provider backed by a precomputed pairwise distance matrix.
type Matrix struct {
	dm [][]float64
}

// NewMatrix validates and wraps a precomputed distance matrix.
// The matrix must be square, symmetric and have a zero diagonal.
// The caller must not mutate dm afterwards.
func NewMatrix(dm [][]float64) (*Matrix, error) {
	n := len(dm)
	if n == 0 {
		return nil, ErrEmptyInput
	}
	for i, row := range dm {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrNotSquare, i, len(row), n)
		}
		if row[i] != 0 {
			return nil, fmt.Errorf("%w: entry (%d,%d) = %g", ErrNonZeroDiagonal, i, i, row[i])
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if dm[i][j] != dm[j][i] {
				return nil, fmt.Errorf("%w: (%d,%d) = %g but (%d,%d) = %g", ErrNotSymmetric, i, j, dm[i][j], j, i, dm[j][i])
			}
		}
	}
	return &Matrix{dm: dm}, nil
}

// Distance returns the precomputed distance between points i and j.
func (m *Matrix) Distance(i, j int) float64 { return m.dm[i][j] }

// Len returns the number of points.
func (m *Matrix) Len() int { return len(m.dm) }

// maxMemoPairs caps the memoization cache allocation. Beyond this many pairs
// the coordinate provider computes distances on demand without caching.
const maxMemoPairs = 1 << 26

// Coords is a Provider that computes distances lazily from raw coordinates.
//
// Each pair is computed at most once per populated cache slot: the cache is
// write-once-per-key (value published via an atomic flag), so concurrent
// readers either see the published value or recompute the same deterministic
// result.
type Coords struct {
	points [][]float64
	fn     Func

	// Condensed upper-triangle cache. Nil when the point count would make it
	// too large; distances are then computed on every call.
	vals  []atomic.Uint64
	flags []atomic.Bool
}

// FromCoordinates creates a Provider over raw coordinates using the given
// metric. The caller must not mutate points afterwards.
func FromCoordinates(points [][]float64, m Metric) (*Coords, error) {
	n := len(points)
	if n == 0 {
		return nil, ErrEmptyInput
	}
	dim := len(points[0])
	for i, p := range points {
		if len(p) != dim {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrRaggedCoordinates, i, len(p), dim)
		}
	}
	fn, err := FuncFor(m)
	if err != nil {
		return nil, err
	}

	c := &Coords{points: points, fn: fn}
	if pairs := n * (n - 1) / 2; pairs <= maxMemoPairs {
		c.vals = make([]atomic.Uint64, pairs)
		c.flags = make([]atomic.Bool, pairs)
	}
	return c, nil
}

// Distance returns the distance between points i and j, memoized.
func (c *Coords) Distance(i, j int) float64 {
	if i == j {
		return 0
	}
	if i > j {
		i, j = j, i
	}
	if c.vals == nil {
		return c.fn(c.points[i], c.points[j])
	}

	k := c.pairIndex(i, j)
	if c.flags[k].Load() {
		return math.Float64frombits(c.vals[k].Load())
	}
	d := c.fn(c.points[i], c.points[j])
	c.vals[k].Store(math.Float64bits(d))
	c.flags[k].Store(true)
	return d
}

// Len returns the number of points.
func (c *Coords) Len() int { return len(c.points) }

// Dim returns the coordinate dimensionality.
func (c *Coords) Dim() int { return len(c.points[0]) }

// pairIndex maps an (i, j) pair with i < j onto the condensed upper triangle.
func (c *Coords) pairIndex(i, j int) int {
	n := len(c.points)
	return i*n - i*(i+1)/2 + (j - i - 1)
}
