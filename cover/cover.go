package cover

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Interval is a closed interval [Lo, Hi] in one filter dimension.
type Interval struct {
	Lo float64
	Hi float64
}

// Contains reports whether v lies in the closed interval.
func (iv Interval) Contains(v float64) bool {
	return v >= iv.Lo && v <= iv.Hi
}

// MultiIndex addresses a cover cell by its per-dimension interval positions.
type MultiIndex []int

// String renders the multi-index as "(i1,i2,...)".
func (mi MultiIndex) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for k, v := range mi {
		if k > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	sb.WriteByte(')')
	return sb.String()
}

// Compare orders multi-indices lexicographically.
func (mi MultiIndex) Compare(other MultiIndex) int {
	for k := range mi {
		if mi[k] != other[k] {
			if mi[k] < other[k] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// AdjacentTo reports whether two multi-indices differ by at most 1 in every
// coordinate. Equal indices are adjacent to themselves. Adjacency bounds
// geometric cell overlap only while the overlap percentage stays at or below
// 50; beyond that use WithinReach with Cover.Reach.
func (mi MultiIndex) AdjacentTo(other MultiIndex) bool {
	for k := range mi {
		d := mi[k] - other[k]
		if d < -1 || d > 1 {
			return false
		}
	}
	return true
}

// WithinReach reports whether two multi-indices differ by at most reach[k] in
// every coordinate k.
func (mi MultiIndex) WithinReach(other MultiIndex, reach []int) bool {
	for k := range mi {
		d := mi[k] - other[k]
		if d < 0 {
			d = -d
		}
		if d > reach[k] {
			return false
		}
	}
	return true
}

// clone returns an independent copy of the multi-index.
func (mi MultiIndex) clone() MultiIndex {
	out := make(MultiIndex, len(mi))
	copy(out, mi)
	return out
}

// Cell is one d-dimensional axis-aligned box of the cover.
type Cell struct {
	// Index is the cell's position in the per-dimension interval grid.
	Index MultiIndex

	// Bounds holds one closed interval per filter dimension.
	Bounds []Interval
}

// Contains reports whether a filter coordinate vector lies in the cell
// (closed-interval membership in every dimension).
func (c Cell) Contains(coord []float64) bool {
	for k, iv := range c.Bounds {
		if !iv.Contains(coord[k]) {
			return false
		}
	}
	return true
}

// Cover is the full cartesian grid of overlapping cells.
type Cover struct {
	dim   int
	axes  [][]Interval
	cells []Cell
}

// Build constructs a cover over the image of the given filter space.
//
// filter is n x d (one row per point). intervals and overlap must both have
// length d; intervals[k] must be positive and overlap[k] in [0, 100).
// A dimension whose filter values all coincide yields a single interval of
// minimal nonzero width regardless of the requested interval count.
func Build(filter [][]float64, intervals []int, overlap []float64) (*Cover, error) {
	if len(filter) == 0 {
		return nil, ErrNoPoints
	}
	dim := len(filter[0])
	if dim == 0 {
		return nil, ErrNoPoints
	}
	for i, row := range filter {
		if len(row) != dim {
			return nil, fmt.Errorf("%w: row %d has dimension %d, want %d", ErrRaggedFilter, i, len(row), dim)
		}
	}
	if len(intervals) != dim {
		return nil, fmt.Errorf("%w: got %d interval counts for dimension %d", ErrDimensionMismatch, len(intervals), dim)
	}
	if len(overlap) != dim {
		return nil, fmt.Errorf("%w: got %d overlap values for dimension %d", ErrDimensionMismatch, len(overlap), dim)
	}
	for k := 0; k < dim; k++ {
		if intervals[k] <= 0 {
			return nil, fmt.Errorf("%w: dimension %d has %d", ErrInvalidIntervals, k, intervals[k])
		}
		if overlap[k] < 0 || overlap[k] >= 100 {
			return nil, fmt.Errorf("%w: dimension %d has %g", ErrInvalidOverlap, k, overlap[k])
		}
	}

	axes := make([][]Interval, dim)
	for k := 0; k < dim; k++ {
		lo, hi := dimensionRange(filter, k)
		axes[k] = buildAxis(lo, hi, intervals[k], overlap[k])
	}

	c := &Cover{dim: dim, axes: axes}
	c.cells = cartesian(axes)
	return c, nil
}

// dimensionRange returns the min and max filter value in dimension k.
func dimensionRange(filter [][]float64, k int) (float64, float64) {
	lo, hi := filter[0][k], filter[0][k]
	for _, row := range filter[1:] {
		lo = math.Min(lo, row[k])
		hi = math.Max(hi, row[k])
	}
	return lo, hi
}

// buildAxis divides [lo, hi] into count equal base intervals, each expanded
// symmetrically so adjacent cells overlap by exactly percent% of their
// expanded width. A zero-range dimension collapses to a single interval of
// minimal nonzero width around the shared value.
func buildAxis(lo, hi float64, count int, percent float64) []Interval {
	if hi == lo {
		return []Interval{{
			Lo: math.Nextafter(lo, math.Inf(-1)),
			Hi: math.Nextafter(hi, math.Inf(1)),
		}}
	}

	width := (hi - lo) / float64(count)
	// Expanding each side by width*p/(200*(1-p/100)) makes the expanded width
	// width*100/(100-p), so back-to-back cells share exactly p% of it.
	expand := width * percent / (200 * (1 - percent/100))

	axis := make([]Interval, count)
	for i := 0; i < count; i++ {
		axis[i] = Interval{
			Lo: lo + float64(i)*width - expand,
			Hi: lo + float64(i+1)*width + expand,
		}
	}
	// lo + count*width can round below hi, leaving the point attaining the
	// dimension max outside every interval. The axis must span [lo, hi].
	axis[0].Lo = math.Min(axis[0].Lo, lo)
	axis[count-1].Hi = math.Max(axis[count-1].Hi, hi)
	return axis
}

// cartesian enumerates the cell grid in multi-index lexicographic order via
// an odometer walk. The same loop serves every dimensionality.
func cartesian(axes [][]Interval) []Cell {
	dim := len(axes)
	total := 1
	for _, axis := range axes {
		total *= len(axis)
	}

	cells := make([]Cell, 0, total)
	idx := make(MultiIndex, dim)
	for {
		bounds := make([]Interval, dim)
		for k := 0; k < dim; k++ {
			bounds[k] = axes[k][idx[k]]
		}
		cells = append(cells, Cell{Index: idx.clone(), Bounds: bounds})

		// Advance the odometer, least significant dimension last.
		k := dim - 1
		for k >= 0 {
			idx[k]++
			if idx[k] < len(axes[k]) {
				break
			}
			idx[k] = 0
			k--
		}
		if k < 0 {
			return cells
		}
	}
}

// Dim returns the filter dimensionality.
func (c *Cover) Dim() int { return c.dim }

// Reach returns, per dimension, the largest index gap at which two intervals
// of that axis still intersect. Overlap above 50% expands cells past their
// direct grid neighbors, so the reach can exceed 1; candidate cell pairs for
// edges are those within reach in every dimension.
func (c *Cover) Reach() []int {
	reach := make([]int, c.dim)
	for k, axis := range c.axes {
		g := 1
		for g < len(axis) && axis[g].Lo <= axis[0].Hi {
			g++
		}
		reach[k] = g - 1
	}
	return reach
}

// NumCells returns the total number of cells in the grid.
func (c *Cover) NumCells() int { return len(c.cells) }

// Cells returns the cells in multi-index lexicographic order.
// The returned slice must not be mutated.
func (c *Cover) Cells() []Cell { return c.cells }

// Axis returns the interval list for dimension k.
// The returned slice must not be mutated.
func (c *Cover) Axis(k int) []Interval { return c.axes[k] }
