package cover

import (
	"math/rand"
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelSetsDropEmptyCells(t *testing.T) {
	// Points cluster at the extremes, leaving the middle cells empty.
	filter := column(0, 0.1, 9.9, 10)

	c, err := Build(filter, []int{5}, []float64{0})
	require.NoError(t, err)
	require.Equal(t, 5, c.NumCells())

	sets := c.LevelSets(filter)
	require.Len(t, sets, 2)
	assert.Equal(t, MultiIndex{0}, sets[0].Cell.Index)
	assert.Equal(t, MultiIndex{4}, sets[1].Cell.Index)
	assert.Equal(t, []int{0, 1}, sets[0].MemberSlice())
	assert.Equal(t, []int{2, 3}, sets[1].MemberSlice())
}

// A point exactly on a shared boundary belongs to both cells
// (closed-interval membership).
func TestLevelSetsClosedBoundary(t *testing.T) {
	filter := column(0, 1, 2)

	c, err := Build(filter, []int{2}, []float64{0})
	require.NoError(t, err)

	sets := c.LevelSets(filter)
	require.Len(t, sets, 2)
	assert.Equal(t, []int{0, 1}, sets[0].MemberSlice())
	assert.Equal(t, []int{1, 2}, sets[1].MemberSlice())
}

func TestLevelSetsOrderedAndNonEmpty(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	filter := make([][]float64, 100)
	for i := range filter {
		filter[i] = []float64{rng.Float64(), rng.Float64()}
	}

	c, err := Build(filter, []int{3, 3}, []float64{25, 25})
	require.NoError(t, err)

	sets := c.LevelSets(filter)
	require.NotEmpty(t, sets)
	for i, ls := range sets {
		assert.Positive(t, ls.Size())
		if i > 0 {
			assert.Equal(t, -1, sets[i-1].Cell.Index.Compare(ls.Cell.Index))
		}
	}
}

// Increasing percent_overlap never decreases the number of points shared
// between level sets of neighboring cells.
func TestOverlapMonotonicity(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	filter := make([][]float64, 300)
	for i := range filter {
		filter[i] = []float64{rng.Float64() * 100}
	}

	shared := func(percent float64) []uint64 {
		c, err := Build(filter, []int{6}, []float64{percent})
		require.NoError(t, err)

		byIndex := make(map[int]*roaring.Bitmap)
		for _, ls := range c.LevelSets(filter) {
			byIndex[ls.Cell.Index[0]] = ls.Members
		}

		out := make([]uint64, 5)
		for i := 0; i < 5; i++ {
			a, b := byIndex[i], byIndex[i+1]
			if a != nil && b != nil {
				out[i] = roaring.And(a, b).GetCardinality()
			}
		}
		return out
	}

	prev := shared(0)
	for _, percent := range []float64{10, 20, 40, 80} {
		cur := shared(percent)
		for i := range cur {
			assert.GreaterOrEqual(t, cur[i], prev[i], "percent=%g pair=%d", percent, i)
		}
		prev = cur
	}
}

func TestLevelSetSize(t *testing.T) {
	filter := column(1, 2, 3)
	c, err := Build(filter, []int{1}, []float64{0})
	require.NoError(t, err)

	sets := c.LevelSets(filter)
	require.Len(t, sets, 1)
	assert.Equal(t, 3, sets[0].Size())
}
