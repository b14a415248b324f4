package cluster

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lineDist treats each index as a position on the number line given by pos.
func lineDist(pos map[int]float64) DistanceFunc {
	return func(i, j int) float64 {
		return math.Abs(pos[i] - pos[j])
	}
}

func TestNewSingleLinkage(t *testing.T) {
	_, err := NewSingleLinkage(0)
	require.ErrorIs(t, err, ErrInvalidBins)

	s, err := NewSingleLinkage(10)
	require.NoError(t, err)
	assert.Equal(t, 10, s.Bins())
}

func TestSingleLinkageTwoGroups(t *testing.T) {
	// Two tight groups far apart: the histogram gap separates them.
	pos := map[int]float64{
		0: 0.0, 1: 0.2, 2: 0.4,
		7: 10.0, 8: 10.3, 9: 10.1,
	}
	members := []int{0, 1, 2, 7, 8, 9}

	s, err := NewSingleLinkage(10)
	require.NoError(t, err)

	clusters, err := s.Cluster(members, lineDist(pos))
	require.NoError(t, err)
	require.Len(t, clusters, 2)
	assert.Equal(t, []int{0, 1, 2}, clusters[0])
	assert.Equal(t, []int{7, 8, 9}, clusters[1])
	require.NoError(t, ValidatePartition(members, clusters))
}

func TestSingleLinkageSingleton(t *testing.T) {
	s, err := NewSingleLinkage(10)
	require.NoError(t, err)

	clusters, err := s.Cluster([]int{42}, nil)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{42}}, clusters)
}

func TestSingleLinkageEmpty(t *testing.T) {
	s, err := NewSingleLinkage(10)
	require.NoError(t, err)

	clusters, err := s.Cluster(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, clusters)
}

func TestSingleLinkageAllEqualDistances(t *testing.T) {
	// Zero-range distance multiset: everything merges into one cluster.
	dist := func(i, j int) float64 { return 1 }
	members := []int{1, 2, 3, 4}

	s, err := NewSingleLinkage(5)
	require.NoError(t, err)

	clusters, err := s.Cluster(members, dist)
	require.NoError(t, err)
	require.Len(t, clusters, 1)
	assert.Equal(t, members, clusters[0])
}

func TestSingleLinkageNoGap(t *testing.T) {
	// Uniformly spread points fill every histogram bin: one cluster.
	pos := map[int]float64{}
	members := make([]int, 20)
	for i := range members {
		members[i] = i
		pos[i] = float64(i)
	}

	s, err := NewSingleLinkage(5)
	require.NoError(t, err)

	clusters, err := s.Cluster(members, lineDist(pos))
	require.NoError(t, err)
	require.Len(t, clusters, 1)
	assert.Equal(t, members, clusters[0])
}

func TestSingleLinkageWidestGapWins(t *testing.T) {
	// Three groups with a small gap (0..3 vs 5..8) and a wide gap (8 vs 30).
	// The cut lands in the wide gap, so the two left groups stay merged.
	pos := map[int]float64{
		0: 0, 1: 1, 2: 2, 3: 3,
		4: 5, 5: 6, 6: 7, 7: 8,
		8: 30, 9: 31,
	}
	members := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	s, err := NewSingleLinkage(15)
	require.NoError(t, err)

	clusters, err := s.Cluster(members, lineDist(pos))
	require.NoError(t, err)
	require.Len(t, clusters, 2)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, clusters[0])
	assert.Equal(t, []int{8, 9}, clusters[1])
}

func TestSingleLinkageDeterministic(t *testing.T) {
	pos := map[int]float64{
		3: 0.1, 5: 0.2, 8: 5.0, 11: 5.1, 20: 0.15,
	}
	members := []int{3, 5, 8, 11, 20}

	s, err := NewSingleLinkage(10)
	require.NoError(t, err)

	first, err := s.Cluster(members, lineDist(pos))
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := s.Cluster(members, lineDist(pos))
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestEpsilon(t *testing.T) {
	_, err := NewEpsilon(0)
	require.ErrorIs(t, err, ErrInvalidRadius)

	pos := map[int]float64{0: 0, 1: 1, 2: 2, 3: 10, 4: 11}
	members := []int{0, 1, 2, 3, 4}

	e, err := NewEpsilon(1.5)
	require.NoError(t, err)
	assert.Equal(t, 1.5, e.Radius())

	clusters, err := e.Cluster(members, lineDist(pos))
	require.NoError(t, err)
	require.Len(t, clusters, 2)
	assert.Equal(t, []int{0, 1, 2}, clusters[0])
	assert.Equal(t, []int{3, 4}, clusters[1])

	empty, err := e.Cluster(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
