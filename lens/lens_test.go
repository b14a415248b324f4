package lens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/mappergo/distance"
)

var points = [][]float64{
	{0, 0},
	{3, 4},
	{-1, 2},
}

func TestProjection(t *testing.T) {
	t.Run("DefaultColumn", func(t *testing.T) {
		f, err := Projection(points)
		require.NoError(t, err)
		assert.Equal(t, [][]float64{{0}, {3}, {-1}}, f)
	})

	t.Run("TwoColumns", func(t *testing.T) {
		f, err := Projection(points, 1, 0)
		require.NoError(t, err)
		assert.Equal(t, [][]float64{{0, 0}, {4, 3}, {2, -1}}, f)
	})

	t.Run("OutOfRange", func(t *testing.T) {
		_, err := Projection(points, 2)
		require.ErrorIs(t, err, ErrColumnOutOfRange)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := Projection(nil)
		require.ErrorIs(t, err, ErrEmptyInput)
	})
}

func TestNorm(t *testing.T) {
	f, err := Norm(points, distance.MetricEuclidean)
	require.NoError(t, err)
	require.Len(t, f, 3)
	assert.InDelta(t, 0, f[0][0], 1e-12)
	assert.InDelta(t, 5, f[1][0], 1e-12)
}

func TestDistanceToPoint(t *testing.T) {
	p, err := distance.FromCoordinates(points, distance.MetricEuclidean)
	require.NoError(t, err)

	f, err := DistanceToPoint(p, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0, f[0][0], 1e-12)
	assert.InDelta(t, 5, f[1][0], 1e-12)

	_, err = DistanceToPoint(p, 3)
	require.ErrorIs(t, err, ErrPointOutOfRange)
}

func TestEccentricity(t *testing.T) {
	dm := [][]float64{
		{0, 1, 4},
		{1, 0, 1},
		{4, 1, 0},
	}
	p, err := distance.NewMatrix(dm)
	require.NoError(t, err)

	f := Eccentricity(p)
	require.Len(t, f, 3)
	assert.InDelta(t, 2.5, f[0][0], 1e-12)
	assert.InDelta(t, 1.0, f[1][0], 1e-12)
	assert.InDelta(t, 2.5, f[2][0], 1e-12)
}

func TestStack(t *testing.T) {
	a, err := Projection(points, 0)
	require.NoError(t, err)
	b, err := Norm(points, distance.MetricEuclidean)
	require.NoError(t, err)

	f, err := Stack(a, b)
	require.NoError(t, err)
	require.Len(t, f, 3)
	assert.Len(t, f[0], 2)
	assert.InDelta(t, 3, f[1][0], 1e-12)
	assert.InDelta(t, 5, f[1][1], 1e-12)

	_, err = Stack(a, [][]float64{{1}})
	require.ErrorIs(t, err, ErrShapeMismatch)

	_, err = Stack()
	require.ErrorIs(t, err, ErrEmptyInput)
}
