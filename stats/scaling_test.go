package stats

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaling(t *testing.T) {
	cases := []struct {
		xs       []float64
		expected []float64
	}{
		{[]float64{1, 2, 3, 4}, []float64{0, 0.333, 0.666, 1}},
		{[]float64{8, 6, 4, 2}, []float64{1, 0.666, 0.333, 0}},
		{[]float64{1, 1, 1, 2}, []float64{0, 0, 0, 1}},
		{[]float64{2, 1, 1, 0}, []float64{1, 0.5, 0.5, 0}},
	}
	for _, c := range cases {
		out, err := Scaling(c.xs)
		require.NoError(t, err)
		require.Len(t, out, len(c.expected))
		for i := range out {
			assert.InDelta(t, c.expected[i], out[i], 0.001, "scaling %v at %d", c.xs, i)
		}
	}
}

func TestScalingBounds(t *testing.T) {
	xs := []float64{-3.5, 12, 0.25, 7, -1, 12, 4}
	out, err := Scaling(xs)
	require.NoError(t, err)

	min, max := out[0], out[0]
	for _, v := range out {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	assert.Equal(t, 0.0, min)
	assert.Equal(t, 1.0, max)

	// monotonic with the input ordering
	for i := range xs {
		for j := range xs {
			if xs[i] < xs[j] {
				assert.Less(t, out[i], out[j])
			}
		}
	}
	// input untouched
	assert.Equal(t, -3.5, xs[0])
}

func TestScalingErrors(t *testing.T) {
	t.Run("homogeneous", func(t *testing.T) {
		_, err := Scaling([]float64{1, 1, 1, 1})
		assert.True(t, errors.Is(err, ErrHomogeneous))
		_, err = Scaling([]float64{42})
		assert.True(t, errors.Is(err, ErrHomogeneous))
	})
	t.Run("empty", func(t *testing.T) {
		_, err := Scaling(nil)
		assert.True(t, errors.Is(err, ErrEmpty))
	})
}

func TestGrid(t *testing.T) {
	t.Run("arange", func(t *testing.T) {
		g := Grid(0, 1, 0.25, 0)
		require.Len(t, g, 4)
		for i, expected := range []float64{0, 0.25, 0.5, 0.75} {
			assert.InDelta(t, expected, g[i], 1e-12)
		}
	})
	t.Run("partial last step", func(t *testing.T) {
		g := Grid(0, 1, 0.3, 0)
		require.Len(t, g, 4)
		assert.InDelta(t, 0.9, g[3], 1e-12)
	})
	t.Run("capped", func(t *testing.T) {
		g := Grid(-20, 22, 0.01, 1000)
		require.Len(t, g, 1000)
		assert.Equal(t, -20.0, g[0])
		assert.Less(t, g[len(g)-1], 22.0)
	})
	t.Run("empty range", func(t *testing.T) {
		assert.Nil(t, Grid(1, 1, 0.1, 0))
		assert.Nil(t, Grid(2, 1, 0.1, 0))
		assert.Nil(t, Grid(0, 1, 0, 0))
	})
	t.Run("single point", func(t *testing.T) {
		assert.Equal(t, []float64{0}, Grid(0, 0.5, 1, 0))
	})
}
