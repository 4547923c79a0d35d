package types

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeries(t *testing.T) {
	t.Run("keeps insertion order", func(t *testing.T) {
		s := NewSeries()
		s.Add("zeta", []float64{1})
		s.Add("alpha", []float64{2})
		s.Add("mu", []float64{3})
		assert.Equal(t, []string{"zeta", "alpha", "mu"}, s.Labels())
		label, values := s.At(1)
		assert.Equal(t, "alpha", label)
		assert.Equal(t, []float64{2}, values)
	})

	t.Run("replacing keeps position", func(t *testing.T) {
		s := NewSeries()
		s.Add("a", []float64{1})
		s.Add("b", []float64{2})
		s.Add("a", []float64{3, 4})
		assert.Equal(t, 2, s.Len())
		assert.Equal(t, []string{"a", "b"}, s.Labels())
		v, ok := s.Values("a")
		require.True(t, ok)
		assert.Equal(t, []float64{3, 4}, v)
	})

	t.Run("labels are a copy", func(t *testing.T) {
		s := NewSeries()
		s.Add("a", nil)
		labels := s.Labels()
		labels[0] = "changed"
		assert.Equal(t, []string{"a"}, s.Labels())
	})
}

func TestMatrix(t *testing.T) {
	t.Run("shape", func(t *testing.T) {
		m, err := NewMatrix([]string{"r0", "r1"}, []string{"c0", "c1", "c2"}, [][]float64{{1, 2, 3}, {4, 5, -6}})
		require.NoError(t, err)
		rows, cols := m.Dims()
		assert.Equal(t, 2, rows)
		assert.Equal(t, 3, cols)
		assert.Equal(t, 5.0, m.At(1, 1))
		min, max := m.Bounds()
		assert.Equal(t, -6.0, min)
		assert.Equal(t, 5.0, max)
	})

	t.Run("bad shape", func(t *testing.T) {
		_, err := NewMatrix([]string{"r0"}, []string{"c0"}, [][]float64{{1, 2}})
		assert.True(t, errors.Is(err, ErrMatrixShape))
		_, err = NewMatrix([]string{"r0", "r1"}, []string{"c0"}, [][]float64{{1}})
		assert.True(t, errors.Is(err, ErrMatrixShape))
	})

	t.Run("empty bounds", func(t *testing.T) {
		m, err := NewMatrix(nil, nil, nil)
		require.NoError(t, err)
		min, max := m.Bounds()
		assert.True(t, math.IsNaN(min))
		assert.True(t, math.IsNaN(max))
	})
}
