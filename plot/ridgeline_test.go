package plot

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/ducksouplab/ridgeplot/stats"
	"github.com/ducksouplab/ridgeplot/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

func randomSeries(n int) *types.Series {
	r := rand.New(rand.NewSource(42))
	series := types.NewSeries()
	for i := 0; i < n; i++ {
		xs := make([]float64, 100)
		for j := range xs {
			xs[j] = r.NormFloat64() + float64(i)
		}
		series.Add(string(rune('a'+i)), xs)
	}
	return series
}

func untouched(p *plot.Plot) bool {
	return math.IsInf(p.X.Min, 1) && math.IsInf(p.X.Max, -1)
}

func TestRidgeline(t *testing.T) {
	t.Run("default options", func(t *testing.T) {
		p := NewPlot("ridgeline", "value", "")
		require.NoError(t, Ridgeline(p, randomSeries(3), nil))

		// drawable
		p.Draw(draw.New(vgimg.New(4*vg.Inch, 3*vg.Inch)))
	})

	t.Run("labels on baselines, top to bottom", func(t *testing.T) {
		p := NewPlot("", "", "density")
		require.NoError(t, Ridgeline(p, randomSeries(3), nil))

		ticks, ok := p.Y.Tick.Marker.(plot.ConstantTicks)
		require.True(t, ok)
		require.Len(t, ticks, 3)
		for i, label := range []string{"a", "b", "c"} {
			assert.Equal(t, label, ticks[i].Label)
			assert.InDelta(t, -0.7*float64(i), ticks[i].Value, 1e-12)
		}
		assert.Empty(t, p.Y.Label.Text)
		assert.Zero(t, p.Y.Width)
		assert.Zero(t, p.Y.Tick.Length)
		assert.Equal(t, vg.Points(10), p.Y.Tick.Label.Font.Size)
	})

	t.Run("x range from the first series only", func(t *testing.T) {
		series := types.NewSeries()
		series.Add("narrow", []float64{1, 2, 2.5, 3})
		series.Add("wide", []float64{-10, 0, 4, 10})
		p := plot.New()
		require.NoError(t, Ridgeline(p, series, nil))
		assert.Equal(t, 1.0, p.X.Min)
		assert.Equal(t, 3.0, p.X.Max)
	})

	t.Run("explicit x range and colors", func(t *testing.T) {
		p := plot.New()
		opts := &RidgelineOptions{
			XLim:       &Range{Min: -5, Max: 8},
			FillColors: []string{"red", "#00ff00", "#00f"},
			LineColors: []string{"black", "black", "black"},
			LabelSize:  14,
		}
		require.NoError(t, Ridgeline(p, randomSeries(3), opts))
		assert.Equal(t, -5.0, p.X.Min)
		assert.Equal(t, 8.0, p.X.Max)
		assert.Equal(t, vg.Points(14), p.Y.Tick.Label.Font.Size)
	})

	t.Run("zero as right edge", func(t *testing.T) {
		p := plot.New()
		require.NoError(t, Ridgeline(p, randomSeries(2), &RidgelineOptions{XLim: &Range{Min: -3, Max: 0}}))
	})
}

func TestRidgelineErrors(t *testing.T) {
	t.Run("fill colors length", func(t *testing.T) {
		p := plot.New()
		err := Ridgeline(p, randomSeries(3), &RidgelineOptions{FillColors: []string{"red", "blue"}})
		assert.True(t, errors.Is(err, ErrFillColorsLength))
		assert.Contains(t, err.Error(), "fill colors")
		assert.True(t, untouched(p))
	})

	t.Run("line colors length", func(t *testing.T) {
		p := plot.New()
		err := Ridgeline(p, randomSeries(3), &RidgelineOptions{LineColors: []string{"red", "blue", "white", "black"}})
		assert.True(t, errors.Is(err, ErrLineColorsLength))
		assert.Contains(t, err.Error(), "line colors")
		assert.True(t, untouched(p))
	})

	t.Run("homogeneous series", func(t *testing.T) {
		series := randomSeries(2)
		series.Add("flat", []float64{1, 1, 1, 1})
		p := plot.New()
		err := Ridgeline(p, series, &RidgelineOptions{XLim: &Range{Min: -3, Max: 3}})
		assert.True(t, errors.Is(err, stats.ErrHomogeneous))
		assert.Contains(t, err.Error(), `"flat"`)
		assert.True(t, untouched(p))
	})

	t.Run("no series", func(t *testing.T) {
		assert.True(t, errors.Is(Ridgeline(plot.New(), types.NewSeries(), nil), ErrNoSeries))
	})

	t.Run("invalid range", func(t *testing.T) {
		err := Ridgeline(plot.New(), randomSeries(1), &RidgelineOptions{XLim: &Range{Min: 2, Max: 2}})
		assert.True(t, errors.Is(err, ErrInvalidRange))
	})

	t.Run("bad color token", func(t *testing.T) {
		p := plot.New()
		err := Ridgeline(p, randomSeries(2), &RidgelineOptions{FillColors: []string{"red", "nope"}})
		assert.Error(t, err)
		assert.True(t, untouched(p))
	})
}

func TestRidgeGeometry(t *testing.T) {
	series := randomSeries(3)
	_, first := series.At(0)
	xmin, xmax := floats.Min(first), floats.Max(first)

	grid := samplingGrid(xmin, xmax)
	require.NotEmpty(t, grid)
	assert.Equal(t, xmin, grid[0])
	// grid stops one step short of xmax + 10%
	end := xmax + 0.1*math.Abs(xmax)
	assert.Less(t, grid[len(grid)-1], end)
	assert.Greater(t, grid[len(grid)-1], end-0.0101)

	rs, err := ridges(series, grid, 0.7)
	require.NoError(t, err)
	require.Len(t, rs, 3)
	for i, r := range rs {
		ys := make([]float64, len(r.xys))
		for j, xy := range r.xys {
			ys[j] = xy.Y
			assert.Equal(t, grid[j], xy.X)
		}
		baseline := -0.7 * float64(i)
		assert.InDelta(t, baseline, r.baseline, 1e-12)
		assert.InDelta(t, baseline, floats.Min(ys), 1e-12)
		assert.InDelta(t, baseline+1, floats.Max(ys), 1e-12)
		assert.Equal(t, xmin, r.xys[0].X)
	}

	// the overshoot is sampled but not shown
	p := plot.New()
	require.NoError(t, Ridgeline(p, series, nil))
	assert.Equal(t, xmin, p.X.Min)
	assert.Equal(t, xmax, p.X.Max)
}

func TestTransparentFill(t *testing.T) {
	fills, err := parseColors("fill colors", []string{"red", "blue"}, 0)
	require.NoError(t, err)
	for _, c := range fills {
		_, _, _, a := c.RGBA()
		assert.Zero(t, a)
	}

	zero := 0.0
	require.NoError(t, Ridgeline(plot.New(), randomSeries(2), &RidgelineOptions{FillAlpha: &zero}))
	// nil keeps the configured opacity
	require.NoError(t, Ridgeline(plot.New(), randomSeries(2), &RidgelineOptions{}))
}

func TestOvershoot(t *testing.T) {
	assert.InDelta(t, 11.0, overshoot(0, 10, 0.1), 1e-12)
	assert.InDelta(t, -9.0, overshoot(-20, -10, 0.1), 1e-12)
	assert.InDelta(t, 0.5, overshoot(-5, 0, 0.1), 1e-12)
}
