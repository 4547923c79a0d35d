package plot

import (
	"errors"
	"fmt"
	"math"

	"github.com/ducksouplab/ridgeplot/config"
	"github.com/ducksouplab/ridgeplot/stats"
	"github.com/ducksouplab/ridgeplot/types"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	ErrNoSeries         = errors.New("ridgeline: no series")
	ErrFillColorsLength = errors.New("ridgeline: fill colors must be same length as data")
	ErrLineColorsLength = errors.New("ridgeline: line colors must be same length as data")
	ErrInvalidRange     = errors.New("ridgeline: invalid x range")
)

type Range struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

type RidgelineOptions struct {
	// nil means [min, max] of the FIRST series only
	XLim *Range
	// nil means the configured default color for every series
	FillColors []string
	LineColors []string
	// zero values fall back to the style config
	LabelSize float64
	LineWidth float64
	// nil falls back to the style config, 0 is a transparent fill
	FillAlpha *float64
}

type ridge struct {
	label    string
	baseline float64
	xys      plotter.XYs
}

func DefaultRidgelineOptions() *RidgelineOptions {
	style := config.Style.Ridgeline
	return &RidgelineOptions{
		LabelSize: style.LabelSize,
		LineWidth: style.LineWidth,
		FillAlpha: &style.FillAlpha,
	}
}

// right end of the sampling grid, past the visible xmax
func overshoot(xmin, xmax, ratio float64) float64 {
	if xmax == 0 {
		return xmax + ratio*(xmax-xmin)
	}
	return xmax + ratio*math.Abs(xmax)
}

// samplingGrid spans [xmin, overshoot) with the configured step
func samplingGrid(xmin, xmax float64) []float64 {
	style := config.Style.Ridgeline
	return stats.Grid(xmin, overshoot(xmin, xmax, style.Overshoot), style.GridStep, style.MaxGridPoints)
}

func ridges(series *types.Series, grid []float64, step float64) ([]ridge, error) {
	ridges := make([]ridge, series.Len())
	for i := range ridges {
		label, values := series.At(i)
		density, err := stats.NewDensity(values)
		if err != nil {
			return nil, fmt.Errorf("ridgeline: series %q: %w", label, err)
		}
		ys, err := stats.Scaling(density.Evaluate(grid))
		if err != nil {
			return nil, fmt.Errorf("ridgeline: series %q: %w", label, err)
		}
		// later series stack downward
		baseline := -float64(i) * step
		xys := make(plotter.XYs, len(grid))
		for j, x := range grid {
			xys[j] = plotter.XY{X: x, Y: ys[j] + baseline}
		}
		ridges[i] = ridge{label, baseline, xys}
	}
	return ridges, nil
}

// labelsOnly turns the y axis into series labels anchored on their baselines
func labelsOnly(a *plot.Axis, ticks []plot.Tick, size float64) {
	a.Label.Text = ""
	a.Width = 0
	a.Tick.Width = 0
	a.Tick.Length = 0
	a.Tick.Label.Font.Size = vg.Points(size)
	a.Tick.Label.YAlign = draw.YBottom
	a.Tick.Marker = plot.ConstantTicks(ticks)
}

// API

// Ridgeline draws one scaled density curve per series, stacked top to bottom in insertion
// order. Nothing is drawn unless every series can be estimated.
func Ridgeline(p *plot.Plot, series *types.Series, opts *RidgelineOptions) error {
	if opts == nil {
		opts = DefaultRidgelineOptions()
	}
	style := config.Style.Ridgeline
	n := series.Len()
	if n == 0 {
		return ErrNoSeries
	}

	fillTokens := opts.FillColors
	if fillTokens == nil {
		fillTokens = repeatColor(style.FillColor, n)
	}
	lineTokens := opts.LineColors
	if lineTokens == nil {
		lineTokens = repeatColor(style.LineColor, n)
	}

	var xmin, xmax float64
	if opts.XLim != nil {
		xmin, xmax = opts.XLim.Min, opts.XLim.Max
	} else {
		label, first := series.At(0)
		if len(first) == 0 {
			return fmt.Errorf("ridgeline: series %q: %w", label, stats.ErrEmpty)
		}
		xmin, xmax = floats.Min(first), floats.Max(first)
	}

	if len(fillTokens) != n {
		return ErrFillColorsLength
	}
	if len(lineTokens) != n {
		return ErrLineColorsLength
	}
	if !(xmin < xmax) {
		return fmt.Errorf("%w: [%g, %g]", ErrInvalidRange, xmin, xmax)
	}

	fillAlpha := style.FillAlpha
	if opts.FillAlpha != nil {
		fillAlpha = *opts.FillAlpha
	}
	fills, err := parseColors("fill colors", fillTokens, fillAlpha)
	if err != nil {
		return err
	}
	lines, err := parseColors("line colors", lineTokens, 1)
	if err != nil {
		return err
	}

	grid := samplingGrid(xmin, xmax)
	if len(grid) < 2 {
		return fmt.Errorf("%w: [%g, %g] is narrower than one grid step", ErrInvalidRange, xmin, xmax)
	}
	rs, err := ridges(series, grid, style.BaselineStep)
	if err != nil {
		return err
	}

	labelSize := opts.LabelSize
	if labelSize <= 0 {
		labelSize = style.LabelSize
	}
	lineWidth := opts.LineWidth
	if lineWidth <= 0 {
		lineWidth = style.LineWidth
	}

	ticks := make([]plot.Tick, len(rs))
	for i, r := range rs {
		if err := createRidge(p, r.xys, r.baseline, lineWidth, fills[i], lines[i]); err != nil {
			return fmt.Errorf("ridgeline: series %q: %w", r.label, err)
		}
		ticks[i] = plot.Tick{Value: r.baseline, Label: r.label}
	}

	// relative shapes only: no density scale, the x axis hides the grid overshoot
	labelsOnly(&p.Y, ticks, labelSize)
	p.X.Min = xmin
	p.X.Max = xmax

	log.Debug().
		Str("context", "ridgeline").
		Int("series", n).
		Int("grid", len(grid)).
		Float64("xmin", xmin).
		Float64("xmax", xmax).
		Msg("ridgeline_drawn")
	return nil
}
