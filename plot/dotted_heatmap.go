package plot

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/ducksouplab/ridgeplot/colors"
	"github.com/ducksouplab/ridgeplot/config"
	"github.com/ducksouplab/ridgeplot/types"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	ErrEmptyMatrix        = errors.New("heatmap: empty matrix")
	ErrNegativeCircleSize = errors.New("heatmap: circle size should not be negative")
)

type HeatmapOptions struct {
	// empty means the configured color map (cividis)
	ColorMap string
	// fixed radius in data units, nil means radius relative to the matrix max
	CircleSize *float64
}

// dots draws one circle per matrix cell centered on (col, row), with gridlines between cells
type dots struct {
	rows, cols int
	radii      [][]float64
	colors     [][]color.Color
	grid       draw.LineStyle
}

var _ plot.Plotter = (*dots)(nil)
var _ plot.DataRanger = (*dots)(nil)

func (d *dots) DataRange() (xmin, xmax, ymin, ymax float64) {
	return -0.5, float64(d.cols) - 0.5, -0.5, float64(d.rows) - 0.5
}

func (d *dots) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)

	bottom, top := trY(-0.5), trY(float64(d.rows)-0.5)
	for col := 0; col <= d.cols; col++ {
		x := trX(float64(col) - 0.5)
		c.StrokeLine2(d.grid, x, bottom, x, top)
	}
	left, right := trX(-0.5), trX(float64(d.cols)-0.5)
	for row := 0; row <= d.rows; row++ {
		y := trY(float64(row) - 0.5)
		c.StrokeLine2(d.grid, left, y, right, y)
	}

	// one data unit on the tighter axis, keeps circles round whatever the aspect ratio
	unit := trX(1) - trX(0)
	if yUnit := trY(1) - trY(0); yUnit < unit {
		unit = yUnit
	}

	for row := 0; row < d.rows; row++ {
		for col := 0; col < d.cols; col++ {
			r := vg.Length(d.radii[row][col]) * unit
			if r <= 0 {
				continue
			}
			center := vg.Point{X: trX(float64(col)), Y: trY(float64(row))}
			var path vg.Path
			path.Move(vg.Point{X: center.X + r, Y: center.Y})
			path.Arc(center, r, 0, 2*math.Pi)
			path.Close()
			c.SetColor(d.colors[row][col])
			c.Fill(path)
		}
	}
}

func radii(m *types.Matrix, size *float64) [][]float64 {
	rows, cols := m.Dims()
	_, max := m.Bounds()
	denominator := max
	if denominator <= 0 {
		// all values negative or null: fall back on the largest magnitude
		for _, row := range m.Values {
			for _, v := range row {
				denominator = math.Max(denominator, math.Abs(v))
			}
		}
	}

	radii := make([][]float64, rows)
	for i := range radii {
		radii[i] = make([]float64, cols)
		for j := range radii[i] {
			switch {
			case size != nil:
				radii[i][j] = *size
			case denominator > 0:
				radii[i][j] = math.Abs(m.At(i, j)) / 2 / denominator
			}
		}
	}
	return radii
}

// colorScale returns a color map spanning the matrix values, widened when they are all equal
func colorScale(name string, min, max float64) (palette.ColorMap, error) {
	cmap, err := colors.ColorMap(name)
	if err != nil {
		return nil, err
	}
	if min == max {
		min, max = min-0.5, max+0.5
	}
	cmap.SetMin(min)
	cmap.SetMax(max)
	return inward{cmap}, nil
}

// inward nudges values off the range ends, diverging maps reject endpoint colors that land
// a rounding error outside the sRGB gamut
type inward struct {
	palette.ColorMap
}

func (m inward) At(v float64) (color.Color, error) {
	eps := 1e-9 * (m.Max() - m.Min())
	return m.ColorMap.At(math.Min(math.Max(v, m.Min()+eps), m.Max()-eps))
}

func cellColors(m *types.Matrix, cmap palette.ColorMap) ([][]color.Color, error) {
	rows, cols := m.Dims()
	cs := make([][]color.Color, rows)
	for i := range cs {
		cs[i] = make([]color.Color, cols)
		for j := range cs[i] {
			c, err := cmap.At(m.At(i, j))
			if err != nil {
				return nil, fmt.Errorf("heatmap: cell (%s, %s): %w", m.Rows[i], m.Columns[j], err)
			}
			cs[i][j] = c
		}
	}
	return cs, nil
}

func newColorBar(cmap palette.ColorMap) *plot.Plot {
	bar := plot.New()
	bar.HideX()
	bar.X.Padding = 0
	bar.Add(&plotter.ColorBar{ColorMap: cmap, Vertical: true})
	return bar
}

// API

// DottedHeatmap draws m as a grid of circles, sized and colored by value, and returns the
// color scale as a separate plot to be composed with WriteWithColorBar or SaveWithColorBar.
func DottedHeatmap(p *plot.Plot, m *types.Matrix, opts *HeatmapOptions) (*plot.Plot, error) {
	if opts == nil {
		opts = &HeatmapOptions{}
	}
	style := config.Style.Heatmap
	rows, cols := m.Dims()
	if rows == 0 || cols == 0 {
		return nil, ErrEmptyMatrix
	}
	if opts.CircleSize != nil && *opts.CircleSize < 0 {
		return nil, fmt.Errorf("%w: %g", ErrNegativeCircleSize, *opts.CircleSize)
	}

	name := opts.ColorMap
	if name == "" {
		name = style.ColorMap
	}
	min, max := m.Bounds()
	cmap, err := colorScale(name, min, max)
	if err != nil {
		return nil, fmt.Errorf("heatmap: %w", err)
	}
	cs, err := cellColors(m, cmap)
	if err != nil {
		return nil, err
	}

	gridColor, err := colors.ParseColor(style.GridColor)
	if err != nil {
		return nil, fmt.Errorf("heatmap: grid color: %w", err)
	}
	d := &dots{
		rows:   rows,
		cols:   cols,
		radii:  radii(m, opts.CircleSize),
		colors: cs,
		grid: draw.LineStyle{
			Color: colors.WithAlpha(gridColor, style.GridAlpha),
			Width: vg.Points(1),
		},
	}
	p.Add(d)
	p.NominalX(m.Columns...)
	p.NominalY(m.Rows...)
	p.X.Min, p.X.Max = -0.5, float64(cols)-0.5
	p.Y.Min, p.Y.Max = -0.5, float64(rows)-0.5

	log.Debug().
		Str("context", "heatmap").
		Int("rows", rows).
		Int("cols", cols).
		Str("color_map", name).
		Msg("heatmap_drawn")
	return newColorBar(cmap), nil
}
