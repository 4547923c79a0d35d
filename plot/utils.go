package plot

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// NewPlot is the drawing surface every renderer of this package expects
func NewPlot(title, x, y string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = x
	p.Y.Label.Text = y
	return p
}

// createRidge fills the area between xys and baseline, then strokes the curve on top
func createRidge(p *plot.Plot, xys plotter.XYs, baseline, width float64, fill, line color.Color) error {
	ring := make(plotter.XYs, 0, len(xys)+2)
	ring = append(ring, xys...)
	ring = append(ring,
		plotter.XY{X: xys[len(xys)-1].X, Y: baseline},
		plotter.XY{X: xys[0].X, Y: baseline},
	)
	area, err := plotter.NewPolygon(ring)
	if err != nil {
		return err
	}
	area.Color = fill
	area.LineStyle.Width = 0

	curve, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	curve.LineStyle.Width = vg.Points(width)
	curve.LineStyle.Color = line

	p.Add(area, curve)
	return nil
}
