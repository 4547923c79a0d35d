package plot

import (
	"fmt"
	"io"
	"os"

	"github.com/ducksouplab/ridgeplot/config"
	"github.com/ducksouplab/ridgeplot/helpers"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// FigureSize is the configured default figure size
func FigureSize() (w, h vg.Length) {
	return vg.Length(config.Style.Figure.Width) * vg.Inch, vg.Length(config.Style.Figure.Height) * vg.Inch
}

func create(file string, write func(out io.Writer) error) (err error) {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer func() {
		if e := f.Close(); err == nil {
			err = e
		}
	}()
	return write(f)
}

// API

// Write renders p in format (png, svg, pdf...) to out
func Write(out io.Writer, p *plot.Plot, w, h vg.Length, format string) error {
	wt, err := p.WriterTo(w, h, format)
	if err != nil {
		return err
	}
	if _, err := wt.WriteTo(out); err != nil {
		return err
	}
	log.Debug().Str("context", "figure").Str("format", format).Msg("figure_written")
	return nil
}

// Save renders p to file, the format follows the file extension
func Save(p *plot.Plot, w, h vg.Length, file string) error {
	err := create(file, func(out io.Writer) error {
		return Write(out, p, w, h, helpers.Format(file))
	})
	if err != nil {
		return err
	}
	log.Info().Str("context", "figure").Str("file", file).Msg("figure_saved")
	return nil
}

// WriteWithColorBar renders p and its color bar side by side, the bar on the right
func WriteWithColorBar(out io.Writer, p, bar *plot.Plot, w, h vg.Length, format string) error {
	c, err := draw.NewFormattedCanvas(w, h, format)
	if err != nil {
		return err
	}
	share := config.Style.Heatmap.BarShare
	if share <= 0 || share >= 1 {
		return fmt.Errorf("figure: invalid bar share %g", share)
	}
	split := vg.Length(1-share) * w

	dc := draw.New(c)
	p.Draw(draw.Crop(dc, 0, split-w, 0, 0))
	bar.Draw(draw.Crop(dc, split, 0, 0, 0))

	if _, err := c.WriteTo(out); err != nil {
		return err
	}
	log.Debug().Str("context", "figure").Str("format", format).Msg("figure_with_bar_written")
	return nil
}

func SaveWithColorBar(p, bar *plot.Plot, w, h vg.Length, file string) error {
	err := create(file, func(out io.Writer) error {
		return WriteWithColorBar(out, p, bar, w, h, helpers.Format(file))
	})
	if err != nil {
		return err
	}
	log.Info().Str("context", "figure").Str("file", file).Msg("figure_saved")
	return nil
}
