package encoder

import (
	"image/color"
	"sort"

	"github.com/ducksouplab/ridgeplot/colors"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// patch is a legend thumbnail filled with a single color
type patch struct {
	color color.Color
}

func (p patch) Thumbnail(c *draw.Canvas) {
	c.FillPolygon(p.color, []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	})
}

// ShowLegend adds one colored patch per category to the plot legend.
// With sorted, the stored encoding order itself becomes the label order (Transform results
// are unaffected, Encoding and later legends are).
func (ce *ColorEncoder) ShowLegend(p *plot.Plot, sorted bool) ([]Entry, error) {
	if ce.encoding == nil {
		return nil, ErrNotFit
	}
	// parse first, a bad token leaves the stored order untouched
	thumbs := make(map[string]plot.Thumbnailer, len(ce.encoding.entries))
	for _, e := range ce.encoding.entries {
		c, err := colors.ParseColor(e.Color)
		if err != nil {
			return nil, err
		}
		thumbs[e.Category] = patch{c}
	}
	if sorted {
		sort.SliceStable(ce.encoding.entries, func(i, j int) bool {
			return ce.encoding.entries[i].Category < ce.encoding.entries[j].Category
		})
	}
	for _, e := range ce.encoding.entries {
		p.Legend.Add(e.Category, thumbs[e.Category])
	}

	log.Debug().Str("context", "encoder").Int("entries", len(thumbs)).Bool("sorted", sorted).Msg("legend_added")
	return ce.Encoding(), nil
}
