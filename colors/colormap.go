package colors

import (
	"errors"
	"fmt"
	"image/color"
	"sort"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
)

var ErrUnknownColorMap = errors.New("unknown color map")

// control points of the matplotlib perceptual maps, luminance strictly increasing
var luminanceControls = map[string][]string{
	"viridis": {"#440154", "#482878", "#3E4A89", "#31688E", "#26828E", "#1F9E89", "#35B779", "#6DCD59", "#B4DE2C", "#FDE725"},
	"cividis": {"#00204D", "#00336F", "#39486B", "#575C6D", "#707173", "#8A8779", "#A69D75", "#C4B56C", "#E4CF5B", "#FFEA46"},
	"magma":   {"#000004", "#1C1044", "#4F127B", "#812581", "#B5367A", "#E55064", "#FB8861", "#FEC287", "#FCFDBF"},
	"inferno": {"#000004", "#1B0C41", "#4A0C6B", "#781C6D", "#A52C60", "#CF4446", "#ED6925", "#FB9B06", "#F7D13D", "#FCFFA4"},
}

var builtinColorMaps = map[string]func() palette.ColorMap{
	"kindlmann":          moreland.Kindlmann,
	"extended-kindlmann": moreland.ExtendedKindlmann,
	"blackbody":          moreland.BlackBody,
	"extended-blackbody": moreland.ExtendedBlackBody,
	"blue-red":           func() palette.ColorMap { return moreland.SmoothBlueRed() },
	"purple-orange":      func() palette.ColorMap { return moreland.SmoothPurpleOrange() },
	"green-purple":       func() palette.ColorMap { return moreland.SmoothGreenPurple() },
	"blue-tan":           func() palette.ColorMap { return moreland.SmoothBlueTan() },
	"green-red":          func() palette.ColorMap { return moreland.SmoothGreenRed() },
}

// ColorMap returns a fresh color map, its range still has to be set by the caller
func ColorMap(name string) (palette.ColorMap, error) {
	if controls, ok := luminanceControls[name]; ok {
		cs := make([]color.Color, len(controls))
		for i, token := range controls {
			c, err := ParseColor(token)
			if err != nil {
				return nil, err
			}
			cs[i] = c
		}
		return moreland.NewLuminance(cs)
	}
	if build, ok := builtinColorMaps[name]; ok {
		return build(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownColorMap, name)
}

func ColorMapNames() []string {
	names := make([]string, 0, len(luminanceControls)+len(builtinColorMaps))
	for name := range luminanceControls {
		names = append(names, name)
	}
	for name := range builtinColorMaps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
