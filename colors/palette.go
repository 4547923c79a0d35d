// Package colors holds the fixed categorical palettes, color token parsing and the named
// continuous color scales used by the renderers.
package colors

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownPalette = errors.New("unknown palette")

// Palette is an ordered list of color tokens (hex strings)
type Palette []string

// Get returns the color token at index, wrapping around
func (p Palette) Get(index int) string {
	if len(p) == 0 {
		return ""
	}
	return p[index%len(p)]
}

// from https://sashat.me/2017/01/11/list-of-20-simple-distinct-colors/ (modified)
var maximum = Palette{
	"#f58231",
	"#e6194b",
	"#3cb44b",
	"#ffe119",
	"#4363d8",
	"#911eb4",
	"#03A8FB",
	"#F8BF6C",
	"#CAF5CB",
	"#fabebe",
	"#008080",
	"#e6beff",
	"#9a6324",
	"#fffac8",
	"#800000",
	"#aaffc3",
	"#808000",
	"#ffd8b1",
	"#000075",
	"#808080",
	"#ffffff",
	"#000000",
}

// ggsci "simpsons", https://github.com/road2stat/ggsci
var simpsons = Palette{
	"#FED439",
	"#709AE1",
	"#8A9197",
	"#D2AF81",
	"#FD7446",
	"#D5E4A2",
	"#197EC0",
	"#F05C3B",
	"#46732E",
	"#71D0F5",
	"#370335",
	"#075149",
	"#C80813",
	"#91331F",
	"#1A9993",
	"#FD8CC1",
}

// Okabe & Ito colorblind-safe palette
var okabeito = Palette{
	"#E69F00",
	"#56B4E9",
	"#009E73",
	"#F0E442",
	"#0072B2",
	"#D55E00",
	"#CC79A7",
	"#999999",
}

var invitae = Palette{
	"#A3CF71",
	"#66BF7E",
	"#0AACA0",
	"#0888B2",
	"#373737",
	"#EFEDEA",
	"#686b69",
	"#417d55",
}

var palettes = map[string]Palette{
	"maximum":  maximum,
	"simpsons": simpsons,
	"okabeito": okabeito,
	"invitae":  invitae,
}

// API

// Get returns a copy of the named palette, callers can't alter the shared constants
func Get(name string) (Palette, error) {
	p, ok := palettes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPalette, name)
	}
	return append(Palette(nil), p...), nil
}

func Names() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
