package colors

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

var ErrInvalidColor = errors.New("invalid color")

// ParseColor reads a hex token (#rgb, #rrggbb, #rrggbbaa) or a CSS color name ("steelblue")
func ParseColor(token string) (color.Color, error) {
	s := strings.TrimSpace(token)
	if strings.HasPrefix(s, "#") {
		return parseHex(s[1:], token)
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidColor, token)
}

func parseHex(hex, token string) (color.Color, error) {
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidColor, token)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidColor, token)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// ParseColors parses every token, the first failure is returned
func ParseColors(tokens []string) ([]color.Color, error) {
	parsed := make([]color.Color, len(tokens))
	for i, token := range tokens {
		c, err := ParseColor(token)
		if err != nil {
			return nil, err
		}
		parsed[i] = c
	}
	return parsed, nil
}

// WithAlpha returns c with its opacity multiplied by alpha (clamped to [0,1])
func WithAlpha(c color.Color, alpha float64) color.Color {
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float64(n.A)*alpha + 0.5)
	return n
}
