package plot

import (
	"fmt"
	"image/color"

	"github.com/ducksouplab/ridgeplot/colors"
)

func repeatColor(token string, n int) []string {
	tokens := make([]string, n)
	for i := range tokens {
		tokens[i] = token
	}
	return tokens
}

// parseColors parses tokens and applies alpha, kind names the option in errors
func parseColors(kind string, tokens []string, alpha float64) ([]color.Color, error) {
	parsed, err := colors.ParseColors(tokens)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", kind, err)
	}
	if alpha < 1 {
		for i, c := range parsed {
			parsed[i] = colors.WithAlpha(c, alpha)
		}
	}
	return parsed, nil
}
