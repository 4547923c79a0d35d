package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultStyle(t *testing.T) {
	assert.Equal(t, "steelblue", Style.Ridgeline.FillColor)
	assert.Equal(t, "white", Style.Ridgeline.LineColor)
	assert.Equal(t, 0.5, Style.Ridgeline.FillAlpha)
	assert.Equal(t, 10.0, Style.Ridgeline.LabelSize)
	assert.Equal(t, 0.7, Style.Ridgeline.BaselineStep)
	assert.Equal(t, 0.01, Style.Ridgeline.GridStep)
	assert.Equal(t, 0.1, Style.Ridgeline.Overshoot)
	assert.Equal(t, "cividis", Style.Heatmap.ColorMap)
	assert.Equal(t, "invitae", Style.Encoder.Palette)
}

func TestOverride(t *testing.T) {
	style := Style
	err := decode(strings.NewReader("ridgeline:\n  fillColor: tomato\n"), &style)
	require.NoError(t, err)
	assert.Equal(t, "tomato", style.Ridgeline.FillColor)
	// untouched keys are kept
	assert.Equal(t, "white", style.Ridgeline.LineColor)
	assert.Equal(t, "cividis", style.Heatmap.ColorMap)
}

func TestOverrideEmpty(t *testing.T) {
	style := Style
	require.NoError(t, decode(strings.NewReader(""), &style))
	assert.Equal(t, Style, style)
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte("ridgeline: [unclosed"))
	assert.Error(t, err)
}
