package config

import (
	_ "embed"
	"fmt"
	"io"

	"github.com/ducksouplab/ridgeplot/env"
	"github.com/ducksouplab/ridgeplot/helpers"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v2"
)

type StyleConfig struct {
	Figure    FigureStyle    `yaml:"figure"`
	Ridgeline RidgelineStyle `yaml:"ridgeline"`
	Heatmap   HeatmapStyle   `yaml:"heatmap"`
	Encoder   struct {
		Palette string `yaml:"palette"`
	} `yaml:"encoder"`
}

type FigureStyle struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// upper bound on requested sizes, inches
	MaxSize float64 `yaml:"maxSize"`
	// upper bound on rendering request bodies
	MaxBodyBytes int64 `yaml:"maxBodyBytes"`
}

type RidgelineStyle struct {
	FillColor     string  `yaml:"fillColor"`
	LineColor     string  `yaml:"lineColor"`
	LineWidth     float64 `yaml:"lineWidth"`
	FillAlpha     float64 `yaml:"fillAlpha"`
	LabelSize     float64 `yaml:"labelSize"`
	BaselineStep  float64 `yaml:"baselineStep"`
	GridStep      float64 `yaml:"gridStep"`
	Overshoot     float64 `yaml:"overshoot"`
	MaxGridPoints int     `yaml:"maxGridPoints"`
}

type HeatmapStyle struct {
	ColorMap  string  `yaml:"colorMap"`
	GridColor string  `yaml:"gridColor"`
	GridAlpha float64 `yaml:"gridAlpha"`
	BarShare  float64 `yaml:"barShare"`
}

//go:embed style.yml
var defaultStyle []byte

var Style StyleConfig

func init() {
	var err error
	if Style, err = Parse(defaultStyle); err != nil {
		// embedded file is part of the build
		panic(err)
	}

	if env.StyleFile != "" {
		f, err := helpers.Open(env.StyleFile)
		if err != nil {
			log.Fatal().Err(err).Str("context", "init").Msg("style_file_failed")
		}
		defer f.Close()

		// override defaults, keys missing from the file keep their value
		if err := decode(f, &Style); err != nil {
			log.Fatal().Err(err).Str("context", "init").Msg("style_file_failed")
		}
	}

	log.Debug().Str("context", "init").Str("config", fmt.Sprintf("%+v", Style)).Msg("style_config_loaded")
}

func decode(r io.Reader, style *StyleConfig) error {
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(style); err != nil && err != io.EOF {
		return err
	}
	return nil
}

// API

// Parse decodes a YAML style document
func Parse(data []byte) (StyleConfig, error) {
	var style StyleConfig
	err := yaml.Unmarshal(data, &style)
	return style, err
}
