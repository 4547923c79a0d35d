package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ducksouplab/ridgeplot/colors"
	"github.com/ducksouplab/ridgeplot/dataset"
	"github.com/ducksouplab/ridgeplot/encoder"
	"github.com/ducksouplab/ridgeplot/env"
	"github.com/ducksouplab/ridgeplot/helpers"
	"github.com/ducksouplab/ridgeplot/plot"
	"github.com/ducksouplab/ridgeplot/server"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"
)

var (
	output        string
	title         string
	width, height float64
)

// outputPath resolves relative outputs against RIDGEPLOT_OUTPUT_DIR
func outputPath(name string) (string, error) {
	if !filepath.IsAbs(name) {
		name = filepath.Join(env.OutputDir, name)
	}
	if err := helpers.EnsureDir(filepath.Dir(name)); err != nil {
		return "", err
	}
	return name, nil
}

func figureSize() (vg.Length, vg.Length) {
	w, h := plot.FigureSize()
	if width > 0 {
		w = vg.Length(width) * vg.Inch
	}
	if height > 0 {
		h = vg.Length(height) * vg.Inch
	}
	return w, h
}

func addFigureFlags(cmd *cobra.Command, defaultOutput string) {
	cmd.Flags().StringVarP(&output, "output", "o", defaultOutput, "Output file, format from extension (png, svg, pdf...)")
	cmd.Flags().StringVar(&title, "title", "", "Plot title")
	cmd.Flags().Float64Var(&width, "width", 0, "Figure width in inches (default from style)")
	cmd.Flags().Float64Var(&height, "height", 0, "Figure height in inches (default from style)")
}

func ridgelineCmd() *cobra.Command {
	var xLabel string
	var xMin, xMax, labelSize, fillAlpha float64
	var fillColors, lineColors []string

	cmd := &cobra.Command{
		Use:   "ridgeline [series.yml|csv|xlsx]",
		Short: "Draw stacked density curves, one per series",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			series, err := dataset.LoadSeries(args[0])
			if err != nil {
				return err
			}
			opts := plot.DefaultRidgelineOptions()
			if cmd.Flags().Changed("xmin") || cmd.Flags().Changed("xmax") {
				if !cmd.Flags().Changed("xmin") || !cmd.Flags().Changed("xmax") {
					return fmt.Errorf("--xmin and --xmax go together")
				}
				opts.XLim = &plot.Range{Min: xMin, Max: xMax}
			}
			if len(fillColors) > 0 {
				opts.FillColors = fillColors
			}
			if len(lineColors) > 0 {
				opts.LineColors = lineColors
			}
			if labelSize > 0 {
				opts.LabelSize = labelSize
			}
			if cmd.Flags().Changed("fill-alpha") {
				opts.FillAlpha = &fillAlpha
			}

			p := plot.NewPlot(title, xLabel, "")
			if err := plot.Ridgeline(p, series, opts); err != nil {
				return err
			}
			file, err := outputPath(output)
			if err != nil {
				return err
			}
			w, h := figureSize()
			return plot.Save(p, w, h, file)
		},
	}
	addFigureFlags(cmd, "ridgeline.png")
	cmd.Flags().StringVar(&xLabel, "xlabel", "", "X axis label")
	cmd.Flags().Float64Var(&xMin, "xmin", 0, "Left edge of the x axis (default: first series min)")
	cmd.Flags().Float64Var(&xMax, "xmax", 0, "Right edge of the x axis (default: first series max)")
	cmd.Flags().StringSliceVar(&fillColors, "fill-colors", nil, "One fill color per series")
	cmd.Flags().StringSliceVar(&lineColors, "line-colors", nil, "One line color per series")
	cmd.Flags().Float64Var(&labelSize, "label-size", 0, "Series label font size in points")
	cmd.Flags().Float64Var(&fillAlpha, "fill-alpha", 0, "Fill opacity in [0,1] (default from style)")
	return cmd
}

func heatmapCmd() *cobra.Command {
	var colorMap string
	var circleSize float64

	cmd := &cobra.Command{
		Use:   "heatmap [matrix.csv|xlsx]",
		Short: "Draw a matrix as a grid of circles sized and colored by value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := dataset.LoadMatrix(args[0])
			if err != nil {
				return err
			}
			opts := &plot.HeatmapOptions{ColorMap: colorMap}
			if cmd.Flags().Changed("circle-size") {
				opts.CircleSize = &circleSize
			}

			p := plot.NewPlot(title, "", "")
			bar, err := plot.DottedHeatmap(p, m, opts)
			if err != nil {
				return err
			}
			file, err := outputPath(output)
			if err != nil {
				return err
			}
			w, h := figureSize()
			return plot.SaveWithColorBar(p, bar, w, h, file)
		},
	}
	addFigureFlags(cmd, "heatmap.png")
	cmd.Flags().StringVar(&colorMap, "colormap", "", "Color scale, see the palettes command (default from style)")
	cmd.Flags().Float64Var(&circleSize, "circle-size", 0, "Fixed circle radius in cell units (default: relative to max)")
	return cmd
}

func encodeCmd() *cobra.Command {
	var paletteName, legend string
	var colorTokens []string
	var sorted bool

	cmd := &cobra.Command{
		Use:   "encode [categories.txt|csv|xlsx]",
		Short: "Assign palette colors to categories in first-seen order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			categories, err := dataset.LoadCategories(args[0])
			if err != nil {
				return err
			}
			palette := colorTokens
			if len(palette) == 0 && paletteName != "" {
				if palette, err = colors.Get(paletteName); err != nil {
					return err
				}
			}

			ce := encoder.New()
			if err := ce.Fit(categories, palette); err != nil {
				return err
			}
			if legend != "" {
				p := plot.NewPlot(title, "", "")
				p.HideAxes()
				if _, err := ce.ShowLegend(p, sorted); err != nil {
					return err
				}
				file, err := outputPath(legend)
				if err != nil {
					return err
				}
				w, h := figureSize()
				if err := plot.Save(p, w, h, file); err != nil {
					return err
				}
			}
			for _, entry := range ce.Encoding() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", entry.Category, entry.Color)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&paletteName, "palette", "", "Palette name (default from style)")
	cmd.Flags().StringSliceVar(&colorTokens, "colors", nil, "Explicit color tokens, override --palette")
	cmd.Flags().StringVar(&legend, "legend", "", "Also draw the legend to this file")
	cmd.Flags().BoolVar(&sorted, "sort", false, "Sort legend entries by category")
	cmd.Flags().StringVar(&title, "title", "", "Legend title")
	cmd.Flags().Float64Var(&width, "width", 0, "Legend width in inches")
	cmd.Flags().Float64Var(&height, "height", 0, "Legend height in inches")
	return cmd
}

func palettesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "palettes",
		Short: "List categorical palettes and continuous color scales",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range colors.Names() {
				p, err := colors.Get(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s (%d): %s\n", name, len(p), strings.Join(p, " "))
			}
			fmt.Fprintf(out, "color maps: %s\n", strings.Join(colors.ColorMapNames(), ", "))
			return nil
		},
	}
}

func serveCmd() *cobra.Command {
	var cert, key string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return server.ListenAndServe(cert, key)
		},
	}
	cmd.Flags().StringVar(&cert, "cert", "", "TLS cert file")
	cmd.Flags().StringVar(&key, "key", "", "TLS key file")
	return cmd
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ridgeplot",
		Short:         "Ridgeline plots, dotted heatmaps and categorical color encoding",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(ridgelineCmd(), heatmapCmd(), encodeCmd(), palettesCmd(), serveCmd())
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Str("context", "main").Msg("command_failed")
		os.Exit(1)
	}
}
