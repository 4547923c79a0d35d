package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/ducksouplab/ridgeplot/colors"
	"github.com/ducksouplab/ridgeplot/config"
	"github.com/ducksouplab/ridgeplot/encoder"
	"github.com/ducksouplab/ridgeplot/plot"
	"github.com/ducksouplab/ridgeplot/store"
	"github.com/ducksouplab/ridgeplot/types"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/plot/vg"
)

var (
	errUnsupportedFormat = errors.New("unsupported format")
	errFigureTooLarge    = errors.New("figure too large")
)

var contentTypes = map[string]string{
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"tif":  "image/tiff",
	"tiff": "image/tiff",
	"svg":  "image/svg+xml",
	"pdf":  "application/pdf",
	"eps":  "application/postscript",
}

type errorResponse struct {
	Error string `json:"error"`
}

type encodePayload struct {
	Categories []string `json:"categories"`
	Palette    string   `json:"palette"`
	// explicit color tokens win over the palette
	Colors []string `json:"colors"`
}

type encodeResponse struct {
	Colors   []string        `json:"colors"`
	Encoding []encoder.Entry `json:"encoding"`
}

type namedSamples struct {
	Label  string    `json:"label"`
	Values []float64 `json:"values"`
}

// figurePayload holds the fields shared by every rendering request
type figurePayload struct {
	Title  string `json:"title"`
	Format string `json:"format"`
	// inches, zero means the configured figure size
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type ridgelinePayload struct {
	figurePayload
	XLabel     string         `json:"xLabel"`
	Series     []namedSamples `json:"series"`
	XLim       *plot.Range    `json:"xLim"`
	FillColors []string       `json:"fillColors"`
	LineColors []string       `json:"lineColors"`
	LabelSize  float64        `json:"labelSize"`
	FillAlpha  *float64       `json:"fillAlpha"`
}

type heatmapPayload struct {
	figurePayload
	Rows       []string    `json:"rows"`
	Columns    []string    `json:"columns"`
	Values     [][]float64 `json:"values"`
	ColorMap   string      `json:"colorMap"`
	CircleSize *float64    `json:"circleSize"`
}

type figureResponse struct {
	Id  string `json:"id"`
	URL string `json:"url"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Str("context", "server").Msg("response_failed")
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	log.Info().Err(err).Str("context", "server").Int("status", status).Msg("request_failed")
	writeJSON(w, status, errorResponse{err.Error()})
}

func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, config.Style.Figure.MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, err)
		} else {
			writeError(w, http.StatusBadRequest, err)
		}
		return false
	}
	return true
}

// size and content type of the requested figure, format defaults to png
func (f *figurePayload) settings() (w, h vg.Length, format, contentType string, err error) {
	format = f.Format
	if format == "" {
		format = "png"
	}
	contentType, ok := contentTypes[format]
	if !ok {
		return 0, 0, "", "", errUnsupportedFormat
	}
	if limit := config.Style.Figure.MaxSize; f.Width > limit || f.Height > limit {
		return 0, 0, "", "", fmt.Errorf("%w: %gx%g inches, max is %g", errFigureTooLarge, f.Width, f.Height, limit)
	}
	w, h = plot.FigureSize()
	if f.Width > 0 {
		w = vg.Length(f.Width) * vg.Inch
	}
	if f.Height > 0 {
		h = vg.Length(f.Height) * vg.Inch
	}
	return w, h, format, contentType, nil
}

func storeFigure(w http.ResponseWriter, r *http.Request, kind, contentType string, data []byte) {
	figure := store.AddFigure(kind, contentType, data)
	// sibling of the rendering route, keeps the web prefix
	location := strings.TrimSuffix(r.URL.Path, "/"+kind) + "/plots/" + figure.Id
	w.Header().Set("Location", location)
	writeJSON(w, http.StatusCreated, figureResponse{figure.Id, location})
}

func palettesHandler(w http.ResponseWriter, r *http.Request) {
	palettes := make(map[string]colors.Palette)
	for _, name := range colors.Names() {
		p, _ := colors.Get(name)
		palettes[name] = p
	}
	writeJSON(w, http.StatusOK, palettes)
}

func colorMapsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, colors.ColorMapNames())
}

func encodeHandler(w http.ResponseWriter, r *http.Request) {
	var payload encodePayload
	if !decode(w, r, &payload) {
		return
	}
	palette := payload.Colors
	if palette == nil && payload.Palette != "" {
		p, err := colors.Get(payload.Palette)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		palette = p
	}

	ce := encoder.New()
	out, err := ce.FitTransform(payload.Categories, palette)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, encodeResponse{out, ce.Encoding()})
}

func ridgelineHandler(w http.ResponseWriter, r *http.Request) {
	var payload ridgelinePayload
	if !decode(w, r, &payload) {
		return
	}
	width, height, format, contentType, err := payload.settings()
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	series := types.NewSeries()
	for _, s := range payload.Series {
		if _, ok := series.Values(s.Label); ok {
			writeError(w, http.StatusBadRequest, fmt.Errorf("%w: %q", types.ErrDuplicateLabel, s.Label))
			return
		}
		series.Add(s.Label, s.Values)
	}
	opts := plot.DefaultRidgelineOptions()
	opts.XLim = payload.XLim
	opts.FillColors = payload.FillColors
	opts.LineColors = payload.LineColors
	if payload.LabelSize > 0 {
		opts.LabelSize = payload.LabelSize
	}
	if payload.FillAlpha != nil {
		opts.FillAlpha = payload.FillAlpha
	}

	p := plot.NewPlot(payload.Title, payload.XLabel, "")
	if err := plot.Ridgeline(p, series, opts); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	var buf bytes.Buffer
	if err := plot.Write(&buf, p, width, height, format); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	storeFigure(w, r, "ridgeline", contentType, buf.Bytes())
}

func heatmapHandler(w http.ResponseWriter, r *http.Request) {
	var payload heatmapPayload
	if !decode(w, r, &payload) {
		return
	}
	width, height, format, contentType, err := payload.settings()
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	m, err := types.NewMatrix(payload.Rows, payload.Columns, payload.Values)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	p := plot.NewPlot(payload.Title, "", "")
	bar, err := plot.DottedHeatmap(p, m, &plot.HeatmapOptions{ColorMap: payload.ColorMap, CircleSize: payload.CircleSize})
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	var buf bytes.Buffer
	if err := plot.WriteWithColorBar(&buf, p, bar, width, height, format); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	storeFigure(w, r, "heatmap", contentType, buf.Bytes())
}

func figureHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	figure, ok := store.GetFigure(id)
	if !ok {
		writeError(w, http.StatusNotFound, errors.New("figure not found"))
		return
	}
	w.Header().Set("Content-Type", figure.ContentType)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(figure.Data); err != nil {
		log.Error().Err(err).Str("context", "server").Str("figure", id).Msg("figure_write_failed")
	}
}
