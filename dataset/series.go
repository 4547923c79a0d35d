package dataset

import (
	"fmt"
	"io"

	"github.com/ducksouplab/ridgeplot/helpers"
	"github.com/ducksouplab/ridgeplot/types"
	"gopkg.in/yaml.v2"
)

// series documents keep their key order
func readYAMLSeries(r io.Reader) (*types.Series, error) {
	var doc yaml.MapSlice
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, ErrEmptyTable
		}
		return nil, err
	}

	series := types.NewSeries()
	for _, item := range doc {
		label := fmt.Sprint(item.Key)
		if _, ok := series.Values(label); ok {
			return nil, fmt.Errorf("dataset: %w: %q", types.ErrDuplicateLabel, label)
		}
		raw, ok := item.Value.([]interface{})
		if !ok {
			return nil, fmt.Errorf("dataset: series %q is not a list", label)
		}
		values := make([]float64, 0, len(raw))
		for i, v := range raw {
			switch n := v.(type) {
			case int:
				values = append(values, float64(n))
			case float64:
				values = append(values, n)
			default:
				return nil, fmt.Errorf("dataset: series %q, item %d: %v is not a number", label, i+1, v)
			}
		}
		series.Add(label, values)
	}
	return series, nil
}

// one column per series, labels in the header row, blank cells are skipped
func readTableSeries(r io.Reader, format string) (*types.Series, error) {
	rows, err := readTable(r, format)
	if err != nil {
		return nil, err
	}
	header := rows[0]
	columns := make([][]float64, len(header))
	for i, row := range rows[1:] {
		for j := range header {
			value := cell(row, j)
			if value == "" {
				continue
			}
			v, err := parseValue(value, i+1, j)
			if err != nil {
				return nil, err
			}
			columns[j] = append(columns[j], v)
		}
	}

	series := types.NewSeries()
	for j := range header {
		label := cell(header, j)
		if _, ok := series.Values(label); ok {
			return nil, fmt.Errorf("dataset: %w: %q", types.ErrDuplicateLabel, label)
		}
		series.Add(label, columns[j])
	}
	return series, nil
}

// API

// ReadSeries reads labelled samples from a yaml, csv or xlsx document
func ReadSeries(r io.Reader, format string) (*types.Series, error) {
	switch format {
	case "yaml", "yml":
		return readYAMLSeries(r)
	default:
		return readTableSeries(r, format)
	}
}

func LoadSeries(path string) (*types.Series, error) {
	f, err := helpers.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	series, err := ReadSeries(f, helpers.Format(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return series, nil
}
