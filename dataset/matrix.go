package dataset

import (
	"fmt"
	"io"

	"github.com/ducksouplab/ridgeplot/helpers"
	"github.com/ducksouplab/ridgeplot/types"
)

// API

// ReadMatrix reads a labelled table: column labels on the first row (its first cell is
// ignored), row labels on the first column
func ReadMatrix(r io.Reader, format string) (*types.Matrix, error) {
	rows, err := readTable(r, format)
	if err != nil {
		return nil, err
	}
	header := rows[0]
	if len(header) < 2 {
		return nil, ErrEmptyTable
	}
	columns := make([]string, len(header)-1)
	for j := range columns {
		columns[j] = cell(header, j+1)
	}

	var labels []string
	var values [][]float64
	for i, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}
		line := make([]float64, len(columns))
		for j := range line {
			value := cell(row, j+1)
			if value == "" {
				return nil, fmt.Errorf("dataset: row %d, column %d: empty cell", i+2, j+2)
			}
			if line[j], err = parseValue(value, i+1, j+1); err != nil {
				return nil, err
			}
		}
		labels = append(labels, cell(row, 0))
		values = append(values, line)
	}
	return types.NewMatrix(labels, columns, values)
}

func LoadMatrix(path string) (*types.Matrix, error) {
	f, err := helpers.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := ReadMatrix(f, helpers.Format(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}
