package types

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrMatrixShape    = errors.New("matrix shape does not match its labels")
	ErrDuplicateLabel = errors.New("duplicate series label")
)

// Series is an ordered collection of named samples, insertion order drives stacking
type Series struct {
	labels []string
	values map[string][]float64
}

func NewSeries() *Series {
	return &Series{values: make(map[string][]float64)}
}

// Add appends a series, or replaces its values while keeping its position if label exists
func (s *Series) Add(label string, values []float64) {
	if _, ok := s.values[label]; !ok {
		s.labels = append(s.labels, label)
	}
	s.values[label] = values
}

func (s *Series) Len() int {
	return len(s.labels)
}

func (s *Series) Labels() []string {
	return append([]string(nil), s.labels...)
}

func (s *Series) Values(label string) ([]float64, bool) {
	v, ok := s.values[label]
	return v, ok
}

// At returns the label and values of the i-th series
func (s *Series) At(i int) (string, []float64) {
	label := s.labels[i]
	return label, s.values[label]
}

// Matrix is a read-only 2-D table, Values[row][col]
type Matrix struct {
	Rows    []string
	Columns []string
	Values  [][]float64
}

func NewMatrix(rows, columns []string, values [][]float64) (*Matrix, error) {
	if len(values) != len(rows) {
		return nil, fmt.Errorf("%w: %d rows for %d row labels", ErrMatrixShape, len(values), len(rows))
	}
	for i, row := range values {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("%w: row %q has %d values for %d columns", ErrMatrixShape, rows[i], len(row), len(columns))
		}
	}
	return &Matrix{Rows: rows, Columns: columns, Values: values}, nil
}

func (m *Matrix) Dims() (rows, cols int) {
	return len(m.Rows), len(m.Columns)
}

func (m *Matrix) At(row, col int) float64 {
	return m.Values[row][col]
}

// Bounds returns the min and max cell values, NaN for an empty matrix
func (m *Matrix) Bounds() (min, max float64) {
	first := true
	for _, row := range m.Values {
		for _, v := range row {
			if first {
				min, max = v, v
				first = false
				continue
			}
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	if first {
		return math.NaN(), math.NaN()
	}
	return
}
