package stats

import (
	"errors"

	"gonum.org/v1/gonum/floats"
)

var (
	ErrEmpty       = errors.New("stats: empty input")
	ErrHomogeneous = errors.New("stats: input should not be homogeneous")
)

// Scaling maps xs to [0,1] with (x - min) / (max - min). Constant input is rejected
// instead of producing NaNs.
func Scaling(xs []float64) ([]float64, error) {
	if len(xs) == 0 {
		return nil, ErrEmpty
	}
	min, max := floats.Min(xs), floats.Max(xs)
	if min == max {
		return nil, ErrHomogeneous
	}
	span := max - min
	scaled := make([]float64, len(xs))
	for i, x := range xs {
		scaled[i] = (x - min) / span
	}
	return scaled, nil
}

// Grid returns values from min (included) to max (excluded) every step, like numpy's arange.
// When more than maxPoints values would be needed, the step is widened to fit maxPoints
// (maxPoints <= 0 disables the cap).
func Grid(min, max, step float64, maxPoints int) []float64 {
	if !(max > min) || !(step > 0) {
		return nil
	}
	n := int((max - min) / step)
	if min+float64(n)*step < max {
		n++
	}
	if maxPoints > 0 && n > maxPoints {
		n = maxPoints
		step = (max - min) / float64(n)
	}
	if n < 2 {
		return []float64{min}
	}
	return floats.Span(make([]float64, n), min, min+float64(n-1)*step)
}
