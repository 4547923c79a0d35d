package stats

import (
	"math"

	mstats "github.com/aclements/go-moremath/stats"
)

// Density is a Gaussian kernel density estimate of a sample
type Density struct {
	kde        mstats.KDE
	degenerate bool
}

// NewDensity fits a Gaussian KDE on xs with Scott's factor as bandwidth: the sample standard
// deviation (n-1 denominator) times n^(-1/5), the gaussian_kde default.
// Samples without spread give a degenerate density that evaluates to zero everywhere.
func NewDensity(xs []float64) (*Density, error) {
	if len(xs) == 0 {
		return nil, ErrEmpty
	}
	sample := mstats.Sample{Xs: append([]float64(nil), xs...)}
	sample.Sort()

	bandwidth := ScottBandwidth(sample)

	return &Density{
		kde: mstats.KDE{
			Sample:    sample,
			Kernel:    mstats.GaussianKernel,
			Bandwidth: bandwidth,
		},
		degenerate: !(bandwidth > 0),
	}, nil
}

func (d *Density) Bandwidth() float64 {
	if d.degenerate {
		return 0
	}
	return d.kde.Bandwidth
}

func (d *Density) Degenerate() bool {
	return d.degenerate
}

func (d *Density) PDF(x float64) float64 {
	if d.degenerate {
		return 0
	}
	return d.kde.PDF(x)
}

func (d *Density) Evaluate(grid []float64) []float64 {
	ys := make([]float64, len(grid))
	for i, x := range grid {
		ys[i] = d.PDF(x)
	}
	return ys
}

// ScottBandwidth is σ·n^(-1/5), NaN-free: 0 for a sample of one value
func ScottBandwidth(sample mstats.Sample) float64 {
	n := len(sample.Xs)
	if n < 2 {
		return 0
	}
	return sample.StdDev() * math.Pow(float64(n), -0.2)
}
