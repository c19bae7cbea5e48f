package terrain

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the height distribution of a field, ignoring traversed cells.
type Summary struct {
	Cells  int     `json:"cells" yaml:"cells"`
	Min    float64 `json:"min" yaml:"min"`
	Max    float64 `json:"max" yaml:"max"`
	Mean   float64 `json:"mean" yaml:"mean"`
	StdDev float64 `json:"std_dev" yaml:"std_dev"`
}

// Summarize computes min, max, mean and sample standard deviation.
// A field with no untraversed cells yields the zero Summary.
func (hf *HeightField) Summarize() Summary {
	xs := make([]float64, 0, hf.size*hf.size)
	for _, row := range hf.cells {
		for _, v := range row {
			if v >= 0 {
				xs = append(xs, float64(v))
			}
		}
	}
	if len(xs) == 0 {
		return Summary{}
	}

	s := Summary{
		Cells: len(xs),
		Min:   floats.Min(xs),
		Max:   floats.Max(xs),
	}
	if len(xs) == 1 {
		s.Mean = xs[0]
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(xs, nil)

	return s
}
