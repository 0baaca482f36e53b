package stats

import "math"

// StandardScaler standardizes feature columns to zero mean and unit variance
// using statistics from the data it was fit on. Fit on the training subset,
// transform both subsets; never refit on held-out or prediction data.
type StandardScaler struct {
	Mean []float64
	Std  []float64
	fit  bool
}

func NewStandardScaler() *StandardScaler { return &StandardScaler{} }

// Fit computes per-column mean and standard deviation. Columns with zero
// deviation get a deviation of 1 so they transform to 0 instead of NaN.
func (s *StandardScaler) Fit(X [][]float64) error {
	if len(X) == 0 {
		return nil
	}
	r, c := len(X), len(X[0])
	s.Mean = make([]float64, c)
	s.Std = make([]float64, c)
	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			s.Mean[j] += X[i][j]
		}
		s.Mean[j] /= float64(r)
		v := 0.0
		for i := 0; i < r; i++ {
			d := X[i][j] - s.Mean[j]
			v += d * d
		}
		v /= float64(r)
		s.Std[j] = math.Sqrt(v)
		if s.Std[j] == 0 {
			s.Std[j] = 1
		}
	}
	s.fit = true
	return nil
}

func (s *StandardScaler) Transform(X [][]float64) [][]float64 {
	if !s.fit || len(X) == 0 {
		return X
	}
	r, c := len(X), len(X[0])
	Y := make([][]float64, r)
	for i := 0; i < r; i++ {
		row := make([]float64, c)
		for j := 0; j < c; j++ {
			row[j] = (X[i][j] - s.Mean[j]) / s.Std[j]
		}
		Y[i] = row
	}
	return Y
}

func (s *StandardScaler) FitTransform(X [][]float64) [][]float64 { _ = s.Fit(X); return s.Transform(X) }

// TargetScaler is the scalar counterpart of StandardScaler for a single
// target column, with the inverse transform needed to report predictions in
// original units.
type TargetScaler struct {
	Mean float64
	Std  float64
	fit  bool
}

func NewTargetScaler() *TargetScaler { return &TargetScaler{} }

func (s *TargetScaler) Fit(y []float64) {
	if len(y) == 0 {
		return
	}
	s.Mean = Mean(y)
	s.Std = Std(y)
	if s.Std == 0 {
		s.Std = 1
	}
	s.fit = true
}

func (s *TargetScaler) Transform(y []float64) []float64 {
	out := make([]float64, len(y))
	for i, v := range y {
		if s.fit {
			out[i] = (v - s.Mean) / s.Std
		} else {
			out[i] = v
		}
	}
	return out
}

// Inverse maps standardized values back to original units.
func (s *TargetScaler) Inverse(y []float64) []float64 {
	out := make([]float64, len(y))
	for i, v := range y {
		if s.fit {
			out[i] = v*s.Std + s.Mean
		} else {
			out[i] = v
		}
	}
	return out
}
