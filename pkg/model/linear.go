package model

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Linear is an ordinary least-squares regression with an intercept. No
// regularization; the solve is gonum's, closed form, not iterative.
type Linear struct {
	Coef      []float64
	Intercept float64
}

func NewLinear() *Linear { return &Linear{} }

// Fit solves min ||Xb - y|| over the training rows. An ill-conditioned
// design matrix is accepted (gonum reports it as a Condition error with the
// solution still computed); a genuinely singular system is returned as an
// error.
func (m *Linear) Fit(X [][]float64, y []float64) error {
	n := len(X)
	if n == 0 {
		return errors.New("no training rows")
	}
	if len(y) != n {
		return errors.New("feature and target row counts differ")
	}
	p := len(X[0])

	// Design matrix with a leading ones column for the intercept.
	a := mat.NewDense(n, p+1, nil)
	for i, row := range X {
		if len(row) != p {
			return errors.New("ragged feature matrix")
		}
		a.Set(i, 0, 1)
		for j, v := range row {
			a.Set(i, j+1, v)
		}
	}
	b := mat.NewVecDense(n, y)

	var beta mat.VecDense
	if err := beta.SolveVec(a, b); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return err
		}
	}

	m.Intercept = beta.AtVec(0)
	m.Coef = make([]float64, p)
	for j := 0; j < p; j++ {
		m.Coef[j] = beta.AtVec(j + 1)
	}
	return nil
}

// Predict returns predictions for rows in X (rows of features).
func (m *Linear) Predict(X [][]float64) []float64 {
	if len(X) == 0 {
		return nil
	}
	pred := make([]float64, len(X))
	for i, row := range X {
		sum := m.Intercept
		for j, v := range row {
			sum += m.Coef[j] * v
		}
		pred[i] = sum
	}
	return pred
}
