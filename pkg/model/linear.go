package model

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// LinearRegression is ordinary least squares with an intercept.
//
// Fit centers X and y, then takes the minimum-norm least-squares solution
// through a thin SVD, so rank-deficient designs (one-hot blocks next to an
// intercept are always collinear) still produce a unique, deterministic
// set of coefficients.
type LinearRegression struct {
	W []float64 `cbor:"1,keyasint"` // weights
	B float64   `cbor:"2,keyasint"` // intercept
}

// NewLinearRegression returns an unfitted model.
func NewLinearRegression() *LinearRegression {
	return &LinearRegression{}
}

// Fit estimates W and B from the rows of X against y.
func (m *LinearRegression) Fit(X [][]float64, y []float64) error {
	n := len(X)
	if n == 0 {
		return errors.New("linear regression: no training samples")
	}
	if len(y) != n {
		return errors.Errorf("linear regression: %d samples but %d targets", n, len(y))
	}
	p := len(X[0])
	yMean := stat.Mean(y, nil)
	if p == 0 {
		m.W, m.B = nil, yMean
		return nil
	}

	xc := mat.NewDense(n, p, nil)
	for i, row := range X {
		if len(row) != p {
			return errors.New("feature count mismatch between rows")
		}
		xc.SetRow(i, row)
	}
	means := make([]float64, p)
	col := make([]float64, n)
	for j := range p {
		mat.Col(col, j, xc)
		means[j] = stat.Mean(col, nil)
		for i := range n {
			xc.Set(i, j, col[i]-means[j])
		}
	}
	yc := mat.NewDense(n, 1, nil)
	for i, v := range y {
		yc.Set(i, 0, v-yMean)
	}

	var svd mat.SVD
	if ok := svd.Factorize(xc, mat.SVDThin); !ok {
		return errors.New("linear regression: SVD factorization failed")
	}
	// Singular values at or below eps*max(n,p) of the largest are treated
	// as zero, the numpy lstsq cutoff. It is wider than a bare eps so the
	// round-off left in collinear one-hot blocks is not inverted.
	rcond := math.Nextafter(1, 2) - 1
	rcond *= float64(max(n, p))
	w := make([]float64, p)
	if rank := svd.Rank(rcond); rank > 0 {
		var sol mat.Dense
		svd.SolveTo(&sol, yc, rank)
		mat.Col(w, 0, &sol)
	}
	m.W = w
	m.B = yMean - floats.Dot(means, w)
	return nil
}

// Predict returns predictions for rows in X.
func (m *LinearRegression) Predict(X [][]float64) []float64 {
	if len(X) == 0 {
		return nil
	}
	pred := make([]float64, len(X))
	for i, row := range X {
		pred[i] = m.B + floats.Dot(m.W, row)
	}
	return pred
}

// Bias returns the fitted intercept.
func (m *LinearRegression) Bias() float64 {
	return m.B
}
