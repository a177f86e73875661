package regression

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/arloliu/linfit/errs"
	"github.com/arloliu/linfit/internal/pool"
)

// Both solvers work with weights normalized by the smallest uncertainty,
// w_i = (sMin/sigma_i)² in (0, 1], so that no weight overflows or underflows
// for any finite positive sigma. The covariance they return is therefore in
// units of sMin²; Fit scales it back.

// weight returns the normalized inverse-variance weight of one point.
func weight(sigma, sMin float64) float64 {
	r := sMin / sigma
	return r * r
}

// weightedMeanX returns Σw·x / Σw.
func weightedMeanX(x, sigmaY []float64, sMin float64) float64 {
	var sw, swx float64
	for i := range x {
		w := weight(sigmaY[i], sMin)
		sw += w
		swx += w * x[i]
	}

	return swx / sw
}

// solveMatrix computes P = (Aᵀ·W·A)⁻¹·Aᵀ·W·y with W = C⁻¹ = diag(1/sigma²).
//
// The x column of A is centred on the weighted mean x̄, which keeps the normal
// matrix well conditioned for any offset of x. The centred intercept b′ and
// its covariance are mapped back with b = b′ - m·x̄. W is diagonal, so Aᵀ·W is
// built directly as a 2×n matrix.
func solveMatrix(x, y, sigmaY []float64, sMin float64) (p [2]float64, cov [2][2]float64, err error) {
	n := len(x)
	xm := weightedMeanX(x, sigmaY, sMin)

	buf, release := pool.GetFloat64Slice(4 * n)
	defer release()

	aData := buf[:2*n]   // A, n×2, rows [1, x_i - x̄]
	atwData := buf[2*n:] // Aᵀ·W, 2×n, rows [w_i] and [w_i·(x_i - x̄)]
	for i := range n {
		w := weight(sigmaY[i], sMin)
		dx := x[i] - xm
		aData[2*i] = 1
		aData[2*i+1] = dx
		atwData[i] = w
		atwData[n+i] = w * dx
	}

	a := mat.NewDense(n, 2, aData)
	atw := mat.NewDense(2, n, atwData)
	yv := mat.NewVecDense(n, y)

	var normal mat.Dense
	normal.Mul(atw, a)

	var inv mat.Dense
	if invErr := inv.Inverse(&normal); invErr != nil && !usableInverse(invErr) {
		return p, cov, fmt.Errorf("%w: %w", errs.ErrSingularMatrix, invErr)
	}

	var rhs, params mat.VecDense
	rhs.MulVec(atw, yv)
	params.MulVec(&inv, &rhs)

	bc, m := params.AtVec(0), params.AtVec(1)
	c00, c01, c11 := inv.At(0, 0), inv.At(0, 1), inv.At(1, 1)

	p = [2]float64{bc - m*xm, m}
	cov = [2][2]float64{
		{c00 - 2*xm*c01 + xm*xm*c11, c01 - xm*c11},
		{c01 - xm*c11, c11},
	}

	for _, v := range []float64{p[0], p[1], cov[0][0], cov[0][1], cov[1][1]} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return [2]float64{}, [2][2]float64{}, fmt.Errorf("%w: non-finite solution", errs.ErrSingularMatrix)
		}
	}

	return p, cov, nil
}

// usableInverse reports whether an error from mat.Dense.Inverse is only an
// ill-conditioning warning. gonum still computes the inverse in that case;
// an infinite condition number means the matrix is singular.
func usableInverse(err error) bool {
	var cond mat.Condition
	if !errors.As(err, &cond) {
		return false
	}

	return !math.IsInf(float64(cond), 1)
}

// solveClosedForm solves the same system analytically, with sums centred on
// the weighted means of x and y.
func solveClosedForm(x, y, sigmaY []float64, sMin float64) (p [2]float64, cov [2][2]float64, err error) {
	var sw, swx, swy float64
	for i := range x {
		w := weight(sigmaY[i], sMin)
		sw += w
		swx += w * x[i]
		swy += w * y[i]
	}
	xm := swx / sw
	ym := swy / sw

	var sxx, sxy float64
	for i := range x {
		w := weight(sigmaY[i], sMin)
		dx := x[i] - xm
		sxx += w * dx * dx
		sxy += w * dx * (y[i] - ym)
	}

	if !(sxx > 0) {
		return p, cov, fmt.Errorf("%w: zero weighted spread of x", errs.ErrSingularMatrix)
	}

	m := sxy / sxx
	b := ym - m*xm

	p = [2]float64{b, m}
	cov = [2][2]float64{
		{1/sw + xm*xm/sxx, -xm / sxx},
		{-xm / sxx, 1 / sxx},
	}

	return p, cov, nil
}
