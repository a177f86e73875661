package regression

import (
	"fmt"
	"math"

	"github.com/arloliu/linfit/errs"
)

// Estimator predicts y for a given x from fitted coefficients.
type Estimator interface {
	// Estimate returns the predicted y at x.
	Estimate(x float64) float64
	// Coefficients returns the model coefficients.
	Coefficients() []float64
	// SetCoefficients replaces the model coefficients.
	SetCoefficients(coeffs []float64) error
}

var _ Estimator = (*LinearEstimator)(nil)

// LinearEstimator evaluates y = m·x + b.
//
// An estimator obtained from Result.Estimator also carries the parameter
// covariance, which EstimateWithUncertainty propagates to the prediction.
// A LinearEstimator is safe for concurrent reads; SetCoefficients must not
// run concurrently with other methods.
type LinearEstimator struct {
	b, m float64
	cov  [2][2]float64
}

// NewLinearEstimator creates an estimator with intercept b, slope m and zero
// parameter covariance.
func NewLinearEstimator(b, m float64) *LinearEstimator {
	return &LinearEstimator{b: b, m: m}
}

// Estimate returns b + m·x.
func (e *LinearEstimator) Estimate(x float64) float64 {
	return e.b + e.m*x
}

// EstimateWithUncertainty returns b + m·x and its standard uncertainty
//
//	sigma(x) = √(Cov[0][0] + 2x·Cov[0][1] + x²·Cov[1][1])
func (e *LinearEstimator) EstimateWithUncertainty(x float64) (y, sigma float64) {
	v := e.cov[0][0] + 2*x*e.cov[0][1] + x*x*e.cov[1][1]
	if v < 0 {
		// rounding near the minimum of the variance parabola
		v = 0
	}

	return e.Estimate(x), math.Sqrt(v)
}

// Coefficients returns [b, m].
func (e *LinearEstimator) Coefficients() []float64 {
	return []float64{e.b, e.m}
}

// SetCoefficients updates the intercept and slope. It expects exactly two
// coefficients [b, m]; the covariance is left unchanged.
func (e *LinearEstimator) SetCoefficients(coeffs []float64) error {
	if len(coeffs) != 2 {
		return fmt.Errorf("%w: linear model expects exactly 2 coefficients, got %d",
			errs.ErrInvalidCoefficients, len(coeffs))
	}
	e.b = coeffs[0]
	e.m = coeffs[1]

	return nil
}
