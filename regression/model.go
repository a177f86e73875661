package regression

import (
	"fmt"
	"math"
)

// Result represents the outcome of a weighted linear fit of y = m·x + b.
//
// Index 0 of Covariance refers to the intercept and index 1 to the slope.
// InterceptErr and SlopeErr are the square roots of the diagonal.
type Result struct {
	// Intercept is the fitted intercept b.
	Intercept float64
	// InterceptErr is the standard uncertainty of the intercept.
	InterceptErr float64
	// Slope is the fitted slope m.
	Slope float64
	// SlopeErr is the standard uncertainty of the slope.
	SlopeErr float64
	// Covariance is the 2×2 parameter covariance matrix.
	Covariance [2][2]float64
	// N is the number of data points.
	N int
	// DegreesOfFreedom is N - 2.
	DegreesOfFreedom int
	// ChiSquared is the sum of squared, uncertainty-normalized residuals.
	ChiSquared float64
	// RSquared is the weighted coefficient of determination.
	RSquared float64
	// Solver is the solver that produced the result.
	Solver Solver
	// Scaled reports whether Covariance was multiplied by the reduced chi-square.
	Scaled bool
}

// Values returns the fit as the tuple (b, sigma_b, m, sigma_m).
func (r *Result) Values() (b, sigmaB, m, sigmaM float64) {
	return r.Intercept, r.InterceptErr, r.Slope, r.SlopeErr
}

// ReducedChiSquared returns ChiSquared / DegreesOfFreedom, or NaN when there
// are no degrees of freedom.
func (r *Result) ReducedChiSquared() float64 {
	if r.DegreesOfFreedom <= 0 {
		return math.NaN()
	}

	return r.ChiSquared / float64(r.DegreesOfFreedom)
}

// Correlation returns the correlation coefficient between intercept and
// slope, in [-1, 1]. It returns 0 when either variance is zero.
func (r *Result) Correlation() float64 {
	den := math.Sqrt(r.Covariance[0][0] * r.Covariance[1][1])
	if den == 0 {
		return 0
	}

	return r.Covariance[0][1] / den
}

// Estimator returns a LinearEstimator for the fitted line, carrying the
// parameter covariance for uncertainty propagation.
func (r *Result) Estimator() *LinearEstimator {
	e := NewLinearEstimator(r.Intercept, r.Slope)
	e.cov = r.Covariance

	return e
}

// String returns a string representation of the result.
func (r *Result) String() string {
	return fmt.Sprintf("Result{b: %.4f ± %.4f, m: %.4f ± %.4f, χ²: %.4f, DOF: %d, Solver: %s}",
		r.Intercept, r.InterceptErr, r.Slope, r.SlopeErr, r.ChiSquared, r.DegreesOfFreedom, r.Solver)
}
