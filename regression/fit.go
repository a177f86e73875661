package regression

import (
	"fmt"
	"math"
	"slices"

	"github.com/arloliu/linfit/errs"
	"github.com/arloliu/linfit/internal/options"
)

// Fit performs a weighted least-squares fit of y = m·x + b.
//
// Each y[i] is weighted by 1/sigmaY[i]², the inverse variance of its Gaussian
// uncertainty. Errors on x are not modelled.
//
// Parameters:
//   - x: Independent variable samples
//   - y: Dependent variable samples, same length as x
//   - sigmaY: 1-sigma uncertainty of each y sample, same length, all > 0
//   - opts: Optional solver and covariance options
//
// Returns:
//   - *Result: Fitted intercept and slope with uncertainties and fit statistics
//   - error: An error wrapping errs.ErrDegenerateInput for unusable input, or
//     errs.ErrInvalidOption for a bad option
//
// Example:
//
//	res, err := regression.Fit([]float64{1, 2, 3}, []float64{2, 4, 6}, []float64{1, 1, 1})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	b, sigmaB, m, sigmaM := res.Values() // 0, 1.5275, 2, 0.7071
func Fit(x, y, sigmaY []float64, opts ...FitOption) (*Result, error) {
	cfg := defaultFitConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	if err := validate(x, y, sigmaY); err != nil {
		return nil, err
	}

	var (
		p   [2]float64
		cov [2][2]float64 // in units of sMin²
		err error
	)

	sMin := slices.Min(sigmaY)
	switch cfg.Solver {
	case SolverClosedForm:
		p, cov, err = solveClosedForm(x, y, sigmaY, sMin)
	default:
		p, cov, err = solveMatrix(x, y, sigmaY, sMin)
	}
	if err != nil {
		return nil, err
	}

	res := &Result{
		Intercept:        p[0],
		Slope:            p[1],
		N:                len(x),
		DegreesOfFreedom: len(x) - 2,
		Solver:           cfg.Solver,
	}

	chi2Norm, r2 := goodnessOfFit(x, y, sigmaY, sMin, p[0], p[1])
	res.ChiSquared = chi2Norm / sMin / sMin
	res.RSquared = r2

	// Scaling by χ²/DOF cancels the sMin² units. Unscaled uncertainties are
	// taken as sMin·sqrt(C) so they survive when sMin² is subnormal.
	if cfg.ScaleCovariance && res.DegreesOfFreedom > 0 {
		f := chi2Norm / float64(res.DegreesOfFreedom)
		scaleCovariance(&cov, f)
		res.Covariance = cov
		res.InterceptErr = math.Sqrt(cov[0][0])
		res.SlopeErr = math.Sqrt(cov[1][1])
		res.Scaled = true

		return res, nil
	}

	res.InterceptErr = sMin * math.Sqrt(cov[0][0])
	res.SlopeErr = sMin * math.Sqrt(cov[1][1])
	scaleCovariance(&cov, sMin)
	scaleCovariance(&cov, sMin)
	res.Covariance = cov

	return res, nil
}

func scaleCovariance(cov *[2][2]float64, f float64) {
	for i := range cov {
		for j := range cov[i] {
			cov[i][j] *= f
		}
	}
}

// validate checks the inputs in a fixed order: lengths, point count,
// finiteness, sign of the uncertainties, then x degeneracy.
func validate(x, y, sigmaY []float64) error {
	n := len(x)
	if len(y) != n || len(sigmaY) != n {
		return fmt.Errorf("%w: len(x)=%d, len(y)=%d, len(sigmaY)=%d",
			errs.ErrLengthMismatch, n, len(y), len(sigmaY))
	}

	if n < 2 {
		return fmt.Errorf("%w: got %d, need at least 2", errs.ErrInsufficientPoints, n)
	}

	for i := range n {
		switch {
		case !isFinite(x[i]):
			return fmt.Errorf("%w: x[%d]=%v", errs.ErrNonFiniteValue, i, x[i])
		case !isFinite(y[i]):
			return fmt.Errorf("%w: y[%d]=%v", errs.ErrNonFiniteValue, i, y[i])
		case !isFinite(sigmaY[i]):
			return fmt.Errorf("%w: sigmaY[%d]=%v", errs.ErrNonFiniteValue, i, sigmaY[i])
		}
	}

	for i, s := range sigmaY {
		if s <= 0 {
			return fmt.Errorf("%w: sigmaY[%d]=%v", errs.ErrNonPositiveSigma, i, s)
		}
	}

	for i := 1; i < n; i++ {
		if x[i] != x[0] {
			return nil
		}
	}

	return fmt.Errorf("%w: all %d x values equal %v", errs.ErrSingularMatrix, n, x[0])
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
