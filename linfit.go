// Package linfit fits straight lines to measurements with known Gaussian
// uncertainties on the dependent variable.
//
// The weighted least-squares solution of y = m·x + b weights each point by
// the inverse of its variance sigma_i², giving the maximum-likelihood
// intercept and slope together with their standard uncertainties.
//
// # Basic Usage
//
//	b, sigmaB, m, sigmaM, err := linfit.Linear(x, y, sigmaY)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Package Structure
//
// This package provides a thin top-level wrapper for the most common call.
// For fit statistics, solver selection and predictions use the regression
// package; to fit many series concurrently use the batch package.
//
//   - regression: weighted linear fit, Result and LinearEstimator
//   - batch: concurrent, de-duplicating fitting of named series
//   - errs: sentinel errors
package linfit

import "github.com/arloliu/linfit/regression"

// Linear fits y = m·x + b by weighted least squares and returns the intercept
// b, its standard uncertainty sigmaB, the slope m and its standard
// uncertainty sigmaM.
//
// x, y and sigmaY must have the same length n >= 2, every sigmaY[i] must be
// positive and the x values must not all be identical. Otherwise the returned
// error wraps errs.ErrDegenerateInput.
//
// Example:
//
//	b, sigmaB, m, sigmaM, err := linfit.Linear(
//	    []float64{1, 2, 3},
//	    []float64{2, 4, 6},
//	    []float64{1, 1, 1},
//	)
//	// b ≈ 0, m ≈ 2, sigmaB ≈ 1.5275, sigmaM ≈ 0.7071
func Linear(x, y, sigmaY []float64) (b, sigmaB, m, sigmaM float64, err error) {
	res, err := regression.Fit(x, y, sigmaY)
	if err != nil {
		return 0, 0, 0, 0, err
	}

	b, sigmaB, m, sigmaM = res.Values()

	return b, sigmaB, m, sigmaM, nil
}

// Fit is an alias of regression.Fit returning the full Result.
func Fit(x, y, sigmaY []float64, opts ...regression.FitOption) (*regression.Result, error) {
	return regression.Fit(x, y, sigmaY, opts...)
}
