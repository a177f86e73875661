// Package regression fits straight lines to data with known, per-point
// uncertainties using weighted least squares.
//
// Given observations (x_i, y_i) where each y_i carries a Gaussian 1-sigma
// uncertainty sigma_i, Fit returns the maximum-likelihood intercept b and
// slope m of y = m·x + b together with their standard uncertainties. Errors
// on x and correlations between points are assumed to be zero.
//
// # Basic Usage
//
//	res, err := regression.Fit(x, y, sigmaY)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	b, sigmaB, m, sigmaM := res.Values()
//	fmt.Printf("y = (%.3f ± %.3f)·x + (%.3f ± %.3f)\n", m, sigmaM, b, sigmaB)
//
// # Method
//
// With design matrix A (rows [1, x_i]) and covariance C = diag(sigma_i²):
//
//	Cov = (Aᵀ·C⁻¹·A)⁻¹
//	P   = Cov·Aᵀ·C⁻¹·y          P[0] = b, P[1] = m
//	sigma_b = √Cov[0][0]        sigma_m = √Cov[1][1]
//
// Two solvers compute this:
//
//   - SolverMatrix (default): builds the matrices with x centred on its
//     weighted mean and inverts the 2×2 normal matrix with gonum.
//   - SolverClosedForm: the analytic 2×2 inverse over weighted, centred sums.
//     No allocations.
//
// Both solvers handle large x offsets such as timestamps, and normalize the
// weights by the smallest sigma so any finite positive uncertainty is usable.
//
// # Goodness of Fit
//
// Every Result reports the chi-square of the residuals, the degrees of freedom
// (n - 2) and a weighted R². When the supplied uncertainties are relative
// rather than absolute, WithScaledCovariance rescales the covariance by the
// reduced chi-square.
//
// # Errors
//
// Inputs are validated before any arithmetic. Length mismatches, fewer than
// two points, non-finite values, non-positive uncertainties and identical x
// values all fail with an error wrapping errs.ErrDegenerateInput; the last
// case, and any other non-invertible normal matrix, also wraps
// errs.ErrSingularMatrix.
//
// # Predictions
//
// Result.Estimator returns a LinearEstimator that evaluates the fitted line
// and propagates the parameter covariance to a standard uncertainty at any x.
package regression
