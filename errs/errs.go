// Package errs defines the sentinel errors returned by linfit packages.
//
// Every input error wraps ErrDegenerateInput, so callers that only care
// whether a fit could be computed can test a single sentinel:
//
//	if errors.Is(err, errs.ErrDegenerateInput) {
//	    // skip this series
//	}
package errs

import (
	"errors"
	"fmt"
)

// ErrDegenerateInput is the root of all input errors: the data cannot define
// a unique weighted straight-line fit.
var ErrDegenerateInput = errors.New("degenerate input")

var (
	// ErrLengthMismatch is returned when x, y and sigma_y differ in length.
	ErrLengthMismatch = fmt.Errorf("%w: length mismatch", ErrDegenerateInput)
	// ErrInsufficientPoints is returned when fewer than two points are given.
	ErrInsufficientPoints = fmt.Errorf("%w: insufficient data points", ErrDegenerateInput)
	// ErrNonPositiveSigma is returned when an uncertainty is zero or negative.
	ErrNonPositiveSigma = fmt.Errorf("%w: non-positive uncertainty", ErrDegenerateInput)
	// ErrNonFiniteValue is returned when an input holds NaN or ±Inf.
	ErrNonFiniteValue = fmt.Errorf("%w: non-finite value", ErrDegenerateInput)
	// ErrSingularMatrix is returned when the normal matrix cannot be inverted,
	// e.g. when every x value is identical.
	ErrSingularMatrix = fmt.Errorf("%w: singular matrix", ErrDegenerateInput)
)

var (
	// ErrInvalidOption is returned by option constructors given a bad value.
	ErrInvalidOption = errors.New("invalid option")
	// ErrInvalidCoefficients is returned when an estimator receives the wrong
	// number of coefficients.
	ErrInvalidCoefficients = errors.New("invalid coefficients")
)
