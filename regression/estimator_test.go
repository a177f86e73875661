package regression

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/linfit/errs"
)

func TestLinearEstimator_Estimate(t *testing.T) {
	e := NewLinearEstimator(1.5, -2)

	require.InDelta(t, 1.5, e.Estimate(0), 1e-15)
	require.InDelta(t, -2.5, e.Estimate(2), 1e-15)
	require.Equal(t, []float64{1.5, -2}, e.Coefficients())

	y, sigma := e.EstimateWithUncertainty(10)
	require.InDelta(t, -18.5, y, 1e-15)
	require.Zero(t, sigma, "estimator built from coefficients has no covariance")
}

func TestLinearEstimator_FromResult(t *testing.T) {
	res, err := Fit([]float64{1, 2, 3}, []float64{2, 4, 6}, []float64{1, 1, 1})
	require.NoError(t, err)

	e := res.Estimator()

	tests := []struct {
		x, y, sigma float64
	}{
		// variance = 7/3 + 2x·(-1) + x²/2
		{0, 0, math.Sqrt(7.0 / 3.0)},
		{2, 4, math.Sqrt(1.0 / 3.0)},
		{5, 10, math.Sqrt(7.0/3.0 - 10 + 12.5)},
	}

	for _, tt := range tests {
		y, sigma := e.EstimateWithUncertainty(tt.x)
		require.InDelta(t, tt.y, y, 1e-12, "x=%v", tt.x)
		require.InDelta(t, tt.sigma, sigma, 1e-12, "x=%v", tt.x)
	}

	// uncertainty at x=0 is the intercept uncertainty
	_, sigma0 := e.EstimateWithUncertainty(0)
	require.InDelta(t, res.InterceptErr, sigma0, 1e-12)
}

func TestLinearEstimator_SetCoefficients(t *testing.T) {
	res, err := Fit([]float64{1, 2, 3}, []float64{2, 4, 6}, []float64{1, 1, 1})
	require.NoError(t, err)
	e := res.Estimator()

	t.Run("rejects wrong count", func(t *testing.T) {
		for _, coeffs := range [][]float64{nil, {1}, {1, 2, 3}} {
			err := e.SetCoefficients(coeffs)
			require.ErrorIs(t, err, errs.ErrInvalidCoefficients)
		}
		require.InDelta(t, 4, e.Estimate(2), 1e-12, "failed update must not change the model")
	})

	t.Run("updates line and keeps covariance", func(t *testing.T) {
		require.NoError(t, e.SetCoefficients([]float64{1, 3}))
		require.Equal(t, []float64{1, 3}, e.Coefficients())

		y, sigma := e.EstimateWithUncertainty(2)
		require.InDelta(t, 7, y, 1e-15)
		require.InDelta(t, math.Sqrt(1.0/3.0), sigma, 1e-12)
	})
}

func TestLinearEstimator_CoefficientsAreCopies(t *testing.T) {
	e := NewLinearEstimator(1, 2)
	c := e.Coefficients()
	c[0] = 100

	require.Equal(t, []float64{1, 2}, e.Coefficients())
}
