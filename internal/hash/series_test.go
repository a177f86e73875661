package hash

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloat64s(t *testing.T) {
	x := []float64{1, 2, 3}
	y := []float64{2, 4, 6}
	sigma := []float64{1, 1, 1}

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, Float64s(x, y, sigma), Float64s(x, y, sigma))
	})

	t.Run("copies hash equal", func(t *testing.T) {
		xc := append([]float64(nil), x...)
		assert.Equal(t, Float64s(x, y, sigma), Float64s(xc, y, sigma))
	})

	t.Run("value change alters hash", func(t *testing.T) {
		assert.NotEqual(t, Float64s(x, y, sigma), Float64s(x, []float64{2, 4, 6.5}, sigma))
	})

	t.Run("column boundaries matter", func(t *testing.T) {
		a := Float64s([]float64{1, 2}, []float64{3})
		b := Float64s([]float64{1}, []float64{2, 3})
		assert.NotEqual(t, a, b)
	})

	t.Run("signed zero is distinct", func(t *testing.T) {
		assert.NotEqual(t, Float64s([]float64{0}), Float64s([]float64{math.Copysign(0, -1)}))
	})

	t.Run("empty columns still hash", func(t *testing.T) {
		require.NotEqual(t, Float64s(), Float64s(nil))
	})
}
