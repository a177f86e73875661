package batch

import (
	"slices"

	"github.com/arloliu/linfit/internal/hash"
	"github.com/arloliu/linfit/regression"
)

// Series is a named set of observations to fit.
type Series struct {
	Name   string
	X      []float64
	Y      []float64
	SigmaY []float64
}

// Fingerprint returns the xxHash64 of the series data. The name is not part
// of the fingerprint.
func (s Series) Fingerprint() uint64 {
	return hash.Float64s(s.X, s.Y, s.SigmaY)
}

// sameData reports whether two series hold bit-identical data. NaN never
// compares equal, so series containing NaN are never treated as duplicates.
func (s Series) sameData(o Series) bool {
	return slices.Equal(s.X, o.X) && slices.Equal(s.Y, o.Y) && slices.Equal(s.SigmaY, o.SigmaY)
}

// Outcome is the result of fitting one Series.
type Outcome struct {
	// Name is the series name.
	Name string
	// Result is the fit, nil when Err is set. Duplicates share the pointer
	// of the first identical series and must not be modified.
	Result *regression.Result
	// Err is the fit error, if any.
	Err error
	// Duplicate reports that the outcome was copied from an earlier series
	// with identical data.
	Duplicate bool
}
