package pool

import "sync"

var float64SlicePool = sync.Pool{
	New: func() any { return &[]float64{} },
}

// GetFloat64Slice returns a float64 slice of length size from the pool.
//
// The contents of the returned slice are unspecified; callers must overwrite
// every element they read. The cleanup function hands the slice back to the
// pool and must be called exactly once, typically with defer.
//
// Example:
//
//	buf, release := pool.GetFloat64Slice(2 * n)
//	defer release()
func GetFloat64Slice(size int) ([]float64, func()) {
	ptr, _ := float64SlicePool.Get().(*[]float64)
	if cap(*ptr) < size {
		*ptr = make([]float64, size)
	}
	*ptr = (*ptr)[:size]

	return *ptr, func() { float64SlicePool.Put(ptr) }
}
