package hash

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Float64s computes the xxHash64 of one or more float64 columns.
//
// Each column is prefixed by its length so that moving a value from the end
// of one column to the start of the next changes the hash. Values are hashed
// by their IEEE-754 bit pattern, so 0 and -0 hash differently.
func Float64s(columns ...[]float64) uint64 {
	d := xxhash.New()
	var buf [8]byte

	for _, col := range columns {
		binary.LittleEndian.PutUint64(buf[:], uint64(len(col)))
		_, _ = d.Write(buf[:])
		for _, v := range col {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
			_, _ = d.Write(buf[:])
		}
	}

	return d.Sum64()
}
