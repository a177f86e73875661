package regression

import (
	"fmt"
	"math/rand"
	"slices"
	"testing"
)

func BenchmarkFit(b *testing.B) {
	sizes := []int{10, 100, 1000, 10000}

	for _, s := range allSolvers {
		for _, size := range sizes {
			b.Run(fmt.Sprintf("%s/Points_%d", s, size), func(b *testing.B) {
				x, y, sigma := noisyLine(rand.New(rand.NewSource(1)), size, 2, 1)
				opt := WithSolver(s)
				b.ReportAllocs()

				for b.Loop() {
					if _, err := Fit(x, y, sigma, opt); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkGoodnessOfFit(b *testing.B) {
	x, y, sigma := noisyLine(rand.New(rand.NewSource(1)), 1000, 2, 1)
	sMin := slices.Min(sigma)

	for b.Loop() {
		goodnessOfFit(x, y, sigma, sMin, 1, 2)
	}
}
