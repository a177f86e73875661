package linfit_test

import (
	"fmt"
	"log"

	"github.com/arloliu/linfit"
)

func ExampleLinear() {
	b, sigmaB, m, sigmaM, err := linfit.Linear(
		[]float64{0, 1, 2, 3},
		[]float64{1, 3, 5, 7},
		[]float64{0.5, 0.5, 0.5, 0.5},
	)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("b = %.3f ± %.3f\n", b, sigmaB)
	fmt.Printf("m = %.3f ± %.3f\n", m, sigmaM)

	// Output:
	// b = 1.000 ± 0.418
	// m = 2.000 ± 0.224
}
