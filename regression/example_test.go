package regression_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/arloliu/linfit/errs"
	"github.com/arloliu/linfit/regression"
)

// ExampleFit demonstrates a basic weighted fit.
func ExampleFit() {
	x := []float64{1, 2, 3}
	y := []float64{1, 3, 2}
	sigmaY := []float64{1, 1, 1}

	res, err := regression.Fit(x, y, sigmaY)
	if err != nil {
		log.Fatal(err)
	}

	b, sigmaB, m, sigmaM := res.Values()
	fmt.Printf("b = %.4f ± %.4f\n", b, sigmaB)
	fmt.Printf("m = %.4f ± %.4f\n", m, sigmaM)
	fmt.Printf("χ²/dof = %.4f, R² = %.4f\n", res.ReducedChiSquared(), res.RSquared)

	// Output:
	// b = 1.0000 ± 1.5275
	// m = 0.5000 ± 0.7071
	// χ²/dof = 1.5000, R² = 0.2500
}

// ExampleResult_Estimator demonstrates prediction with propagated uncertainty.
func ExampleResult_Estimator() {
	res, err := regression.Fit(
		[]float64{1, 2, 3},
		[]float64{1, 3, 2},
		[]float64{1, 1, 1},
		regression.WithSolver(regression.SolverClosedForm),
	)
	if err != nil {
		log.Fatal(err)
	}

	y, sigma := res.Estimator().EstimateWithUncertainty(5)
	fmt.Printf("y(5) = %.4f ± %.4f\n", y, sigma)

	// Output:
	// y(5) = 3.5000 ± 2.1985
}

// ExampleFit_degenerate shows the error returned for identical x values.
func ExampleFit_degenerate() {
	_, err := regression.Fit([]float64{5, 5, 5}, []float64{1, 2, 3}, []float64{1, 1, 1})

	fmt.Println(errors.Is(err, errs.ErrSingularMatrix))
	fmt.Println(errors.Is(err, errs.ErrDegenerateInput))
	fmt.Println(err)

	// Output:
	// true
	// true
	// degenerate input: singular matrix: all 3 x values equal 5
}
