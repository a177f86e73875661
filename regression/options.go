package regression

import (
	"fmt"

	"github.com/arloliu/linfit/errs"
	"github.com/arloliu/linfit/internal/options"
)

// Solver selects the algorithm used to solve the weighted normal equations.
type Solver int

const (
	// SolverMatrix builds A (x centred), C⁻¹ and the normal matrix explicitly
	// and inverts it with gonum.
	SolverMatrix Solver = iota
	// SolverClosedForm uses the analytic 2×2 inverse over centred sums.
	SolverClosedForm
)

var solverNames = map[Solver]string{
	SolverMatrix:     "matrix",
	SolverClosedForm: "closed-form",
}

// String returns the string representation of the solver.
func (s Solver) String() string {
	if name, ok := solverNames[s]; ok {
		return name
	}

	return "unknown"
}

// FitConfig holds the configuration of a single fit.
type FitConfig struct {
	// Solver is the algorithm used. Default SolverMatrix.
	Solver Solver
	// ScaleCovariance multiplies the parameter covariance by the reduced
	// chi-square. Default false: sigma_y are treated as absolute.
	ScaleCovariance bool
}

func defaultFitConfig() FitConfig {
	return FitConfig{
		Solver:          SolverMatrix,
		ScaleCovariance: false,
	}
}

// FitOption is a functional option for FitConfig.
type FitOption = options.Option[*FitConfig]

// WithSolver sets the solver. Unknown solvers are rejected.
func WithSolver(s Solver) FitOption {
	return options.New(func(cfg *FitConfig) error {
		if _, ok := solverNames[s]; !ok {
			return fmt.Errorf("%w: unknown solver %d", errs.ErrInvalidOption, int(s))
		}
		cfg.Solver = s

		return nil
	})
}

// WithScaledCovariance enables rescaling the covariance by the reduced
// chi-square, for data whose uncertainties are only known up to a common
// factor. It has no effect when there are no degrees of freedom (n == 2).
func WithScaledCovariance(enabled bool) FitOption {
	return options.NoError(func(cfg *FitConfig) {
		cfg.ScaleCovariance = enabled
	})
}
