package batch

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/arloliu/linfit/internal/options"
	"github.com/arloliu/linfit/regression"
)

// Fitter fits batches of series. It is immutable after construction and safe
// for concurrent use.
type Fitter struct {
	cfg    Config
	logger *zap.Logger
}

// NewFitter creates a Fitter.
//
// Parameters:
//   - opts: Optional concurrency, fail-fast, fit and logger options
//
// Returns:
//   - *Fitter: The configured fitter
//   - error: errs.ErrInvalidOption if an option value, including a forwarded
//     fit option, is rejected
func NewFitter(opts ...Option) (*Fitter, error) {
	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	// Fit options are applied again per series by FitAll.
	var fc regression.FitConfig
	if err := options.Apply(&fc, cfg.FitOptions...); err != nil {
		return nil, fmt.Errorf("fit options: %w", err)
	}

	return &Fitter{
		cfg:    cfg,
		logger: cfg.Logger.Named("batch"),
	}, nil
}

// FitAll fits every series and returns one Outcome per series, in input order.
//
// Series with identical data are fitted once; later copies are marked as
// Duplicate and share the first copy's Result and Err.
//
// Parameters:
//   - ctx: Cancels scheduling and pending fits
//   - series: Series to fit
//
// Returns:
//   - []Outcome: Per-series outcomes, always len(series) long
//   - error: ctx.Err() on cancellation, or with fail-fast the first series
//     error wrapped with the series name; nil otherwise
func (f *Fitter) FitAll(ctx context.Context, series []Series) ([]Outcome, error) {
	outcomes := make([]Outcome, len(series))
	for i := range series {
		outcomes[i].Name = series[i].Name
	}
	primaryOf := dedupe(series)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.cfg.Concurrency)

	for i := range series {
		if primaryOf[i] != i {
			continue
		}
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			return f.fitOne(series[i], &outcomes[i])
		})
	}

	if err := g.Wait(); err != nil {
		return outcomes, err
	}
	if err := ctx.Err(); err != nil {
		return outcomes, err
	}

	var duplicates, failed int
	for i, p := range primaryOf {
		if p != i {
			outcomes[i].Result = outcomes[p].Result
			outcomes[i].Err = outcomes[p].Err
			outcomes[i].Duplicate = true
			duplicates++
		}
		if outcomes[i].Err != nil {
			failed++
		}
	}

	f.logger.Info("batch fit complete",
		zap.Int("series", len(series)),
		zap.Int("fitted", len(series)-duplicates),
		zap.Int("duplicates", duplicates),
		zap.Int("failed", failed),
	)

	return outcomes, nil
}

func (f *Fitter) fitOne(s Series, out *Outcome) error {
	res, err := regression.Fit(s.X, s.Y, s.SigmaY, f.cfg.FitOptions...)
	out.Result, out.Err = res, err

	if err != nil {
		f.logger.Warn("fit failed",
			zap.String("series", s.Name),
			zap.Int("points", len(s.X)),
			zap.Error(err),
		)
		if f.cfg.FailFast {
			return fmt.Errorf("series %q: %w", s.Name, err)
		}

		return nil
	}

	f.logger.Debug("fitted series",
		zap.String("series", s.Name),
		zap.Int("points", res.N),
		zap.Float64("intercept", res.Intercept),
		zap.Float64("slope", res.Slope),
		zap.Float64("chi2", res.ChiSquared),
		zap.Stringer("solver", res.Solver),
	)

	return nil
}

// dedupe maps every series index to the index of the first series holding
// identical data. Fingerprint matches are confirmed element by element.
func dedupe(series []Series) []int {
	primaryOf := make([]int, len(series))
	byFingerprint := make(map[uint64][]int, len(series))

	for i, s := range series {
		primaryOf[i] = i
		fp := s.Fingerprint()
		for _, j := range byFingerprint[fp] {
			if series[j].sameData(s) {
				primaryOf[i] = j
				break
			}
		}
		if primaryOf[i] == i {
			byFingerprint[fp] = append(byFingerprint[fp], i)
		}
	}

	return primaryOf
}
