package batch

import (
	"fmt"
	"runtime"

	"go.uber.org/zap"

	"github.com/arloliu/linfit/errs"
	"github.com/arloliu/linfit/internal/options"
	"github.com/arloliu/linfit/regression"
)

// Config holds Fitter configuration.
type Config struct {
	// Concurrency is the maximum number of fits running at once.
	// Default runtime.GOMAXPROCS(0).
	Concurrency int
	// FailFast stops the batch at the first failed series.
	FailFast bool
	// FitOptions are passed to every regression.Fit call.
	FitOptions []regression.FitOption
	// Logger receives per-series and summary entries. Default no-op.
	Logger *zap.Logger
}

func defaultConfig() Config {
	return Config{
		Concurrency: runtime.GOMAXPROCS(0),
		Logger:      zap.NewNop(),
	}
}

// Option is a functional option for Config.
type Option = options.Option[*Config]

// WithConcurrency sets the maximum number of concurrent fits. n must be >= 1.
func WithConcurrency(n int) Option {
	return options.New(func(cfg *Config) error {
		if n < 1 {
			return fmt.Errorf("%w: concurrency must be at least 1, got %d", errs.ErrInvalidOption, n)
		}
		cfg.Concurrency = n

		return nil
	})
}

// WithFailFast makes FitAll return the first series error and cancel the
// remaining fits.
func WithFailFast(enabled bool) Option {
	return options.NoError(func(cfg *Config) {
		cfg.FailFast = enabled
	})
}

// WithFitOptions appends options passed to every regression.Fit call.
func WithFitOptions(opts ...regression.FitOption) Option {
	return options.NoError(func(cfg *Config) {
		cfg.FitOptions = append(cfg.FitOptions, opts...)
	})
}

// WithLogger sets the logger. A nil logger is rejected; use zap.NewNop to
// silence output.
func WithLogger(logger *zap.Logger) Option {
	return options.New(func(cfg *Config) error {
		if logger == nil {
			return fmt.Errorf("%w: nil logger", errs.ErrInvalidOption)
		}
		cfg.Logger = logger

		return nil
	})
}
