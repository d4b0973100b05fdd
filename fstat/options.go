package fstat

import (
	"fmt"

	"github.com/genomere/covstats/errs"
	"github.com/genomere/covstats/internal/options"
)

// DefaultScaleFactor is the scale factor assumed when none is supplied,
// matching the default of the upstream coverage-preprocessing pipeline.
const DefaultScaleFactor = 32

// Config holds the validated settings of one F-statistic computation.
type Config struct {
	method      Method
	adjustF     float64
	scaleFactor float64
	rowMask     []bool
	warn        func(string)
}

func defaultConfig() *Config {
	return &Config{
		method:      MethodAutoSparse,
		scaleFactor: DefaultScaleFactor,
	}
}

// Option is a functional option for Compute and ComputeChunk.
type Option = options.Option[*Config]

// WithMethod selects the computation method. Valid requested methods are
// MethodAutoSparse (default), MethodDense, and MethodRle.
func WithMethod(m Method) Option {
	return options.New(func(cfg *Config) error {
		switch m {
		case MethodAutoSparse, MethodDense, MethodRle:
			cfg.method = m
			return nil
		default:
			return fmt.Errorf("%w: %v", errs.ErrInvalidMethod, m)
		}
	})
}

// WithMethodName selects the computation method by name; see
// MethodFromString for the accepted names.
func WithMethodName(name string) Option {
	return options.New(func(cfg *Config) error {
		m, err := MethodFromString(name)
		if err != nil {
			return err
		}
		cfg.method = m

		return nil
	})
}

// WithAdjustF sets the non-negative term added to the F-ratio denominator.
// A positive adjust keeps features with near-zero alternative-model RSS from
// producing extreme or NaN statistics. Default 0.
func WithAdjustF(adjust float64) Option {
	return options.New(func(cfg *Config) error {
		if adjust < 0 {
			return fmt.Errorf("%w: %g", errs.ErrNegativeAdjust, adjust)
		}
		cfg.adjustF = adjust

		return nil
	})
}

// WithScaleFactor sets the non-negative scale factor whose log2 thresholds
// coverage in the sparse transform. Default DefaultScaleFactor. Only the
// sparse method consults it.
func WithScaleFactor(scale float64) Option {
	return options.New(func(cfg *Config) error {
		if scale < 0 {
			return fmt.Errorf("%w: %g", errs.ErrNegativeScaleFactor, scale)
		}
		cfg.scaleFactor = scale

		return nil
	})
}

// WithRowMask restricts the computation to the features where mask is true.
// The mask length must equal the coverage matrix row count.
func WithRowMask(mask []bool) Option {
	return options.NoError(func(cfg *Config) {
		cfg.rowMask = mask
	})
}

// WithWarnings installs a sink for non-fatal degradation diagnostics: the
// auto-sparse fallback to dense and the rle large-sample notice. Without a
// sink the diagnostics are discarded; the computation itself is unaffected
// either way.
func WithWarnings(sink func(msg string)) Option {
	return options.NoError(func(cfg *Config) {
		cfg.warn = sink
	})
}

func newConfig(opts ...Option) (*Config, error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}
