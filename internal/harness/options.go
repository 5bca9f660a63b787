package harness

import (
	"time"

	"github.com/cwbudde/algo-vecmath/cpu"
	"go.uber.org/zap"
)

type options struct {
	logger   *zap.Logger
	now      func() time.Time
	features *cpu.Features
}

// Option configures an Executor or a Sweep.
type Option func(*options)

// WithLogger sets the logger for per-run diagnostics. The default discards.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithClock replaces time.Now. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithFeatures overrides CPU feature detection for gating.
func WithFeatures(f cpu.Features) Option {
	return func(o *options) {
		o.features = &f
	}
}

func applyOptions(opts []Option) options {
	o := options{
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
