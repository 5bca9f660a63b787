package harness

import (
	"fmt"
	"strconv"

	"github.com/cwbudde/algo-vecmath/cpu"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-membench/internal/config"
	"github.com/cwbudde/algo-membench/internal/registry"
	"github.com/cwbudde/algo-membench/internal/report"
)

// RowLabel is the name of the first output column.
const RowLabel = "Alignment"

// Sweep runs every operation of a suite at every configured offset and
// streams one row per offset to a sink.
type Sweep struct {
	cfg      config.Config
	suite    *registry.Registry
	sink     report.Sink
	exec     *Executor
	features cpu.Features
	logger   *zap.Logger
}

// NewSweep validates cfg and prepares a sweep. It returns a *config.ConfigError
// if cfg is inconsistent.
func NewSweep(cfg config.Config, suite *registry.Registry, sink report.Sink, opts ...Option) (*Sweep, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if suite == nil || suite.Len() == 0 {
		return nil, fmt.Errorf("harness: empty operation suite")
	}

	o := applyOptions(opts)
	features := cpu.DetectFeatures()
	if o.features != nil {
		features = *o.features
	}

	return &Sweep{
		cfg:      cfg,
		suite:    suite,
		sink:     sink,
		exec:     &Executor{cfg: cfg, opts: o},
		features: features,
		logger:   o.logger,
	}, nil
}

// Gate returns e if it can run at offset and a placeholder otherwise.
func Gate(e registry.Entry, offset int, cfg config.Config, features cpu.Features) registry.Entry {
	if e.Noop {
		return e
	}
	if e.Wide && !cfg.EnableWideVector || !e.Supported(features) || !e.Applicable(offset) {
		return registry.Placeholder(e.Name, e.Kind)
	}
	return e
}

// Run executes the sweep. The sink is closed only after the last row; on error
// the sweep stops immediately and the partial output is left unterminated.
func (s *Sweep) Run() error {
	entries := s.suite.Entries()
	names := s.suite.Names()
	bufs := NewBuffersFor(s.suite.Kind(), s.cfg.NumElements, s.cfg.CheckValue)

	s.logger.Info("sweep start",
		zap.Stringer("kind", s.suite.Kind()),
		zap.Int("operations", len(entries)),
		zap.Int("min_offset", s.cfg.MinOffset),
		zap.Int("max_offset", s.cfg.MaxOffset),
		zap.Int("num_floats", s.cfg.NumElements),
		zap.Int("repetitions", s.cfg.Repetitions()))

	if err := s.sink.Header(RowLabel, names); err != nil {
		return err
	}

	row := make([]float64, len(entries))
	for _, offset := range s.cfg.Offsets() {
		for i, e := range entries {
			op := Gate(e, offset, s.cfg, s.features)
			if op.Noop && !e.Noop {
				s.logger.Debug("placeholder", zap.String("op", e.Name), zap.Int("offset", offset))
			}

			res, err := s.exec.Run(op, offset, bufs)
			if err != nil {
				return err
			}
			row[i] = res.Seconds
		}
		if err := s.sink.Row(strconv.Itoa(offset), row); err != nil {
			return err
		}
	}

	return s.sink.Close()
}
