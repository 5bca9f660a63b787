package harness

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-membench/internal/config"
	"github.com/cwbudde/algo-membench/internal/registry"
)

// Result is the outcome of one (operation, offset) run.
type Result struct {
	Op     string
	Offset int

	// Seconds is the elapsed wall time of all passes; 0 for placeholders.
	Seconds float64

	// Bytes is the memory traffic of all passes (reads plus writes).
	Bytes int64

	// Skipped is set for placeholder results.
	Skipped bool
}

// Executor performs timed runs for one configuration.
type Executor struct {
	cfg  config.Config
	opts options
}

// NewExecutor returns an executor for cfg. cfg must already be valid.
func NewExecutor(cfg config.Config, opts ...Option) *Executor {
	return &Executor{cfg: cfg, opts: applyOptions(opts)}
}

// Run times op at offset. Placeholder entries return a skipped result
// without touching the buffers. A verification failure is returned as a
// *CorrectnessError.
func (e *Executor) Run(op registry.Entry, offset int, bufs *Buffers) (Result, error) {
	res := Result{Op: op.Name, Offset: offset}
	if op.Noop {
		res.Skipped = true
		return res, nil
	}
	if bufs.Len() != e.cfg.NumElements {
		return res, fmt.Errorf("harness: buffers hold %d elements, config wants %d", bufs.Len(), e.cfg.NumElements)
	}
	if bufs.Sources() != op.Kind.Sources() {
		return res, fmt.Errorf("harness: %s needs %d sources, buffers have %d", op.Name, op.Kind.Sources(), bufs.Sources())
	}

	w := bufs.at(offset)
	pass, expected, err := bind(op, w)
	if err != nil {
		return res, err
	}

	reps := e.cfg.Repetitions()
	start := e.opts.now()
	for i := 0; i < reps; i++ {
		pass()
	}
	elapsed := e.opts.now().Sub(start)

	if m, ok := Verify(w.dst, expected); !ok {
		return res, &CorrectnessError{Op: op.Name, Offset: offset, Mismatch: m}
	}

	res.Seconds = elapsed.Seconds()
	res.Bytes = int64(reps) * int64(e.cfg.NumElements) * 4 * int64(op.Kind.Sources()+1)

	e.opts.logger.Info("run complete",
		zap.String("op", op.Name),
		zap.Int("offset", offset),
		zap.Float64("seconds", res.Seconds))
	if ce := e.opts.logger.Check(zap.DebugLevel, "bandwidth"); ce != nil && res.Seconds > 0 {
		ce.Write(
			zap.String("op", op.Name),
			zap.Int("offset", offset),
			zap.Int64("bytes", res.Bytes),
			zap.Float64("gb_per_s", float64(res.Bytes)/res.Seconds/1e9))
	}
	return res, nil
}

// bind returns one kernel pass over w and the expected value of dst[i].
func bind(op registry.Entry, w windows) (pass func(), expected func(i int) float32, err error) {
	switch op.Kind {
	case registry.KindCopy:
		if op.Copy == nil {
			return nil, nil, fmt.Errorf("harness: %s has no copy kernel", op.Name)
		}
		dst, src, fn := w.dst, w.srcs[0], op.Copy
		return func() { fn(dst, src) },
			func(i int) float32 { return src[i] },
			nil
	case registry.KindMul:
		if op.Mul == nil {
			return nil, nil, fmt.Errorf("harness: %s has no multiply kernel", op.Name)
		}
		dst, a, b, fn := w.dst, w.srcs[0], w.srcs[1], op.Mul
		return func() { fn(dst, a, b) },
			func(i int) float32 { return a[i] * b[i] },
			nil
	default:
		return nil, nil, fmt.Errorf("harness: unknown operation kind %d", int(op.Kind))
	}
}
