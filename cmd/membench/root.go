package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cwbudde/algo-membench/internal/config"
)

// rootOptions holds the persistent flag values shared by every subcommand.
type rootOptions struct {
	configPath string
	verbose    bool

	numFloats   int
	totalFloats int
	checkValue  float32
	enableAVX   bool
	reportHTML  bool
	minOffset   int
	maxOffset   int

	logger *zap.Logger
}

// usageError marks errors that should be followed by the command usage.
type usageError struct {
	cmd *cobra.Command
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "membench",
		Short: "Memory bandwidth benchmark for SIMD copy and multiply kernels",
		Long: `membench times element-wise float32 copy and multiply kernels at every
byte alignment in a configurable range and reports one row per offset.

Kernels that require an alignment the offset does not satisfy, wide kernels
when --enable-avx=false, and kernels the CPU cannot execute are reported as 0.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts.logger = newLogger(stderr, opts.verbose)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{cmd: cmd, err: err}
	})

	def := config.Default()
	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "YAML file with benchmark parameters")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	pf.IntVar(&opts.numFloats, "num-floats", def.NumElements, "Elements per kernel call")
	pf.IntVar(&opts.totalFloats, "total-floats", def.TotalElements, "Elements processed per run")
	pf.Float32Var(&opts.checkValue, "check-value", def.CheckValue, "Value the source buffers are filled with")
	pf.BoolVar(&opts.enableAVX, "enable-avx", def.EnableWideVector, "Run the 256-bit kernels")
	pf.BoolVar(&opts.reportHTML, "report-html", def.EmitChartMarkup, "Wrap the table in an HTML chart page")
	pf.IntVar(&opts.minOffset, "min-offset", def.MinOffset, "First byte offset of the sweep")
	pf.IntVar(&opts.maxOffset, "max-offset", def.MaxOffset, "Last byte offset of the sweep")

	root.AddCommand(
		newBenchCmd(opts, benchCopy),
		newBenchCmd(opts, benchMul),
		newListCmd(),
	)
	return root
}

// resolve layers the configuration: defaults, then the YAML file, then every
// flag the user set explicitly.
func (o *rootOptions) resolve(flags *pflag.FlagSet) (config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return config.Config{}, err
		}
	}

	if flags.Changed("num-floats") {
		cfg.NumElements = o.numFloats
	}
	if flags.Changed("total-floats") {
		cfg.TotalElements = o.totalFloats
	}
	if flags.Changed("check-value") {
		cfg.CheckValue = o.checkValue
	}
	if flags.Changed("enable-avx") {
		cfg.EnableWideVector = o.enableAVX
	}
	if flags.Changed("report-html") {
		cfg.EmitChartMarkup = o.reportHTML
	}
	if flags.Changed("min-offset") {
		cfg.MinOffset = o.minOffset
	}
	if flags.Changed("max-offset") {
		cfg.MaxOffset = o.maxOffset
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	enc := zap.NewDevelopmentEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), level)
	return zap.New(core)
}

// execute runs the command line and returns the process exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)

	cmd, err := root.ExecuteC()
	if err == nil {
		return 0
	}

	fmt.Fprintln(stderr, "Error:", err)

	var ue *usageError
	var ce *config.ConfigError
	switch {
	case errors.As(err, &ue):
		fmt.Fprint(stderr, ue.cmd.UsageString())
	case errors.As(err, &ce):
		fmt.Fprint(stderr, cmd.UsageString())
	}
	return 1
}
