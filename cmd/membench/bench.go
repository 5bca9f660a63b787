package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-membench/internal/harness"
	"github.com/cwbudde/algo-membench/internal/kernel"
	"github.com/cwbudde/algo-membench/internal/registry"
	"github.com/cwbudde/algo-membench/internal/report"
)

const (
	benchCopy = registry.KindCopy
	benchMul  = registry.KindMul
)

var benchShort = map[registry.Kind]string{
	registry.KindCopy: "Sweep the copy kernels (dst[i] = src[i])",
	registry.KindMul:  "Sweep the multiply kernels (dst[i] = a[i] * b[i])",
}

func newBenchCmd(opts *rootOptions, kind registry.Kind) *cobra.Command {
	return &cobra.Command{
		Use:   kind.String(),
		Short: benchShort[kind],
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd.Flags())
			if err != nil {
				return err
			}

			suite, err := kernel.NewSuite(kind)
			if err != nil {
				return err
			}

			sink := report.New(cmd.OutOrStdout(), cfg.EmitChartMarkup)
			sweep, err := harness.NewSweep(cfg, suite, sink, harness.WithLogger(opts.logger))
			if err != nil {
				return err
			}

			opts.logger.Debug("kernels",
				zap.String("implementation", kernel.Implementation),
				zap.Strings("names", suite.Names()))

			if err := sweep.Run(); err != nil {
				return fmt.Errorf("%s sweep: %w", kind, err)
			}
			return nil
		},
	}
}
