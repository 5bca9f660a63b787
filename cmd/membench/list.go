package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"unsafe"

	"github.com/cwbudde/algo-vecmath/cpu"
	"github.com/spf13/cobra"
	xcpu "golang.org/x/sys/cpu"

	"github.com/cwbudde/algo-membench/internal/kernel"
	"github.com/cwbudde/algo-membench/internal/registry"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the registered kernels and the detected CPU features",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeList(cmd.OutOrStdout(), cpu.DetectFeatures())
		},
	}
}

func writeList(w io.Writer, features cpu.Features) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SUITE\tKERNEL\tWIDTH\tALIGN\tSIMD\tWIDE\tSTREAM\tSUPPORTED")
	for _, kind := range []registry.Kind{registry.KindCopy, registry.KindMul} {
		suite, err := kernel.NewSuite(kind)
		if err != nil {
			return err
		}
		for _, e := range suite.Entries() {
			fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\t%s\t%s\n",
				kind, e.Name, e.Width, alignLabel(e.Align), e.SIMDLevel,
				yesNo(e.Wide), yesNo(e.Streaming), yesNo(e.Supported(features)))
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nimplementation: %s\n", kernel.Implementation)
	fmt.Fprintf(w, "architecture:   %s\n", features.Architecture)
	fmt.Fprintf(w, "features:       sse2=%s avx=%s avx2=%s avx512=%s neon=%s generic=%s\n",
		yesNo(features.HasSSE2), yesNo(features.HasAVX), yesNo(features.HasAVX2),
		yesNo(features.HasAVX512), yesNo(features.HasNEON), yesNo(features.ForceGeneric))
	if xcpu.X86.HasSSE2 {
		fmt.Fprintf(w, "x86:            sse41=%s fma=%s avx512f=%s erms=%s\n",
			yesNo(xcpu.X86.HasSSE41), yesNo(xcpu.X86.HasFMA),
			yesNo(xcpu.X86.HasAVX512F), yesNo(xcpu.X86.HasERMS))
	}
	_, err := fmt.Fprintf(w, "cache line:     %d bytes\n", unsafe.Sizeof(xcpu.CacheLinePad{}))
	return err
}

func alignLabel(a int) string {
	if a == 0 {
		return "-"
	}
	return strconv.Itoa(a)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
