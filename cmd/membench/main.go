// Command membench measures copy and multiply throughput of SIMD kernels
// across a sweep of buffer alignments.
//
// Usage:
//
//	membench copy [flags]
//	membench mult [flags]
//	membench list
//
// Each sweep writes one row per byte offset (relative to a 256-byte
// boundary) with the elapsed seconds of every kernel. Kernels that cannot run
// at an offset report 0. With --report-html the table is wrapped in a chart
// page.
//
// Examples:
//
//	membench copy > copy.html
//	membench mult --report-html=false --enable-avx=false
//	membench copy --num-floats 4096 --min-offset 0 --max-offset 255
//	membench copy --config bench.yaml --verbose
package main

import (
	"os"
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}
