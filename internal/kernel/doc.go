// Package kernel contains the element-wise copy and multiply strategies that
// the benchmark harness times.
//
// Every strategy has the same shape: it processes exactly len(dst) float32
// elements per call. The strategies differ only in how memory is touched:
//
//   - CopyLoop / MulLoop: scalar Go loop
//   - CopyBuiltin: the copy builtin (runtime memmove)
//   - *UnalignedSSE / *UnalignedAVX: 128/256-bit unaligned loads and stores
//   - *AlignedSSE / *AlignedAVX: 128/256-bit aligned loads and stores
//   - *StreamSSE / *StreamAVX: aligned loads, non-temporal stores
//
// On amd64 the vector strategies are implemented in assembly. With the purego
// build tag, or on other architectures, they fall back to pure Go code that
// moves [4]float32 / [8]float32 blocks; the streaming variants then use
// ordinary cached stores.
//
// Aligned and streaming strategies panic when a start pointer does not have
// the required alignment rather than faulting inside the vector code.
//
// NewCopySuite and NewMulSuite register the strategies in the column order
// used by the benchmark output.
package kernel
