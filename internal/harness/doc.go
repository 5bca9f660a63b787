// Package harness times element-wise kernels over a sweep of buffer
// alignments.
//
// A Sweep walks the configured byte offsets. For every offset it runs each
// registered operation through the Executor, which aligns the buffers, zeroes
// the destination window, times TotalElements/NumElements complete kernel
// passes and verifies the destination exactly before the timing is reported.
// Operations that cannot run at an offset (alignment not satisfied, wide
// vectors disabled or unsupported) are replaced by a placeholder that is
// neither timed nor verified and reports 0.
//
// Everything runs on the calling goroutine. A verification failure stops the
// sweep and is returned as a *CorrectnessError; the caller decides how to
// terminate.
package harness
