//go:build !purego

package kernel

// MulUnalignedSSE computes dst[i] = a[i] * b[i] with unaligned 128-bit moves.
func MulUnalignedSSE(dst, a, b []float32) {
	checkLen3(dst, a, b)
	if len(dst) == 0 {
		return
	}
	mulUnalignedSSE(dst, a, b)
}

// MulAlignedSSE computes dst[i] = a[i] * b[i] with aligned 128-bit moves.
// All slices must start on a 16-byte boundary.
func MulAlignedSSE(dst, a, b []float32) {
	checkLen3(dst, a, b)
	if len(dst) == 0 {
		return
	}
	checkAligned(NarrowAlign, dst)
	checkAligned(NarrowAlign, a)
	checkAligned(NarrowAlign, b)
	mulAlignedSSE(dst, a, b)
}

// MulStreamSSE computes dst[i] = a[i] * b[i] with aligned 128-bit loads and
// non-temporal stores. All slices must start on a 16-byte boundary.
func MulStreamSSE(dst, a, b []float32) {
	checkLen3(dst, a, b)
	if len(dst) == 0 {
		return
	}
	checkAligned(NarrowAlign, dst)
	checkAligned(NarrowAlign, a)
	checkAligned(NarrowAlign, b)
	mulStreamSSE(dst, a, b)
}

// MulUnalignedAVX computes dst[i] = a[i] * b[i] with unaligned 256-bit moves.
// The caller must ensure the CPU supports AVX.
func MulUnalignedAVX(dst, a, b []float32) {
	checkLen3(dst, a, b)
	if len(dst) == 0 {
		return
	}
	mulUnalignedAVX(dst, a, b)
}

// MulAlignedAVX computes dst[i] = a[i] * b[i] with aligned 256-bit moves.
// All slices must start on a 32-byte boundary.
func MulAlignedAVX(dst, a, b []float32) {
	checkLen3(dst, a, b)
	if len(dst) == 0 {
		return
	}
	checkAligned(WideAlign, dst)
	checkAligned(WideAlign, a)
	checkAligned(WideAlign, b)
	mulAlignedAVX(dst, a, b)
}

// MulStreamAVX computes dst[i] = a[i] * b[i] with aligned 256-bit loads and
// non-temporal stores. All slices must start on a 32-byte boundary.
func MulStreamAVX(dst, a, b []float32) {
	checkLen3(dst, a, b)
	if len(dst) == 0 {
		return
	}
	checkAligned(WideAlign, dst)
	checkAligned(WideAlign, a)
	checkAligned(WideAlign, b)
	mulStreamAVX(dst, a, b)
}

// Assembly function declarations (implemented in mul_amd64.s)

//go:noescape
func mulUnalignedSSE(dst, a, b []float32)

//go:noescape
func mulAlignedSSE(dst, a, b []float32)

//go:noescape
func mulStreamSSE(dst, a, b []float32)

//go:noescape
func mulUnalignedAVX(dst, a, b []float32)

//go:noescape
func mulAlignedAVX(dst, a, b []float32)

//go:noescape
func mulStreamAVX(dst, a, b []float32)
