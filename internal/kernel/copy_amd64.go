//go:build !purego

package kernel

// CopyUnalignedSSE copies src into dst with unaligned 128-bit moves.
func CopyUnalignedSSE(dst, src []float32) {
	checkLen2(dst, src)
	if len(dst) == 0 {
		return
	}
	copyUnalignedSSE(dst, src)
}

// CopyAlignedSSE copies src into dst with aligned 128-bit moves.
// Both slices must start on a 16-byte boundary.
func CopyAlignedSSE(dst, src []float32) {
	checkLen2(dst, src)
	if len(dst) == 0 {
		return
	}
	checkAligned(NarrowAlign, dst)
	checkAligned(NarrowAlign, src)
	copyAlignedSSE(dst, src)
}

// CopyStreamSSE copies src into dst with aligned 128-bit loads and
// non-temporal stores. Both slices must start on a 16-byte boundary.
func CopyStreamSSE(dst, src []float32) {
	checkLen2(dst, src)
	if len(dst) == 0 {
		return
	}
	checkAligned(NarrowAlign, dst)
	checkAligned(NarrowAlign, src)
	copyStreamSSE(dst, src)
}

// CopyUnalignedAVX copies src into dst with unaligned 256-bit moves.
// The caller must ensure the CPU supports AVX.
func CopyUnalignedAVX(dst, src []float32) {
	checkLen2(dst, src)
	if len(dst) == 0 {
		return
	}
	copyUnalignedAVX(dst, src)
}

// CopyAlignedAVX copies src into dst with aligned 256-bit moves.
// Both slices must start on a 32-byte boundary.
func CopyAlignedAVX(dst, src []float32) {
	checkLen2(dst, src)
	if len(dst) == 0 {
		return
	}
	checkAligned(WideAlign, dst)
	checkAligned(WideAlign, src)
	copyAlignedAVX(dst, src)
}

// CopyStreamAVX copies src into dst with aligned 256-bit loads and
// non-temporal stores. Both slices must start on a 32-byte boundary.
func CopyStreamAVX(dst, src []float32) {
	checkLen2(dst, src)
	if len(dst) == 0 {
		return
	}
	checkAligned(WideAlign, dst)
	checkAligned(WideAlign, src)
	copyStreamAVX(dst, src)
}

// Assembly function declarations (implemented in copy_amd64.s)

//go:noescape
func copyUnalignedSSE(dst, src []float32)

//go:noescape
func copyAlignedSSE(dst, src []float32)

//go:noescape
func copyStreamSSE(dst, src []float32)

//go:noescape
func copyUnalignedAVX(dst, src []float32)

//go:noescape
func copyAlignedAVX(dst, src []float32)

//go:noescape
func copyStreamAVX(dst, src []float32)
