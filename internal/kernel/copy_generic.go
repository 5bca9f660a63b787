//go:build purego || !amd64

package kernel

func copyBlock4(dst, src []float32) {
	n := len(dst) &^ (NarrowWidth - 1)
	for i := 0; i < n; i += NarrowWidth {
		*(*[NarrowWidth]float32)(dst[i:]) = *(*[NarrowWidth]float32)(src[i:])
	}
	for i := n; i < len(dst); i++ {
		dst[i] = src[i]
	}
}

func copyBlock8(dst, src []float32) {
	n := len(dst) &^ (WideWidth - 1)
	for i := 0; i < n; i += WideWidth {
		*(*[WideWidth]float32)(dst[i:]) = *(*[WideWidth]float32)(src[i:])
	}
	for i := n; i < len(dst); i++ {
		dst[i] = src[i]
	}
}

// CopyUnalignedSSE copies src into dst in 4-element blocks.
func CopyUnalignedSSE(dst, src []float32) {
	checkLen2(dst, src)
	copyBlock4(dst, src)
}

// CopyAlignedSSE copies src into dst in 4-element blocks.
// Both slices must start on a 16-byte boundary.
func CopyAlignedSSE(dst, src []float32) {
	checkLen2(dst, src)
	if len(dst) == 0 {
		return
	}
	checkAligned(NarrowAlign, dst)
	checkAligned(NarrowAlign, src)
	copyBlock4(dst, src)
}

// CopyStreamSSE has no non-temporal store without assembly; it behaves like
// CopyAlignedSSE.
func CopyStreamSSE(dst, src []float32) {
	CopyAlignedSSE(dst, src)
}

// CopyUnalignedAVX copies src into dst in 8-element blocks.
func CopyUnalignedAVX(dst, src []float32) {
	checkLen2(dst, src)
	copyBlock8(dst, src)
}

// CopyAlignedAVX copies src into dst in 8-element blocks.
// Both slices must start on a 32-byte boundary.
func CopyAlignedAVX(dst, src []float32) {
	checkLen2(dst, src)
	if len(dst) == 0 {
		return
	}
	checkAligned(WideAlign, dst)
	checkAligned(WideAlign, src)
	copyBlock8(dst, src)
}

// CopyStreamAVX behaves like CopyAlignedAVX.
func CopyStreamAVX(dst, src []float32) {
	CopyAlignedAVX(dst, src)
}
