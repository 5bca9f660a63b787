//go:build purego || !amd64

package kernel

func mulBlock4(dst, a, b []float32) {
	n := len(dst) &^ (NarrowWidth - 1)
	for i := 0; i < n; i += NarrowWidth {
		d := (*[NarrowWidth]float32)(dst[i:])
		x := (*[NarrowWidth]float32)(a[i:])
		y := (*[NarrowWidth]float32)(b[i:])
		d[0] = x[0] * y[0]
		d[1] = x[1] * y[1]
		d[2] = x[2] * y[2]
		d[3] = x[3] * y[3]
	}
	for i := n; i < len(dst); i++ {
		dst[i] = a[i] * b[i]
	}
}

func mulBlock8(dst, a, b []float32) {
	n := len(dst) &^ (WideWidth - 1)
	for i := 0; i < n; i += WideWidth {
		d := (*[WideWidth]float32)(dst[i:])
		x := (*[WideWidth]float32)(a[i:])
		y := (*[WideWidth]float32)(b[i:])
		for j := range d {
			d[j] = x[j] * y[j]
		}
	}
	for i := n; i < len(dst); i++ {
		dst[i] = a[i] * b[i]
	}
}

// MulUnalignedSSE computes dst[i] = a[i] * b[i] in 4-element blocks.
func MulUnalignedSSE(dst, a, b []float32) {
	checkLen3(dst, a, b)
	mulBlock4(dst, a, b)
}

// MulAlignedSSE computes dst[i] = a[i] * b[i] in 4-element blocks.
// All slices must start on a 16-byte boundary.
func MulAlignedSSE(dst, a, b []float32) {
	checkLen3(dst, a, b)
	if len(dst) == 0 {
		return
	}
	checkAligned(NarrowAlign, dst)
	checkAligned(NarrowAlign, a)
	checkAligned(NarrowAlign, b)
	mulBlock4(dst, a, b)
}

// MulStreamSSE behaves like MulAlignedSSE.
func MulStreamSSE(dst, a, b []float32) {
	MulAlignedSSE(dst, a, b)
}

// MulUnalignedAVX computes dst[i] = a[i] * b[i] in 8-element blocks.
func MulUnalignedAVX(dst, a, b []float32) {
	checkLen3(dst, a, b)
	mulBlock8(dst, a, b)
}

// MulAlignedAVX computes dst[i] = a[i] * b[i] in 8-element blocks.
// All slices must start on a 32-byte boundary.
func MulAlignedAVX(dst, a, b []float32) {
	checkLen3(dst, a, b)
	if len(dst) == 0 {
		return
	}
	checkAligned(WideAlign, dst)
	checkAligned(WideAlign, a)
	checkAligned(WideAlign, b)
	mulBlock8(dst, a, b)
}

// MulStreamAVX behaves like MulAlignedAVX.
func MulStreamAVX(dst, a, b []float32) {
	MulAlignedAVX(dst, a, b)
}
