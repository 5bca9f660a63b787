package kernel

import (
	"fmt"
	"unsafe"
)

// Vector widths in float32 lanes and the matching alignment in bytes.
const (
	NarrowWidth = 4
	WideWidth   = 8

	NarrowAlign = NarrowWidth * 4
	WideAlign   = WideWidth * 4
)

func checkLen2(dst, src []float32) {
	if len(dst) != len(src) {
		panic("kernel: slice length mismatch")
	}
}

func checkLen3(dst, a, b []float32) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("kernel: slice length mismatch")
	}
}

func checkAligned(alignment int, s []float32) {
	if p := uintptr(unsafe.Pointer(&s[0])); p%uintptr(alignment) != 0 {
		panic(fmt.Sprintf("kernel: pointer %#x not %d-byte aligned", p, alignment))
	}
}

// CopyLoop copies src into dst one element at a time.
func CopyLoop(dst, src []float32) {
	checkLen2(dst, src)
	for i := range dst {
		dst[i] = src[i]
	}
}

// CopyBuiltin copies src into dst with the copy builtin.
func CopyBuiltin(dst, src []float32) {
	checkLen2(dst, src)
	copy(dst, src)
}

// MulLoop computes dst[i] = a[i] * b[i] one element at a time.
func MulLoop(dst, a, b []float32) {
	checkLen3(dst, a, b)
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}
