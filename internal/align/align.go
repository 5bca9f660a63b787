// Package align places buffer start pointers at a chosen byte offset relative
// to a 256-byte boundary.
//
// The benchmark sweeps the start offset of every buffer so that the effect of
// misalignment on vector loads and stores can be observed. All functions work
// on raw []byte backing stores; callers must over-allocate by SlackBytes so the
// worst-case shift still leaves the working set in bounds.
package align

import (
	"fmt"
	"unsafe"
)

// Boundary is the period of the alignment sweep in bytes.
const Boundary = 256

// elemSize is the size of one float32 element in bytes.
const elemSize = int(unsafe.Sizeof(float32(0)))

// Shift returns the number of bytes to advance addr so that the result is the
// lowest address a >= addr with a % Boundary == offset. The result is in
// [0, Boundary). Panics if offset is outside [0, Boundary).
func Shift(addr uintptr, offset int) int {
	if offset < 0 || offset >= Boundary {
		panic(fmt.Sprintf("align: offset %d outside [0, %d)", offset, Boundary))
	}
	cur := int(addr % Boundary)
	return (offset - cur + Boundary) % Boundary
}

// Bytes re-slices buf so that its first element sits at offset bytes past a
// 256-byte boundary. The returned slice shares buf's backing array.
func Bytes(buf []byte, offset int) []byte {
	if len(buf) == 0 {
		panic("align: empty buffer")
	}
	s := Shift(uintptr(unsafe.Pointer(&buf[0])), offset)
	if s >= len(buf) {
		panic(fmt.Sprintf("align: shift %d exceeds buffer of %d bytes", s, len(buf)))
	}
	return buf[s:]
}

// Float32s returns a float32 view of n elements starting offset bytes past a
// 256-byte boundary inside buf. For offsets that are not a multiple of four the
// view is misaligned for float32, which amd64 and arm64 tolerate.
// Panics if the shifted window does not fit in buf.
func Float32s(buf []byte, offset, n int) []float32 {
	if n <= 0 {
		panic(fmt.Sprintf("align: invalid element count %d", n))
	}
	b := Bytes(buf, offset)
	if len(b) < n*elemSize {
		panic(fmt.Sprintf("align: %d elements need %d bytes, %d left after shift",
			n, n*elemSize, len(b)))
	}
	return unsafe.Slice((*float32)(unsafe.Pointer(&b[0])), n)
}

// SlackBytes returns the backing store size needed to hold n float32 elements
// at any offset in [0, Boundary).
func SlackBytes(n int) int {
	return n*elemSize + Boundary
}

// IsAligned reports whether p is a multiple of alignment bytes.
func IsAligned(p unsafe.Pointer, alignment int) bool {
	return uintptr(p)%uintptr(alignment) == 0
}

// Offset returns the position of p relative to the previous 256-byte boundary.
func Offset(p unsafe.Pointer) int {
	return int(uintptr(p) % Boundary)
}
