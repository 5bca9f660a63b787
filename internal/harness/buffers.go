package harness

import (
	"fmt"

	"github.com/cwbudde/algo-membench/internal/align"
	"github.com/cwbudde/algo-membench/internal/registry"
)

// Buffers owns the destination and source backing stores for a sweep. They
// are allocated once with enough slack for any offset and reused by every run.
type Buffers struct {
	num    int
	values []float32
	dst    []byte
	srcs   [][]byte
}

// NewBuffers allocates one destination and sources source stores, each able to
// hold num float32 elements at any offset in [0, align.Boundary).
// Every source is seeded with check.
func NewBuffers(num, sources int, check float32) *Buffers {
	if sources < 1 || sources > 2 {
		panic(fmt.Sprintf("harness: invalid buffer shape num=%d sources=%d", num, sources))
	}
	values := make([]float32, sources)
	for i := range values {
		values[i] = check
	}
	return NewBuffersWithValues(num, values...)
}

// NewBuffersWithValues allocates one source store per value, each seeded with
// its value, plus the destination store.
func NewBuffersWithValues(num int, values ...float32) *Buffers {
	if num <= 0 || len(values) < 1 || len(values) > 2 {
		panic(fmt.Sprintf("harness: invalid buffer shape num=%d sources=%d", num, len(values)))
	}
	b := &Buffers{
		num:    num,
		values: values,
		dst:    make([]byte, align.SlackBytes(num)),
		srcs:   make([][]byte, len(values)),
	}
	for i := range b.srcs {
		b.srcs[i] = make([]byte, align.SlackBytes(num))
	}
	return b
}

// NewBuffersFor sizes buffers for the operation kind.
func NewBuffersFor(kind registry.Kind, num int, check float32) *Buffers {
	return NewBuffers(num, kind.Sources(), check)
}

// Len returns the number of elements in one window.
func (b *Buffers) Len() int {
	return b.num
}

// Sources returns the number of source buffers.
func (b *Buffers) Sources() int {
	return len(b.srcs)
}

// windows is the aligned view of all buffers at one offset.
type windows struct {
	dst  []float32
	srcs [2][]float32
}

// at aligns every buffer to offset. The source windows are refilled with their
// seed value so that every element holds it regardless of the byte shift; the
// destination is zeroed.
func (b *Buffers) at(offset int) windows {
	var w windows
	w.dst = align.Float32s(b.dst, offset, b.num)
	clear(w.dst)
	for i, raw := range b.srcs {
		s := align.Float32s(raw, offset, b.num)
		v := b.values[i]
		for j := range s {
			s[j] = v
		}
		w.srcs[i] = s
	}
	return w
}
