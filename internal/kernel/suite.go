package kernel

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-membench/internal/registry"
)

// Column names shared by both suites.
const (
	NameBuiltin      = "builtin copy"
	NameLoop         = "for-loop"
	NameUnalignedSSE = "Unaligned SSE"
	NameUnalignedAVX = "Unaligned AVX"
	NameAlignedSSE   = "Aligned SSE"
	NameStreamSSE    = "Aligned SSE Stream"
	NameAlignedAVX   = "Aligned AVX"
	NameStreamAVX    = "Aligned AVX Stream"
)

// NewCopySuite returns the copy strategies in output column order.
func NewCopySuite() *registry.Registry {
	r := registry.New(registry.KindCopy)
	for _, e := range []registry.Entry{
		{Name: NameBuiltin, Width: 1, SIMDLevel: cpu.SIMDNone, Copy: CopyBuiltin},
		{Name: NameLoop, Width: 1, SIMDLevel: cpu.SIMDNone, Copy: CopyLoop},
		{Name: NameUnalignedSSE, Width: NarrowWidth, SIMDLevel: narrowLevel, Copy: CopyUnalignedSSE},
		{Name: NameUnalignedAVX, Width: WideWidth, Wide: true, SIMDLevel: wideLevel, Copy: CopyUnalignedAVX},
		{Name: NameAlignedSSE, Width: NarrowWidth, Align: NarrowAlign, SIMDLevel: narrowLevel, Copy: CopyAlignedSSE},
		{Name: NameStreamSSE, Width: NarrowWidth, Align: NarrowAlign, Streaming: true, SIMDLevel: narrowLevel, Copy: CopyStreamSSE},
		{Name: NameAlignedAVX, Width: WideWidth, Align: WideAlign, Wide: true, SIMDLevel: wideLevel, Copy: CopyAlignedAVX},
		{Name: NameStreamAVX, Width: WideWidth, Align: WideAlign, Wide: true, Streaming: true, SIMDLevel: wideLevel, Copy: CopyStreamAVX},
	} {
		e.Kind = registry.KindCopy
		r.MustRegister(e)
	}
	return r
}

// NewMulSuite returns the multiply strategies in output column order.
func NewMulSuite() *registry.Registry {
	r := registry.New(registry.KindMul)
	for _, e := range []registry.Entry{
		{Name: NameLoop, Width: 1, SIMDLevel: cpu.SIMDNone, Mul: MulLoop},
		{Name: NameUnalignedSSE, Width: NarrowWidth, SIMDLevel: narrowLevel, Mul: MulUnalignedSSE},
		{Name: NameUnalignedAVX, Width: WideWidth, Wide: true, SIMDLevel: wideLevel, Mul: MulUnalignedAVX},
		{Name: NameAlignedSSE, Width: NarrowWidth, Align: NarrowAlign, SIMDLevel: narrowLevel, Mul: MulAlignedSSE},
		{Name: NameStreamSSE, Width: NarrowWidth, Align: NarrowAlign, Streaming: true, SIMDLevel: narrowLevel, Mul: MulStreamSSE},
		{Name: NameAlignedAVX, Width: WideWidth, Align: WideAlign, Wide: true, SIMDLevel: wideLevel, Mul: MulAlignedAVX},
		{Name: NameStreamAVX, Width: WideWidth, Align: WideAlign, Wide: true, Streaming: true, SIMDLevel: wideLevel, Mul: MulStreamAVX},
	} {
		e.Kind = registry.KindMul
		r.MustRegister(e)
	}
	return r
}

// NewSuite returns the suite for kind.
func NewSuite(kind registry.Kind) (*registry.Registry, error) {
	switch kind {
	case registry.KindCopy:
		return NewCopySuite(), nil
	case registry.KindMul:
		return NewMulSuite(), nil
	default:
		return nil, fmt.Errorf("kernel: unknown operation kind %d", int(kind))
	}
}
