//go:build !purego

package kernel

import (
	"testing"

	"github.com/cwbudde/algo-vecmath/cpu"
)

func TestAMD64Levels(t *testing.T) {
	for _, e := range NewCopySuite().Entries() {
		var want cpu.SIMDLevel
		switch e.Width {
		case NarrowWidth:
			want = cpu.SIMDSSE2
		case WideWidth:
			want = cpu.SIMDAVX
		default:
			want = cpu.SIMDNone
		}
		if e.SIMDLevel != want {
			t.Errorf("%s: level %s, want %s", e.Name, e.SIMDLevel, want)
		}
	}
}

func TestAMD64WideGatedWithoutAVX(t *testing.T) {
	noAVX := cpu.Features{HasSSE2: true, Architecture: "amd64"}

	for _, e := range NewMulSuite().Entries() {
		if got := e.Supported(noAVX); got == e.Wide {
			t.Errorf("%s: Supported=%v with SSE2 only, wide=%v", e.Name, got, e.Wide)
		}
	}
}
