package kernel

import (
	"testing"

	"github.com/cwbudde/algo-vecmath/cpu"
)

var benchSizes = []struct {
	name string
	size int
}{
	{"256", 256},
	{"4K", 4096},
	{"16K", 16384},
	{"1M", 1 << 20},
}

func BenchmarkCopy(b *testing.B) {
	features := cpu.DetectFeatures()
	for _, e := range NewCopySuite().Entries() {
		if !e.Supported(features) {
			continue
		}
		for _, tc := range benchSizes {
			b.Run(e.Name+"/"+tc.name, func(b *testing.B) {
				src := window(64, tc.size)
				dst := window(64, tc.size)
				for i := range src {
					src[i] = float32(i) + 0.5
				}

				b.SetBytes(int64(tc.size * 4 * 2)) // read + write
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					e.Copy(dst, src)
				}
			})
		}
	}
}

func BenchmarkMul(b *testing.B) {
	features := cpu.DetectFeatures()
	for _, e := range NewMulSuite().Entries() {
		if !e.Supported(features) {
			continue
		}
		for _, tc := range benchSizes {
			b.Run(e.Name+"/"+tc.name, func(b *testing.B) {
				x := window(0, tc.size)
				y := window(64, tc.size)
				dst := window(128, tc.size)
				for i := range x {
					x[i] = float32(i) + 0.5
					y[i] = float32(tc.size-i) * 0.1
				}

				b.SetBytes(int64(tc.size * 4 * 3)) // 3 arrays accessed
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					e.Mul(dst, x, y)
				}
			})
		}
	}
}
