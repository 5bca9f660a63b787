package testutil

import "math/rand"

// Const returns a slice of length n filled with value.
func Const(value float32, n int) []float32 {
	out := make([]float32, n)
	Fill(out, value)
	return out
}

// Fill sets every element of dst to value.
func Fill(dst []float32, value float32) {
	for i := range dst {
		dst[i] = value
	}
}

// Ramp fills dst with start, start+step, start+2*step, ...
// Small integer steps stay exact in float32 up to 2^24.
func Ramp(dst []float32, start, step float32) {
	for i := range dst {
		dst[i] = start + step*float32(i)
	}
}

// DeterministicNoise fills dst with values in [-amplitude, amplitude) from a
// fixed seed.
func DeterministicNoise(dst []float32, seed int64, amplitude float32) {
	rng := rand.New(rand.NewSource(seed))
	for i := range dst {
		dst[i] = (rng.Float32()*2 - 1) * amplitude
	}
}
