package testutil

import "testing"

func TestConst(t *testing.T) {
	s := Const(2.5, 7)
	if len(s) != 7 {
		t.Fatalf("len = %d, want 7", len(s))
	}
	RequireAll(t, s, 2.5)
}

func TestRamp(t *testing.T) {
	s := make([]float32, 5)
	Ramp(s, 1, 2)
	RequireEqual(t, s, []float32{1, 3, 5, 7, 9})
}

func TestDeterministicNoiseReproducible(t *testing.T) {
	a := make([]float32, 64)
	b := make([]float32, 64)
	DeterministicNoise(a, 42, 1)
	DeterministicNoise(b, 42, 1)
	RequireEqual(t, a, b)

	for i, v := range a {
		if v < -1 || v >= 1 {
			t.Fatalf("index %d: %v outside [-1, 1)", i, v)
		}
	}
}
