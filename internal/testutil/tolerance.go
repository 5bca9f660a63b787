package testutil

import "testing"

// RequireAll fails t at the first element of got that is not exactly want.
func RequireAll(t testing.TB, got []float32, want float32) {
	t.Helper()
	for i, v := range got {
		if v != want {
			t.Fatalf("index %d: got %v, want %v", i, v, want)
		}
	}
}

// RequireEqual fails t if got and want differ in length or in any element.
// Comparison is exact.
func RequireEqual(t testing.TB, got, want []float32) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

// FirstMismatch returns the first index where a and b differ, or -1.
// Slices of different length mismatch at the shorter length.
func FirstMismatch(a, b []float32) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	if len(a) != len(b) {
		return n
	}
	return -1
}
