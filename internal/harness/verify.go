package harness

// Mismatch locates the first element that failed verification.
type Mismatch struct {
	Index int
	Got   float32
	Want  float32
}

// Verify compares dst[i] against expected(i) with exact equality and stops at
// the first difference. It returns ok == true when every element matches.
func Verify(dst []float32, expected func(i int) float32) (m Mismatch, ok bool) {
	for i, got := range dst {
		if want := expected(i); got != want {
			return Mismatch{Index: i, Got: got, Want: want}, false
		}
	}
	return Mismatch{}, true
}
