package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifyPass(t *testing.T) {
	dst := []float32{2, 2, 2, 2}
	m, ok := Verify(dst, func(int) float32 { return 2 })
	assert.True(t, ok)
	assert.Equal(t, Mismatch{}, m)
}

func TestVerifyReportsFirstMismatch(t *testing.T) {
	dst := []float32{1, 2, 9, 4, 7}
	want := []float32{1, 2, 3, 4, 5}

	calls := 0
	m, ok := Verify(dst, func(i int) float32 {
		calls++
		return want[i]
	})

	assert.False(t, ok)
	assert.Equal(t, Mismatch{Index: 2, Got: 9, Want: 3}, m)
	assert.Equal(t, 3, calls, "scan must stop at the first mismatch")
}

func TestVerifyIsExact(t *testing.T) {
	v := float32(0.1)
	next := v + v*1e-7
	_, ok := Verify([]float32{next}, func(int) float32 { return v })
	if next != v {
		assert.False(t, ok)
	}
}

func TestVerifyEmpty(t *testing.T) {
	_, ok := Verify(nil, func(int) float32 { return 1 })
	assert.True(t, ok)
}

func TestCorrectnessError(t *testing.T) {
	err := &CorrectnessError{Op: "Aligned SSE", Offset: 16, Mismatch: Mismatch{Index: 7, Got: 0, Want: 2}}
	assert.ErrorIs(t, err, ErrCorrectness)
	assert.Equal(t, "Error in Aligned SSE (offset 16): index 7: 0 != 2", err.Error())
}
