//go:build !purego

package kernel

import "github.com/cwbudde/algo-vecmath/cpu"

const (
	narrowLevel = cpu.SIMDSSE2
	wideLevel   = cpu.SIMDAVX

	// Implementation is reported by the list command.
	Implementation = "amd64 assembly"
)
