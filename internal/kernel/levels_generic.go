//go:build purego || !amd64

package kernel

import "github.com/cwbudde/algo-vecmath/cpu"

const (
	narrowLevel = cpu.SIMDNone
	wideLevel   = cpu.SIMDNone

	// Implementation is reported by the list command.
	Implementation = "pure Go"
)
