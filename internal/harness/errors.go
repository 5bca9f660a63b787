package harness

import (
	"errors"
	"fmt"
)

// ErrCorrectness is matched by every *CorrectnessError.
var ErrCorrectness = errors.New("harness: correctness verification failed")

// CorrectnessError reports an operation whose output differs from the
// expected element-wise result.
type CorrectnessError struct {
	Op     string
	Offset int
	Mismatch
}

func (e *CorrectnessError) Error() string {
	return fmt.Sprintf("Error in %s (offset %d): index %d: %v != %v",
		e.Op, e.Offset, e.Index, e.Got, e.Want)
}

// Unwrap lets errors.Is(err, ErrCorrectness) match.
func (e *CorrectnessError) Unwrap() error {
	return ErrCorrectness
}
