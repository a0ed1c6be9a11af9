package graphio

import (
	"errors"
	"fmt"
)

// ErrBadValue is returned when a triple's value is outside {0, 1, 2}.
var ErrBadValue = errors.New("graphio: value outside {0, 1, 2}")

// ErrSelfLoop is returned when a triple names the diagonal (outer == inner).
var ErrSelfLoop = errors.New("graphio: self-loop entry")

// OutOfOrderError reports a monotonicity violation in a declared triple
// stream: Next must be strictly greater, lexicographically, than Prev.
type OutOfOrderError struct {
	Prev [2]int
	Next [2]int
}

func (e *OutOfOrderError) Error() string {
	return fmt.Sprintf("graphio: out of order: %v did not strictly follow %v", e.Next, e.Prev)
}

// BadValueError carries the offending cell for ErrBadValue.
type BadValueError struct {
	Row, Col int
	Value    int8
}

func (e *BadValueError) Error() string {
	return fmt.Sprintf("graphio: bad value %d at (%d, %d)", e.Value, e.Row, e.Col)
}

func (e *BadValueError) Unwrap() error { return ErrBadValue }

// SelfLoopError carries the offending diagonal cell for ErrSelfLoop.
type SelfLoopError struct {
	V     int
	Value int8
}

func (e *SelfLoopError) Error() string {
	return fmt.Sprintf("graphio: self-loop at %d with value %d", e.V, e.Value)
}

func (e *SelfLoopError) Unwrap() error { return ErrSelfLoop }
