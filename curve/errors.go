package curve

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidScalar indicates a scalar below 1 passed to ScalarMult
	ErrInvalidScalar = errors.New("curve: scalar must be positive")

	// ErrNoFiniteOrder indicates that repeated addition never reached the identity
	// within the Hasse bound, which only happens for points off the curve
	ErrNoFiniteOrder = errors.New("curve: no finite order within the Hasse bound")

	// ErrFieldTooLarge indicates a field too wide to enumerate its points
	ErrFieldTooLarge = errors.New("curve: field too large to enumerate")
)

// Error wraps an underlying error with the operation that failed
type Error struct {
	Op  string // Operation that failed
	Err error  // Underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("curve.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func wrap(op string, err error) error {
	return &Error{Op: op, Err: err}
}
