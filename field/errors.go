package field

import (
	"errors"
	"fmt"
)

var (
	// ErrDivisionByZero indicates an inversion of, or division by, the zero element
	ErrDivisionByZero = errors.New("field: division by zero")

	// ErrInvalidField indicates unusable field parameters
	ErrInvalidField = errors.New("field: invalid field parameters")
)

// Error wraps an underlying error with the operation that failed
type Error struct {
	Op  string // Operation that failed
	Err error  // Underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("field.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func errorf(op string, err error, format string, args ...interface{}) error {
	return &Error{
		Op:  op,
		Err: fmt.Errorf("%w: %s", err, fmt.Sprintf(format, args...)),
	}
}
