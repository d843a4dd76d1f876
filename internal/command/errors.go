// SPDX-License-Identifier: MIT

package command

import (
	"errors"
	"fmt"
)

var (
	// ErrWrongArgCount is returned when an operation gets the wrong number of
	// arguments, or when no operation is given at all.
	ErrWrongArgCount = errors.New("command: wrong number of arguments")

	// ErrUnknownOperation is returned for an operation name with no handler.
	ErrUnknownOperation = errors.New("command: unknown operation")

	// ErrInvalidExponent is returned when the power exponent is not a
	// non-negative integer.
	ErrInvalidExponent = errors.New("command: invalid exponent")

	// ErrNestedBatch is returned when a batch script line is itself a batch.
	ErrNestedBatch = errors.New("command: batch scripts cannot nest")
)

// ParseError carries the offending token next to one of the sentinels above.
type ParseError struct {
	Op  string // operation name as typed
	Arg string // offending argument, if any
	Err error
}

func (e *ParseError) Error() string {
	if e.Arg != "" {
		return fmt.Sprintf("%s %q: %v", e.Op, e.Arg, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
