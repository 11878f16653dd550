// SPDX-License-Identifier: Apache-2.0

package outcome

import (
	"fmt"
	"reflect"
)

// An UnwrapError signals that a terminal extraction was attempted on a
// result that does not hold the requested side.
//
// It is raised as a panic by [Result.Unwrap], [Result.Expect], and friends.
// When the wrapper held an error, that failure is chained as the cause.
type UnwrapError struct {
	Msg   string
	Cause error
}

func (e *UnwrapError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Cause)
	}
	return e.Msg
}

// Unwrap returns the underlying failure for inspection via errors.Is and
// errors.As.
func (e *UnwrapError) Unwrap() error {
	return e.Cause
}

// A WrongErrorTypeError signals that a caught failure does not match the
// wrapper's declared error channel.
//
// This indicates a wrapper-usage bug at the construction site, never a
// domain failure: the computation handed to [Of] returned an error that
// cannot be treated as its declared type E. The original failure is chained
// as the cause. It is raised as a panic the first time the lazy handle is
// forced, and again on every later observation of the same handle.
type WrongErrorTypeError struct {
	Expected reflect.Type
	Cause    error
}

func (e *WrongErrorTypeError) Error() string {
	return fmt.Sprintf("wrong type of error caught by wrapper: got %T, expected %s", e.Cause, e.Expected)
}

// Unwrap returns the mismatched failure.
func (e *WrongErrorTypeError) Unwrap() error {
	return e.Cause
}

// A MissingHandlerError signals that a dispatch registry caught a failure
// for which no handler was registered.
//
// The unmatched failure is chained as the cause.
type MissingHandlerError struct {
	Cause error
}

func (e *MissingHandlerError) Error() string {
	return fmt.Sprintf("no handler registered for error of type %T: %v", e.Cause, e.Cause)
}

// Unwrap returns the unmatched failure.
func (e *MissingHandlerError) Unwrap() error {
	return e.Cause
}

// A NilValueError signals that an absent payload reached a position that
// requires a definite value: a nil argument to [Ok] or [Err], a computation
// handed to [Of] that produced neither a value nor an error, or a default
// supplier that itself returned nothing.
type NilValueError struct {
	Op string
}

func (e *NilValueError) Error() string {
	return fmt.Sprintf("%s: value may not be nil", e.Op)
}

// RecoveredPanic is an error type that wraps a panic value.
type RecoveredPanic struct {
	Value any
}

func (p *RecoveredPanic) Error() string {
	return fmt.Sprintf("panic recovered: %v", p.Value)
}

// Catching wraps a computation to recover from panics and convert them to
// errors.
//
// If the computation panics, the panic value is wrapped in a
// [*RecoveredPanic] error and surfaced on the error channel. This is useful
// for defensive construction when wrapping code that may panic:
//
//	outcome.Suppress(outcome.Catching(func() (int, error) {
//	    return riskyParse(input)
//	}))
func Catching[T any](fn func() (T, error)) func() (T, error) {
	return func() (value T, err error) {
		defer func() {
			if r := recover(); r != nil {
				var zero T
				value = zero
				err = &RecoveredPanic{Value: r}
			}
		}()
		return fn()
	}
}
