// SPDX-License-Identifier: Apache-2.0

package outcome

import (
	"reflect"
)

// state identifies which side of the union a [Result] occupies.
type state uint8

const (
	stateEmpty state = iota
	stateOk
	stateErr
)

// A Result is the outcome of a fallible, possibly-absent computation.
//
// It holds exactly one of: a value, an error of the declared type E, or
// nothing at all. The empty state is only reachable through the nullable
// constructors ([Nullable], [OfNullable], [SuppressNullable]); results built
// with [Ok] and [Err] are always two-sided.
//
// The zero value of Result is empty. Results are immutable: every combinator
// returns a new instance.
type Result[T any, E error] struct {
	state state
	value T
	err   E
}

// Void is the payload type for computations that succeed without producing
// a value.
type Void struct{}

// Ok wraps a definite value.
//
// The payload may not be absent: passing a nil pointer, map, slice, channel,
// function, or interface panics with a [*NilValueError]. Use [Nullable] for
// values that may legitimately be missing.
func Ok[T any, E error](value T) Result[T, E] {
	if isNil(value) {
		panic(&NilValueError{Op: "Ok"})
	}
	return okResult[T, E](value)
}

// OkVoid reports a valueless success.
func OkVoid[E error]() Result[Void, E] {
	return okResult[Void, E](Void{})
}

// Err wraps a definite failure.
//
// Panics with a [*NilValueError] if the error is nil; an absent failure is a
// programming error, not an outcome.
func Err[T any, E error](err E) Result[T, E] {
	if isNil(err) {
		panic(&NilValueError{Op: "Err"})
	}
	return errResult[T](err)
}

// Empty returns a result holding neither a value nor an error.
//
// Empty results are stateless and freely shareable.
func Empty[T any, E error]() Result[T, E] {
	return Result[T, E]{}
}

// Nullable wraps a value that may be absent: a nil pointer produces an empty
// result, anything else produces Ok.
func Nullable[T any, E error](value *T) Result[T, E] {
	if value == nil || isNil(*value) {
		return Empty[T, E]()
	}
	return okResult[T, E](*value)
}

// Suppress eagerly runs a computation that may fail with any error.
//
// Unlike [Of], no reconciliation is needed: the declared channel is the
// error interface itself, so every failure is representable.
func Suppress[T any](fn func() (T, error)) Result[T, error] {
	value, err := fn()
	if err != nil {
		return errResult[T](err)
	}
	return Ok[T, error](value)
}

// SuppressNullable is a variant of [Suppress] for computations whose value
// may be absent.
func SuppressNullable[T any](fn func() (*T, error)) Result[T, error] {
	value, err := fn()
	if err != nil {
		return errResult[T, error](err)
	}
	return Nullable[T, error](value)
}

// IsOk reports whether a value is present.
func (r Result[T, E]) IsOk() bool {
	return r.state == stateOk
}

// IsErr reports whether an error is present.
func (r Result[T, E]) IsErr() bool {
	return r.state == stateErr
}

// IsEmpty reports whether the result holds neither a value nor an error.
func (r Result[T, E]) IsEmpty() bool {
	return r.state == stateEmpty
}

// IfOk runs f on the value, if one is present, and returns the result
// unchanged.
func (r Result[T, E]) IfOk(f func(T)) Result[T, E] {
	if r.state == stateOk {
		f(r.value)
	}
	return r
}

// IfErr runs f on the error, if one is present, and returns the result
// unchanged.
//
// This is the conventional way to acknowledge the error channel when both
// outcomes must be handled functionally. The convenience handlers [Ignore],
// [Warn], and [Throw] slot in here.
func (r Result[T, E]) IfErr(f func(E)) Result[T, E] {
	if r.state == stateErr {
		f(r.err)
	}
	return r
}

// IfEmpty runs f if the result is empty and returns the result unchanged.
func (r Result[T, E]) IfEmpty(f func()) Result[T, E] {
	if r.state == stateEmpty {
		f()
	}
	return r
}

// Get returns the value and whether one is present.
func (r Result[T, E]) Get() (T, bool) {
	return r.value, r.state == stateOk
}

// GetErr returns the error and whether one is present.
func (r Result[T, E]) GetErr() (E, bool) {
	return r.err, r.state == stateErr
}

// OrElse returns the value, or val if none is present.
func (r Result[T, E]) OrElse(val T) T {
	if r.state == stateOk {
		return r.value
	}
	return val
}

// OrElseGet returns the value, or the supplier's output if none is present.
func (r Result[T, E]) OrElseGet(f func() T) T {
	if r.state == stateOk {
		return r.value
	}
	return f()
}

// OrElseHandle returns the value, or hands the error to f and returns its
// substitute.
//
// Defined for two-sided results only: an empty result has no error to hand
// over, so this panics with an [*UnwrapError]. Narrow empty results first
// with [PendingNullable.DefaultIfEmpty] or [Result.IfEmpty].
func (r Result[T, E]) OrElseHandle(f func(E) T) T {
	switch r.state {
	case stateOk:
		return r.value
	case stateErr:
		return f(r.err)
	}
	panic(&UnwrapError{Msg: "attempted to handle the error of an empty result"})
}

// Resolve collapses an error into a value by invoking f on the failure and
// wrapping its output. Values and empty results pass through unchanged.
func (r Result[T, E]) Resolve(f func(E) T) Result[T, E] {
	if r.state == stateErr {
		return Ok[T, E](f(r.err))
	}
	return r
}

// Filter drops the value when the predicate rejects it, producing an empty
// result. Errors and empty results pass through unchanged.
func (r Result[T, E]) Filter(f Predicate[T]) Result[T, E] {
	if r.state == stateOk && !f(r.value) {
		return Empty[T, E]()
	}
	return r
}

// FilterErr drops the error when the predicate rejects it, producing an
// empty result. Values and empty results pass through unchanged.
func (r Result[T, E]) FilterErr(f Predicate[E]) Result[T, E] {
	if r.state == stateErr && !f(r.err) {
		return Empty[T, E]()
	}
	return r
}

// Unwrap returns the value, panicking with an [*UnwrapError] if none is
// present.
func (r Result[T, E]) Unwrap() T {
	return r.Expect("attempted to unwrap a result with no value")
}

// Expect returns the value, panicking with an [*UnwrapError] carrying the
// given message if none is present. When the result holds an error, the
// failure is chained as the signal's cause.
func (r Result[T, E]) Expect(message string) T {
	switch r.state {
	case stateOk:
		return r.value
	case stateErr:
		panic(&UnwrapError{Msg: message, Cause: r.err})
	}
	panic(&UnwrapError{Msg: message})
}

// UnwrapErr returns the error, panicking with an [*UnwrapError] if none is
// present.
func (r Result[T, E]) UnwrapErr() E {
	return r.ExpectErr("attempted to unwrap a result with no error")
}

// ExpectErr returns the error, panicking with an [*UnwrapError] carrying
// the given message if none is present.
func (r Result[T, E]) ExpectErr(message string) E {
	if r.state == stateErr {
		return r.err
	}
	panic(&UnwrapError{Msg: message})
}

// ExpectEmpty panics with an [*UnwrapError] carrying the given message
// unless the result is empty. When the result holds an error, the failure
// is chained as the signal's cause.
func (r Result[T, E]) ExpectEmpty(message string) {
	switch r.state {
	case stateOk:
		panic(&UnwrapError{Msg: message})
	case stateErr:
		panic(&UnwrapError{Msg: message, Cause: r.err})
	}
}

// okResult skips the nil check for payloads already known to be present.
func okResult[T any, E error](value T) Result[T, E] {
	return Result[T, E]{state: stateOk, value: value}
}

// errResult skips the nil check for failures already known to be present.
func errResult[T any, E error](err E) Result[T, E] {
	return Result[T, E]{state: stateErr, err: err}
}

// isNil reports whether v is the "no value" marker for its kind. Non-nilable
// kinds are never absent.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface,
		reflect.Map, reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
