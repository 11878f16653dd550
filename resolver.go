// SPDX-License-Identifier: Apache-2.0

package outcome

import (
	"errors"
)

// A Resolution pairs an expected failure type with a handler that produces
// a replacement value. Build one with [Resolve] and register it in a
// [Resolver].
type Resolution[T any] struct {
	matches func(error) bool
	handle  func(error) T
}

// Resolve defines a resolution for a specific type of error. Matching walks
// the failure's wrap chain via errors.As, like [On].
func Resolve[T any, E error](f func(E) T) Resolution[T] {
	return Resolution[T]{
		matches: func(err error) bool {
			var e E
			return errors.As(err, &e)
		},
		handle: func(err error) T {
			var e E
			errors.As(err, &e)
			return f(e)
		},
	}
}

// A Resolver is a registry of value-producing handlers for specific error
// types. Where a [Protocol] preserves a matched failure on the error side,
// a Resolver substitutes a value for it, so its output is always ok.
//
// Dispatch order and concurrency rules match [Protocol]: first registered
// match wins, and the registry must not be mutated during dispatch.
type Resolver[T any] struct {
	resolutions []Resolution[T]
}

// NewResolver builds a registry from the given resolutions.
//
//	r := outcome.NewResolver(
//	    outcome.Resolve(func(e *os.PathError) string { return "" }),
//	)
//	text := r.Expose(func() (string, error) { return readConfig(path) })
func NewResolver[T any](resolutions ...Resolution[T]) *Resolver[T] {
	return &Resolver[T]{resolutions: resolutions}
}

// And registers an additional resolution and returns the resolver for
// chaining. Call only while building, before any dispatch.
func (r *Resolver[T]) And(res Resolution[T]) *Resolver[T] {
	r.resolutions = append(r.resolutions, res)
	return r
}

// Suppress invokes a computation immediately, substituting the first
// matching resolution's value for any failure.
//
// The output is always ok: a match always supplies a value. A nil value,
// whether from the computation or from a handler, panics with a
// [*NilValueError]; an unmatched failure panics with a
// [*MissingHandlerError] carrying it as cause.
func (r *Resolver[T]) Suppress(fn func() (T, error)) Result[T, error] {
	value, err := fn()
	if err != nil {
		value = r.dispatch(err)
	}
	if isNil(value) {
		panic(&NilValueError{Op: "Resolver.Suppress"})
	}
	return okResult[T, error](value)
}

// Nullable is a variant of [Resolver.Suppress] for computations whose value
// may be absent: a nil value, from the computation or a handler, resolves
// to an empty result instead of panicking.
func (r *Resolver[T]) Nullable(fn func() (*T, error)) Result[T, error] {
	value, err := fn()
	if err != nil {
		substitute := r.dispatch(err)
		if isNil(substitute) {
			return Empty[T, error]()
		}
		return okResult[T, error](substitute)
	}
	return Nullable[T, error](value)
}

// Get runs the computation under this resolver and returns the value and
// whether one is present.
func (r *Resolver[T]) Get(fn func() (*T, error)) (T, bool) {
	return r.Nullable(fn).Get()
}

// Expose runs the computation under this resolver and returns the value
// directly, with no wrapper.
func (r *Resolver[T]) Expose(fn func() (T, error)) T {
	return r.Suppress(fn).Unwrap()
}

func (r *Resolver[T]) dispatch(err error) T {
	for _, res := range r.resolutions {
		if res.matches(err) {
			return res.handle(err)
		}
	}
	panic(&MissingHandlerError{Cause: err})
}
