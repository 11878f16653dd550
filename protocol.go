// SPDX-License-Identifier: Apache-2.0

package outcome

import (
	"errors"
)

// A Procedure pairs an expected failure type with a side-effecting handler.
// Build one with [On] and register it in a [Protocol].
type Procedure struct {
	matches func(error) bool
	handle  func(error)
}

// On defines a procedure for handling a specific type of error.
//
// Matching walks the failure's wrap chain via errors.As, so a handler for
// *os.PathError also catches failures that wrap one.
func On[E error](f func(E)) Procedure {
	return Procedure{
		matches: func(err error) bool {
			var e E
			return errors.As(err, &e)
		},
		handle: func(err error) {
			var e E
			if errors.As(err, &e) {
				f(e)
			}
		},
	}
}

// A Protocol is a registry of side-effecting procedures for handling
// specific error types, consulted when a computation run through it fails.
//
// Dispatch is deterministic: procedures are consulted in registration
// order, and the first whose declared type matches the caught failure runs.
// Register a narrow type before a broad one if both could match.
//
// A Protocol is meant to be built once and then only read; concurrent
// dispatch is safe as long as no goroutine registers procedures while
// another is dispatching.
type Protocol struct {
	procedures []Procedure
}

// NewProtocol builds a registry from the given procedures.
//
//	p := outcome.NewProtocol(
//	    outcome.On(func(e *json.SyntaxError) { log.Println("bad input:", e) }),
//	    outcome.On(func(e *os.PathError) { log.Println("bad path:", e) }),
//	)
func NewProtocol(procedures ...Procedure) *Protocol {
	return &Protocol{procedures: procedures}
}

// Define creates a single-entry [Protocol]; chain more with [Protocol.And].
func Define[E error](f func(E)) *Protocol {
	return NewProtocol(On(f))
}

// And registers an additional procedure and returns the protocol for
// chaining. Call only while building, before any dispatch.
func (p *Protocol) And(proc Procedure) *Protocol {
	p.procedures = append(p.procedures, proc)
	return p
}

// Run invokes a valueless computation immediately, routing any failure to
// the first matching procedure.
//
// On success the result is a valueless ok. On a matched failure the
// procedure runs once and the failure is preserved on the error side, so
// callers can still inspect it. An unmatched failure is a wrapper-usage
// bug: Run panics with a [*MissingHandlerError] carrying it as cause.
func (p *Protocol) Run(fn func() error) Result[Void, error] {
	if err := fn(); err != nil {
		p.dispatch(err)
		return errResult[Void, error](err)
	}
	return OkVoid[error]()
}

// Guard invokes a computation immediately under a protocol, routing any
// failure to the first matching procedure.
//
// Unlike [Of], nothing is deferred: the error channel is already
// acknowledged by the registered procedures. A nil value from a successful
// computation panics with a [*NilValueError]; an unmatched failure panics
// with a [*MissingHandlerError].
func Guard[T any](p *Protocol, fn func() (T, error)) Result[T, error] {
	value, err := fn()
	if err != nil {
		p.dispatch(err)
		return errResult[T, error](err)
	}
	if isNil(value) {
		panic(&NilValueError{Op: "Guard"})
	}
	return okResult[T, error](value)
}

// GuardNullable is a variant of [Guard] for computations whose value may be
// absent: a nil value resolves to an empty result instead of panicking.
func GuardNullable[T any](p *Protocol, fn func() (*T, error)) Result[T, error] {
	value, err := fn()
	if err != nil {
		p.dispatch(err)
		return errResult[T, error](err)
	}
	return Nullable[T, error](value)
}

// dispatch routes a failure to the first matching procedure, panicking with
// a [*MissingHandlerError] if none is registered for it.
func (p *Protocol) dispatch(err error) {
	for _, proc := range p.procedures {
		if proc.matches(err) {
			proc.handle(err)
			return
		}
	}
	panic(&MissingHandlerError{Cause: err})
}
