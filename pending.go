// SPDX-License-Identifier: Apache-2.0

package outcome

import (
	"sync"
)

// A Pending is a lazy handle around an unexecuted computation whose error
// channel is the declared type E.
//
// The handle is inert until the first forcing operation: anything that
// needs the outcome, such as [Pending.IfErr], [Pending.Unwrap], or
// [Pending.Result]. Forcing runs the computation exactly once, reconciles
// any failure against E, and caches the resolved [Result]; later forcing
// calls observe the same instance without re-running the computation, even
// under concurrent callers.
//
// Three misuses surface as panics at force time: a failure that cannot be
// treated as an E ([*WrongErrorTypeError]), a computation that produces
// neither a value nor an error when no default supplier was installed
// ([*NilValueError]), and a computation that panics outright (non-error
// panic values are wrapped in a [*RecoveredPanic]). Each signal is cached
// and re-raised on every later observation of the handle; a panic never
// leaves the handle looking empty.
type Pending[T any, E error] struct {
	once sync.Once

	// compute yields (value, present, failure). The present flag lets
	// handles derived from the nullable flavor report absence even when T
	// itself has no nil form.
	compute  func() (T, bool, error)
	fallback func() T

	result Result[T, E]
	misuse error
}

// Of wraps a computation for deferred execution.
//
// Nothing runs until the handle is forced; construct freely and decide
// later how to acknowledge the error channel:
//
//	n := outcome.Of[int, *strconv.NumError](func() (int, error) {
//	    return strconv.Atoi(input)
//	}).OrElse(0)
func Of[T any, E error](fn func() (T, error)) *Pending[T, E] {
	return &Pending[T, E]{compute: func() (T, bool, error) {
		value, err := fn()
		if err != nil {
			return value, false, err
		}
		return value, !isNil(value), nil
	}}
}

// OfVoid wraps a computation that yields no value, only a possible failure.
func OfVoid[E error](fn func() error) *Pending[Void, E] {
	return &Pending[Void, E]{compute: func() (Void, bool, error) {
		if err := fn(); err != nil {
			return Void{}, false, err
		}
		return Void{}, true, nil
	}}
}

// recoveredError converts a recovered panic value into a cachable signal.
// Error values, including this package's own signals rethrown by derived
// handles, pass through unchanged; anything else is tagged.
func recoveredError(v any) error {
	if err, ok := v.(error); ok {
		return err
	}
	return &RecoveredPanic{Value: v}
}

// force resolves the handle, running the computation on the first call.
// The critical section is the sync.Once; every observer sees the same
// resolved result or the same cached misuse signal.
func (p *Pending[T, E]) force() Result[T, E] {
	p.once.Do(p.run)
	if p.misuse != nil {
		panic(p.misuse)
	}
	return p.result
}

func (p *Pending[T, E]) run() {
	// A panic escaping run would still complete the sync.Once, leaving the
	// zero-value result to masquerade as empty. Cache it instead so every
	// observation re-raises it.
	defer func() {
		if r := recover(); r != nil {
			p.misuse = recoveredError(r)
		}
	}()
	value, present, err := p.compute()
	if err != nil {
		e, mismatch := reconcile[E](err)
		if mismatch != nil {
			p.misuse = mismatch
			return
		}
		p.result = errResult[T](e)
		return
	}
	if present {
		p.result = okResult[T, E](value)
		return
	}
	if p.fallback == nil {
		p.misuse = &NilValueError{Op: "Pending"}
		return
	}
	def := p.fallback()
	if isNil(def) {
		p.misuse = &NilValueError{Op: "DefaultIfEmpty"}
		return
	}
	p.result = okResult[T, E](def)
}

// Result forces the computation and returns the resolved outcome.
func (p *Pending[T, E]) Result() Result[T, E] {
	return p.force()
}

// IfErr forces the computation, runs f on the failure if one occurred, and
// returns the resolved outcome. This is the canonical way to consume a
// Pending: it acknowledges the error channel and yields a concrete [Result].
func (p *Pending[T, E]) IfErr(f func(E)) Result[T, E] {
	return p.force().IfErr(f)
}

// IsErr forces the computation and reports whether it failed.
func (p *Pending[T, E]) IsErr() bool {
	return p.force().IsErr()
}

// Get forces the computation and returns the value and whether one is
// present.
func (p *Pending[T, E]) Get() (T, bool) {
	return p.force().Get()
}

// Unwrap forces the computation and returns the value, panicking with an
// [*UnwrapError] if it failed.
func (p *Pending[T, E]) Unwrap() T {
	return p.force().Unwrap()
}

// Expect forces the computation and returns the value, panicking with an
// [*UnwrapError] carrying the given message if it failed.
func (p *Pending[T, E]) Expect(message string) T {
	return p.force().Expect(message)
}

// UnwrapErr forces the computation and returns the failure, panicking with
// an [*UnwrapError] if it succeeded.
func (p *Pending[T, E]) UnwrapErr() E {
	return p.force().UnwrapErr()
}

// ExpectErr forces the computation and returns the failure, panicking with
// an [*UnwrapError] carrying the given message if it succeeded.
func (p *Pending[T, E]) ExpectErr(message string) E {
	return p.force().ExpectErr(message)
}

// OrElse forces the computation and returns the value, or val on failure.
func (p *Pending[T, E]) OrElse(val T) T {
	return p.force().OrElse(val)
}

// OrElseGet forces the computation and returns the value, or the supplier's
// output on failure.
func (p *Pending[T, E]) OrElseGet(f func() T) T {
	return p.force().OrElseGet(f)
}

// OrElseHandle forces the computation and returns the value, or hands the
// failure to f and returns its substitute.
func (p *Pending[T, E]) OrElseHandle(f func(E) T) T {
	return p.force().OrElseHandle(f)
}

// Resolve forces the computation and collapses any failure into a value via
// f.
func (p *Pending[T, E]) Resolve(f func(E) T) Result[T, E] {
	return p.force().Resolve(f)
}

// OrElseTry chains a second attempt to run if this computation fails.
//
// Nothing is forced here: the returned handle wraps both attempts and stays
// lazy. When forced, it resolves this handle first (memoized as usual) and
// only invokes fn if a failure occurred.
func (p *Pending[T, E]) OrElseTry(fn func(E) (T, error)) *Pending[T, E] {
	return &Pending[T, E]{compute: func() (T, bool, error) {
		r := p.force()
		if r.state == stateErr {
			value, err := fn(r.err)
			if err != nil {
				return value, false, err
			}
			return value, !isNil(value), nil
		}
		return r.value, true, nil
	}}
}

// A PendingNullable is the nullable flavor of [Pending]: its computation may
// yield a value, a failure, or nothing at all.
//
// The three-way uncertainty is narrowed to two either by forcing (resolving
// to an empty [Result]) or, preserving laziness, by installing a fallback
// with [PendingNullable.DefaultIfEmpty].
type PendingNullable[T any, E error] struct {
	once    sync.Once
	compute func() (*T, error)
	result  Result[T, E]
	misuse  error
}

// OfNullable wraps a computation that may yield a value, a failure, or nil.
func OfNullable[T any, E error](fn func() (*T, error)) *PendingNullable[T, E] {
	return &PendingNullable[T, E]{compute: fn}
}

func (p *PendingNullable[T, E]) force() Result[T, E] {
	p.once.Do(p.run)
	if p.misuse != nil {
		panic(p.misuse)
	}
	return p.result
}

func (p *PendingNullable[T, E]) run() {
	defer func() {
		if r := recover(); r != nil {
			p.misuse = recoveredError(r)
		}
	}()
	value, err := p.compute()
	if err != nil {
		e, mismatch := reconcile[E](err)
		if mismatch != nil {
			p.misuse = mismatch
			return
		}
		p.result = errResult[T](e)
		return
	}
	if value == nil || isNil(*value) {
		p.result = Empty[T, E]()
		return
	}
	p.result = okResult[T, E](*value)
}

// DefaultIfEmpty returns a required-value handle that substitutes the
// supplier's output when the computation yields nothing.
//
// This does not force evaluation. The returned handle taps this handle's
// memoized resolution, so the underlying computation still runs at most
// once in total no matter which handles are forced, or how many times.
func (p *PendingNullable[T, E]) DefaultIfEmpty(supply func() T) *Pending[T, E] {
	return &Pending[T, E]{
		compute: func() (T, bool, error) {
			r := p.force()
			switch r.state {
			case stateOk:
				return r.value, true, nil
			case stateErr:
				var err error = r.err
				return r.value, false, err
			}
			var zero T
			return zero, false, nil
		},
		fallback: supply,
	}
}

// Result forces the computation and returns the resolved outcome, which may
// be empty.
func (p *PendingNullable[T, E]) Result() Result[T, E] {
	return p.force()
}

// IfErr forces the computation, runs f on the failure if one occurred, and
// returns the resolved outcome.
func (p *PendingNullable[T, E]) IfErr(f func(E)) Result[T, E] {
	return p.force().IfErr(f)
}

// IfEmpty forces the computation, runs f if it yielded nothing, and returns
// the resolved outcome.
func (p *PendingNullable[T, E]) IfEmpty(f func()) Result[T, E] {
	return p.force().IfEmpty(f)
}

// IsErr forces the computation and reports whether it failed.
func (p *PendingNullable[T, E]) IsErr() bool {
	return p.force().IsErr()
}

// IsEmpty forces the computation and reports whether it yielded nothing.
func (p *PendingNullable[T, E]) IsEmpty() bool {
	return p.force().IsEmpty()
}

// Get forces the computation and returns the value and whether one is
// present.
func (p *PendingNullable[T, E]) Get() (T, bool) {
	return p.force().Get()
}

// Expect forces the computation and returns the value, panicking with an
// [*UnwrapError] carrying the given message if it failed or yielded
// nothing.
func (p *PendingNullable[T, E]) Expect(message string) T {
	return p.force().Expect(message)
}
