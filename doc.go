// SPDX-License-Identifier: Apache-2.0

// Package outcome represents the result of a fallible, possibly-absent
// computation as an explicit value, with lazy evaluation, typed error
// channels, and registries that route failures to handlers by type.
//
// # The Problem
//
// Error-prone code in Go tends to interleave the interesting logic with
// `if err != nil` plumbing, and decisions about how to react to a failure
// get made wherever the error first appears, often before the caller has
// enough context to handle it well. Absence ("no value, no error") is
// usually smuggled through nil pointers with no help from the type system.
//
// Outcome addresses these problems by making the outcome itself a value:
// success, failure, or absence, with combinators to transform it, defaults
// to substitute into it, and the decision about error handling deferred
// until a caller commits to it.
//
// # Core Concepts
//
// [Result] is the fundamental building block: a tagged union holding
// exactly one of a value, an error of the declared type E, or nothing.
//
//	type Result[T any, E error] struct { ... }
//
// Construct one eagerly with [Ok], [Err], [Empty], [Nullable], or
// [Suppress], then chain behavior:
//
//	r := outcome.Suppress(func() ([]byte, error) {
//	    return os.ReadFile(path)
//	})
//	n := outcome.Map(r, func(b []byte) int { return len(b) }).OrElse(0)
//
// Type-changing combinators ([Map], [FlatMap], [Fold], ...) are free
// functions, since Go methods cannot introduce type parameters; operations
// that keep the same types ([Result.IfErr], [Result.Filter],
// [Result.Resolve], ...) are methods.
//
// # Lazy Evaluation
//
// [Of] defers a computation until something actually needs its outcome:
//
//	p := outcome.Of[int, *strconv.NumError](func() (int, error) {
//	    return strconv.Atoi(input)
//	})
//	// nothing has run yet
//	n := p.OrElse(0) // runs here, exactly once
//
// A [Pending] resolves at most once and memoizes: concurrent observers see
// the same resolved result, and the computation is never re-invoked. The
// nullable flavor, [OfNullable], adds a third possible outcome, absence, and
// [PendingNullable.DefaultIfEmpty] narrows it back to two without forcing
// early execution.
//
// # Typed Error Channels
//
// The declared error type E is honored at runtime: when a lazy handle
// resolves, the caught failure is reconciled against E with [errors.As],
// walking wrap chains. A failure that cannot be treated as an E is a bug in
// the wrapping code, not a domain failure, and surfaces as a panic carrying
// [*WrongErrorTypeError] with the original failure as cause.
//
// # Handler Registries
//
// For eager execution with type-routed handling, build a registry once and
// run computations through it. A [Protocol] runs side-effecting handlers
// and preserves the failure; a [Resolver] substitutes a replacement value:
//
//	r := outcome.NewResolver(
//	    outcome.Resolve(func(e *fs.PathError) string { return "" }),
//	)
//	text := r.Expose(func() (string, error) { return readConfig() })
//
// Dispatch is first-registered-match-wins; a failure no entry matches
// panics with [*MissingHandlerError].
//
// # Error Handling Signals
//
// Domain failures always travel as values. Contract violations (unwrapping
// the wrong side, a mismatched error channel, a missing handler, a nil
// payload where one is required) panic with typed errors ([*UnwrapError],
// [*WrongErrorTypeError], [*MissingHandlerError], [*NilValueError]), each
// chaining its cause where one exists. [Catching] converts panics from
// wrapped computations into [*RecoveredPanic] errors.
//
// Nothing here retries automatically and nothing logs unless asked: the
// [Warn] handler family is opt-in.
//
// # Parallelism and Resources
//
// [JoinParallel] and [CollectParallel] force a set of handles concurrently.
// [Using] and [Using2] scope closable resources to a computation with
// release guaranteed on every exit path, then hand the rest to [Of].
package outcome
