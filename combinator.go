// SPDX-License-Identifier: Apache-2.0

package outcome

// Map transforms the value of a result, if one is present.
//
// The mapper runs only on the ok side; errors and empty results pass
// through with the failure (or absence) untouched. Because Go methods
// cannot introduce type parameters, type-changing combinators are free
// functions:
//
//	length := outcome.Map(readName(), func(s string) int { return len(s) })
func Map[T, M any, E error](r Result[T, E], f func(T) M) Result[M, E] {
	switch r.state {
	case stateOk:
		return Ok[M, E](f(r.value))
	case stateErr:
		return errResult[M](r.err)
	}
	return Empty[M, E]()
}

// MapErr transforms the error of a result, if one is present. Values and
// empty results pass through untouched.
func MapErr[T any, E, E2 error](r Result[T, E], f func(E) E2) Result[T, E2] {
	switch r.state {
	case stateOk:
		return okResult[T, E2](r.value)
	case stateErr:
		return Err[T](f(r.err))
	}
	return Empty[T, E2]()
}

// FlatMap replaces the entire result with the mapper's output, if a value
// is present. Errors and empty results pass through untouched.
func FlatMap[T, M any, E error](r Result[T, E], f func(T) Result[M, E]) Result[M, E] {
	switch r.state {
	case stateOk:
		return f(r.value)
	case stateErr:
		return errResult[M](r.err)
	}
	return Empty[M, E]()
}

// FlatMapErr replaces the entire result with the mapper's output, if an
// error is present. Values and empty results pass through untouched.
func FlatMapErr[T any, E, E2 error](r Result[T, E], f func(E) Result[T, E2]) Result[T, E2] {
	switch r.state {
	case stateOk:
		return okResult[T, E2](r.value)
	case stateErr:
		return f(r.err)
	}
	return Empty[T, E2]()
}

// Fold converts a result into a single value by applying exactly one of the
// two branches.
//
// Defined for two-sided results only: folding an empty result panics with
// an [*UnwrapError], since neither branch could honestly run.
func Fold[T any, E error, U any](r Result[T, E], ifOk func(T) U, ifErr func(E) U) U {
	switch r.state {
	case stateOk:
		return ifOk(r.value)
	case stateErr:
		return ifErr(r.err)
	}
	panic(&UnwrapError{Msg: "attempted to fold an empty result"})
}

// FoldPending forces a lazy handle and folds its outcome.
func FoldPending[T any, E error, U any](p *Pending[T, E], ifOk func(T) U, ifErr func(E) U) U {
	return Fold(p.force(), ifOk, ifErr)
}

// OrElseTry chains a second attempt onto an already-evaluated result.
//
// The returned handle is lazy: fn runs only when the handle is forced, and
// only if r holds an error. A value passes through without invoking fn.
// Empty results panic with an [*UnwrapError] at force time, since there is
// no failure to hand to the fallback.
func OrElseTry[T any, E error](r Result[T, E], fn func(E) (T, error)) *Pending[T, E] {
	return &Pending[T, E]{compute: func() (T, bool, error) {
		switch r.state {
		case stateOk:
			return r.value, true, nil
		case stateErr:
			value, err := fn(r.err)
			if err != nil {
				return value, false, err
			}
			return value, !isNil(value), nil
		}
		panic(&UnwrapError{Msg: "attempted to retry an empty result"})
	}}
}

// Join reduces a series of valueless results to the first failure among
// them, or a valueless success if none failed.
func Join[E error](results ...Result[Void, E]) Result[Void, E] {
	for _, r := range results {
		if r.state == stateErr {
			return r
		}
	}
	return OkVoid[E]()
}

// JoinPending combines lazy handles into one that forces each in order.
//
// The combined handle short-circuits: the first failure resolves the join,
// and the computations of any later handles are never invoked. Handles that
// were already resolved keep their memoized outcome.
func JoinPending[E error](pendings ...*Pending[Void, E]) *Pending[Void, E] {
	return &Pending[Void, E]{compute: func() (Void, bool, error) {
		for _, p := range pendings {
			if r := p.force(); r.state == stateErr {
				var err error = r.err
				return Void{}, false, err
			}
		}
		return Void{}, true, nil
	}}
}

// Collect gathers the values of a series of results into a slice, deferring
// the gather so the caller can acknowledge the error channel once.
//
// The first failure among the inputs resolves the handle to that failure.
// Collecting an empty result panics with an [*UnwrapError].
func Collect[T any, E error](results ...Result[T, E]) *Pending[[]T, E] {
	return &Pending[[]T, E]{compute: func() ([]T, bool, error) {
		out := make([]T, 0, len(results))
		for _, r := range results {
			if r.state == stateErr {
				var err error = r.err
				return nil, false, err
			}
			out = append(out, r.Unwrap())
		}
		return out, true, nil
	}}
}
