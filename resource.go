// SPDX-License-Identifier: Apache-2.0

package outcome

import (
	"io"
)

// Using scopes a closable resource to a computation and wraps the whole
// thing for deferred execution.
//
// When the returned handle is forced, the resource is acquired, handed to
// use, and closed on every exit path. A failure from the body takes
// precedence over a failure from Close; a Close failure after a successful
// body surfaces on the error channel. This is the functional equivalent of
// acquire/defer-close:
//
//	text := outcome.Using[*os.File, string, error](
//	    func() (*os.File, error) { return os.Open(path) },
//	    func(f *os.File) (string, error) {
//	        b, err := io.ReadAll(f)
//	        return string(b), err
//	    },
//	).OrElse("")
func Using[R io.Closer, T any, E error](
	acquire func() (R, error),
	use func(R) (T, error),
) *Pending[T, E] {
	return Of[T, E](func() (T, error) {
		var zero T
		res, err := acquire()
		if err != nil {
			return zero, err
		}
		value, err := use(res)
		cerr := res.Close()
		if err != nil {
			return zero, err
		}
		if cerr != nil {
			return zero, cerr
		}
		return value, nil
	})
}

// Using2 scopes two closable resources to a computation, the second
// acquired from the first.
//
// Resources are released in reverse order of acquisition on every exit
// path: if acquiring the second fails, the first is still closed, and the
// acquire failure is the one reported even when that close also fails.
// Otherwise failure precedence follows [Using]: body first, then inner
// close, then outer close.
func Using2[R1, R2 io.Closer, T any, E error](
	acquire1 func() (R1, error),
	acquire2 func(R1) (R2, error),
	use func(R1, R2) (T, error),
) *Pending[T, E] {
	return Of[T, E](func() (T, error) {
		var zero T
		outer, err := acquire1()
		if err != nil {
			return zero, err
		}
		inner, err := acquire2(outer)
		if err != nil {
			_ = outer.Close()
			return zero, err
		}
		value, err := use(outer, inner)
		ierr := inner.Close()
		oerr := outer.Close()
		if err != nil {
			return zero, err
		}
		if ierr != nil {
			return zero, ierr
		}
		if oerr != nil {
			return zero, oerr
		}
		return value, nil
	})
}
