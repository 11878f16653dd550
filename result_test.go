// SPDX-License-Identifier: Apache-2.0

package outcome

import (
	"errors"
	"testing"
)

func TestOk(t *testing.T) {
	t.Parallel()
	r := Ok[string, error]("hello")
	if !r.IsOk() {
		t.Error("IsOk() = false, want true")
	}
	if r.IsErr() {
		t.Error("IsErr() = true, want false")
	}
	if r.IsEmpty() {
		t.Error("IsEmpty() = true, want false")
	}
	if got := r.Unwrap(); got != "hello" {
		t.Errorf("Unwrap() = %q, want %q", got, "hello")
	}
}

func TestOkNilPayloadPanics(t *testing.T) {
	t.Parallel()
	got := capturePanic(t, func() {
		Ok[*int, error](nil)
	})
	var nve *NilValueError
	if err, ok := got.(error); !ok || !errors.As(err, &nve) {
		t.Errorf("recovered %v, want *NilValueError", got)
	}
}

func TestErr(t *testing.T) {
	t.Parallel()
	failure := &codeError{code: 7}
	r := Err[string](failure)
	if !r.IsErr() {
		t.Error("IsErr() = false, want true")
	}
	if r.IsOk() {
		t.Error("IsOk() = true, want false")
	}
	if got := r.UnwrapErr(); got != failure {
		t.Errorf("UnwrapErr() = %v, want the original failure", got)
	}
}

func TestErrNilFailurePanics(t *testing.T) {
	t.Parallel()
	got := capturePanic(t, func() {
		Err[string, *codeError](nil)
	})
	var nve *NilValueError
	if err, ok := got.(error); !ok || !errors.As(err, &nve) {
		t.Errorf("recovered %v, want *NilValueError", got)
	}
}

func TestNullable(t *testing.T) {
	t.Parallel()
	if r := Nullable[int, error](nil); !r.IsEmpty() {
		t.Error("Nullable(nil).IsEmpty() = false, want true")
	}
	v := 42
	r := Nullable[int, error](&v)
	if !r.IsOk() {
		t.Error("Nullable(&v).IsOk() = false, want true")
	}
	if got := r.Unwrap(); got != 42 {
		t.Errorf("Unwrap() = %d, want 42", got)
	}
}

func TestConditionals(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name      string
		result    Result[int, *codeError]
		wantOk    int
		wantErr   int
		wantEmpty int
	}{
		{
			name:   "Ok",
			result: Ok[int, *codeError](1),
			wantOk: 1,
		},
		{
			name:    "Err",
			result:  Err[int](&codeError{code: 1}),
			wantErr: 1,
		},
		{
			name:      "Empty",
			result:    Empty[int, *codeError](),
			wantEmpty: 1,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var okRuns, errRuns, emptyRuns int
			tc.result.
				IfOk(func(int) { okRuns++ }).
				IfErr(func(*codeError) { errRuns++ }).
				IfEmpty(func() { emptyRuns++ })
			if okRuns != tc.wantOk {
				t.Errorf("IfOk ran %d times, want %d", okRuns, tc.wantOk)
			}
			if errRuns != tc.wantErr {
				t.Errorf("IfErr ran %d times, want %d", errRuns, tc.wantErr)
			}
			if emptyRuns != tc.wantEmpty {
				t.Errorf("IfEmpty ran %d times, want %d", emptyRuns, tc.wantEmpty)
			}
		})
	}
}

func TestOrElse(t *testing.T) {
	t.Parallel()
	if got := Ok[int, error](3).OrElse(9); got != 3 {
		t.Errorf("Ok.OrElse() = %d, want 3", got)
	}
	if got := Err[int](error1).OrElse(9); got != 9 {
		t.Errorf("Err.OrElse() = %d, want 9", got)
	}
	if got := Empty[int, error]().OrElseGet(func() int { return 7 }); got != 7 {
		t.Errorf("Empty.OrElseGet() = %d, want 7", got)
	}
}

func TestOrElseHandle(t *testing.T) {
	t.Parallel()
	r := Err[int](&codeError{code: 5})
	got := r.OrElseHandle(func(e *codeError) int { return e.code })
	if got != 5 {
		t.Errorf("OrElseHandle() = %d, want 5", got)
	}

	recovered := capturePanic(t, func() {
		Empty[int, *codeError]().OrElseHandle(func(*codeError) int { return 0 })
	})
	var ue *UnwrapError
	if err, ok := recovered.(error); !ok || !errors.As(err, &ue) {
		t.Errorf("recovered %v, want *UnwrapError", recovered)
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()
	r := Err[string](&codeError{code: 2}).
		Resolve(func(e *codeError) string { return "substitute" })
	if !r.IsOk() {
		t.Fatal("Resolve() did not produce an ok result")
	}
	if got := r.Unwrap(); got != "substitute" {
		t.Errorf("Unwrap() = %q, want %q", got, "substitute")
	}

	// Values pass through without invoking the handler.
	invoked := false
	v := Ok[string, *codeError]("original").
		Resolve(func(*codeError) string { invoked = true; return "substitute" })
	if invoked {
		t.Error("Resolve handler ran on an ok result")
	}
	if got := v.Unwrap(); got != "original" {
		t.Errorf("Unwrap() = %q, want %q", got, "original")
	}
}

func TestFilter(t *testing.T) {
	t.Parallel()
	positive := func(n int) bool { return n > 0 }
	if r := Ok[int, error](1).Filter(positive); !r.IsOk() {
		t.Error("Filter kept predicate=true value out of the wrapper")
	}
	if r := Ok[int, error](-1).Filter(positive); !r.IsEmpty() {
		t.Error("Filter(-1).IsEmpty() = false, want true")
	}
	if r := Err[int](error1).Filter(positive); !r.IsErr() {
		t.Error("Filter changed an err result")
	}

	keep := func(error) bool { return false }
	if r := Err[int](error1).FilterErr(keep); !r.IsEmpty() {
		t.Error("FilterErr(false).IsEmpty() = false, want true")
	}
}

func TestUnwrapPanics(t *testing.T) {
	t.Parallel()
	recovered := capturePanic(t, func() {
		Err[int](error1).Unwrap()
	})
	var ue *UnwrapError
	err, ok := recovered.(error)
	if !ok || !errors.As(err, &ue) {
		t.Fatalf("recovered %v, want *UnwrapError", recovered)
	}
	if !errors.Is(ue, error1) {
		t.Error("unwrap signal does not chain the underlying failure")
	}
}

func TestExpectChainsCause(t *testing.T) {
	t.Parallel()
	recovered := capturePanic(t, func() {
		Err[int](&codeError{code: 3}).Expect("wanted a value")
	})
	ue, ok := recovered.(*UnwrapError)
	if !ok {
		t.Fatalf("recovered %T, want *UnwrapError", recovered)
	}
	if ue.Msg != "wanted a value" {
		t.Errorf("Msg = %q, want %q", ue.Msg, "wanted a value")
	}
	var ce *codeError
	if !errors.As(ue, &ce) || ce.code != 3 {
		t.Error("expect signal does not chain the underlying failure")
	}
}

func TestExpectErrPanicsOnOk(t *testing.T) {
	t.Parallel()
	recovered := capturePanic(t, func() {
		Ok[int, error](1).ExpectErr("wanted a failure")
	})
	if _, ok := recovered.(*UnwrapError); !ok {
		t.Errorf("recovered %T, want *UnwrapError", recovered)
	}
}

func TestExpectEmpty(t *testing.T) {
	t.Parallel()
	Empty[int, error]().ExpectEmpty("should be empty") // must not panic

	recovered := capturePanic(t, func() {
		Ok[int, error](1).ExpectEmpty("should be empty")
	})
	if _, ok := recovered.(*UnwrapError); !ok {
		t.Errorf("recovered %T, want *UnwrapError", recovered)
	}
}

func TestSuppress(t *testing.T) {
	t.Parallel()
	r := Suppress(func() (int, error) { return 5, nil })
	if got := r.Unwrap(); got != 5 {
		t.Errorf("Unwrap() = %d, want 5", got)
	}
	e := Suppress(func() (int, error) { return 0, error2 })
	if err := matches(error2)(e.UnwrapErr()); err != nil {
		t.Error(err)
	}
}

func TestSuppressNullable(t *testing.T) {
	t.Parallel()
	if r := SuppressNullable(func() (*int, error) { return nil, nil }); !r.IsEmpty() {
		t.Error("SuppressNullable(nil, nil).IsEmpty() = false, want true")
	}
	if r := SuppressNullable(func() (*int, error) { return nil, error1 }); !r.IsErr() {
		t.Error("SuppressNullable(nil, err).IsErr() = false, want true")
	}
}

func TestZeroValueIsEmpty(t *testing.T) {
	t.Parallel()
	var r Result[int, error]
	if !r.IsEmpty() {
		t.Error("zero-value Result is not empty")
	}
}
