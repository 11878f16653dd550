// SPDX-License-Identifier: Apache-2.0

package outcome

import (
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
)

// ==== Test Helpers: Error Variables ====

var error1 = errors.New("error 1")
var error2 = errors.New("error 2")

// ==== Test Helpers: Typed Error Channels ====

// codeError is a typed failure for exercising declared error channels.
type codeError struct {
	code int
}

func (e *codeError) Error() string {
	return fmt.Sprintf("code %d", e.code)
}

// ioError is a second failure type, for dispatch and mismatch tests.
type ioError struct {
	msg string
}

func (e *ioError) Error() string {
	return e.msg
}

// ==== Test Helpers: Counting Computations ====

// counted returns a computation yielding value and a counter tracking how
// many times it ran.
func counted[T any](value T) (*atomic.Int64, func() (T, error)) {
	var calls atomic.Int64
	return &calls, func() (T, error) {
		calls.Add(1)
		return value, nil
	}
}

// countedErr returns a computation failing with err and a counter tracking
// how many times it ran.
func countedErr[T any](err error) (*atomic.Int64, func() (T, error)) {
	var calls atomic.Int64
	return &calls, func() (T, error) {
		calls.Add(1)
		var zero T
		return zero, err
	}
}

// ==== Test Helpers: Validators ====

// noError validates that a test error is nil.
func noError(err error) error {
	if err != nil {
		return fmt.Errorf("got error %v, want nil", err)
	}
	return nil
}

// matches returns a validator that checks an error against a target with
// errors.Is.
func matches(target error) func(error) error {
	return func(err error) error {
		if !errors.Is(err, target) {
			return fmt.Errorf("got error %v, want %v", err, target)
		}
		return nil
	}
}

// capturePanic runs f, failing the test unless it panics, and returns the
// recovered value.
func capturePanic(t *testing.T, f func()) any {
	t.Helper()
	var got any
	func() {
		defer func() { got = recover() }()
		f()
	}()
	if got == nil {
		t.Fatal("expected a panic, got none")
	}
	return got
}
