// SPDX-License-Identifier: Apache-2.0

package outcome

import (
	"log/slog"
)

// Ignore accepts an error and does nothing with it, while still forcing the
// error channel to be acknowledged at its declared type.
//
//	outcome.Of[int, *parseError](parse).IfErr(outcome.Ignore)
func Ignore[E error](_ E) {}

// Warn accepts an error and logs it as a warning through [slog.Default].
// Opt-in only: nothing in this package logs unless a caller installs this
// handler.
//
//	outcome.Of[int, *parseError](parse).IfErr(outcome.Warn)
func Warn[E error](err E) {
	slog.Default().Warn("error in wrapper", "error", err)
}

// Throw accepts an error and panics with it.
//
//	outcome.Of[int, *parseError](parse).IfErr(outcome.Throw)
func Throw[E error](err E) {
	panic(err)
}

// WarnNull logs a warning through [slog.Default] for use with
// [PendingNullable.IfEmpty] and [Result.IfEmpty].
func WarnNull() {
	slog.Default().Warn("nil value in wrapper")
}
