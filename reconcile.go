// SPDX-License-Identifier: Apache-2.0

package outcome

import (
	"errors"
	"reflect"
)

// reconcile coerces a caught failure to the declared channel type E.
//
// The check walks the failure's wrap chain via errors.As, so a computation
// may decorate its error with fmt.Errorf("...: %w", err) without breaking
// the channel. A failure that cannot be treated as an E is a wrapper-usage
// bug; the returned signal is a [*WrongErrorTypeError] carrying the original
// failure as cause, and the caller is expected to panic with it.
func reconcile[E error](err error) (E, error) {
	var target E
	if errors.As(err, &target) {
		return target, nil
	}
	return target, &WrongErrorTypeError{
		Expected: reflect.TypeFor[E](),
		Cause:    err,
	}
}
