// SPDX-License-Identifier: Apache-2.0

package outcome

// A Predicate is a boolean condition over a wrapped value or error, used by
// [Result.Filter] and [Result.FilterErr].
type Predicate[T any] = func(T) bool

// Not inverts a predicate.
func Not[T any](p Predicate[T]) Predicate[T] {
	return func(t T) bool {
		return !p(t)
	}
}

// And combines predicates so that all must hold.
func And[T any](ps ...Predicate[T]) Predicate[T] {
	return func(t T) bool {
		for _, p := range ps {
			if !p(t) {
				return false
			}
		}
		return true
	}
}

// Or combines predicates so that at least one must hold.
func Or[T any](ps ...Predicate[T]) Predicate[T] {
	return func(t T) bool {
		for _, p := range ps {
			if p(t) {
				return true
			}
		}
		return false
	}
}
