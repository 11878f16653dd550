// SPDX-License-Identifier: Apache-2.0

package outcome

import (
	"golang.org/x/sync/errgroup"
)

// JoinParallel combines lazy handles into one that forces them all
// concurrently.
//
// Unlike [JoinPending], every handle's computation is attempted: there is
// no short-circuit, so side effects of later computations still happen when
// an earlier one fails. The combined handle resolves to the first failure
// observed by the group, or a valueless success if none failed.
//
// Ensure the underlying computations are safe to run concurrently.
func JoinParallel[E error](pendings ...*Pending[Void, E]) *Pending[Void, E] {
	return &Pending[Void, E]{compute: func() (Void, bool, error) {
		var g errgroup.Group
		for _, p := range pendings {
			g.Go(func() error {
				if e, failed := p.force().GetErr(); failed {
					var err error = e
					return err
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return Void{}, false, err
		}
		return Void{}, true, nil
	}}
}

// CollectParallel gathers the values of lazy handles into a slice, forcing
// them all concurrently.
//
// Values keep the order of their handles regardless of completion order.
// Every computation is attempted; the combined handle resolves to the first
// failure observed by the group, or to the full slice of values.
//
// Ensure the underlying computations are safe to run concurrently.
func CollectParallel[T any, E error](pendings ...*Pending[T, E]) *Pending[[]T, E] {
	return &Pending[[]T, E]{compute: func() ([]T, bool, error) {
		out := make([]T, len(pendings))
		var g errgroup.Group
		for i, p := range pendings {
			g.Go(func() error {
				r := p.force()
				if e, failed := r.GetErr(); failed {
					var err error = e
					return err
				}
				out[i] = r.Unwrap()
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, false, err
		}
		return out, true, nil
	}}
}
