// Package driver implements the five concrete ways to run a stencil
// computation over a grid.Grid: three iterative double-buffer loops
// differing only in how they parallelize one time step (spec.md §4.6), and
// two drivers built on the zoid/plan recursive decomposition, sequential
// and parallel (spec.md §4.5).
package driver

import (
	"fmt"

	"github.com/go-stencil/stencil/coord"
	"github.com/go-stencil/stencil/grid"
)

// Update computes the new value of the cell at pos at time t, reading
// whatever it needs from read. It must be pure with respect to read: it may
// look at any cell but must never mutate it or observe a partially updated
// time plane.
type Update[T any] func(t int, pos coord.Coordinate, read grid.Reader[T]) T

func validateSteps[T any](g *grid.Grid[T], steps int) error {
	if steps < 0 {
		return fmt.Errorf("driver: negative step count %d", steps)
	}
	if steps > 0 && g.Len() == 0 {
		return fmt.Errorf("driver: steps=%d with zero-sized domain", steps)
	}
	return nil
}

// safeUpdate calls u and recovers a panic into an error, so that a panicking
// update function becomes a failed run instead of crashing the process,
// matching task.Async's handling of the same failure mode for the recursive
// drivers.
func safeUpdate[T any](u Update[T], t int, pos coord.Coordinate, r grid.Reader[T]) (v T, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("driver: panic: %v", rec)
		}
	}()
	v = u(t, pos, r)
	return v, nil
}
