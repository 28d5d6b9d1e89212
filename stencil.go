// Package stencil is the top-level entry point for the engine: it picks one
// of the five concrete driver strategies and runs it to completion, falling
// back from a recursive strategy to its iterative counterpart when the
// domain is too thin to decompose.
package stencil

import (
	"errors"
	"fmt"

	"github.com/go-stencil/stencil/driver"
	"github.com/go-stencil/stencil/grid"
	"github.com/go-stencil/stencil/plan"
)

// Impl selects which concrete strategy Run uses to advance the grid.
type Impl int

const (
	// SequentialIterative applies the update function one cell at a time,
	// single-threaded, with a full barrier between time steps.
	SequentialIterative Impl = iota
	// CoarseGrainedIterative parallelizes each time step over cells but
	// still waits for every cell of step t before starting step t+1.
	CoarseGrainedIterative
	// FineGrainedIterative parallelizes each time step over cells and lets
	// a cell of step t+1 start as soon as its own neighborhood from step t
	// is done, without waiting on the rest of the step. cmd/stencilrun uses
	// it when -impl is not given; Run itself has no default strategy (the
	// zero value of Impl is SequentialIterative).
	FineGrainedIterative
	// SequentialRecursive uses the cache-oblivious zoid/plan decomposition,
	// run single-threaded.
	SequentialRecursive
	// ParallelRecursive uses the cache-oblivious zoid/plan decomposition,
	// scheduled across the task runtime's worker pool.
	ParallelRecursive
)

func (i Impl) String() string {
	switch i {
	case SequentialIterative:
		return "sequential_iterative"
	case CoarseGrainedIterative:
		return "coarse_grained_iterative"
	case FineGrainedIterative:
		return "fine_grained_iterative"
	case SequentialRecursive:
		return "sequential_recursive"
	case ParallelRecursive:
		return "parallel_recursive"
	default:
		return fmt.Sprintf("stencil.Impl(%d)", int(i))
	}
}

// fallback returns the iterative strategy a recursive one degrades to when
// plan.Create rejects the domain as too thin to decompose.
func (i Impl) fallback() Impl {
	switch i {
	case SequentialRecursive:
		return SequentialIterative
	case ParallelRecursive:
		return FineGrainedIterative
	default:
		return i
	}
}

// Handle reports the outcome of a Run call: any error it raised, and which
// Impl actually executed (which may differ from the one requested, if a
// recursive strategy fell back to its iterative counterpart).
type Handle struct {
	err  error
	used Impl
}

// Wait returns the error the run completed with, if any.
func (h *Handle) Wait() error { return h.err }

// Impl reports the strategy that actually ran.
func (h *Handle) Impl() Impl { return h.used }

// Run advances g by steps time steps using u, via the requested strategy.
// If impl is SequentialRecursive or ParallelRecursive and g's domain is too
// thin to decompose (plan.ErrThinDomain), Run transparently falls back to
// the matching iterative strategy; the strategy that actually ran is
// reported by the returned Handle's Impl method.
func Run[T any](impl Impl, g *grid.Grid[T], steps int, u driver.Update[T]) *Handle {
	err := dispatch(impl, g, steps, u)
	used := impl
	if errors.Is(err, plan.ErrThinDomain) {
		used = impl.fallback()
		err = dispatch(used, g, steps, u)
	}
	return &Handle{err: err, used: used}
}

func dispatch[T any](impl Impl, g *grid.Grid[T], steps int, u driver.Update[T]) error {
	switch impl {
	case SequentialIterative:
		return driver.RunSequentialIterative(g, steps, u)
	case CoarseGrainedIterative:
		return driver.RunCoarseGrainedIterative(g, steps, u)
	case FineGrainedIterative:
		return driver.RunFineGrainedIterative(g, steps, u)
	case SequentialRecursive:
		return driver.RunSequentialRecursive(g, steps, u)
	case ParallelRecursive:
		return driver.RunParallelRecursive(g, steps, u)
	default:
		return fmt.Errorf("stencil: unknown implementation %v", impl)
	}
}
