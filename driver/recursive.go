package driver

import (
	"github.com/go-stencil/stencil/coord"
	"github.com/go-stencil/stencil/grid"
	"github.com/go-stencil/stencil/plan"
	"github.com/go-stencil/stencil/zoid"
)

// bufferedAdapters builds the even/odd phase callbacks shared by both
// recursive drivers: even writes into b reading from g, odd writes into g
// reading from b — the standard double-buffer swap for an odd/even time
// split.
func bufferedAdapters[T any](g, b *grid.Grid[T], u Update[T]) (even, odd zoid.CellFunc) {
	even = func(t int, pos coord.Coordinate) { b.Set(pos, u(t, pos, g)) }
	odd = func(t int, pos coord.Coordinate) { g.Set(pos, u(t, pos, b)) }
	return even, odd
}

// RunSequentialRecursive builds an execution plan over g's full domain and
// runs it sequentially via the zoid/plan decomposition. It returns
// plan.ErrThinDomain unchanged when the domain is too thin to decompose; the
// caller (stencil.Run) is responsible for falling back to an iterative
// strategy in that case.
func RunSequentialRecursive[T any](g *grid.Grid[T], steps int, u Update[T]) error {
	if err := validateSteps(g, steps); err != nil {
		return err
	}
	if steps == 0 {
		return nil
	}
	b := grid.New[T](g.Size())
	p, err := plan.Create(g.Size(), steps)
	if err != nil {
		return err
	}
	even, odd := bufferedAdapters(g, b, u)
	if err := p.RunSequential(even, odd); err != nil {
		return err
	}
	if steps%2 == 1 {
		g.Swap(b)
	}
	return nil
}

// RunParallelRecursive builds an execution plan over g's full domain and
// runs it via the plan's task-graph scheduler. It returns plan.ErrThinDomain
// unchanged when the domain is too thin to decompose.
func RunParallelRecursive[T any](g *grid.Grid[T], steps int, u Update[T]) error {
	if err := validateSteps(g, steps); err != nil {
		return err
	}
	if steps == 0 {
		return nil
	}
	b := grid.New[T](g.Size())
	p, err := plan.Create(g.Size(), steps)
	if err != nil {
		return err
	}
	even, odd := bufferedAdapters(g, b, u)
	if err := p.RunParallel(even, odd).Wait(); err != nil {
		return err
	}
	if steps%2 == 1 {
		g.Swap(b)
	}
	return nil
}
