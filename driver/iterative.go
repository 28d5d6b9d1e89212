package driver

import (
	"sync"

	"github.com/go-stencil/stencil/grid"
	"github.com/go-stencil/stencil/task"
)

// RunSequentialIterative applies u for steps time steps, single-threaded,
// double-buffering between g and a same-shape shadow grid. On return, g
// holds the final state regardless of steps' parity.
func RunSequentialIterative[T any](g *grid.Grid[T], steps int, u Update[T]) error {
	if err := validateSteps(g, steps); err != nil {
		return err
	}
	b := grid.New[T](g.Size())
	x, y := g, b
	for t := 0; t < steps; t++ {
		n := x.Len()
		for lin := 0; lin < n; lin++ {
			pos := x.Coord(lin)
			v, err := safeUpdate(u, t, pos, x)
			if err != nil {
				return err
			}
			y.SetLinear(lin, v)
		}
		x, y = y, x
	}
	if x != g {
		g.Swap(b)
	}
	return nil
}

// RunCoarseGrainedIterative applies u for steps time steps using a
// parallel-for over cells with a full barrier between steps: every cell of
// step t finishes before any cell of step t+1 starts.
func RunCoarseGrainedIterative[T any](g *grid.Grid[T], steps int, u Update[T]) error {
	if err := validateSteps(g, steps); err != nil {
		return err
	}
	b := grid.New[T](g.Size())
	x, y := g, b
	for t := 0; t < steps; t++ {
		n := x.Len()
		errs := make([]error, n)
		var wg sync.WaitGroup
		wg.Add(n)
		for lin := 0; lin < n; lin++ {
			go func(lin int) {
				defer wg.Done()
				pos := x.Coord(lin)
				v, err := safeUpdate(u, t, pos, x)
				if err != nil {
					errs[lin] = err
					return
				}
				y.SetLinear(lin, v)
			}(lin)
		}
		wg.Wait()
		for _, err := range errs {
			if err != nil {
				return err
			}
		}
		x, y = y, x
	}
	if x != g {
		g.Swap(b)
	}
	return nil
}

// RunFineGrainedIterative applies u for steps time steps using a
// parallel-for over cells where each cell of step t+1 only waits on its own
// index and its immediate neighbors from step t's parallel-for, threaded via
// task.NeighborhoodSync; the final loop reference is awaited before
// returning.
func RunFineGrainedIterative[T any](g *grid.Grid[T], steps int, u Update[T]) error {
	if err := validateSteps(g, steps); err != nil {
		return err
	}
	b := grid.New[T](g.Size())
	x, y := g, b
	var prev *task.LoopRef
	refs := make([]*task.LoopRef, 0, steps)
	for t := 0; t < steps; t++ {
		t := t
		cur := x
		next := y
		var deps *task.NeighborDeps
		if prev != nil {
			deps = task.NeighborhoodSync(prev, cur.Neighbors)
		}
		prev = task.Pfor(cur.Len(), func(lin int) {
			pos := cur.Coord(lin)
			next.SetLinear(lin, u(t, pos, cur))
		}, deps)
		refs = append(refs, prev)
		x, y = y, x
	}
	// Wait on every step's loop, not just the last: NeighborhoodSync only
	// chains a cell to the specific neighbor cells it reads, so a step's
	// failure is not guaranteed to be observed by waiting on the final step
	// alone.
	for _, ref := range refs {
		if err := ref.Wait(); err != nil {
			return err
		}
	}
	if x != g {
		g.Swap(b)
	}
	return nil
}
