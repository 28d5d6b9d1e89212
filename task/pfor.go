package task

import "fmt"

// LoopRef is the reference returned by Pfor: a per-index completion signal
// for one parallel-for invocation, threaded into the next invocation's
// NeighborhoodSync so that step t+1 only waits on the specific cells of step
// t it actually reads.
type LoopRef struct {
	n    int
	done []chan struct{}
	errs []error
}

// NeighborDeps binds a LoopRef from a prior Pfor to a function that, given a
// cell index of the current loop, names the indices of the prior loop it
// depends on (conventionally the cell itself plus its immediate neighbors).
type NeighborDeps struct {
	prev        *LoopRef
	neighborsOf func(i int) []int
}

// NeighborhoodSync builds the dependency constructor consumed by Pfor: each
// cell i of the new loop waits on prev's cells named by neighborsOf(i)
// before running its body.
func NeighborhoodSync(prev *LoopRef, neighborsOf func(i int) []int) *NeighborDeps {
	return &NeighborDeps{prev: prev, neighborsOf: neighborsOf}
}

// Pfor runs body(i) for every i in [0, n) on its own goroutine. When deps is
// non-nil, body(i) only starts once every dependency cell named by
// deps.neighborsOf(i) has completed in the prior loop; with deps nil, all n
// bodies start immediately (the coarse-grained, full-barrier case, realized
// by the caller awaiting the returned LoopRef before starting the next
// step). A panic inside body(i) is recovered and surfaced through the
// returned LoopRef's Wait, the same failure mode Async converts for the
// recursive drivers, instead of crashing the process.
func Pfor(n int, body func(i int), deps *NeighborDeps) *LoopRef {
	done := make([]chan struct{}, n)
	errs := make([]error, n)
	for i := range done {
		done[i] = make(chan struct{})
	}
	for i := 0; i < n; i++ {
		go func(i int) {
			defer close(done[i])
			defer func() {
				if r := recover(); r != nil {
					errs[i] = fmt.Errorf("task: panic: %v", r)
				}
			}()
			if deps != nil {
				for _, j := range deps.neighborsOf(i) {
					<-deps.prev.done[j]
				}
			}
			body(i)
		}(i)
	}
	return &LoopRef{n: n, done: done, errs: errs}
}

// Wait blocks until every cell of the loop has completed, returning the
// first error encountered (from a recovered panic), if any.
func (r *LoopRef) Wait() error {
	var first error
	for i, ch := range r.done {
		<-ch
		if first == nil && r.errs[i] != nil {
			first = r.errs[i]
		}
	}
	return first
}
