package plan

import (
	"errors"
	"fmt"

	"github.com/go-stencil/stencil/coord"
	"github.com/go-stencil/stencil/task"
	"github.com/go-stencil/stencil/zoid"
)

// ErrThinDomain is returned by Create when the domain's minimum axis width
// is too small to build a recursive plan (spec.md §9, "layer height is
// W/2 ... for very thin domains (W < 2) the recursive plan cannot be
// built"). Callers fall back to an iterative strategy.
var ErrThinDomain = errors.New("plan: domain too thin for a recursive plan")

// ExecutionPlan is an ordered sequence of layer plans, each spanning one
// temporal band of height Height (the last band may be shorter).
type ExecutionPlan struct {
	Size   coord.Coordinate
	Height int
	Layers []Layer
}

func minWidth(size coord.Coordinate) int {
	w := size[0]
	for _, s := range size[1:] {
		if s < w {
			w = s
		}
	}
	return w
}

// Create builds an execution plan for the given domain size and step count.
// The layer height is W/2 where W is the domain's minimum axis width; each
// axis j is split at mid_j = size_j - (size_j-W)/2, a point (size_j-W)/2
// from the right edge (so mid_j = size_j on an axis of minimum width). Create returns ErrThinDomain if W < 2, since no layer height
// would be positive.
func Create(size coord.Coordinate, steps int) (*ExecutionPlan, error) {
	if len(size) == 0 {
		return nil, fmt.Errorf("plan: domain has no axes")
	}
	w := minWidth(size)
	if w < 2 {
		return nil, fmt.Errorf("%w: min axis width %d", ErrThinDomain, w)
	}
	h := w / 2

	mid := make([]int, len(size))
	for j, s := range size {
		mid[j] = s - (s-w)/2
	}

	var layers []Layer
	for t0 := 0; t0 < steps; t0 += h {
		t1 := t0 + h
		if t1 > steps {
			t1 = steps
		}
		layers = append(layers, buildLayer(size, mid, t0, t1))
	}
	return &ExecutionPlan{Size: size, Height: h, Layers: layers}, nil
}

// RunSequential iterates layers in order; within each layer it visits
// vertices sorted by ascending popcount (ties broken by numeric index). A
// panic inside even/odd is recovered and returned as an error, the same
// failure mode RunParallel gets for free from task.Async, so both drivers
// agree on how a panicking update surfaces.
func (p *ExecutionPlan) RunSequential(even, odd zoid.CellFunc) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("plan: panic: %v", r)
		}
	}()
	for _, layer := range p.Layers {
		for _, vi := range layer.orderedIndices() {
			layer.Vertices[vi].Zoid.ForEach(p.Size, even, odd)
		}
	}
	return nil
}

// RunParallel spawns every layer's 2^D vertices as tasks, each depending on
// its subset-order parents within the layer. The vertex 0 task of layer
// ℓ additionally depends on the last vertex (2^D-1) of layer ℓ-1, which
// serializes layers; this is conservative but simple, as spec.md §4.4
// and §5 describe. It returns a Handle completing when the last vertex of
// the last layer completes.
func (p *ExecutionPlan) RunParallel(even, odd zoid.CellFunc) *task.Handle {
	var prevLast *task.Handle
	for _, layer := range p.Layers {
		n := len(layer.Vertices)
		handles := make([]*task.Handle, n)
		for i := 0; i < n; i++ {
			v := layer.Vertices[i]
			var deps task.Deps
			for _, parent := range v.Parents {
				deps = deps.Append(handles[parent])
			}
			if i == 0 && prevLast != nil {
				deps = deps.Append(prevLast)
			}
			handles[i] = v.Zoid.PforEach(deps, p.Size, even, odd)
		}
		prevLast = handles[n-1]
	}
	if prevLast == nil {
		return task.Done()
	}
	return prevLast
}
