// Package grid provides a reference implementation of the container
// contract the stencil engine borrows (spec.md §6): random-access storage
// indexed by a D-dimensional coord.Coordinate, with contents-swappable
// double buffers. The engine treats the real container as an external
// collaborator; Grid exists so the engine can be exercised and tested
// end to end without requiring callers to supply their own.
//
// Grounded on Mikko-Finell-mad-ca's ByteGrid (internal/core/grid.go):
// row-major backing slice, a linear Index helper, and toroidal Wrap,
// generalized here from a fixed 2D uint8 grid to a generic D-dimensional
// Grid[T].
package grid

import "github.com/go-stencil/stencil/coord"

// Reader is the read-only view of a Grid passed to update functions: they
// may read any cell but must never mutate it.
type Reader[T any] interface {
	Size() coord.Coordinate
	At(pos coord.Coordinate) T
}

// Grid is a dense, row-major, D-dimensional container of cell values.
type Grid[T any] struct {
	size    coord.Coordinate
	strides []int
	data    []T
}

// New allocates a Grid with the given shape, zero-valued.
func New[T any](size coord.Coordinate) *Grid[T] {
	strides := make([]int, len(size))
	total := 1
	for i := len(size) - 1; i >= 0; i-- {
		strides[i] = total
		total *= size[i]
	}
	return &Grid[T]{size: size.Clone(), strides: strides, data: make([]T, total)}
}

// Size returns the grid's shape.
func (g *Grid[T]) Size() coord.Coordinate { return g.size.Clone() }

// Len returns the total number of cells.
func (g *Grid[T]) Len() int { return len(g.data) }

// Cells exposes the backing slice directly.
func (g *Grid[T]) Cells() []T { return g.data }

func (g *Grid[T]) linear(pos coord.Coordinate) int {
	i := 0
	for axis, p := range pos {
		i += p * g.strides[axis]
	}
	return i
}

// Coord converts a linear cell index back into a Coordinate.
func (g *Grid[T]) Coord(lin int) coord.Coordinate {
	pos := make(coord.Coordinate, len(g.size))
	for axis, stride := range g.strides {
		pos[axis] = lin / stride
		lin -= pos[axis] * stride
	}
	return pos
}

// At returns the value at pos.
func (g *Grid[T]) At(pos coord.Coordinate) T { return g.data[g.linear(pos)] }

// Set stores v at pos.
func (g *Grid[T]) Set(pos coord.Coordinate, v T) { g.data[g.linear(pos)] = v }

// AtLinear returns the value at a linear cell index, as produced by Coord.
func (g *Grid[T]) AtLinear(lin int) T { return g.data[lin] }

// SetLinear stores v at a linear cell index, as produced by Coord.
func (g *Grid[T]) SetLinear(lin int, v T) { g.data[lin] = v }

// Wrap applies toroidal wrapping to pos, reducing every axis into
// [0, size_i).
func (g *Grid[T]) Wrap(pos coord.Coordinate) coord.Coordinate {
	out := make(coord.Coordinate, len(pos))
	for axis, p := range pos {
		s := g.size[axis]
		out[axis] = ((p % s) + s) % s
	}
	return out
}

// Neighbors returns the linear indices of the cell at lin together with
// every cell in its full Moore neighborhood (every combination of -1/0/+1
// per axis except all-zero, so 3^D - 1 cells), wrapped toroidally. This is a
// safe superset of any axis-aligned or diagonal footprint an update function
// might read, which is what NeighborhoodSync-based scheduling needs: a
// narrower, axis-only neighbor set would miss a real dependency edge for an
// update (like Life) that also reads diagonal neighbors.
func (g *Grid[T]) Neighbors(lin int) []int {
	pos := g.Coord(lin)
	d := len(g.size)
	out := make([]int, 0, pow3(d))
	out = append(out, lin)
	deltas := make([]int, d)
	var rec func(axis int)
	rec = func(axis int) {
		if axis == d {
			allZero := true
			for _, delta := range deltas {
				if delta != 0 {
					allZero = false
					break
				}
			}
			if allZero {
				return
			}
			np := pos.Clone()
			for i, delta := range deltas {
				np[i] += delta
			}
			out = append(out, g.linear(g.Wrap(np)))
			return
		}
		for delta := -1; delta <= 1; delta++ {
			deltas[axis] = delta
			rec(axis + 1)
		}
	}
	rec(0)
	return out
}

func pow3(d int) int {
	n := 1
	for i := 0; i < d; i++ {
		n *= 3
	}
	return n
}

// Swap exchanges the backing storage of g and other in place; both must
// share the same shape. This is the cheap, contents-swappable operation the
// double-buffered drivers rely on instead of a deep copy.
func (g *Grid[T]) Swap(other *Grid[T]) {
	g.data, other.data = other.data, g.data
}

// Clone returns an independent copy of g with the same contents.
func (g *Grid[T]) Clone() *Grid[T] {
	out := New[T](g.size)
	copy(out.data, g.data)
	return out
}
