// Package plan implements the top-level hypercube task graph (spec.md §4.3)
// and the layered execution plan built from it (spec.md §4.4): the static
// decomposition of one domain-height time band into 2^D sub-zoids at the
// vertices of a D-hypercube, and the sequential/parallel drivers that run a
// full execution plan layer by layer.
package plan

import (
	"github.com/go-stencil/stencil/coord"
	"github.com/go-stencil/stencil/zoid"
)

// Vertex is one of a layer's 2^D sub-zoids, identified by a D-bit mask:
// bit j set selects the right half on axis j (negative slope, opening);
// bit j clear selects the left half (positive slope, closing). Parents
// lists every vertex index that must complete before this one starts —
// every mask obtained by clearing exactly one set bit of Index.
type Vertex struct {
	Index   int
	Zoid    zoid.Zoid
	Parents []int
}

// Layer is one temporal band of the execution plan, containing exactly 2^D
// vertices, all sharing the band [TBegin, TEnd).
type Layer struct {
	Vertices     []Vertex
	TBegin, TEnd int
}

func popcount(x int) int {
	c := 0
	for x > 0 {
		c += x & 1
		x >>= 1
	}
	return c
}

// subsetParents returns every j obtained by clearing one set bit of i: the
// vertices whose subset mask is exactly one bit smaller than i's.
func subsetParents(i, dims int) []int {
	var parents []int
	for j := 0; j < dims; j++ {
		bit := 1 << j
		if i&bit != 0 {
			parents = append(parents, i&^bit)
		}
	}
	return parents
}

// buildLayer enumerates the 2^D vertices of one temporal band [t0, t1),
// splitting each axis j at mid[j]: bit j clear occupies [0, mid[j]) with a
// closing (+1) slope, bit j set occupies [mid[j], size[j]) with an opening
// (-1) slope.
func buildLayer(size coord.Coordinate, mid []int, t0, t1 int) Layer {
	dims := len(size)
	n := 1 << dims
	vertices := make([]Vertex, n)
	for i := 0; i < n; i++ {
		ranges := make([]coord.Range, dims)
		slopes := make(zoid.Slopes, dims)
		for j := 0; j < dims; j++ {
			if i&(1<<j) != 0 {
				ranges[j] = coord.Range{Begin: mid[j], End: size[j]}
				slopes[j] = -1
			} else {
				ranges[j] = coord.Range{Begin: 0, End: mid[j]}
				slopes[j] = 1
			}
		}
		vertices[i] = Vertex{
			Index: i,
			Zoid: zoid.Zoid{
				Base:   coord.Base{Ranges: ranges},
				Slopes: slopes,
				TBegin: t0,
				TEnd:   t1,
			},
			Parents: subsetParents(i, dims),
		}
	}
	return Layer{Vertices: vertices, TBegin: t0, TEnd: t1}
}

// orderedIndices returns this layer's vertex indices sorted by ascending
// popcount (subset-order rank), ties broken by numeric index — the order
// spec.md §4.4 requires of the sequential driver.
func (l Layer) orderedIndices() []int {
	idx := make([]int, len(l.Vertices))
	for i := range idx {
		idx[i] = i
	}
	// Simple insertion sort: the number of vertices is 2^D with D at most a
	// handful, so this is always small.
	for i := 1; i < len(idx); i++ {
		for j := i; j > 0; j-- {
			a, b := idx[j-1], idx[j]
			if popcount(a) < popcount(b) || (popcount(a) == popcount(b) && a < b) {
				break
			}
			idx[j-1], idx[j] = idx[j], idx[j-1]
		}
	}
	return idx
}
