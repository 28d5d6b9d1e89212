package zoid

import "github.com/go-stencil/stencil/coord"

// CellFunc is invoked once per cell visited by a scan, at a fixed time t.
type CellFunc func(t int, pos coord.Coordinate)

// Scan visits every cell of base in row-major order, last axis innermost,
// honoring the domain's toroidal wrap. On each axis i with range [from, to)
// and domain length L = size[i]:
//
//   - if from > L, both endpoints are translated by -L first (this undoes the
//     pre-wrap shift recursive splits can produce);
//   - positions from `from` up to min(to, L) are visited directly;
//   - if to > L, positions 0 up to to-L are then visited as the wrapped tail.
//
// Delivered positions are always in [0, L).
func Scan(base coord.Base, size coord.Coordinate, visit func(pos coord.Coordinate)) {
	d := base.Dims()
	pos := make(coord.Coordinate, d)
	var rec func(axis int)
	rec = func(axis int) {
		if axis == d {
			visit(pos.Clone())
			return
		}
		r := base.Ranges[axis]
		from, to := r.Begin, r.End
		l := size[axis]
		if from > l {
			from -= l
			to -= l
		}
		end := to
		if end > l {
			end = l
		}
		for v := from; v < end; v++ {
			pos[axis] = v
			rec(axis + 1)
		}
		if to > l {
			tail := to - l
			for v := 0; v < tail; v++ {
				pos[axis] = v
				rec(axis + 1)
			}
		}
	}
	rec(0)
}
