// Package zoid implements the geometry of a skewed space-time volume (a
// "zoid"): its base, its per-axis slopes, splitting in time and in space,
// and sequential or dependency-scheduled traversal.
package zoid

import (
	"github.com/go-stencil/stencil/coord"
	"github.com/go-stencil/stencil/task"
)

// Zoid is a space-time volume: for each t in [TBegin, TEnd) it covers Base
// shifted inward by (t - TBegin) * Slopes on each axis.
type Zoid struct {
	Base   coord.Base
	Slopes Slopes
	TBegin int
	TEnd   int
}

// Height returns the zoid's time extent, TEnd - TBegin.
func (z Zoid) Height() int { return z.TEnd - z.TBegin }

// ShadowWidth returns the spatial footprint of axis i across the whole time
// band: the base width, plus 2*height when the axis opens outward.
func (z Zoid) ShadowWidth(axis int) int {
	w := z.Base.Width(axis)
	if z.Slopes[axis] < 0 {
		w += 2 * z.Height()
	}
	return w
}

// IsTerminal reports whether z is small enough to traverse directly rather
// than split further: height at most 1, and every axis width under 3.
func (z Zoid) IsTerminal() bool {
	return z.Height() <= 1 && z.Base.MaxWidth() < 3
}

// IsSplitable reports whether axis can still be split in space.
func (z Zoid) IsSplitable(axis int) bool {
	return z.ShadowWidth(axis) > 4*z.Height()
}

// IsSpaceSplitable reports whether any axis can still be split in space.
func (z Zoid) IsSpaceSplitable() bool {
	for axis := range z.Slopes {
		if z.IsSplitable(axis) {
			return true
		}
	}
	return false
}

// step advances base by one time step under the given slopes: each axis's
// begin moves by slope, end moves by -slope.
func step(base coord.Base, slopes Slopes) coord.Base {
	out := coord.Base{Ranges: make([]coord.Range, len(base.Ranges))}
	for i, r := range base.Ranges {
		out.Ranges[i] = coord.Range{Begin: r.Begin + slopes[i], End: r.End - slopes[i]}
	}
	return out
}

// stepBy advances base by n time steps under the given slopes.
func stepBy(base coord.Base, slopes Slopes, n int) coord.Base {
	out := base
	for i := 0; i < n; i++ {
		out = step(out, slopes)
	}
	return out
}

// ForEach sequentially applies, for each t in [TBegin, TEnd), the scanner to
// the current base with even if t is even else odd, then advances the base
// by Slopes for the next time step.
func (z Zoid) ForEach(size coord.Coordinate, even, odd CellFunc) {
	base := z.Base
	for t := z.TBegin; t < z.TEnd; t++ {
		cb := even
		if t%2 != 0 {
			cb = odd
		}
		Scan(base, size, func(pos coord.Coordinate) { cb(t, pos) })
		base = step(base, z.Slopes)
	}
}

// SplitTime bisects the time interval at height/2, producing a bottom zoid
// over [TBegin, TBegin+split) and a top zoid, whose base has been shifted
// inward by split*Slopes, over [TBegin+split, TEnd).
func (z Zoid) SplitTime() (bottom, top Zoid) {
	split := z.Height() / 2
	bottom = Zoid{Base: z.Base, Slopes: z.Slopes, TBegin: z.TBegin, TEnd: z.TBegin + split}
	top = Zoid{
		Base:   stepBy(z.Base, z.Slopes, split),
		Slopes: z.Slopes,
		TBegin: z.TBegin + split,
		TEnd:   z.TEnd,
	}
	return bottom, top
}

// SplitSpace splits z on the axis with the largest current shadow width
// (ties broken by the lowest index), producing left, center, and right
// sub-zoids sharing z's time band. It reports which axis was split and
// whether that axis's slope was opening (negative).
func (z Zoid) SplitSpace() (left, center, right Zoid, axis int, opening bool) {
	axis = -1
	best := -1
	for i := range z.Slopes {
		if w := z.ShadowWidth(i); w > best {
			best = w
			axis = i
		}
	}

	r := z.Base.Ranges[axis]
	mid := (r.Begin + r.End) / 2
	opening = z.Slopes[axis] < 0

	lo, hi := mid, mid
	if opening {
		lo = mid - z.Height()
		hi = mid + z.Height()
	}

	left = Zoid{
		Base:   z.Base.WithRange(axis, coord.Range{Begin: r.Begin, End: lo}),
		Slopes: z.Slopes,
		TBegin: z.TBegin,
		TEnd:   z.TEnd,
	}
	center = Zoid{
		Base:   z.Base.WithRange(axis, coord.Range{Begin: lo, End: hi}),
		Slopes: z.Slopes.Flip(axis),
		TBegin: z.TBegin,
		TEnd:   z.TEnd,
	}
	right = Zoid{
		Base:   z.Base.WithRange(axis, coord.Range{Begin: hi, End: r.End}),
		Slopes: z.Slopes,
		TBegin: z.TBegin,
		TEnd:   z.TEnd,
	}
	return left, center, right, axis, opening
}

// PforEach recursively decomposes z and schedules its traversal as a task
// graph: terminal zoids, and one-step zoids that cannot be split in space
// (a time split would not shrink them), run ForEach directly; other
// non-space-splitable zoids split in time and sequence top after bottom;
// space-splitable zoids split
// and, depending on whether the split axis opens or closes, either run the
// center first and the wings after (opening: center feeds both wings) or run
// the wings first and the center after (closing: center consumes both
// wings' boundary cells). deps holds task references the whole zoid must
// wait on before any of its cells are touched; the returned Handle completes
// once every cell of z has been updated.
func (z Zoid) PforEach(deps task.Deps, size coord.Coordinate, even, odd CellFunc) *task.Handle {
	isBase := z.IsTerminal() || (z.Height() <= 1 && !z.IsSpaceSplitable())
	return task.Prec(isBase,
		func() *task.Handle {
			return task.Async(func() error {
				if err := deps.Wait(); err != nil {
					return err
				}
				z.ForEach(size, even, odd)
				return nil
			})
		},
		func() *task.Handle {
			if !z.IsSpaceSplitable() {
				bottom, top := z.SplitTime()
				bottomHandle := bottom.PforEach(deps, size, even, odd)
				return top.PforEach(deps.Append(bottomHandle), size, even, odd)
			}

			l, c, r, _, opening := z.SplitSpace()
			if opening {
				cHandle := c.PforEach(deps, size, even, odd)
				wingDeps := deps.Append(cHandle)
				return task.Parallel(
					func() error { return l.PforEach(wingDeps, size, even, odd).Wait() },
					func() error { return r.PforEach(wingDeps, size, even, odd).Wait() },
				)
			}

			lHandle := l.PforEach(deps, size, even, odd)
			rHandle := r.PforEach(deps, size, even, odd)
			return c.PforEach(deps.Append(lHandle, rHandle), size, even, odd)
		},
	)
}
