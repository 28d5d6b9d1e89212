// Package presets provides a small catalog of ready-made pure update
// functions, in the spirit of the teacher's kernels.Catalog (a table of named
// in-place transforms): axis shifts, periodic averaging, a four-neighbor
// diffusion step, and Conway's Game of Life. These exist so the engine can be
// exercised end to end without every caller having to hand-write a stencil
// kernel, and so cmd/stencilrun has something runnable to demo.
package presets

import (
	"github.com/go-stencil/stencil/coord"
	"github.com/go-stencil/stencil/driver"
	"github.com/go-stencil/stencil/grid"
)

// Shift1D returns a 1D update that reads the cell offset positions to the
// right, wrapping periodically: u(t, i, x) = x[(i+offset) mod L].
func Shift1D(offset int) driver.Update[int] {
	return func(t int, pos coord.Coordinate, r grid.Reader[int]) int {
		l := r.Size()[0]
		i := pos[0]
		j := ((i+offset)%l + l) % l
		return r.At(coord.Coordinate{j})
	}
}

// Average3 returns a 1D three-point periodic averaging update, integer
// division: u(t, i, x) = (x[i-1] + x[i] + x[i+1]) / 3.
func Average3() driver.Update[int] {
	return func(t int, pos coord.Coordinate, r grid.Reader[int]) int {
		l := r.Size()[0]
		i := pos[0]
		left := r.At(coord.Coordinate{((i-1)%l + l) % l})
		mid := r.At(pos)
		right := r.At(coord.Coordinate{(i + 1) % l})
		return (left + mid + right) / 3
	}
}

// Average5 returns a 1D five-point periodic averaging update, integer
// division: u(t, i, x) = (x[i-2]+x[i-1]+x[i]+x[i+1]+x[i+2]) / 5.
func Average5() driver.Update[int] {
	return func(t int, pos coord.Coordinate, r grid.Reader[int]) int {
		l := r.Size()[0]
		i := pos[0]
		wrap := func(j int) int { return ((j % l) + l) % l }
		sum := r.At(coord.Coordinate{wrap(i - 2)}) +
			r.At(coord.Coordinate{wrap(i - 1)}) +
			r.At(pos) +
			r.At(coord.Coordinate{wrap(i + 1)}) +
			r.At(coord.Coordinate{wrap(i + 2)})
		return sum / 5
	}
}

// Diffusion4 returns a 2D four-neighbor periodic diffusion update, integer
// division: u(t, (i,j), x) = (x[i-1][j]+x[i+1][j]+x[i][j-1]+x[i][j+1]) / 4.
func Diffusion4() driver.Update[int] {
	return func(t int, pos coord.Coordinate, r grid.Reader[int]) int {
		size := r.Size()
		i, j := pos[0], pos[1]
		wrap := func(v, l int) int { return ((v % l) + l) % l }
		up := r.At(coord.Coordinate{wrap(i-1, size[0]), j})
		down := r.At(coord.Coordinate{wrap(i+1, size[0]), j})
		left := r.At(coord.Coordinate{i, wrap(j-1, size[1])})
		right := r.At(coord.Coordinate{i, wrap(j+1, size[1])})
		return (up + down + left + right) / 4
	}
}

// Life returns the Conway's Game of Life update for a 2D grid of 0/1 cells,
// with periodic wrap: a live cell with 2 or 3 live neighbors survives, a dead
// cell with exactly 3 live neighbors becomes alive, every other cell dies or
// stays dead.
func Life() driver.Update[int] {
	return func(t int, pos coord.Coordinate, r grid.Reader[int]) int {
		size := r.Size()
		i, j := pos[0], pos[1]
		wrap := func(v, l int) int { return ((v % l) + l) % l }
		alive := 0
		for di := -1; di <= 1; di++ {
			for dj := -1; dj <= 1; dj++ {
				if di == 0 && dj == 0 {
					continue
				}
				if r.At(coord.Coordinate{wrap(i+di, size[0]), wrap(j+dj, size[1])}) != 0 {
					alive++
				}
			}
		}
		self := r.At(pos)
		if self != 0 {
			if alive == 2 || alive == 3 {
				return 1
			}
			return 0
		}
		if alive == 3 {
			return 1
		}
		return 0
	}
}
