package driver

import (
	"testing"

	"github.com/go-stencil/stencil/coord"
	"github.com/go-stencil/stencil/grid"
)

type runner struct {
	name string
	run  func(g *grid.Grid[int], steps int, u Update[int]) error
}

func allRunners() []runner {
	return []runner{
		{"sequential iterative", RunSequentialIterative[int]},
		{"coarse-grained iterative", RunCoarseGrainedIterative[int]},
		{"fine-grained iterative", RunFineGrainedIterative[int]},
		{"sequential recursive", RunSequentialRecursive[int]},
		{"parallel recursive", RunParallelRecursive[int]},
	}
}

func newLine(values []int) *grid.Grid[int] {
	g := grid.New[int](coord.Coordinate{len(values)})
	for i, v := range values {
		g.SetLinear(i, v)
	}
	return g
}

func lineValues(g *grid.Grid[int]) []int {
	out := make([]int, g.Len())
	for i := range out {
		out[i] = g.AtLinear(i)
	}
	return out
}

func assertLine(t *testing.T, name string, got, want []int) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: len = %d, want %d", name, len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("%s: result = %v, want %v", name, got, want)
		}
	}
}

// S1: 1D shift.
func TestS1Shift(t *testing.T) {
	t.Parallel()
	shift := func(t int, pos coord.Coordinate, r grid.Reader[int]) int {
		l := r.Size()[0]
		i := pos[0]
		return r.At(coord.Coordinate{(i + 1) % l})
	}
	want := []int{3, 4, 5, 6, 7, 0, 1, 2}
	for _, rn := range allRunners() {
		g := newLine([]int{0, 1, 2, 3, 4, 5, 6, 7})
		if err := rn.run(g, 3, shift); err != nil {
			t.Fatalf("%s: error = %v", rn.name, err)
		}
		assertLine(t, rn.name, lineValues(g), want)
	}
}

// S2: 1D periodic averaging, one step.
func TestS2Average(t *testing.T) {
	t.Parallel()
	avg := func(t int, pos coord.Coordinate, r grid.Reader[int]) int {
		l := r.Size()[0]
		i := pos[0]
		left := r.At(coord.Coordinate{(i - 1 + l) % l})
		mid := r.At(coord.Coordinate{i})
		right := r.At(coord.Coordinate{(i + 1) % l})
		return (left + mid + right) / 3
	}
	initial := make([]int, 16)
	for i := range initial {
		initial[i] = i
	}
	want := make([]int, 16)
	for i := range want {
		left := initial[(i-1+16)%16]
		right := initial[(i+1)%16]
		want[i] = (left + initial[i] + right) / 3
	}
	for _, rn := range allRunners() {
		g := newLine(append([]int(nil), initial...))
		if err := rn.run(g, 1, avg); err != nil {
			t.Fatalf("%s: error = %v", rn.name, err)
		}
		assertLine(t, rn.name, lineValues(g), want)
	}
}

// S3: parity correctness — the final state must land in the caller's grid
// regardless of whether steps is odd.
func TestS3Parity(t *testing.T) {
	t.Parallel()
	incr := func(t int, pos coord.Coordinate, r grid.Reader[int]) int {
		return r.At(pos) + 1
	}
	want := []int{6, 5, 5, 5}
	for _, rn := range allRunners() {
		g := newLine([]int{1, 0, 0, 0})
		if err := rn.run(g, 5, incr); err != nil {
			t.Fatalf("%s: error = %v", rn.name, err)
		}
		assertLine(t, rn.name, lineValues(g), want)
	}
}

// S4: 2D diffusion, all implementations agree cell-by-cell.
func TestS4Diffusion2D(t *testing.T) {
	t.Parallel()
	const n = 8
	diffuse := func(t int, pos coord.Coordinate, r grid.Reader[int]) int {
		size := r.Size()
		i, j := pos[0], pos[1]
		up := r.At(coord.Coordinate{(i - 1 + size[0]) % size[0], j})
		down := r.At(coord.Coordinate{(i + 1) % size[0], j})
		left := r.At(coord.Coordinate{i, (j - 1 + size[1]) % size[1]})
		right := r.At(coord.Coordinate{i, (j + 1) % size[1]})
		return (up + down + left + right) / 4
	}

	makeGrid := func() *grid.Grid[int] {
		g := grid.New[int](coord.Coordinate{n, n})
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				g.Set(coord.Coordinate{i, j}, i+j)
			}
		}
		return g
	}

	var reference []int
	for idx, rn := range allRunners() {
		g := makeGrid()
		if err := rn.run(g, 2, diffuse); err != nil {
			t.Fatalf("%s: error = %v", rn.name, err)
		}
		got := append([]int(nil), g.Cells()...)
		if idx == 0 {
			reference = got
			continue
		}
		for k := range reference {
			if got[k] != reference[k] {
				t.Fatalf("%s disagrees with %s at cell %d: %d != %d", rn.name, allRunners()[0].name, k, got[k], reference[k])
			}
		}
	}
}

// S5: zero steps is the identity for every implementation.
func TestS5ZeroStepsIdentity(t *testing.T) {
	t.Parallel()
	u := func(t int, pos coord.Coordinate, r grid.Reader[int]) int { return r.At(pos) + 1 }
	for _, rn := range allRunners() {
		g := newLine([]int{1, 2, 3, 4})
		if err := rn.run(g, 0, u); err != nil {
			t.Fatalf("%s: error = %v", rn.name, err)
		}
		assertLine(t, rn.name, lineValues(g), []int{1, 2, 3, 4})
	}
}

// S6: recursive terminal bypass — a domain narrower than the terminal
// threshold must still match the iterative reference.
func TestS6RecursiveTerminalBypass(t *testing.T) {
	t.Parallel()
	u := func(t int, pos coord.Coordinate, r grid.Reader[int]) int {
		l := r.Size()[0]
		i := pos[0]
		return r.At(coord.Coordinate{(i + 1) % l}) + r.At(coord.Coordinate{i})
	}
	want := newLine([]int{1, 2})
	if err := RunSequentialIterative(want, 10, u); err != nil {
		t.Fatalf("reference run: error = %v", err)
	}
	for _, rn := range allRunners()[3:] {
		g := newLine([]int{1, 2})
		if err := rn.run(g, 10, u); err != nil {
			t.Fatalf("%s: error = %v", rn.name, err)
		}
		assertLine(t, rn.name, lineValues(g), lineValues(want))
	}
}

// A panicking update must surface as an error from every implementation
// instead of crashing the process, matching spec.md §7's documented failure
// mode for an update function that raises.
func TestPanickingUpdateBecomesError(t *testing.T) {
	t.Parallel()
	panicky := func(t int, pos coord.Coordinate, r grid.Reader[int]) int {
		panic("boom")
	}
	for _, rn := range allRunners() {
		g := newLine([]int{1, 2, 3, 4})
		if err := rn.run(g, 2, panicky); err == nil {
			t.Fatalf("%s: error = nil, want error from recovered panic", rn.name)
		}
	}
}

func TestNegativeStepsIsError(t *testing.T) {
	t.Parallel()
	u := func(t int, pos coord.Coordinate, r grid.Reader[int]) int { return r.At(pos) }
	for _, rn := range allRunners() {
		g := newLine([]int{1, 2, 3})
		if err := rn.run(g, -1, u); err == nil {
			t.Fatalf("%s: error = nil, want error for negative steps", rn.name)
		}
	}
}
