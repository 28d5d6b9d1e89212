// Package stencil implements a cache-oblivious stencil computation engine.
//
// A stencil computation repeatedly applies a neighborhood update function to
// every cell of a regular grid for a fixed number of time steps. This package
// provides five interchangeable strategies for running that computation, from
// a plain sequential double-buffered loop up to a recursive space-time
// decomposition (the "trapezoidal" or "zoid" decomposition) scheduled as a
// dependency graph over worker goroutines.
//
// # Architecture Overview
//
// The engine is built from several layered components:
//
//   - coord: D-dimensional coordinates, half-open ranges, and axis-aligned boxes
//   - zoid: skewed space-time volume geometry, splitting, and traversal
//   - plan: the static hypercube task graph and the layered execution plan
//   - task: the work-stealing-flavored runtime the plan and zoids schedule onto
//   - grid: a reference container implementing the engine's container contract
//   - driver: the iterative and recursive drivers that actually run a stencil
//   - presets: a small library of example pure update functions
//
// # Performance Characteristics
//
//   - Double-buffered updates: every driver alternates reads and writes
//     between two grids, never observing a partially updated time plane
//   - Bounded parallelism: the recursive decomposition exposes independent
//     sub-volumes as soon as their producers complete, not all at once
//   - No locks: correctness rests entirely on task dependencies, not mutexes
//
// # Basic Usage
//
//	g := grid.New[int](coord.Coordinate{16})
//	for i := range g.Cells() {
//	    g.Cells()[i] = i
//	}
//	h := stencil.Run(stencil.FineGrainedIterative, g, 3, func(t int, pos coord.Coordinate, r grid.Reader[int]) int {
//	    return r.At(coord.Coordinate{(pos[0] + 1) % 16}) + 1
//	})
//	h.Wait()
//
// # Package Structure
//
//   - coord: geometry primitives (Coordinate, Range, Base)
//   - zoid: Base/Slopes/Zoid and the plain scanner
//   - plan: hypercube plan and execution plan
//   - task: async/pfor/prec/sequential/parallel runtime primitives
//   - grid: generic container reference implementation
//   - driver: iterative and recursive drivers
//   - presets: example update functions
//   - cmd: command-line driver (stencilrun)
package stencil
