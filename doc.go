// Package govfi solves the deterministic single-state Real Business Cycle
// growth model by Value Function Iteration, in two functionally equivalent
// forms: a sequential host-side solver and a data-parallel solver that
// dispatches one work-item per grid point on a device-style CPU execution
// substrate.
//
// Both solvers consume the same inputs, an ascending capital Grid and a set
// of ModelParameters, and produce a ValueFunction with one entry per grid
// point. The sequential form is the correctness baseline; the parallel form
// mirrors a GPU kernel launch (grid/block dimensions, shared read-only input
// array, disjoint output slots, a barrier between sweeps) and must match the
// baseline within floating-point tolerance for any degree of parallelism.
//
// Example usage:
//
//	grid, err := govfi.NewGrid(0.001, 10, 1000)
//	if err != nil {
//		log.Fatal(err)
//	}
//	params := govfi.DefaultParameters()
//
//	v, err := govfi.ParallelSolver{}.Solve(grid, params)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(govfi.NewFormatter().Vector(v))
package govfi
